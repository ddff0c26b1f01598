package component

// Invulnerable makes the player ignore enemy contact. The player system
// counts Frames down and removes the component at zero.
type Invulnerable struct {
	Frames int
}

var InvulnerableComponent = NewComponent[Invulnerable]()
