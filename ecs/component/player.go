package component

// PlayerShape is one body layout of the player: a column of circles whose
// centers sit Offsets meters above the body origin.
type PlayerShape struct {
	Radius  float64
	Offsets []float64
	OriginY float64
}

// Player holds the player's size and life flags plus the tuning it was
// built with. Lengths are meters.
type Player struct {
	Big  bool
	Dead bool

	// Body swaps requested from contact callbacks; the player system applies
	// them outside the step.
	GrowPending   bool
	ShrinkPending bool

	RunningRight bool

	MoveImpulse  float64
	MaxSpeed     float64
	JumpImpulse  float64
	DeathImpulse float64
	GrowSeconds  float64
	// InvulnerableFrames is granted after shrinking.
	InvulnerableFrames int

	Small         PlayerShape
	BigShape      PlayerShape
	GrowShift     float64
	HeadHalfWidth float64
	HeadOffset    float64
	Friction      float64
	Layer         CollisionLayer
	HeadLayer     CollisionLayer
}

var PlayerComponent = NewComponent[Player]()
