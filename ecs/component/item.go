package component

// ItemKind names an actor the spawn queue can create.
type ItemKind int

const (
	ItemMushroom ItemKind = iota
)

func (k ItemKind) String() string {
	switch k {
	case ItemMushroom:
		return "mushroom"
	}
	return "unknown"
}

// ItemDef is a pending spawn: what to create and where, in world meters.
type ItemDef struct {
	Kind ItemKind
	X    float64
	Y    float64
}

// Item is a live collectible actor.
type Item struct {
	Kind      ItemKind
	VelocityX float64
	ToDestroy bool
	Destroyed bool
}

var ItemComponent = NewComponent[Item]()
