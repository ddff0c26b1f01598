package component

// PlayerStateID is the animation state derived from the body every tick.
type PlayerStateID int

const (
	PlayerStanding PlayerStateID = iota
	PlayerRunning
	PlayerJumping
	PlayerFalling
	PlayerGrowing
	PlayerDead
)

func (s PlayerStateID) String() string {
	switch s {
	case PlayerStanding:
		return "standing"
	case PlayerRunning:
		return "running"
	case PlayerJumping:
		return "jumping"
	case PlayerFalling:
		return "falling"
	case PlayerGrowing:
		return "growing"
	case PlayerDead:
		return "dead"
	}
	return "unknown"
}

// PlayerStateMachine stores the current and previous state. Timer counts
// seconds spent in Current and restarts whenever Current changes.
type PlayerStateMachine struct {
	Current  PlayerStateID
	Previous PlayerStateID
	Timer    float64
	// GrowTimer counts down the grow animation; the player reads as growing
	// while it is positive.
	GrowTimer float64
}

var PlayerStateMachineComponent = NewComponent[PlayerStateMachine]()
