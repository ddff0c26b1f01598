package component

type EnemyKind int

const (
	EnemyGoomba EnemyKind = iota
	EnemyTurtle
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyGoomba:
		return "goomba"
	case EnemyTurtle:
		return "turtle"
	}
	return "unknown"
}

type EnemyState string

const (
	EnemyWalking       EnemyState = "walking"
	EnemyStomped       EnemyState = "stomped"
	EnemyStandingShell EnemyState = "standing_shell"
	EnemyMovingShell   EnemyState = "moving_shell"
	EnemyDead          EnemyState = "dead"
)

// Enemy is a walking actor. Velocity is re-applied to the body every tick;
// contact reactions only flip flags and velocity, the enemy system does the
// rest between steps.
type Enemy struct {
	Kind      EnemyKind
	State     EnemyState
	StateTime float64
	VelocityX float64
	VelocityY float64
	KickSpeed float64
	Script    string
	Tuning    map[string]float64

	StompScore  int
	StompBounce float64
	DeadImpulse float64

	SetToDestroy bool
	Destroyed    bool
}

// Reverse flips the horizontal velocity.
func (e *Enemy) Reverse() {
	e.VelocityX = -e.VelocityX
}

// SetState switches state and restarts the state clock.
func (e *Enemy) SetState(s EnemyState) {
	if e.State == s {
		return
	}
	e.State = s
	e.StateTime = 0
}

var EnemyComponent = NewComponent[Enemy]()
