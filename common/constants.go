package common

// World scale and viewport. Physics runs in meters with y pointing up; the
// renderer converts to pixels with PPM.
const (
	PPM = 100.0

	VirtualWidth  = 400
	VirtualHeight = 208

	// Window scale applied to the virtual resolution.
	WindowScale = 3

	TileSize = 16

	Gravity = -10.0

	// Physics is stepped at a fixed rate regardless of the draw rate.
	TPS      = 60
	TimeStep = 1.0 / TPS

	// Solver iterations per step.
	SolverIterations = 8
)

// Collision category bits. A shape carries exactly one category; the mask
// lists the categories it may touch.
const (
	NothingBit   uint = 0
	GroundBit    uint = 1
	MarioBit     uint = 2
	BrickBit     uint = 4
	CoinBit      uint = 8
	DestroyedBit uint = 16
	ObjectBit    uint = 32
	EnemyBit     uint = 64
	EnemyHeadBit uint = 128
	ItemBit      uint = 256
	MarioHeadBit uint = 512
)

// ToMeters converts a pixel length to world units.
func ToMeters(px float64) float64 {
	return px / PPM
}

// ToPixels converts a world length to pixels.
func ToPixels(m float64) float64 {
	return m * PPM
}
