package component

// LevelBounds stores the pixel size of the current level.
type LevelBounds struct {
	Width  float64
	Height float64
}

// ToPixels converts a y-up world position in meters into map pixels.
func (b LevelBounds) ToPixels(x, y, ppm float64) (float64, float64) {
	return x * ppm, b.Height - y*ppm
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
