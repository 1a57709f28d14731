package watchdog

// Point is a position expressed as fractions of the drawing surface.
type Point struct {
	X float64
	Y float64
}

// Burst describes one confetti burst.
type Burst struct {
	ParticleCount int
	Spread        float64
	Origin        Point
}

// Burster draws a burst. Implementations must not block the caller.
type Burster interface {
	Burst(burst Burst)
}

// NopBurster is used when no renderer is available.
type NopBurster struct{}

// Burst does nothing.
func (NopBurster) Burst(Burst) {}
