package confetti

import (
	"image/color"
	"math"
	"math/rand"

	"calcfetti/internal/core/watchdog"
)

// Config contains particle motion constants. Velocities are in pixels per frame.
type Config struct {
	Frames        float64
	FrameRate     float64
	StartVelocity float64
	Decay         float64
	Gravity       float64
	Drift         float64
	Angle         float64
	MinSize       float32
	MaxSize       float32
	Colors        []color.NRGBA
}

// DefaultConfig returns a short, bright burst fired straight up.
func DefaultConfig() Config {
	return Config{
		Frames:        200,
		FrameRate:     60,
		StartVelocity: 45,
		Decay:         0.9,
		Gravity:       1,
		Drift:         0,
		Angle:         90,
		MinSize:       6,
		MaxSize:       10,
		Colors: []color.NRGBA{
			{R: 0x26, G: 0xcc, B: 0xff, A: 0xff},
			{R: 0xa2, G: 0x5a, B: 0xfd, A: 0xff},
			{R: 0xff, G: 0x5e, B: 0x7e, A: 0xff},
			{R: 0x88, G: 0xff, B: 0x5a, A: 0xff},
			{R: 0xfc, G: 0xff, B: 0x42, A: 0xff},
			{R: 0xff, G: 0xa6, B: 0x2d, A: 0xff},
			{R: 0xff, G: 0x36, B: 0xff, A: 0xff},
		},
	}
}

// Particle is one piece of confetti. Its path is a closed-form function of
// the frame number, so any frame can be computed without replaying the ones
// before it.
type Particle struct {
	StartX   float64
	StartY   float64
	Heading  float64
	Velocity float64
	Size     float32
	Color    color.NRGBA
}

// Position is where a particle is drawn at a given frame.
type Position struct {
	X       float64
	Y       float64
	Opacity float64
}

// Spawn creates the particles of burst on a surface of width by height pixels.
func Spawn(rng *rand.Rand, config Config, burst watchdog.Burst, width, height float64) []Particle {
	if burst.ParticleCount <= 0 {
		return nil
	}

	originX := width * clampUnit(burst.Origin.X)
	originY := height * clampUnit(burst.Origin.Y)
	angle := config.Angle * math.Pi / 180
	spread := burst.Spread * math.Pi / 180

	particles := make([]Particle, burst.ParticleCount)
	for index := range particles {
		size := config.MinSize
		if config.MaxSize > config.MinSize {
			size += float32(rng.Float64()) * (config.MaxSize - config.MinSize)
		}
		var tint color.NRGBA
		if len(config.Colors) > 0 {
			tint = config.Colors[rng.Intn(len(config.Colors))]
		}
		particles[index] = Particle{
			StartX:   originX,
			StartY:   originY,
			Heading:  -angle + (0.5*spread - rng.Float64()*spread),
			Velocity: config.StartVelocity*0.5 + rng.Float64()*config.StartVelocity,
			Size:     size,
			Color:    tint,
		}
	}
	return particles
}

// At returns the particle position after frame frames.
func (particle Particle) At(config Config, frame float64) Position {
	if frame < 0 {
		frame = 0
	}

	// Sum of a geometric series: velocity shrinks by Decay every frame.
	travelled := particle.Velocity * frame
	if config.Decay > 0 && config.Decay < 1 {
		travelled = particle.Velocity * (1 - math.Pow(config.Decay, frame)) / (1 - config.Decay)
	}

	opacity := 1.0
	if config.Frames > 0 {
		opacity = 1 - frame/config.Frames
	}

	return Position{
		X:       particle.StartX + math.Cos(particle.Heading)*travelled + config.Drift*frame,
		Y:       particle.StartY + math.Sin(particle.Heading)*travelled + config.Gravity*3*frame,
		Opacity: math.Max(0, math.Min(1, opacity)),
	}
}

func clampUnit(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
