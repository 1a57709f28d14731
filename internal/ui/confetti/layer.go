package confetti

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"calcfetti/internal/core/watchdog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/rs/zerolog"
)

// Layer draws confetti bursts on top of other content. Put Container() last
// in a stack so particles render above the widgets underneath.
type Layer struct {
	mu         sync.Mutex
	config     Config
	rng        *rand.Rand
	surface    *fyne.Container
	animations map[*fyne.Animation][]fyne.CanvasObject
	logger     zerolog.Logger
}

// New creates an empty confetti layer.
func New(config Config, logger zerolog.Logger) *Layer {
	return &Layer{
		config:     config,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		surface:    container.NewWithoutLayout(),
		animations: make(map[*fyne.Animation][]fyne.CanvasObject),
		logger:     logger.With().Str("component", "confetti").Logger(),
	}
}

// Container returns the canvas object particles are drawn into.
func (layer *Layer) Container() *fyne.Container {
	return layer.surface
}

// Burst implements watchdog.Burster. It is safe to call from any goroutine.
func (layer *Layer) Burst(burst watchdog.Burst) {
	fyne.Do(func() {
		layer.start(burst)
	})
}

// Stop removes every particle and halts running animations.
func (layer *Layer) Stop() {
	fyne.Do(func() {
		layer.mu.Lock()
		running := layer.animations
		layer.animations = make(map[*fyne.Animation][]fyne.CanvasObject)
		layer.mu.Unlock()

		for animation := range running {
			animation.Stop()
		}
		layer.surface.RemoveAll()
		layer.surface.Refresh()
	})
}

// Active returns the number of bursts still animating.
func (layer *Layer) Active() int {
	layer.mu.Lock()
	defer layer.mu.Unlock()
	return len(layer.animations)
}

func (layer *Layer) start(burst watchdog.Burst) {
	particles, pieces := layer.spawn(burst)
	if len(particles) == 0 {
		return
	}

	objects := make([]fyne.CanvasObject, len(pieces))
	for index, piece := range pieces {
		objects[index] = piece
	}

	duration := time.Duration(layer.config.Frames / layer.config.FrameRate * float64(time.Second))
	var animation *fyne.Animation
	animation = fyne.NewAnimation(duration, func(progress float32) {
		frame := float64(progress) * layer.config.Frames
		for index, particle := range particles {
			position := particle.At(layer.config, frame)
			piece := pieces[index]
			piece.FillColor = fade(particle.Color, position.Opacity)
			piece.Move(fyne.NewPos(float32(position.X), float32(position.Y)))
			piece.Refresh()
		}
		if progress >= 1 {
			layer.finish(animation)
		}
	})
	animation.Curve = fyne.AnimationLinear

	layer.mu.Lock()
	layer.animations[animation] = objects
	layer.mu.Unlock()

	animation.Start()
}

func (layer *Layer) spawn(burst watchdog.Burst) ([]Particle, []*canvas.Rectangle) {
	size := layer.surface.Size()
	if size.Width <= 0 || size.Height <= 0 {
		layer.logger.Debug().Msg("skipping burst on empty surface")
		return nil, nil
	}

	layer.mu.Lock()
	particles := Spawn(layer.rng, layer.config, burst, float64(size.Width), float64(size.Height))
	layer.mu.Unlock()

	pieces := make([]*canvas.Rectangle, len(particles))
	for index, particle := range particles {
		piece := canvas.NewRectangle(particle.Color)
		piece.CornerRadius = particle.Size / 4
		piece.Resize(fyne.NewSize(particle.Size, particle.Size*0.6))
		piece.Move(fyne.NewPos(float32(particle.StartX), float32(particle.StartY)))
		pieces[index] = piece
		layer.surface.Add(piece)
	}
	return particles, pieces
}

func (layer *Layer) finish(animation *fyne.Animation) {
	layer.mu.Lock()
	objects, ok := layer.animations[animation]
	delete(layer.animations, animation)
	layer.mu.Unlock()
	if !ok {
		return
	}

	for _, object := range objects {
		layer.surface.Remove(object)
	}
	layer.surface.Refresh()
}

func fade(tint color.NRGBA, opacity float64) color.NRGBA {
	tint.A = uint8(float64(tint.A) * opacity)
	return tint
}

var _ watchdog.Burster = (*Layer)(nil)
