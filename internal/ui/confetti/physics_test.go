package confetti

import (
	"math"
	"math/rand"
	"testing"

	"calcfetti/internal/core/watchdog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBurst(count int) watchdog.Burst {
	return watchdog.Burst{ParticleCount: count, Spread: 70, Origin: watchdog.Point{X: 0.5, Y: 0.6}}
}

func TestSpawn_CountAndOrigin(t *testing.T) {
	config := DefaultConfig()
	particles := Spawn(rand.New(rand.NewSource(3)), config, testBurst(150), 400, 500)

	require.Len(t, particles, 150)
	for _, particle := range particles {
		assert.Equal(t, 200.0, particle.StartX)
		assert.Equal(t, 300.0, particle.StartY)
		assert.GreaterOrEqual(t, particle.Size, config.MinSize)
		assert.LessOrEqual(t, particle.Size, config.MaxSize)
		assert.Contains(t, config.Colors, particle.Color)
	}
}

func TestSpawn_HeadingWithinSpread(t *testing.T) {
	config := DefaultConfig()
	particles := Spawn(rand.New(rand.NewSource(9)), config, testBurst(500), 100, 100)

	up := -math.Pi / 2
	half := 35 * math.Pi / 180
	for _, particle := range particles {
		assert.InDelta(t, up, particle.Heading, half+1e-9)
		assert.GreaterOrEqual(t, particle.Velocity, config.StartVelocity*0.5)
		assert.LessOrEqual(t, particle.Velocity, config.StartVelocity*1.5)
	}
}

func TestSpawn_EmptyBurst(t *testing.T) {
	assert.Nil(t, Spawn(rand.New(rand.NewSource(1)), DefaultConfig(), testBurst(0), 100, 100))
}

func TestSpawn_ClampsOrigin(t *testing.T) {
	burst := testBurst(1)
	burst.Origin = watchdog.Point{X: -1, Y: 3}
	particles := Spawn(rand.New(rand.NewSource(1)), DefaultConfig(), burst, 100, 80)

	require.Len(t, particles, 1)
	assert.Equal(t, 0.0, particles[0].StartX)
	assert.Equal(t, 80.0, particles[0].StartY)
}

func TestParticle_RisesThenFalls(t *testing.T) {
	config := DefaultConfig()
	particle := Particle{StartX: 50, StartY: 100, Heading: -math.Pi / 2, Velocity: 45}

	start := particle.At(config, 0)
	assert.InDelta(t, 50, start.X, 1e-9)
	assert.InDelta(t, 100, start.Y, 1e-9)
	assert.Equal(t, 1.0, start.Opacity)

	early := particle.At(config, 5)
	assert.Less(t, early.Y, start.Y, "moves up first")

	late := particle.At(config, 200)
	assert.Greater(t, late.Y, start.Y, "gravity wins eventually")
	assert.Equal(t, 0.0, late.Opacity)
}

func TestParticle_TravelConverges(t *testing.T) {
	config := DefaultConfig()
	config.Gravity = 0
	particle := Particle{Heading: 0, Velocity: 10}

	// With decay 0.9 the total distance approaches 10 / (1 - 0.9) = 100.
	far := particle.At(config, 1000)
	assert.InDelta(t, 100, far.X, 1e-6)
	assert.Equal(t, 0.0, far.Opacity)
}

func TestFade(t *testing.T) {
	tint := DefaultConfig().Colors[0]
	assert.Equal(t, uint8(0), fade(tint, 0).A)
	assert.Equal(t, uint8(127), fade(tint, 0.5).A)
	assert.Equal(t, tint, fade(tint, 1))
}
