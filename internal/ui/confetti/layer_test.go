package confetti

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayer_SpawnAddsPieces(t *testing.T) {
	test.NewTempApp(t)

	layer := New(DefaultConfig(), zerolog.Nop())
	layer.Container().Resize(fyne.NewSize(300, 400))

	particles, pieces := layer.spawn(testBurst(25))
	require.Len(t, particles, 25)
	assert.Len(t, pieces, 25)
	assert.Len(t, layer.Container().Objects, 25)
	assert.Equal(t, fyne.NewPos(150, 240), pieces[0].Position())
}

func TestLayer_SkipsEmptySurface(t *testing.T) {
	test.NewTempApp(t)

	layer := New(DefaultConfig(), zerolog.Nop())
	layer.start(testBurst(25))

	assert.Empty(t, layer.Container().Objects)
	assert.Equal(t, 0, layer.Active())
}

func TestLayer_FinishRemovesPieces(t *testing.T) {
	test.NewTempApp(t)

	layer := New(DefaultConfig(), zerolog.Nop())
	layer.Container().Resize(fyne.NewSize(300, 400))
	_, pieces := layer.spawn(testBurst(3))

	animation := fyne.NewAnimation(time.Second, func(float32) {})
	objects := make([]fyne.CanvasObject, len(pieces))
	for index, piece := range pieces {
		objects[index] = piece
	}
	layer.animations[animation] = objects
	require.Equal(t, 1, layer.Active())

	layer.finish(animation)
	assert.Empty(t, layer.Container().Objects)
	assert.Equal(t, 0, layer.Active())

	// A second completion tick is harmless.
	layer.finish(animation)
}
