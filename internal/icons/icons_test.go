package icons

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redSquare = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" width="10" height="10">
<rect x="0" y="0" width="10" height="10" fill="#ff0000"/>
</svg>`

func TestRender_Size(t *testing.T) {
	img, err := Render(strings.NewReader(redSquare), 16)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	r, g, b, a := img.At(8, 8).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Greater(t, r, uint32(0xf000))
	assert.Less(t, g, uint32(0x1000))
	assert.Less(t, b, uint32(0x1000))
}

func TestRender_InvalidInput(t *testing.T) {
	_, err := Render(strings.NewReader(redSquare), 0)
	assert.Error(t, err)

	_, err = Render(strings.NewReader("<svg><rect"), 16)
	assert.Error(t, err)
}

func TestGenerator_WritesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	outputs, err := NewGenerator(dir, zerolog.Nop()).Generate([]byte(redSquare))
	require.NoError(t, err)

	want := map[string]int{
		"favicon-16x16.png":   16,
		"favicon-32x32.png":   32,
		"favicon-192x192.png": 192,
		"favicon.ico":         32,
	}
	require.Len(t, outputs, len(want))
	for _, output := range outputs {
		name := filepath.Base(output.Path)
		size, ok := want[name]
		require.True(t, ok, name)
		assert.Equal(t, size, output.Size)

		file, err := os.Open(output.Path)
		require.NoError(t, err)
		config, err := png.DecodeConfig(file)
		_ = file.Close()
		require.NoError(t, err)
		assert.Equal(t, size, config.Width, name)
		assert.Equal(t, size, config.Height, name)
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "favicon-192x192.png", FileName(192))
}
