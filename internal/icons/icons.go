package icons

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// Sizes are the square favicon sizes generated from the source image.
var Sizes = []int{16, 32, 192}

// AppIconFile is the 32x32 PNG reused as the application icon. The .ico
// name is kept for browsers that request it by default.
const AppIconFile = "favicon.ico"

// AppIconSize is the edge length of AppIconFile.
const AppIconSize = 32

// supersample renders small icons larger and downsamples them for smoother edges.
const supersample = 4

// Output is one generated file.
type Output struct {
	Path string
	Size int
}

// Generator rasterizes an SVG into PNG files.
type Generator struct {
	outDir string
	logger zerolog.Logger
}

// NewGenerator writes its files into outDir.
func NewGenerator(outDir string, logger zerolog.Logger) *Generator {
	return &Generator{
		outDir: outDir,
		logger: logger.With().Str("component", "icons").Logger(),
	}
}

// FileName returns the favicon name for a square size.
func FileName(size int) string {
	return fmt.Sprintf("favicon-%dx%d.png", size, size)
}

// Generate renders svgData at every size in Sizes plus AppIconFile.
func (generator *Generator) Generate(svgData []byte) ([]Output, error) {
	if err := os.MkdirAll(generator.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	outputs := make([]Output, 0, len(Sizes)+1)
	for _, size := range Sizes {
		output, err := generator.write(svgData, FileName(size), size)
		if err != nil {
			return outputs, err
		}
		outputs = append(outputs, output)
	}

	output, err := generator.write(svgData, AppIconFile, AppIconSize)
	if err != nil {
		return outputs, err
	}
	return append(outputs, output), nil
}

func (generator *Generator) write(svgData []byte, name string, size int) (Output, error) {
	img, err := Render(bytes.NewReader(svgData), size)
	if err != nil {
		return Output{}, fmt.Errorf("render %s: %w", name, err)
	}

	path := filepath.Join(generator.outDir, name)
	file, err := os.Create(path)
	if err != nil {
		return Output{}, fmt.Errorf("create %s: %w", name, err)
	}
	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		return Output{}, fmt.Errorf("encode %s: %w", name, err)
	}
	if err := file.Close(); err != nil {
		return Output{}, fmt.Errorf("close %s: %w", name, err)
	}

	generator.logger.Info().Str("file", path).Int("size", size).Msg("generated icon")
	return Output{Path: path, Size: size}, nil
}

// Render rasterizes an SVG into a size x size image.
func Render(svg io.Reader, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	icon, err := oksvg.ReadIconStream(svg)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	canvasSize := size
	if size < 64 {
		canvasSize = size * supersample
	}

	icon.SetTarget(0, 0, float64(canvasSize), float64(canvasSize))
	large := image.NewRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	scanner := rasterx.NewScannerGV(canvasSize, canvasSize, large, large.Bounds())
	icon.Draw(rasterx.NewDasher(canvasSize, canvasSize, scanner), 1)

	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(out, out.Bounds(), large, large.Bounds(), draw.Src, nil)
	return out, nil
}
