package main

import (
	"flag"
	"fmt"
	"os"

	"calcfetti/internal/icons"
	"calcfetti/internal/logger"
	"calcfetti/resources"

	"github.com/rs/zerolog"
)

func main() {
	source := flag.String("src", "", "SVG file to rasterize (defaults to the embedded application icon)")
	outDir := flag.String("out", ".", "directory for the generated PNG files")
	flag.Parse()

	log := logger.NewConsole(logger.LevelFromEnv(zerolog.InfoLevel))

	svgData, err := readSource(*source)
	if err != nil {
		log.Error().Err(err).Msg("error generating favicons")
		os.Exit(1)
	}

	if _, err := icons.NewGenerator(*outDir, log).Generate(svgData); err != nil {
		log.Error().Err(err).Msg("error generating favicons")
		os.Exit(1)
	}
}

func readSource(path string) ([]byte, error) {
	if path == "" {
		return resources.IconBytes(resources.IconFile)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read svg: %w", err)
	}
	return data, nil
}
