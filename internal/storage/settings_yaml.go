package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"calcfetti/internal/core/model"
	"calcfetti/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	RandomDelay     *bool   `yaml:"random_delay"`
	FixedDelaySec   int     `yaml:"fixed_delay_seconds"`
	MinDelaySec     int     `yaml:"min_delay_seconds"`
	MaxDelaySec     int     `yaml:"max_delay_seconds"`
	RandomParticles *bool   `yaml:"random_particles"`
	ParticleCount   int     `yaml:"particle_count"`
	MinParticles    int     `yaml:"min_particles"`
	MaxParticles    int     `yaml:"max_particles"`
	Spread          float64 `yaml:"spread_degrees"`
	Countdown       bool    `yaml:"countdown"`
}

// ConfigDirProvider resolves the per-user configuration directory.
type ConfigDirProvider interface {
	GetConfigDir() (string, error)
}

// Store reads and writes the settings file.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the settings file location inside the user config dir.
func DefaultPath(service ConfigDirProvider, appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return store.path
}

// Load reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func (store *Store) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes user preferences to YAML.
func (store *Store) Save(settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	randomDelay := settings.RandomDelay
	randomParticles := settings.RandomParticles
	fileData := yamlSettings{
		RandomDelay:     &randomDelay,
		FixedDelaySec:   int(settings.FixedDelay / time.Second),
		MinDelaySec:     int(settings.MinDelay / time.Second),
		MaxDelaySec:     int(settings.MaxDelay / time.Second),
		RandomParticles: &randomParticles,
		ParticleCount:   settings.ParticleCount,
		MinParticles:    settings.MinParticles,
		MaxParticles:    settings.MaxParticles,
		Spread:          settings.Spread,
		Countdown:       settings.Countdown,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.RandomDelay != nil {
		settings.RandomDelay = *fileData.RandomDelay
	}
	if validDelay(fileData.FixedDelaySec) {
		settings.FixedDelay = time.Duration(fileData.FixedDelaySec) * time.Second
	}
	if validDelay(fileData.MinDelaySec) && validDelay(fileData.MaxDelaySec) && fileData.MinDelaySec <= fileData.MaxDelaySec {
		settings.MinDelay = time.Duration(fileData.MinDelaySec) * time.Second
		settings.MaxDelay = time.Duration(fileData.MaxDelaySec) * time.Second
	}

	if fileData.RandomParticles != nil {
		settings.RandomParticles = *fileData.RandomParticles
	}
	if validCount(fileData.ParticleCount) {
		settings.ParticleCount = fileData.ParticleCount
	}
	if validCount(fileData.MinParticles) && validCount(fileData.MaxParticles) && fileData.MinParticles <= fileData.MaxParticles {
		settings.MinParticles = fileData.MinParticles
		settings.MaxParticles = fileData.MaxParticles
	}

	if fileData.Spread >= model.MinSpread && fileData.Spread <= model.MaxSpread {
		settings.Spread = fileData.Spread
	}
	settings.Countdown = fileData.Countdown
}

func validDelay(seconds int) bool {
	return seconds >= int(model.MinDelay/time.Second) && seconds <= int(model.MaxDelay/time.Second)
}

func validCount(count int) bool {
	return count >= model.MinParticles && count <= model.MaxParticles
}
