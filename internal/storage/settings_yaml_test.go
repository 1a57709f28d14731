package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"calcfetti/internal/core/model"
	"calcfetti/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope", settingsFileName))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestStore_SaveLoadKeepsValues(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "Calcfetti", settingsFileName))

	settings := preferences.DefaultSettings()
	settings.RandomDelay = false
	settings.FixedDelay = 30 * time.Second
	settings.RandomParticles = false
	settings.ParticleCount = 150
	settings.Spread = 120
	settings.Countdown = true

	require.NoError(t, store.Save(settings))
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestStore_OutOfRangeValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	content := `
fixed_delay_seconds: 0
min_delay_seconds: 50
max_delay_seconds: 20
particle_count: 100000
spread_degrees: 720
countdown: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := NewStore(path).Load()
	require.NoError(t, err)

	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults.FixedDelay, settings.FixedDelay)
	assert.Equal(t, defaults.MinDelay, settings.MinDelay)
	assert.Equal(t, defaults.MaxDelay, settings.MaxDelay)
	assert.Equal(t, defaults.ParticleCount, settings.ParticleCount)
	assert.Equal(t, defaults.Spread, settings.Spread)
	assert.Equal(t, defaults.RandomDelay, settings.RandomDelay, "absent flag keeps default")
	assert.True(t, settings.Countdown)
}

func TestStore_LimitValuesRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), settingsFileName))

	settings := preferences.DefaultSettings()
	settings.FixedDelay = model.MaxDelay
	settings.ParticleCount = model.MaxParticles
	settings.Spread = model.MaxSpread
	require.NoError(t, store.Save(settings))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestStore_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("countdown: [unterminated"), 0o644))

	settings, err := NewStore(path).Load()
	assert.ErrorContains(t, err, "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

type fixedDirService struct {
	dir string
}

func (service fixedDirService) GetConfigDir() (string, error) {
	return service.dir, nil
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath(fixedDirService{dir: "/cfg"}, "Calcfetti")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/cfg", "Calcfetti", settingsFileName), path)
}
