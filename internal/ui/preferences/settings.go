package preferences

import (
	"time"

	"calcfetti/internal/core/model"
	"calcfetti/internal/core/watchdog"
)

// Settings defines editable user preferences.
type Settings struct {
	RandomDelay bool
	FixedDelay  time.Duration
	MinDelay    time.Duration
	MaxDelay    time.Duration

	RandomParticles bool
	ParticleCount   int
	MinParticles    int
	MaxParticles    int
	Spread          float64

	Countdown bool
}

// DefaultSettings returns default settings for Calcfetti.
func DefaultSettings() Settings {
	defaults := watchdog.DefaultConfig()
	return Settings{
		RandomDelay:     defaults.Mode == model.DelayRandom,
		FixedDelay:      defaults.FixedDelay,
		MinDelay:        defaults.DelayRange.Min,
		MaxDelay:        defaults.DelayRange.Max,
		RandomParticles: defaults.Burst.RandomCount,
		ParticleCount:   defaults.Burst.Count,
		MinParticles:    defaults.Burst.CountRange.Min,
		MaxParticles:    defaults.Burst.CountRange.Max,
		Spread:          defaults.Burst.Spread,
		Countdown:       defaults.CountdownEnabled,
	}
}

// WatchdogConfig converts settings to a watchdog configuration.
func (settings Settings) WatchdogConfig() model.WatchdogConfig {
	config := watchdog.DefaultConfig()
	config.Mode = model.DelayFixed
	if settings.RandomDelay {
		config.Mode = model.DelayRandom
	}
	config.FixedDelay = settings.FixedDelay
	config.DelayRange = model.DurationRange{Min: settings.MinDelay, Max: settings.MaxDelay}
	config.Burst.RandomCount = settings.RandomParticles
	config.Burst.Count = settings.ParticleCount
	config.Burst.CountRange = model.IntRange{Min: settings.MinParticles, Max: settings.MaxParticles}
	config.Burst.Spread = settings.Spread
	config.CountdownEnabled = settings.Countdown
	return config
}
