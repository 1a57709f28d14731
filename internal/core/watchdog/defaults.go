package watchdog

import (
	"time"

	"calcfetti/internal/core/model"
)

// DefaultConfig returns the randomized policy: a 10–60s wait and 50–200 particles.
func DefaultConfig() model.WatchdogConfig {
	return model.WatchdogConfig{
		Mode:       model.DelayRandom,
		FixedDelay: time.Minute,
		DelayRange: model.DurationRange{
			Min: 10 * time.Second,
			Max: 60 * time.Second,
		},
		Burst: model.BurstConfig{
			RandomCount: true,
			Count:       100,
			CountRange: model.IntRange{
				Min: 50,
				Max: 200,
			},
			Spread:  70,
			OriginX: 0.5,
			OriginY: 0.6,
		},
		CountdownInterval: time.Second,
	}
}

// FixedConfig returns the fixed policy: a 60s wait and 100 particles.
func FixedConfig() model.WatchdogConfig {
	config := DefaultConfig()
	config.Mode = model.DelayFixed
	config.Burst.RandomCount = false
	return config
}

func normalizeConfig(config model.WatchdogConfig) model.WatchdogConfig {
	defaults := DefaultConfig()
	if config.Mode != model.DelayFixed && config.Mode != model.DelayRandom {
		config.Mode = defaults.Mode
	}
	if config.FixedDelay <= 0 {
		config.FixedDelay = defaults.FixedDelay
	}
	config.FixedDelay = model.ClampDelay(config.FixedDelay)
	if config.DelayRange.Min <= 0 || config.DelayRange.Max < config.DelayRange.Min {
		config.DelayRange = defaults.DelayRange
	}
	config.DelayRange.Min = model.ClampDelay(config.DelayRange.Min)
	config.DelayRange.Max = model.ClampDelay(config.DelayRange.Max)
	if config.Burst.Count <= 0 {
		config.Burst.Count = defaults.Burst.Count
	}
	config.Burst.Count = model.ClampCount(config.Burst.Count)
	if config.Burst.CountRange.Min <= 0 || config.Burst.CountRange.Max < config.Burst.CountRange.Min {
		config.Burst.CountRange = defaults.Burst.CountRange
	}
	config.Burst.CountRange.Min = model.ClampCount(config.Burst.CountRange.Min)
	config.Burst.CountRange.Max = model.ClampCount(config.Burst.CountRange.Max)
	if config.Burst.Spread <= 0 {
		config.Burst.Spread = defaults.Burst.Spread
	}
	config.Burst.Spread = model.ClampSpread(config.Burst.Spread)
	if config.CountdownInterval <= 0 {
		config.CountdownInterval = defaults.CountdownInterval
	}
	return config
}
