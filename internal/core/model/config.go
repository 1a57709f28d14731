package model

import "time"

// DelayMode selects how the watchdog picks its quiet period.
type DelayMode string

const (
	DelayFixed  DelayMode = "fixed"
	DelayRandom DelayMode = "random"
)

// DurationRange is an inclusive range of durations.
type DurationRange struct {
	Min time.Duration
	Max time.Duration
}

// IntRange is an inclusive range of integers.
type IntRange struct {
	Min int
	Max int
}

// BurstConfig describes the confetti burst fired by the watchdog.
type BurstConfig struct {
	RandomCount bool
	Count       int
	CountRange  IntRange
	Spread      float64
	OriginX     float64
	OriginY     float64
}

// WatchdogConfig contains runtime settings for the inactivity watchdog.
type WatchdogConfig struct {
	Mode       DelayMode
	FixedDelay time.Duration
	DelayRange DurationRange

	Burst BurstConfig

	CountdownEnabled  bool
	CountdownInterval time.Duration
}

// Bounds shared by every settings source.
const (
	MinDelay     = time.Second
	MaxDelay     = 24 * time.Hour
	MinParticles = 1
	MaxParticles = 1000
	MinSpread    = 10.0
	MaxSpread    = 360.0
)

// ClampDelay limits a positive delay to [MinDelay, MaxDelay].
func ClampDelay(delay time.Duration) time.Duration {
	return min(max(delay, MinDelay), MaxDelay)
}

// ClampCount limits a particle count to [MinParticles, MaxParticles].
func ClampCount(count int) int {
	return min(max(count, MinParticles), MaxParticles)
}

// ClampSpread limits a spread angle to [MinSpread, MaxSpread] degrees.
func ClampSpread(spread float64) float64 {
	return min(max(spread, MinSpread), MaxSpread)
}
