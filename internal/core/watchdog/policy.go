package watchdog

import (
	"math/rand"
	"time"

	"calcfetti/internal/core/model"
)

// DelayPolicy picks the quiet period before the next burst.
type DelayPolicy interface {
	Next() time.Duration
}

// CountPolicy picks the number of particles for a burst.
type CountPolicy interface {
	Next() int
}

// FixedDelay always waits the same duration.
type FixedDelay time.Duration

// Next returns the fixed duration.
func (delay FixedDelay) Next() time.Duration {
	return time.Duration(delay)
}

// RandomDelay draws a duration uniformly from [Min, Max] at millisecond resolution.
type RandomDelay struct {
	Min time.Duration
	Max time.Duration
	Rng *rand.Rand
}

// Next returns a random duration within the range.
func (delay RandomDelay) Next() time.Duration {
	if delay.Max <= delay.Min {
		return delay.Min
	}
	span := int64((delay.Max - delay.Min) / time.Millisecond)
	return delay.Min + time.Duration(delay.Rng.Int63n(span+1))*time.Millisecond
}

// FixedCount always returns the same particle count.
type FixedCount int

// Next returns the fixed count.
func (count FixedCount) Next() int {
	return int(count)
}

// RandomCount draws a particle count uniformly from [Min, Max].
type RandomCount struct {
	Min int
	Max int
	Rng *rand.Rand
}

// Next returns a random count within the range.
func (count RandomCount) Next() int {
	if count.Max <= count.Min {
		return count.Min
	}
	return count.Min + count.Rng.Intn(count.Max-count.Min+1)
}

func newDelayPolicy(config model.WatchdogConfig, rng *rand.Rand) DelayPolicy {
	if config.Mode == model.DelayRandom {
		return RandomDelay{Min: config.DelayRange.Min, Max: config.DelayRange.Max, Rng: rng}
	}
	return FixedDelay(config.FixedDelay)
}

func newCountPolicy(config model.BurstConfig, rng *rand.Rand) CountPolicy {
	if config.RandomCount {
		return RandomCount{Min: config.CountRange.Min, Max: config.CountRange.Max, Rng: rng}
	}
	return FixedCount(config.Count)
}
