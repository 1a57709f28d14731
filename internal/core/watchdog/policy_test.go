package watchdog

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandomDelay_WithinBounds(t *testing.T) {
	policy := RandomDelay{Min: 10 * time.Second, Max: 60 * time.Second, Rng: rand.New(rand.NewSource(1))}
	for i := 0; i < 1000; i++ {
		delay := policy.Next()
		assert.GreaterOrEqual(t, delay, 10*time.Second)
		assert.LessOrEqual(t, delay, 60*time.Second)
	}
}

func TestRandomDelay_DegenerateRange(t *testing.T) {
	policy := RandomDelay{Min: 5 * time.Second, Max: 5 * time.Second}
	assert.Equal(t, 5*time.Second, policy.Next())
}

func TestRandomCount_CoversInclusiveRange(t *testing.T) {
	policy := RandomCount{Min: 50, Max: 200, Rng: rand.New(rand.NewSource(7))}
	seenMin, seenMax := false, false
	for i := 0; i < 20000; i++ {
		count := policy.Next()
		assert.GreaterOrEqual(t, count, 50)
		assert.LessOrEqual(t, count, 200)
		seenMin = seenMin || count == 50
		seenMax = seenMax || count == 200
	}
	assert.True(t, seenMin)
	assert.True(t, seenMax)
}

func TestFixedPolicies(t *testing.T) {
	assert.Equal(t, time.Minute, FixedDelay(time.Minute).Next())
	assert.Equal(t, 100, FixedCount(100).Next())
}

func TestNormalizeConfig_FillsDefaults(t *testing.T) {
	config := FixedConfig()
	config.FixedDelay = 0
	config.Burst.Spread = -1
	config.DelayRange.Max = time.Second

	normalized := normalizeConfig(config)
	assert.Equal(t, time.Minute, normalized.FixedDelay)
	assert.Equal(t, 70.0, normalized.Burst.Spread)
	assert.Equal(t, DefaultConfig().DelayRange, normalized.DelayRange)
}
