package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon_LoadsAndCaches(t *testing.T) {
	first, err := Icon(IconFile)
	require.NoError(t, err)
	assert.Contains(t, string(first.Content()), "<svg")

	second := MustIcon(IconFile)
	assert.Same(t, first, second)
}

func TestIcon_Missing(t *testing.T) {
	_, err := Icon("missing.svg")
	assert.ErrorContains(t, err, "load resource icon/missing.svg")
	assert.Panics(t, func() { MustIcon("missing.svg") })
}
