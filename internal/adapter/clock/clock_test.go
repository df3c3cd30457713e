package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetAdvance(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &Offset{base: func() time.Time { return base }}

	require.Equal(t, base, c.Now())
	assert.Equal(t, base.Add(24*time.Hour), c.Advance(24*time.Hour))

	// time never goes backwards
	assert.Equal(t, base.Add(24*time.Hour), c.Advance(-time.Hour))
	assert.Equal(t, base.Add(24*time.Hour), c.Now())
}

func TestManual(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewManual(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start.Add(time.Minute), c.Advance(time.Minute))

	later := start.Add(48 * time.Hour)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestSystemIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, System{}.Now().Location())
}
