package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dpr/internal/pkg/clock"
)

func TestFixed(t *testing.T) {
	start := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start)

	assert.Equal(t, start, c.Now())

	c.Advance(15 * time.Minute)
	assert.Equal(t, start.Add(15*time.Minute), c.Now())
}

func TestReal(t *testing.T) {
	before := time.Now()
	now := clock.New().Now()

	assert.False(t, now.Before(before))
}
