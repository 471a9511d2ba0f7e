package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int, hour int) time.Time {
	return time.Date(2026, 3, d, hour, 0, 0, 0, time.Local)
}

func TestReadToday(t *testing.T) {
	now := day(14, 20)

	assert.False(t, ReadToday(nil, now))
	assert.True(t, ReadToday([]time.Time{day(14, 7)}, now))
	assert.False(t, ReadToday([]time.Time{day(13, 23)}, now))
	assert.True(t, ReadToday([]time.Time{day(12, 9), day(13, 9), day(14, 9)}, now))
}

func TestCurrentStreak(t *testing.T) {
	now := day(14, 20)

	assert.Equal(t, 0, CurrentStreak(nil, now))
	assert.Equal(t, 1, CurrentStreak([]time.Time{day(14, 7)}, now))
	assert.Equal(t, 3, CurrentStreak([]time.Time{day(12, 9), day(13, 9), day(14, 9)}, now))

	// Yesterday's entry keeps the streak alive until today passes.
	assert.Equal(t, 2, CurrentStreak([]time.Time{day(12, 9), day(13, 9)}, now))

	// A gap before today resets the streak.
	assert.Equal(t, 0, CurrentStreak([]time.Time{day(10, 9), day(11, 9)}, now))

	// A gap inside the sequence stops the walk.
	assert.Equal(t, 2, CurrentStreak([]time.Time{day(9, 9), day(10, 9), day(13, 9), day(14, 9)}, now))
}
