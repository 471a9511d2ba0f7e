package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bibleplan/backend/internal/bible"
	"bibleplan/backend/internal/model"
)

func TestApplyMarkRead(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 2})
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	result := ApplyMarkRead(schedule, []string{"gn 1", "gn 2"}, now)
	require.True(t, result.Changed)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 0, result.Skipped)

	assert.Equal(t, 2, schedule.ChaptersReadCount)
	require.NotNil(t, schedule.LastReadReference)
	assert.Equal(t, "gn-2", *schedule.LastReadReference)
	assert.Contains(t, schedule.CompletedChapters, "gn-1")
	assert.Contains(t, schedule.CompletedChapters, "gn-2")
	assert.InDelta(t, 2.0/1189.0*100, schedule.ProgressPercent, 0.001)
	assert.Equal(t, model.StatusActive, schedule.Status)
	require.Len(t, schedule.CompletionTimestamps, 1)

	assert.Equal(t, []string{"gn-3", "gn-4"}, NextAssignment(schedule))
}

func TestApplyMarkReadIdempotent(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 2})
	now := time.Now()

	first := ApplyMarkRead(schedule, []string{"gn 1"}, now)
	require.True(t, first.Changed)

	before := schedule.ChaptersReadCount
	percentBefore := schedule.ProgressPercent
	second := ApplyMarkRead(schedule, []string{"gn 1"}, now)

	assert.False(t, second.Changed)
	assert.Equal(t, 0, second.Applied)
	assert.Equal(t, before, schedule.ChaptersReadCount)
	assert.Equal(t, percentBefore, schedule.ProgressPercent)
	assert.Len(t, schedule.CompletedChapters, 1)
}

func TestApplyMarkReadSkipsInvalidReferences(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 2})

	result := ApplyMarkRead(schedule, []string{"gn 1", "Gondor 3", "gn 99", "gn 2"}, time.Now())
	require.True(t, result.Changed)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 2, result.Skipped)
	require.NotNil(t, schedule.LastReadReference)
	assert.Equal(t, "gn-2", *schedule.LastReadReference)
}

func TestApplyMarkReadLastReadFromLastStandardized(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 2})

	// The trailing reference fails standardization; the pointer lands on
	// the last item that parsed.
	result := ApplyMarkRead(schedule, []string{"gn 1", "gn 2", "nonsense 9"}, time.Now())
	require.True(t, result.Changed)
	require.NotNil(t, schedule.LastReadReference)
	assert.Equal(t, "gn-2", *schedule.LastReadReference)
}

func TestApplyMarkReadNoOpBatch(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 2})

	result := ApplyMarkRead(schedule, []string{"Gondor 3", "Mordor 1"}, time.Now())
	assert.False(t, result.Changed)
	assert.Equal(t, 2, result.Skipped)
	assert.Nil(t, schedule.LastReadReference)
	assert.Empty(t, schedule.CompletionTimestamps)
}

func TestApplyMarkReadStreakOncePerDay(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 2})
	morning := time.Date(2026, 3, 14, 8, 0, 0, 0, time.Local)
	evening := time.Date(2026, 3, 14, 21, 0, 0, 0, time.Local)
	nextDay := time.Date(2026, 3, 15, 8, 0, 0, 0, time.Local)

	ApplyMarkRead(schedule, []string{"gn 1"}, morning)
	ApplyMarkRead(schedule, []string{"gn 2"}, evening)
	require.Len(t, schedule.CompletionTimestamps, 1)

	ApplyMarkRead(schedule, []string{"gn 3"}, nextDay)
	require.Len(t, schedule.CompletionTimestamps, 2)
}

func TestApplyMarkReadCompletion(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 2})
	for _, key := range bible.SequentialOrder() {
		if key == "re-22" {
			continue
		}
		schedule.CompletedChapters[key] = struct{}{}
	}
	schedule.ChaptersReadCount = len(schedule.CompletedChapters)

	result := ApplyMarkRead(schedule, []string{"re 22"}, time.Now())
	require.True(t, result.Changed)
	assert.Equal(t, model.StatusCompleted, schedule.Status)
	assert.Equal(t, float64(100), schedule.ProgressPercent)
}

func TestCompletionRequiresFullCoverage(t *testing.T) {
	// A snapshotted total smaller than the real order length can push the
	// percentage to 100 long before the set covers every chapter; the plan
	// must stay active.
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 2})
	schedule.TotalChapters = 10
	for i := 1; i <= 9; i++ {
		schedule.CompletedChapters[bible.Key("gn", i)] = struct{}{}
	}
	schedule.ChaptersReadCount = 9

	result := ApplyMarkRead(schedule, []string{"gn 10"}, time.Now())
	require.True(t, result.Changed)
	assert.Equal(t, float64(100), schedule.ProgressPercent)
	assert.Equal(t, model.StatusActive, schedule.Status)
}
