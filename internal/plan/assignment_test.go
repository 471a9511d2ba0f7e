package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bibleplan/backend/internal/bible"
	"bibleplan/backend/internal/model"
)

func newSchedule(styleType string, cfg model.StyleConfig) *model.ReadingSchedule {
	return &model.ReadingSchedule{
		ID:                "test-schedule",
		UserID:            "test-user",
		StyleType:         styleType,
		StyleConfig:       cfg,
		Status:            model.StatusActive,
		TotalChapters:     bible.TotalChapters(),
		CompletedChapters: make(map[string]struct{}),
	}
}

func strptr(s string) *string { return &s }

func TestNextAssignmentFreshSequentialPlan(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 2})
	assert.Equal(t, []string{"gn-1", "gn-2"}, NextAssignment(schedule))
}

func TestNextAssignmentAdvancesPastLastRead(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 2})
	schedule.CompletedChapters["gn-1"] = struct{}{}
	schedule.CompletedChapters["gn-2"] = struct{}{}
	schedule.LastReadReference = strptr("gn-2")

	assert.Equal(t, []string{"gn-3", "gn-4"}, NextAssignment(schedule))
}

func TestNextAssignmentCustomPlan(t *testing.T) {
	schedule := newSchedule(model.StyleCustom, model.StyleConfig{Chapters: 1, StartBookAbbrev: "mt"})
	assert.Equal(t, []string{"mt-1"}, NextAssignment(schedule))

	schedule.CompletedChapters["mt-1"] = struct{}{}
	schedule.LastReadReference = strptr("mt-1")
	assert.Equal(t, []string{"mt-2"}, NextAssignment(schedule))
}

func TestNextAssignmentWrapsAround(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 1})
	schedule.LastReadReference = strptr("re-22")

	assert.Equal(t, []string{"gn-1"}, NextAssignment(schedule))
}

func TestNextAssignmentSkipsCompleted(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 3})
	schedule.CompletedChapters["gn-2"] = struct{}{}

	batch := NextAssignment(schedule)
	assert.Equal(t, []string{"gn-1", "gn-3", "gn-4"}, batch)
	for _, key := range batch {
		_, done := schedule.CompletedChapters[key]
		assert.False(t, done, "assigned already-completed chapter %s", key)
	}
}

func TestNextAssignmentNilOrInactive(t *testing.T) {
	assert.Empty(t, NextAssignment(nil))

	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 1})
	schedule.Status = model.StatusPaused
	assert.Empty(t, NextAssignment(schedule))

	schedule.Status = model.StatusCompleted
	assert.Empty(t, NextAssignment(schedule))
}

func TestNextAssignmentFullyCompletedOrder(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 2})
	for _, key := range bible.SequentialOrder() {
		schedule.CompletedChapters[key] = struct{}{}
	}

	// The inspection bound stops the walk; nothing is collected.
	assert.Empty(t, NextAssignment(schedule))
}

func TestNextAssignmentPartialWhenFewerUnreadThanNeeded(t *testing.T) {
	schedule := newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 5})
	for _, key := range bible.SequentialOrder() {
		if key == "ex-3" {
			continue
		}
		schedule.CompletedChapters[key] = struct{}{}
	}

	assert.Equal(t, []string{"ex-3"}, NextAssignment(schedule))
}

func TestNextAssignmentTotalDurationNeed(t *testing.T) {
	schedule := newSchedule(model.StyleTotalDuration, model.StyleConfig{DurationMonths: 12})

	// ceil(1189 / (12 * 30.4)) = ceil(3.259) = 4.
	batch := NextAssignment(schedule)
	assert.Equal(t, []string{"gn-1", "gn-2", "gn-3", "gn-4"}, batch)
}

func TestNextAssignmentChronologicalNeed(t *testing.T) {
	schedule := newSchedule(model.StyleChronological, model.StyleConfig{DurationYears: 1})

	// ceil(1189 / 364) = 4 chapters, in chronological order.
	batch := NextAssignment(schedule)
	require.Len(t, batch, 4)
	assert.Equal(t, "gn-1", batch[0])
}

func TestNextAssignmentConfigurationFallback(t *testing.T) {
	// Unknown custom start book falls back to the sequential order with a
	// single chapter rather than failing.
	schedule := newSchedule(model.StyleCustom, model.StyleConfig{Chapters: 3, StartBookAbbrev: "zz"})
	assert.Equal(t, []string{"gn-1"}, NextAssignment(schedule))

	// Zero chapters per day is malformed configuration.
	schedule = newSchedule(model.StyleChaptersPerDay, model.StyleConfig{Chapters: 0})
	assert.Equal(t, []string{"gn-1"}, NextAssignment(schedule))

	// Zero duration on a total-duration plan likewise.
	schedule = newSchedule(model.StyleTotalDuration, model.StyleConfig{})
	assert.Equal(t, []string{"gn-1"}, NextAssignment(schedule))
}

func TestNextAssignmentChronologicalFollowsItsOrder(t *testing.T) {
	schedule := newSchedule(model.StyleChronological, model.StyleConfig{DurationYears: 1})
	schedule.LastReadReference = strptr("gn-50")

	// The chronological table continues with Job after Genesis.
	batch := NextAssignment(schedule)
	require.NotEmpty(t, batch)
	assert.Equal(t, "job-1", batch[0])
}
