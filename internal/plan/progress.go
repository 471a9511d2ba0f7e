package plan

import (
	"time"

	"bibleplan/backend/internal/bible"
	"bibleplan/backend/internal/model"
)

// MarkReadResult reports what a mark-read application did. Applied and
// Skipped together cover the raw batch; Changed is false for a no-op batch
// (nothing to persist).
type MarkReadResult struct {
	Applied int
	Skipped int
	Changed bool
}

// ApplyMarkRead applies a batch of raw chapter references to the schedule
// in memory. References that fail standardization are skipped; references
// already completed add nothing. The caller persists the mutated schedule
// atomically when Changed is true.
func ApplyMarkRead(schedule *model.ReadingSchedule, rawBatch []string, now time.Time) MarkReadResult {
	result := MarkReadResult{}
	if schedule == nil {
		return result
	}
	if schedule.CompletedChapters == nil {
		schedule.CompletedChapters = make(map[string]struct{})
	}

	var lastStandardized string
	added := make([]string, 0, len(rawBatch))
	for _, raw := range rawBatch {
		key, err := Standardize(raw)
		if err != nil {
			result.Skipped++
			continue
		}
		lastStandardized = key
		if _, done := schedule.CompletedChapters[key]; done {
			continue
		}
		added = append(added, key)
	}

	if len(added) == 0 {
		return result
	}

	for _, key := range added {
		schedule.CompletedChapters[key] = struct{}{}
	}
	result.Applied = len(added)
	result.Changed = true

	schedule.ChaptersReadCount += len(added)
	schedule.ProgressPercent = progressPercent(schedule.ChaptersReadCount, schedule.TotalChapters)
	schedule.LastReadReference = &lastStandardized

	appendStreakTimestamp(schedule, now)

	// Completion needs full coverage of the style's order; a percentage
	// that rounds to 100 is not enough.
	if len(schedule.CompletedChapters) >= completionTarget(schedule) {
		schedule.Status = model.StatusCompleted
	}

	schedule.UpdatedAt = now.UTC()
	return result
}

// appendStreakTimestamp records at most one completion timestamp per
// calendar day.
func appendStreakTimestamp(schedule *model.ReadingSchedule, now time.Time) {
	if n := len(schedule.CompletionTimestamps); n > 0 {
		last := schedule.CompletionTimestamps[n-1]
		if sameDay(last, now) {
			return
		}
	}
	schedule.CompletionTimestamps = append(schedule.CompletionTimestamps, now)
}

// completionTarget is the order length the completed set must cover:
// chronological plans complete against their own order, every other style
// against the sequential order.
func completionTarget(schedule *model.ReadingSchedule) int {
	if schedule.StyleType == model.StyleChronological {
		return len(bible.ChronologicalOrder())
	}
	return len(bible.SequentialOrder())
}

func progressPercent(readCount, total int) float64 {
	if total <= 0 {
		return 0
	}
	percent := float64(readCount) / float64(total) * 100
	if percent > 100 {
		return 100
	}
	return percent
}
