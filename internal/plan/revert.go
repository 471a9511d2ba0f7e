package plan

import (
	"time"

	"bibleplan/backend/internal/bible"
	"bibleplan/backend/internal/model"
)

type RevertResult struct {
	Changed bool
}

// ApplyRevert reverses the most recently applied mark-read batch. The
// counter is decremented by the raw batch length; set deletion and the
// previous-chapter reconstruction use canonicalized keys, so a raw entry
// that never standardized leaves the counter and the set deliberately out
// of step (the documented mark/revert asymmetry).
func ApplyRevert(schedule *model.ReadingSchedule, lastMarkedBatch []string, now time.Time) RevertResult {
	if schedule == nil || len(lastMarkedBatch) == 0 {
		return RevertResult{}
	}

	schedule.ChaptersReadCount -= len(lastMarkedBatch)
	if schedule.ChaptersReadCount < 0 {
		schedule.ChaptersReadCount = 0
	}
	schedule.ProgressPercent = progressPercent(schedule.ChaptersReadCount, schedule.TotalChapters)

	order, err := orderFor(schedule.StyleType, schedule.StyleConfig)
	if err != nil {
		order = bible.SequentialOrder()
	}

	schedule.LastReadReference = nil
	if first, err := Standardize(lastMarkedBatch[0]); err == nil {
		if idx := indexOf(order, first); idx >= 0 {
			prev := order[(idx-1+len(order))%len(order)]
			schedule.LastReadReference = &prev
		}
	}

	for _, raw := range lastMarkedBatch {
		key, err := Standardize(raw)
		if err != nil {
			continue
		}
		delete(schedule.CompletedChapters, key)
	}

	schedule.UpdatedAt = now.UTC()
	return RevertResult{Changed: true}
}
