package plan

import (
	"fmt"
	"math"

	"bibleplan/backend/internal/bible"
	"bibleplan/backend/internal/model"
)

const daysPerMonth = 30.4

// orderFor selects the chapter order for a schedule style. Unknown custom
// start books are configuration errors surfaced to the caller.
func orderFor(styleType string, cfg model.StyleConfig) ([]string, error) {
	switch styleType {
	case model.StyleChronological:
		return bible.ChronologicalOrder(), nil
	case model.StyleCustom:
		return bible.CustomOrder(cfg.StartBookAbbrev)
	default:
		return bible.SequentialOrder(), nil
	}
}

// neededFor computes how many chapters one assignment should contain.
func neededFor(schedule *model.ReadingSchedule, orderLen int) (int, error) {
	cfg := schedule.StyleConfig
	switch schedule.StyleType {
	case model.StyleChaptersPerDay, model.StyleCustom:
		if cfg.Chapters < 1 {
			return 0, fmt.Errorf("plan: invalid chapters per day %d", cfg.Chapters)
		}
		return cfg.Chapters, nil
	case model.StyleTotalDuration:
		if cfg.DurationMonths < 1 {
			return 0, fmt.Errorf("plan: invalid duration months %d", cfg.DurationMonths)
		}
		return int(math.Ceil(float64(schedule.TotalChapters) / (float64(cfg.DurationMonths) * daysPerMonth))), nil
	case model.StyleChronological:
		if cfg.DurationYears < 1 {
			return 0, fmt.Errorf("plan: invalid duration years %d", cfg.DurationYears)
		}
		return int(math.Ceil(float64(orderLen) / (float64(cfg.DurationYears) * 364))), nil
	default:
		return 0, fmt.Errorf("plan: unknown style %q", schedule.StyleType)
	}
}

// NextAssignment computes the next batch of unread chapters for a schedule.
// It returns an empty batch for a nil or non-active schedule. Configuration
// errors never fail the computation: the order falls back to sequential and
// the batch size to one chapter.
func NextAssignment(schedule *model.ReadingSchedule) []string {
	if schedule == nil || schedule.Status != model.StatusActive {
		return nil
	}

	order, err := orderFor(schedule.StyleType, schedule.StyleConfig)
	needed := 1
	if err == nil {
		needed, err = neededFor(schedule, len(order))
	}
	if err != nil {
		order = bible.SequentialOrder()
		needed = 1
	}
	if len(order) == 0 {
		return nil
	}

	start := 0
	if schedule.LastReadReference != nil {
		if idx := indexOf(order, *schedule.LastReadReference); idx >= 0 {
			start = (idx + 1) % len(order)
		}
	}

	// The inspection cap guards against a fully-completed order or
	// inconsistent completion data looping forever.
	batch := make([]string, 0, needed)
	collected := make(map[string]struct{}, needed)
	for inspected := 0; inspected < 2*len(order) && len(batch) < needed; inspected++ {
		key := order[(start+inspected)%len(order)]
		if _, done := schedule.CompletedChapters[key]; done {
			continue
		}
		if _, dup := collected[key]; dup {
			continue
		}
		collected[key] = struct{}{}
		batch = append(batch, key)
	}
	return batch
}

func indexOf(order []string, key string) int {
	for i, candidate := range order {
		if candidate == key {
			return i
		}
	}
	return -1
}
