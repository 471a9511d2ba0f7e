package model

import "time"

const (
	StyleChaptersPerDay = "chaptersPerDay"
	StyleTotalDuration  = "totalDuration"
	StyleChronological  = "chronological"
	StyleCustom         = "custom"

	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
)

const (
	DefaultChaptersPerDay = 1
	DefaultDurationMonths = 12
	DefaultDurationYears  = 1
)

// StyleConfig is a variant record; only the fields matching the schedule's
// StyleType are meaningful.
type StyleConfig struct {
	Chapters        int    `json:"chapters,omitempty"`
	StartBookAbbrev string `json:"startBookAbbrev,omitempty"`
	DurationMonths  int    `json:"durationMonths,omitempty"`
	DurationYears   int    `json:"durationYears,omitempty"`
}

type ReadingSchedule struct {
	ID                string              `json:"id"`
	UserID            string              `json:"userId"`
	StyleType         string              `json:"styleType"`
	StyleConfig       StyleConfig         `json:"styleConfig"`
	StartDate         time.Time           `json:"startDate"`
	Status            string              `json:"status"`
	TotalChapters     int                 `json:"totalChapters"`
	CompletedChapters map[string]struct{} `json:"-"`
	ChaptersReadCount int                 `json:"chaptersReadCount"`
	ProgressPercent   float64             `json:"progressPercent"`
	LastReadReference *string             `json:"lastReadReference,omitempty"`
	// CompletionTimestamps is ordered by time and holds at most one entry
	// per calendar day.
	CompletionTimestamps []time.Time `json:"completionTimestamps"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

func IsValidStyle(styleType string) bool {
	return styleType == StyleChaptersPerDay ||
		styleType == StyleTotalDuration ||
		styleType == StyleChronological ||
		styleType == StyleCustom
}

// CompletedKeys returns the completion set as a sorted-free slice for
// serialization; insertion order is irrelevant.
func (s *ReadingSchedule) CompletedKeys() []string {
	keys := make([]string, 0, len(s.CompletedChapters))
	for key := range s.CompletedChapters {
		keys = append(keys, key)
	}
	return keys
}
