package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bibleplan/backend/internal/model"
)

var ErrNotFound = errors.New("record not found")

type ScheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return tx, nil
}

const scheduleColumns = `id, user_id, style_type, style_config, start_date, status,
		        total_chapters, completed_chapters, chapters_read_count,
		        progress_percent, last_read_reference, completion_timestamps,
		        created_at, updated_at`

func (r *ScheduleRepository) Create(ctx context.Context, schedule *model.ReadingSchedule) error {
	styleConfig, err := json.Marshal(schedule.StyleConfig)
	if err != nil {
		return fmt.Errorf("marshal style config: %w", err)
	}
	completed, timestamps, err := marshalProgress(schedule)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(
		ctx,
		`INSERT INTO reading_schedules (`+scheduleColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		schedule.ID,
		schedule.UserID,
		schedule.StyleType,
		string(styleConfig),
		schedule.StartDate.UTC().Format(time.RFC3339Nano),
		schedule.Status,
		schedule.TotalChapters,
		completed,
		schedule.ChaptersReadCount,
		schedule.ProgressPercent,
		nullableString(schedule.LastReadReference),
		timestamps,
		schedule.CreatedAt.UTC().Format(time.RFC3339Nano),
		schedule.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

// GetActiveOrPaused returns the user's single active-or-paused schedule.
func (r *ScheduleRepository) GetActiveOrPaused(ctx context.Context, userID string) (*model.ReadingSchedule, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+scheduleColumns+`
		 FROM reading_schedules
		 WHERE user_id = ? AND status IN (?, ?)`,
		userID,
		model.StatusActive,
		model.StatusPaused,
	)
	return scanSchedule(row)
}

func (r *ScheduleRepository) GetActiveOrPausedTx(ctx context.Context, tx *sql.Tx, userID string) (*model.ReadingSchedule, error) {
	row := tx.QueryRowContext(
		ctx,
		`SELECT `+scheduleColumns+`
		 FROM reading_schedules
		 WHERE user_id = ? AND status IN (?, ?)`,
		userID,
		model.StatusActive,
		model.StatusPaused,
	)
	return scanSchedule(row)
}

// UpdateTx writes every mutable schedule field in one statement so that the
// completion set, counters and last-read pointer never diverge.
func (r *ScheduleRepository) UpdateTx(ctx context.Context, tx *sql.Tx, schedule *model.ReadingSchedule) error {
	completed, timestamps, err := marshalProgress(schedule)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		`UPDATE reading_schedules
		 SET status = ?,
		     completed_chapters = ?,
			 chapters_read_count = ?,
			 progress_percent = ?,
			 last_read_reference = ?,
			 completion_timestamps = ?,
			 updated_at = ?
		 WHERE id = ?`,
		schedule.Status,
		completed,
		schedule.ChaptersReadCount,
		schedule.ProgressPercent,
		nullableString(schedule.LastReadReference),
		timestamps,
		schedule.UpdatedAt.UTC().Format(time.RFC3339Nano),
		schedule.ID,
	)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, scheduleID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reading_schedules WHERE id = ?`, scheduleID)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalProgress(schedule *model.ReadingSchedule) (string, string, error) {
	completed, err := json.Marshal(schedule.CompletedKeys())
	if err != nil {
		return "", "", fmt.Errorf("marshal completed chapters: %w", err)
	}

	stamps := make([]string, 0, len(schedule.CompletionTimestamps))
	for _, ts := range schedule.CompletionTimestamps {
		stamps = append(stamps, ts.UTC().Format(time.RFC3339Nano))
	}
	timestamps, err := json.Marshal(stamps)
	if err != nil {
		return "", "", fmt.Errorf("marshal completion timestamps: %w", err)
	}
	return string(completed), string(timestamps), nil
}

func nullableString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func scanSchedule(s scanner) (*model.ReadingSchedule, error) {
	schedule := model.ReadingSchedule{}
	var styleConfig string
	var startDate string
	var completed string
	var lastRead sql.NullString
	var timestamps string
	var createdAt string
	var updatedAt string

	err := s.Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.StyleType,
		&styleConfig,
		&startDate,
		&schedule.Status,
		&schedule.TotalChapters,
		&completed,
		&schedule.ChaptersReadCount,
		&schedule.ProgressPercent,
		&lastRead,
		&timestamps,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan schedule: %w", err)
	}

	if err := json.Unmarshal([]byte(styleConfig), &schedule.StyleConfig); err != nil {
		return nil, fmt.Errorf("unmarshal style config: %w", err)
	}

	var keys []string
	if err := json.Unmarshal([]byte(completed), &keys); err != nil {
		return nil, fmt.Errorf("unmarshal completed chapters: %w", err)
	}
	schedule.CompletedChapters = make(map[string]struct{}, len(keys))
	for _, key := range keys {
		schedule.CompletedChapters[key] = struct{}{}
	}

	var stamps []string
	if err := json.Unmarshal([]byte(timestamps), &stamps); err != nil {
		return nil, fmt.Errorf("unmarshal completion timestamps: %w", err)
	}
	schedule.CompletionTimestamps = make([]time.Time, 0, len(stamps))
	for _, stamp := range stamps {
		parsed, parseErr := parseTime(stamp)
		if parseErr != nil {
			return nil, fmt.Errorf("parse completion timestamp: %w", parseErr)
		}
		schedule.CompletionTimestamps = append(schedule.CompletionTimestamps, parsed)
	}

	if lastRead.Valid {
		value := lastRead.String
		schedule.LastReadReference = &value
	}

	parsedStartDate, err := parseTime(startDate)
	if err != nil {
		return nil, fmt.Errorf("parse schedule start_date: %w", err)
	}
	schedule.StartDate = parsedStartDate

	parsedCreatedAt, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse schedule created_at: %w", err)
	}
	schedule.CreatedAt = parsedCreatedAt

	parsedUpdatedAt, err := parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse schedule updated_at: %w", err)
	}
	schedule.UpdatedAt = parsedUpdatedAt

	return &schedule, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}
