package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"bibleplan/backend/internal/bible"
	apperrors "bibleplan/backend/internal/errors"
	"bibleplan/backend/internal/model"
	"bibleplan/backend/internal/plan"
	"bibleplan/backend/internal/repository"
)

type ScheduleService struct {
	repo *repository.ScheduleRepository

	// lastMarked holds the most recently applied raw batch per user. It is
	// session-only state: one level of undo, superseded by the next
	// mark-read, dropped on any lifecycle change.
	mu         sync.Mutex
	lastMarked map[string][]string
}

// PlanView is the snapshot returned to the UI: current schedule plus the
// derived pending assignment and streak facts.
type PlanView struct {
	Schedule          *model.ReadingSchedule `json:"schedule"`
	PendingAssignment []string               `json:"pendingAssignment"`
	ReadToday         bool                   `json:"readToday"`
	CurrentStreak     int                    `json:"currentStreak"`
	CanRevert         bool                   `json:"canRevert"`
}

type MarkReadOutput struct {
	View    PlanView `json:"plan"`
	Applied int      `json:"appliedCount"`
	Skipped int      `json:"skippedCount"`
}

func NewScheduleService(repo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{
		repo:       repo,
		lastMarked: make(map[string][]string),
	}
}

func (s *ScheduleService) Get(ctx context.Context, userID string) (*PlanView, *apperrors.APIError) {
	schedule, err := s.repo.GetActiveOrPaused(ctx, userID)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("plan_not_found", "no reading plan")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get reading plan")
	}

	view := s.toView(schedule, userID, time.Now())
	return &view, nil
}

func (s *ScheduleService) Create(ctx context.Context, userID, styleType string, cfg model.StyleConfig) (*PlanView, *apperrors.APIError) {
	if !model.IsValidStyle(styleType) {
		return nil, apperrors.BadRequest("invalid_style", "unknown plan style")
	}
	if apiErr := validateStyleConfig(styleType, &cfg); apiErr != nil {
		return nil, apiErr
	}

	_, err := s.repo.GetActiveOrPaused(ctx, userID)
	if err == nil {
		return nil, apperrors.Conflict("plan_exists", "a reading plan already exists", nil)
	}
	if err != repository.ErrNotFound {
		return nil, apperrors.Internal("failed to query reading plan")
	}

	now := time.Now().UTC()
	schedule := &model.ReadingSchedule{
		ID:                uuid.NewString(),
		UserID:            userID,
		StyleType:         styleType,
		StyleConfig:       cfg,
		StartDate:         now,
		Status:            model.StatusActive,
		TotalChapters:     bible.TotalChapters(),
		CompletedChapters: make(map[string]struct{}),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, apperrors.Internal("failed to create reading plan")
	}

	s.clearLastMarked(userID)
	view := s.toView(schedule, userID, time.Now())
	return &view, nil
}

func (s *ScheduleService) MarkRead(ctx context.Context, userID string, rawBatch []string) (*MarkReadOutput, *apperrors.APIError) {
	if userID == "" {
		return nil, apperrors.PreconditionFailed("missing_user", "user context is required")
	}
	if len(rawBatch) == 0 {
		return nil, apperrors.BadRequest("empty_batch", "references are required")
	}

	now := time.Now()
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to start transaction")
	}
	defer tx.Rollback()

	schedule, err := s.repo.GetActiveOrPausedTx(ctx, tx, userID)
	if err == repository.ErrNotFound {
		return nil, apperrors.PreconditionFailed("plan_not_found", "no reading plan")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get reading plan")
	}
	if schedule.Status != model.StatusActive {
		return nil, apperrors.Conflict("plan_not_active", "reading plan is paused", nil)
	}

	result := plan.ApplyMarkRead(schedule, rawBatch, now)
	if !result.Changed {
		// Nothing new to persist; a normal outcome, not a failure.
		view := s.toView(schedule, userID, now)
		return &MarkReadOutput{View: view, Applied: 0, Skipped: result.Skipped}, nil
	}

	if err := s.repo.UpdateTx(ctx, tx, schedule); err != nil {
		return nil, apperrors.Internal("failed to update reading plan")
	}
	if err := tx.Commit(); err != nil {
		return nil, apperrors.Internal("failed to commit transaction")
	}

	s.setLastMarked(userID, rawBatch)
	view := s.toView(schedule, userID, now)
	return &MarkReadOutput{View: view, Applied: result.Applied, Skipped: result.Skipped}, nil
}

func (s *ScheduleService) Revert(ctx context.Context, userID string) (*PlanView, *apperrors.APIError) {
	lastBatch := s.takeLastMarked(userID)
	if len(lastBatch) == 0 {
		return nil, apperrors.Conflict("nothing_to_revert", "no batch to revert", nil)
	}

	now := time.Now()
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.setLastMarked(userID, lastBatch)
		return nil, apperrors.Internal("failed to start transaction")
	}
	defer tx.Rollback()

	schedule, err := s.repo.GetActiveOrPausedTx(ctx, tx, userID)
	if err == repository.ErrNotFound {
		return nil, apperrors.PreconditionFailed("plan_not_found", "no reading plan")
	}
	if err != nil {
		s.setLastMarked(userID, lastBatch)
		return nil, apperrors.Internal("failed to get reading plan")
	}

	plan.ApplyRevert(schedule, lastBatch, now)

	if err := s.repo.UpdateTx(ctx, tx, schedule); err != nil {
		s.setLastMarked(userID, lastBatch)
		return nil, apperrors.Internal("failed to update reading plan")
	}
	if err := tx.Commit(); err != nil {
		s.setLastMarked(userID, lastBatch)
		return nil, apperrors.Internal("failed to commit transaction")
	}

	view := s.toView(schedule, userID, now)
	return &view, nil
}

func (s *ScheduleService) Pause(ctx context.Context, userID string) (*PlanView, *apperrors.APIError) {
	return s.setStatus(ctx, userID, model.StatusActive, model.StatusPaused)
}

func (s *ScheduleService) Resume(ctx context.Context, userID string) (*PlanView, *apperrors.APIError) {
	return s.setStatus(ctx, userID, model.StatusPaused, model.StatusActive)
}

func (s *ScheduleService) Delete(ctx context.Context, userID string) *apperrors.APIError {
	schedule, err := s.repo.GetActiveOrPaused(ctx, userID)
	if err == repository.ErrNotFound {
		return apperrors.NotFound("plan_not_found", "no reading plan")
	}
	if err != nil {
		return apperrors.Internal("failed to get reading plan")
	}

	if err := s.repo.Delete(ctx, schedule.ID); err != nil {
		return apperrors.Internal("failed to delete reading plan")
	}

	s.clearLastMarked(userID)
	return nil
}

func (s *ScheduleService) setStatus(ctx context.Context, userID, from, to string) (*PlanView, *apperrors.APIError) {
	now := time.Now()
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to start transaction")
	}
	defer tx.Rollback()

	schedule, err := s.repo.GetActiveOrPausedTx(ctx, tx, userID)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("plan_not_found", "no reading plan")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get reading plan")
	}
	if schedule.Status != from {
		return nil, apperrors.Conflict("invalid_status", "reading plan is "+schedule.Status, nil)
	}

	schedule.Status = to
	schedule.UpdatedAt = now.UTC()

	if err := s.repo.UpdateTx(ctx, tx, schedule); err != nil {
		return nil, apperrors.Internal("failed to update reading plan")
	}
	if err := tx.Commit(); err != nil {
		return nil, apperrors.Internal("failed to commit transaction")
	}

	s.clearLastMarked(userID)
	view := s.toView(schedule, userID, now)
	return &view, nil
}

func (s *ScheduleService) toView(schedule *model.ReadingSchedule, userID string, now time.Time) PlanView {
	return PlanView{
		Schedule:          schedule,
		PendingAssignment: plan.NextAssignment(schedule),
		ReadToday:         plan.ReadToday(schedule.CompletionTimestamps, now),
		CurrentStreak:     plan.CurrentStreak(schedule.CompletionTimestamps, now),
		CanRevert:         s.hasLastMarked(userID),
	}
}

func validateStyleConfig(styleType string, cfg *model.StyleConfig) *apperrors.APIError {
	switch styleType {
	case model.StyleChaptersPerDay:
		if cfg.Chapters <= 0 {
			cfg.Chapters = model.DefaultChaptersPerDay
		}
	case model.StyleCustom:
		if cfg.Chapters <= 0 {
			cfg.Chapters = model.DefaultChaptersPerDay
		}
		if _, ok := bible.Lookup(cfg.StartBookAbbrev); !ok {
			return apperrors.BadRequest("unknown_book", "unknown start book")
		}
	case model.StyleTotalDuration:
		if cfg.DurationMonths <= 0 {
			cfg.DurationMonths = model.DefaultDurationMonths
		}
	case model.StyleChronological:
		if cfg.DurationYears <= 0 {
			cfg.DurationYears = model.DefaultDurationYears
		}
	}
	return nil
}

func (s *ScheduleService) setLastMarked(userID string, batch []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastMarked[userID] = append([]string(nil), batch...)
}

func (s *ScheduleService) takeLastMarked(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch := s.lastMarked[userID]
	delete(s.lastMarked, userID)
	return batch
}

func (s *ScheduleService) clearLastMarked(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lastMarked, userID)
}

func (s *ScheduleService) hasLastMarked(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.lastMarked[userID]
	return ok
}
