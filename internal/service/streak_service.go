package service

import (
	"context"
	"errors"
	"time"

	"spelling_trainer/internal/middleware"
	"spelling_trainer/internal/model"
	"spelling_trainer/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StreakService interface {
	GetStreak(ctx context.Context, userID uuid.UUID) (*model.StreakResponse, error)
	UpdateStreak(ctx context.Context, userID uuid.UUID) (*model.StreakResponse, error)
}

type streakService struct {
	db         *gorm.DB
	streakRepo repository.StreakRepository
	now        func() time.Time
}

func NewStreakService(db *gorm.DB, streakRepo repository.StreakRepository) StreakService {
	return NewStreakServiceWithClock(db, streakRepo, time.Now)
}

// NewStreakServiceWithClock は現在時刻の取得元を差し替えられるコンストラクタです
func NewStreakServiceWithClock(db *gorm.DB, streakRepo repository.StreakRepository, now func() time.Time) StreakService {
	return &streakService{db: db, streakRepo: streakRepo, now: now}
}

// GetStreak は連続記録を返します。記録が無ければ作成し、途切れていればリセットします。
func (s *streakService) GetStreak(ctx context.Context, userID uuid.UUID) (*model.StreakResponse, error) {
	return s.apply(ctx, userID, "GetStreak", EvaluateStreak)
}

// UpdateStreak は今日の練習完了を記録します
func (s *streakService) UpdateStreak(ctx context.Context, userID uuid.UUID) (*model.StreakResponse, error) {
	return s.apply(ctx, userID, "UpdateStreak", RecordStreakCompletion)
}

func (s *streakService) apply(
	ctx context.Context,
	userID uuid.UUID,
	op string,
	step func(*model.Streak, uuid.UUID, time.Time) StreakResult,
) (*model.StreakResponse, error) {
	logger := middleware.GetLogger(ctx).With("op", op, "user_id", userID.String())
	now := s.now().UTC()

	var view *model.StreakResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.streakRepo.FindByUserID(ctx, tx, userID)
		if err != nil {
			return err
		}

		result := step(current, userID, now)
		switch {
		case result.Created:
			if err := s.streakRepo.Create(ctx, tx, result.Streak); err != nil {
				return err
			}
		case result.Changed:
			if err := s.streakRepo.Update(ctx, tx, result.Streak); err != nil {
				return err
			}
		}

		logger.Debug("Streak evaluated",
			"created", result.Created,
			"changed", result.Changed,
			"current_streak", result.Streak.CurrentStreak,
			"longest_streak", result.Streak.LongestStreak,
		)
		view = result.View
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Concurrent streak update detected")
			return nil, model.NewAppError("STREAK_CONFLICT", "The streak was modified by another request. Please retry.", "", model.ErrConflict)
		}
		logger.Error("Failed to persist streak", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update streak.", "", err)
	}
	return view, nil
}
