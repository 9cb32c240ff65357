//go:generate mockery --name StreakRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"spelling_trainer/internal/middleware"
	"spelling_trainer/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StreakRepository はユーザーごとの連続記録を保存します。
// FindByUserID は記録が無い場合 (nil, nil) を返します。
type StreakRepository interface {
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Streak, error)
	Create(ctx context.Context, tx *gorm.DB, streak *model.Streak) error
	Update(ctx context.Context, tx *gorm.DB, streak *model.Streak) error
}

type gormStreakRepository struct{}

func NewGormStreakRepository() StreakRepository {
	return &gormStreakRepository{}
}

func (r *gormStreakRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Streak, error) {
	logger := middleware.GetLogger(ctx)
	var streak model.Streak

	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&streak)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Error("Error finding streak in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormStreakRepository.FindByUserID: %w", result.Error)
	}
	return &streak, nil
}

// Create は初回アクセス時の記録を作ります。同時作成で負けた場合は ErrConflict。
func (r *gormStreakRepository) Create(ctx context.Context, tx *gorm.DB, streak *model.Streak) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Create(streak)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Streak already created by a concurrent request", "user_id", streak.UserID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating streak in DB", "error", result.Error, "user_id", streak.UserID.String())
		return fmt.Errorf("gormStreakRepository.Create: %w", result.Error)
	}
	return nil
}

// Update は version が読み取り時と一致する場合だけ書き込み、version を1進めます。
// 一致しない (他のリクエストが先に更新した) 場合は ErrConflict。
func (r *gormStreakRepository) Update(ctx context.Context, tx *gorm.DB, streak *model.Streak) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Model(&model.Streak{}).
		Where("streak_id = ? AND version = ?", streak.StreakID, streak.Version).
		Updates(map[string]interface{}{
			"current_streak":     streak.CurrentStreak,
			"longest_streak":     streak.LongestStreak,
			"last_practice_date": streak.LastPracticeDate,
			"updated_at":         streak.UpdatedAt,
			"version":            streak.Version + 1,
		})
	if result.Error != nil {
		logger.Error("Error updating streak in DB", "error", result.Error, "user_id", streak.UserID.String())
		return fmt.Errorf("gormStreakRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Streak version mismatch", "user_id", streak.UserID.String(), "version", streak.Version)
		return model.ErrConflict
	}
	streak.Version++
	return nil
}
