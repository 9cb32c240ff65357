//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spelling_trainer/internal/middleware"
	"spelling_trainer/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) (*model.Word, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Word, error)
	Update(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID) error
	CheckTextExists(ctx context.Context, db *gorm.DB, userID uuid.UUID, text string, excludeWordID *uuid.UUID) (bool, error)
	IncrementPractice(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID, isCorrect bool, at time.Time) error
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate word text on create", "user_id", word.UserID.String(), "text", word.Text)
			return model.ErrConflict
		}
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"user_id", word.UserID.String(),
			"text", word.Text,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("user_id = ? AND word_id = ?", userID, wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	words := []*model.Word{}
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("text ASC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByUser: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) Update(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Word{}).Where("user_id = ? AND word_id = ?", userID, wordID).Updates(updates)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error updating word in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND word_id = ?", userID, wordID).Delete(&model.Word{})
	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// CheckTextExists は大文字小文字を区別せずに同じ綴りの単語があるか調べます
func (r *gormWordRepository) CheckTextExists(ctx context.Context, db *gorm.DB, userID uuid.UUID, text string, excludeWordID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Word{}).Where("user_id = ? AND LOWER(text) = LOWER(?)", userID, text)
	if excludeWordID != nil {
		query = query.Where("word_id <> ?", *excludeWordID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking text existence in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"text", text,
		)
		return false, fmt.Errorf("gormWordRepository.CheckTextExists: %w", result.Error)
	}
	return count > 0, nil
}

// IncrementPractice はカウンタを1文で加算します (読み取り→書き込みの競合を避ける)
func (r *gormWordRepository) IncrementPractice(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID, isCorrect bool, at time.Time) error {
	logger := middleware.GetLogger(ctx)
	updates := map[string]interface{}{
		"practice_count":    gorm.Expr("practice_count + ?", 1),
		"last_practiced_at": at,
	}
	if isCorrect {
		updates["correct_count"] = gorm.Expr("correct_count + ?", 1)
	}
	result := tx.WithContext(ctx).Model(&model.Word{}).Where("user_id = ? AND word_id = ?", userID, wordID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error incrementing practice counters",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.IncrementPractice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
