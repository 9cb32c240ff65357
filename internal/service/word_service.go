// internal/service/word_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"spelling_trainer/internal/middleware"
	"spelling_trainer/internal/model"
	"spelling_trainer/internal/repository"
	"spelling_trainer/internal/typing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordService interface {
	CreateWord(ctx context.Context, userID uuid.UUID, req *model.WordRequest) (*model.Word, error)
	GetWord(ctx context.Context, userID, wordID uuid.UUID) (*model.Word, error)
	ListWords(ctx context.Context, userID uuid.UUID) ([]*model.Word, error)
	UpdateWord(ctx context.Context, userID, wordID uuid.UUID, req *model.WordRequest) (*model.Word, error)
	DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error
	RecordPractice(ctx context.Context, userID, wordID uuid.UUID, isCorrect bool) (*model.PracticeResponse, error)
	SubmitAttempt(ctx context.Context, userID, wordID uuid.UUID, typed string) (*model.AttemptResponse, error)
}

type wordService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	now      func() time.Time
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository) WordService {
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
		now:      time.Now,
	}
}

var (
	errWordNotFound  = model.NewAppError("WORD_NOT_FOUND", "Word not found.", "", model.ErrNotFound)
	errDuplicateWord = model.NewAppError("DUPLICATE_WORD", "This word is already in your list.", "text", model.ErrConflict)
)

// normalizeText は前後の空白を除き、綴りとして有効か確認します
func normalizeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", model.NewAppError("VALIDATION_ERROR", "text is required.", "text", model.ErrInvalidInput)
	}
	if strings.ContainsFunc(text, unicode.IsSpace) {
		return "", model.NewAppError("VALIDATION_ERROR", "text must not contain whitespace.", "text", model.ErrInvalidInput)
	}
	return text, nil
}

func normalizeDescription(desc *string) *string {
	if desc == nil {
		return nil
	}
	d := strings.TrimSpace(*desc)
	if d == "" {
		return nil
	}
	return &d
}

func internalError(err error) error {
	return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
}

// mapRepoError はリポジトリのエラーを単語用の AppError にします
func mapRepoError(err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return errWordNotFound
	case errors.Is(err, model.ErrConflict):
		return errDuplicateWord
	default:
		return internalError(err)
	}
}

func (s *wordService) CreateWord(ctx context.Context, userID uuid.UUID, req *model.WordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	text, err := normalizeText(req.Text)
	if err != nil {
		return nil, err
	}

	var createdWord *model.Word
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.wordRepo.CheckTextExists(ctx, tx, userID, text, nil)
		if err != nil {
			return internalError(err)
		}
		if exists {
			return errDuplicateWord
		}

		word := &model.Word{
			WordID:      uuid.New(),
			UserID:      userID,
			Text:        text,
			Description: normalizeDescription(req.Description),
			CreatedAt:   s.now().UTC(),
		}
		if err := s.wordRepo.Create(ctx, tx, word); err != nil {
			return mapRepoError(err)
		}
		createdWord = word
		return nil
	})
	if err != nil {
		logger.Warn("CreateWord failed", "error", err)
		return nil, err
	}

	logger.Info("Word created", "word_id", createdWord.WordID.String())
	return createdWord, nil
}

func (s *wordService) GetWord(ctx context.Context, userID, wordID uuid.UUID) (*model.Word, error) {
	word, err := s.wordRepo.FindByID(ctx, s.db, userID, wordID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return word, nil
}

func (s *wordService) ListWords(ctx context.Context, userID uuid.UUID) ([]*model.Word, error) {
	words, err := s.wordRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, internalError(err)
	}
	return words, nil
}

// UpdateWord は綴りと説明を置き換えます
func (s *wordService) UpdateWord(ctx context.Context, userID, wordID uuid.UUID, req *model.WordRequest) (*model.Word, error) {
	text, err := normalizeText(req.Text)
	if err != nil {
		return nil, err
	}

	var updatedWord *model.Word
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		word, err := s.wordRepo.FindByID(ctx, tx, userID, wordID)
		if err != nil {
			return mapRepoError(err)
		}

		if !strings.EqualFold(text, word.Text) {
			exists, err := s.wordRepo.CheckTextExists(ctx, tx, userID, text, &wordID)
			if err != nil {
				return internalError(err)
			}
			if exists {
				return errDuplicateWord
			}
		}

		desc := normalizeDescription(req.Description)
		updates := map[string]interface{}{
			"text":        text,
			"description": desc,
		}
		if err := s.wordRepo.Update(ctx, tx, userID, wordID, updates); err != nil {
			return mapRepoError(err)
		}

		word.Text = text
		word.Description = desc
		updatedWord = word
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updatedWord, nil
}

func (s *wordService) DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error {
	if err := s.wordRepo.Delete(ctx, s.db, userID, wordID); err != nil {
		return mapRepoError(err)
	}
	middleware.GetLogger(ctx).Info("Word deleted", "word_id", wordID.String())
	return nil
}

// RecordPractice は練習結果をカウンタに反映し、最新の正答率を返します
func (s *wordService) RecordPractice(ctx context.Context, userID, wordID uuid.UUID, isCorrect bool) (*model.PracticeResponse, error) {
	var word *model.Word
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		word, err = s.recordPractice(ctx, tx, userID, wordID, isCorrect)
		return err
	})
	if err != nil {
		return nil, err
	}
	return model.NewPracticeResponse(word), nil
}

// SubmitAttempt は入力された綴りを採点し、結果を練習として記録します
func (s *wordService) SubmitAttempt(ctx context.Context, userID, wordID uuid.UUID, typed string) (*model.AttemptResponse, error) {
	typed = strings.TrimSpace(typed)

	var resp *model.AttemptResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		target, err := s.wordRepo.FindByID(ctx, tx, userID, wordID)
		if err != nil {
			return mapRepoError(err)
		}

		status := typing.CompareWord(target.Text, typed)
		chars := typing.CompareChars(target.Text, typed)

		word := target
		if status != typing.StatusPending {
			word, err = s.recordPractice(ctx, tx, userID, wordID, status == typing.StatusCorrect)
			if err != nil {
				return err
			}
		}

		resp = &model.AttemptResponse{
			WordID:           wordID,
			Target:           target.Text,
			Typed:            typed,
			Status:           string(status),
			Chars:            make([]model.CharResult, 0, len(chars)),
			PracticeResponse: *model.NewPracticeResponse(word),
		}
		for _, c := range chars {
			resp.Chars = append(resp.Chars, model.CharResult{Char: c.Char, Status: string(c.Status)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *wordService) recordPractice(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID, isCorrect bool) (*model.Word, error) {
	if err := s.wordRepo.IncrementPractice(ctx, tx, userID, wordID, isCorrect, s.now().UTC()); err != nil {
		return nil, mapRepoError(err)
	}
	word, err := s.wordRepo.FindByID(ctx, tx, userID, wordID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return word, nil
}
