// internal/service/word_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"spelling_trainer/internal/model"
	"spelling_trainer/internal/repository"
	"spelling_trainer/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// --- Test CreateWord ---
func Test_wordService_CreateWord(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	userID := uuid.New()
	dbErr := errors.New("db down")

	tests := []struct {
		name      string
		req       *model.WordRequest
		setupMock func(wordRepo *mocks.WordRepository)
		wantErr   error
		wantCode  string
	}{
		{
			name: "正常系: 作成成功",
			req:  &model.WordRequest{Text: "  rhythm ", Description: strPtr("a pattern")},
			setupMock: func(wordRepo *mocks.WordRepository) {
				wordRepo.On("CheckTextExists", ctx, mock.AnythingOfType("*gorm.DB"), userID, "rhythm", (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				wordRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Word")).
					Run(func(args mock.Arguments) {
						word := args.Get(2).(*model.Word)
						assert.Equal(t, userID, word.UserID)
						assert.Equal(t, "rhythm", word.Text)
						assert.Equal(t, "a pattern", *word.Description)
						assert.NotEqual(t, uuid.Nil, word.WordID)
					}).Return(nil).Once()
			},
		},
		{
			name:      "異常系: 空白を含む",
			req:       &model.WordRequest{Text: "ice cream"},
			setupMock: func(wordRepo *mocks.WordRepository) {},
			wantErr:   model.ErrInvalidInput,
			wantCode:  "VALIDATION_ERROR",
		},
		{
			name:      "異常系: 空",
			req:       &model.WordRequest{Text: "   "},
			setupMock: func(wordRepo *mocks.WordRepository) {},
			wantErr:   model.ErrInvalidInput,
			wantCode:  "VALIDATION_ERROR",
		},
		{
			name: "異常系: 重複",
			req:  &model.WordRequest{Text: "Rhythm"},
			setupMock: func(wordRepo *mocks.WordRepository) {
				wordRepo.On("CheckTextExists", ctx, mock.AnythingOfType("*gorm.DB"), userID, "Rhythm", (*uuid.UUID)(nil)).
					Return(true, nil).Once()
			},
			wantErr:  model.ErrConflict,
			wantCode: "DUPLICATE_WORD",
		},
		{
			name: "異常系: 作成時の一意制約違反",
			req:  &model.WordRequest{Text: "rhythm"},
			setupMock: func(wordRepo *mocks.WordRepository) {
				wordRepo.On("CheckTextExists", ctx, mock.AnythingOfType("*gorm.DB"), userID, "rhythm", (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				wordRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Word")).
					Return(model.ErrConflict).Once()
			},
			wantErr:  model.ErrConflict,
			wantCode: "DUPLICATE_WORD",
		},
		{
			name: "異常系: DBエラー",
			req:  &model.WordRequest{Text: "rhythm"},
			setupMock: func(wordRepo *mocks.WordRepository) {
				wordRepo.On("CheckTextExists", ctx, mock.AnythingOfType("*gorm.DB"), userID, "rhythm", (*uuid.UUID)(nil)).
					Return(false, dbErr).Once()
			},
			wantErr:  dbErr,
			wantCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := mocks.NewWordRepository(t)
			tt.setupMock(wordRepo)
			svc := NewWordService(db, wordRepo)

			word, err := svc.CreateWord(ctx, userID, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				assert.Nil(t, word)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "rhythm", word.Text)
		})
	}
}

func Test_wordService_GetWord_NotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	wordRepo := mocks.NewWordRepository(t)
	userID, wordID := uuid.New(), uuid.New()
	wordRepo.On("FindByID", ctx, db, userID, wordID).Return(nil, model.ErrNotFound).Once()

	_, err := NewWordService(db, wordRepo).GetWord(ctx, userID, wordID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

// 以降は実際のリポジトリと SQLite で確認する
func newWordServiceWithDB(t *testing.T) (WordService, uuid.UUID) {
	t.Helper()
	db := setupTestDB(t)
	user := &model.User{UserID: uuid.New(), Username: "speller", Email: "speller@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return NewWordService(db, repository.NewGormWordRepository()), user.UserID
}

func Test_wordService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, userID := newWordServiceWithDB(t)

	w1, err := svc.CreateWord(ctx, userID, &model.WordRequest{Text: "separate"})
	require.NoError(t, err)
	_, err = svc.CreateWord(ctx, userID, &model.WordRequest{Text: "definitely"})
	require.NoError(t, err)

	t.Run("大文字小文字だけの変更は許可", func(t *testing.T) {
		got, err := svc.UpdateWord(ctx, userID, w1.WordID, &model.WordRequest{Text: "Separate", Description: strPtr("apart")})
		require.NoError(t, err)
		assert.Equal(t, "Separate", got.Text)
		assert.Equal(t, "apart", *got.Description)
	})

	t.Run("他の単語と重複", func(t *testing.T) {
		_, err := svc.UpdateWord(ctx, userID, w1.WordID, &model.WordRequest{Text: "DEFINITELY"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("存在しない単語", func(t *testing.T) {
		_, err := svc.UpdateWord(ctx, userID, uuid.New(), &model.WordRequest{Text: "x"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("他人の単語は削除できない", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteWord(ctx, uuid.New(), w1.WordID), model.ErrNotFound)
	})

	t.Run("削除", func(t *testing.T) {
		require.NoError(t, svc.DeleteWord(ctx, userID, w1.WordID))
		words, err := svc.ListWords(ctx, userID)
		require.NoError(t, err)
		require.Len(t, words, 1)
		assert.Equal(t, "definitely", words[0].Text)
	})
}

func Test_wordService_PracticeAndAttempt(t *testing.T) {
	ctx := context.Background()
	svc, userID := newWordServiceWithDB(t)

	w, err := svc.CreateWord(ctx, userID, &model.WordRequest{Text: "cat"})
	require.NoError(t, err)

	got, err := svc.RecordPractice(ctx, userID, w.WordID, true)
	require.NoError(t, err)
	assert.Equal(t, &model.PracticeResponse{PracticeCount: 1, CorrectCount: 1, Accuracy: 100}, got)

	attempt, err := svc.SubmitAttempt(ctx, userID, w.WordID, "cot")
	require.NoError(t, err)
	assert.Equal(t, "incorrect", attempt.Status)
	assert.Equal(t, []model.CharResult{
		{Char: "c", Status: "correct"},
		{Char: "a", Status: "incorrect"},
		{Char: "t", Status: "correct"},
	}, attempt.Chars)
	assert.Equal(t, 2, attempt.PracticeCount)
	assert.Equal(t, 1, attempt.CorrectCount)
	assert.InDelta(t, 50.0, attempt.Accuracy, 0.001)

	attempt, err = svc.SubmitAttempt(ctx, userID, w.WordID, " cat ")
	require.NoError(t, err)
	assert.Equal(t, "correct", attempt.Status)
	assert.Equal(t, 3, attempt.PracticeCount)

	t.Run("未入力は記録しない", func(t *testing.T) {
		attempt, err := svc.SubmitAttempt(ctx, userID, w.WordID, "")
		require.NoError(t, err)
		assert.Equal(t, "pending", attempt.Status)
		assert.Equal(t, 3, attempt.PracticeCount)
	})

	t.Run("存在しない単語", func(t *testing.T) {
		_, err := svc.RecordPractice(ctx, userID, uuid.New(), true)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
