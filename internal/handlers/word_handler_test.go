package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"spelling_trainer/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWordHandler_PostWord(t *testing.T) {
	router, svc := newTestRouter(t, newTestConfig(false))
	userID := uuid.New()

	validReq := model.WordRequest{Text: "necessary"}
	created := &model.Word{WordID: uuid.New(), UserID: userID, Text: "necessary", CreatedAt: time.Now()}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "Success - 単語を作成",
			userID: &userID,
			body:   validReq,
			setupMock: func() {
				svc.word.On("CreateWord", mock.Anything, userID, &validReq).Return(created, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - X-User-ID なし",
			body:           validReq,
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "Fail - text が空",
			userID:         &userID,
			body:           model.WordRequest{},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - text に空白を含む",
			userID:         &userID,
			body:           model.WordRequest{Text: "two words"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - 未知のフィールド",
			userID:         &userID,
			body:           `{"text":"word","unknown":1}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Fail - 重複",
			userID: &userID,
			body:   validReq,
			setupMock: func() {
				svc.word.On("CreateWord", mock.Anything, userID, &validReq).
					Return(nil, model.NewAppError("DUPLICATE_WORD", "Word already exists.", "text", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_WORD",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			rr := serve(router, createRequest(t, http.MethodPost, "/api/words", tc.body, tc.userID))

			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeError(t, rr).Code)
			}
			if tc.expectedStatus == http.StatusCreated {
				var got model.Word
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, created.WordID, got.WordID)
				assert.Equal(t, "necessary", got.Text)
			}
		})
	}
}

func TestWordHandler_GetWords(t *testing.T) {
	router, svc := newTestRouter(t, newTestConfig(false))
	userID := uuid.New()

	t.Run("Success - 0件は空配列", func(t *testing.T) {
		svc.word.On("ListWords", mock.Anything, userID).Return(nil, nil).Once()

		rr := serve(router, createRequest(t, http.MethodGet, "/api/words", nil, &userID))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Success - 一覧", func(t *testing.T) {
		words := []*model.Word{
			{WordID: uuid.New(), Text: "apple"},
			{WordID: uuid.New(), Text: "banana"},
		}
		svc.word.On("ListWords", mock.Anything, userID).Return(words, nil).Once()

		rr := serve(router, createRequest(t, http.MethodGet, "/api/words", nil, &userID))

		require.Equal(t, http.StatusOK, rr.Code)
		var got []model.Word
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})
}

func TestWordHandler_ByID(t *testing.T) {
	router, svc := newTestRouter(t, newTestConfig(false))
	userID := uuid.New()
	wordID := uuid.New()
	path := "/api/words/" + wordID.String()

	t.Run("Fail - word_id が UUID でない", func(t *testing.T) {
		rr := serve(router, createRequest(t, http.MethodGet, "/api/words/not-a-uuid", nil, &userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_PATH_PARAM", decodeError(t, rr).Code)
	})

	t.Run("Fail - 存在しない単語", func(t *testing.T) {
		svc.word.On("GetWord", mock.Anything, userID, wordID).
			Return(nil, model.NewAppError("WORD_NOT_FOUND", "Word not found.", "", model.ErrNotFound)).Once()

		rr := serve(router, createRequest(t, http.MethodGet, path, nil, &userID))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "WORD_NOT_FOUND", decodeError(t, rr).Code)
	})

	t.Run("Success - 更新", func(t *testing.T) {
		req := model.WordRequest{Text: "receive"}
		svc.word.On("UpdateWord", mock.Anything, userID, wordID, &req).
			Return(&model.Word{WordID: wordID, Text: "receive"}, nil).Once()

		rr := serve(router, createRequest(t, http.MethodPut, path, req, &userID))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Success - 削除は204", func(t *testing.T) {
		svc.word.On("DeleteWord", mock.Anything, userID, wordID).Return(nil).Once()

		rr := serve(router, createRequest(t, http.MethodDelete, path, nil, &userID))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}

func TestWordHandler_PostPractice(t *testing.T) {
	router, svc := newTestRouter(t, newTestConfig(false))
	userID := uuid.New()
	wordID := uuid.New()
	path := "/api/words/" + wordID.String() + "/practice"

	t.Run("Success - 正解を記録", func(t *testing.T) {
		svc.word.On("RecordPractice", mock.Anything, userID, wordID, true).
			Return(&model.PracticeResponse{PracticeCount: 4, CorrectCount: 3, Accuracy: 75}, nil).Once()

		rr := serve(router, createRequest(t, http.MethodPost, path, `{"isCorrect":true}`, &userID))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"practiceCount":4,"correctCount":3,"accuracy":75}`, rr.Body.String())
	})

	t.Run("Fail - isCorrect なし", func(t *testing.T) {
		rr := serve(router, createRequest(t, http.MethodPost, path, `{}`, &userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestWordHandler_PostAttempt(t *testing.T) {
	router, svc := newTestRouter(t, newTestConfig(false))
	userID := uuid.New()
	wordID := uuid.New()
	path := "/api/words/" + wordID.String() + "/attempt"

	resp := &model.AttemptResponse{
		WordID: wordID,
		Target: "cat",
		Typed:  "cat",
		Status: "correct",
	}
	svc.word.On("SubmitAttempt", mock.Anything, userID, wordID, "cat").Return(resp, nil).Once()

	rr := serve(router, createRequest(t, http.MethodPost, path, model.AttemptRequest{Typed: "cat"}, &userID))

	require.Equal(t, http.StatusOK, rr.Code)
	var got model.AttemptResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "correct", got.Status)
	assert.Equal(t, "cat", got.Target)
}
