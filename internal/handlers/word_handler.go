// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"spelling_trainer/internal/middleware"
	"spelling_trainer/internal/model"
	"spelling_trainer/internal/service"
	"spelling_trainer/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type WordHandler struct {
	service service.WordService
}

func NewWordHandler(s service.WordService) *WordHandler {
	return &WordHandler{service: s}
}

// scope はハンドラ名付きロガーと認証済みユーザーIDを返します。
// 取得できなければエラーレスポンスを書いて ok=false を返します。
func scope(w http.ResponseWriter, r *http.Request, handler string) (*slog.Logger, uuid.UUID, bool) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", handler))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return logger, uuid.Nil, false
	}
	return logger.With(slog.String("user_id", userID.String())), userID, true
}

// parseWordID は URL の {word_id} を UUID として読みます
func parseWordID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	wordID, err := uuid.Parse(chi.URLParam(r, "word_id"))
	if err != nil {
		logger.Warn("Invalid word ID format", slog.String("word_id", chi.URLParam(r, "word_id")))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_PATH_PARAM", "word_id must be a UUID.", "word_id", model.ErrInvalidInput))
		return uuid.Nil, false
	}
	return wordID, true
}

// PostWord は新しい単語を作成します
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger, userID, ok := scope(w, r, "PostWord")
	if !ok {
		return
	}

	var req model.WordRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid word request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.CreateWord(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word posted successfully", slog.String("word_id", word.WordID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, word, logger)
}

// GetWords は単語一覧を返します
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger, userID, ok := scope(w, r, "GetWords")
	if !ok {
		return
	}

	words, err := h.service.ListWords(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.Word{}
	}
	logger.Info("Words listed successfully", slog.Int("count", len(words)))
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger, userID, ok := scope(w, r, "GetWord")
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	word, err := h.service.GetWord(r.Context(), userID, wordID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

func (h *WordHandler) PutWord(w http.ResponseWriter, r *http.Request) {
	logger, userID, ok := scope(w, r, "PutWord")
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	var req model.WordRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.UpdateWord(r.Context(), userID, wordID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word updated successfully", slog.String("word_id", wordID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger, userID, ok := scope(w, r, "DeleteWord")
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.DeleteWord(r.Context(), userID, wordID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondNoContent(w)
}

// PostPractice は1回分の練習結果 (正解/不正解) を記録します
func (h *WordHandler) PostPractice(w http.ResponseWriter, r *http.Request) {
	logger, userID, ok := scope(w, r, "PostPractice")
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	var req model.PracticeRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.RecordPractice(r.Context(), userID, wordID, *req.IsCorrect)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PostAttempt は入力された綴りを採点して記録します
func (h *WordHandler) PostAttempt(w http.ResponseWriter, r *http.Request) {
	logger, userID, ok := scope(w, r, "PostAttempt")
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	var req model.AttemptRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SubmitAttempt(r.Context(), userID, wordID, req.Typed)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
