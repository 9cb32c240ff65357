package handlers

import (
	"net/http"

	"spelling_trainer/internal/service"
	"spelling_trainer/internal/webutil"
)

type StreakHandler struct {
	service service.StreakService
}

func NewStreakHandler(s service.StreakService) *StreakHandler {
	return &StreakHandler{service: s}
}

// GetStreak は現在の連続練習日数を返します
func (h *StreakHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger, userID, ok := scope(w, r, "GetStreak")
	if !ok {
		return
	}

	resp, err := h.service.GetStreak(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PutStreak は今日の練習完了を記録します
func (h *StreakHandler) PutStreak(w http.ResponseWriter, r *http.Request) {
	logger, userID, ok := scope(w, r, "PutStreak")
	if !ok {
		return
	}

	resp, err := h.service.UpdateStreak(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Streak recorded", "current_streak", resp.CurrentStreak)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
