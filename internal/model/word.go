// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Word は練習対象の単語と練習統計を表します
type Word struct {
	WordID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"wordId"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	Text            string     `gorm:"type:varchar(100);not null" json:"text"`
	Description     *string    `gorm:"type:varchar(500)" json:"description,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastPracticedAt *time.Time `json:"lastPracticedAt,omitempty"`
	PracticeCount   int        `gorm:"not null;default:0" json:"practiceCount"`
	CorrectCount    int        `gorm:"not null;default:0" json:"correctCount"`
}

func (Word) TableName() string {
	return "words"
}

// 単語作成・更新リクエストDTO
type WordRequest struct {
	Text        string  `json:"text" validate:"required,max=100,nowhitespace"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// PracticeRequest は1回分の練習結果
type PracticeRequest struct {
	IsCorrect *bool `json:"isCorrect" validate:"required"`
}

type PracticeResponse struct {
	PracticeCount int     `json:"practiceCount"`
	CorrectCount  int     `json:"correctCount"`
	Accuracy      float64 `json:"accuracy"`
}

// NewPracticeResponse は正答率 (%) を計算してレスポンスを作ります
func NewPracticeResponse(w *Word) *PracticeResponse {
	resp := &PracticeResponse{
		PracticeCount: w.PracticeCount,
		CorrectCount:  w.CorrectCount,
	}
	if w.PracticeCount > 0 {
		resp.Accuracy = float64(w.CorrectCount) / float64(w.PracticeCount) * 100
	}
	return resp
}

// AttemptRequest はタイピング入力の採点リクエスト
type AttemptRequest struct {
	Typed string `json:"typed" validate:"max=200"`
}

// CharResult は1文字ごとの判定結果
type CharResult struct {
	Char   string `json:"char"`
	Status string `json:"status"`
}

type AttemptResponse struct {
	WordID uuid.UUID    `json:"wordId"`
	Target string       `json:"target"`
	Typed  string       `json:"typed"`
	Status string       `json:"status"`
	Chars  []CharResult `json:"chars"`
	PracticeResponse
}
