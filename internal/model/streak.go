// internal/model/streak.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Streak はユーザーごとの連続練習日数の記録です (1ユーザー1行)
type Streak struct {
	StreakID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	CurrentStreak    int        `gorm:"not null;default:0"`
	LongestStreak    int        `gorm:"not null;default:0"`
	LastPracticeDate time.Time  `gorm:"type:date;not null"`
	Version          int        `gorm:"not null;default:0"` // 楽観ロック用
	CreatedAt        time.Time
	UpdatedAt        *time.Time `gorm:"autoUpdateTime:false"`
}

func (Streak) TableName() string {
	return "streaks"
}

// StreakResponse は GET/PUT /api/streak のレスポンス
type StreakResponse struct {
	CurrentStreak    int    `json:"currentStreak"`
	LongestStreak    int    `json:"longestStreak"`
	LastPracticeDate string `json:"lastPracticeDate"` // YYYY-MM-DD
	IsStreakActive   bool   `json:"isStreakActive"`
	DaysUntilReset   int    `json:"daysUntilReset"`
}

// DateLayout は lastPracticeDate の表示形式
const DateLayout = "2006-01-02"
