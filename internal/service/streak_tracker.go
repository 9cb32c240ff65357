package service

import (
	"time"

	"spelling_trainer/internal/model"

	"github.com/google/uuid"
)

// StreakResult は連続記録の評価結果です。
// Created は新規作成、Changed は既存行の更新が必要なことを示します。
type StreakResult struct {
	Streak  *model.Streak
	View    *model.StreakResponse
	Created bool
	Changed bool
}

// CalendarDate は t を UTC の日付 (0時0分) に切り詰めます
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween は from から to までの暦日数です (UTC基準)。
// 23:59 と翌日 00:01 は1日差になります。
func DaysBetween(from, to time.Time) int {
	return int(CalendarDate(to).Sub(CalendarDate(from)).Hours() / 24)
}

// EvaluateStreak は練習イベントなしの状態確認です (GET)。
// 2日以上空いていれば current を0に戻します。longest は変えません。
func EvaluateStreak(current *model.Streak, userID uuid.UUID, now time.Time) StreakResult {
	today := CalendarDate(now)

	if current == nil {
		s := newStreak(userID, 0, today, now)
		return StreakResult{Streak: s, View: streakView(s, 0), Created: true}
	}

	s := *current
	// 最終練習日が未来 (時計のずれ) なら gap は負。日付は戻さず、表示は式どおり 1-gap
	gap := DaysBetween(s.LastPracticeDate, today)

	changed := false
	if gap > 1 {
		s.CurrentStreak = 0
		s.LastPracticeDate = today
		s.UpdatedAt = &now
		changed = true
	}

	return StreakResult{Streak: &s, View: streakView(&s, gap), Changed: changed}
}

// RecordStreakCompletion は練習1回の完了を記録します (PUT)。
// 同じ日に何度呼んでも1回目以降は変化しません。
func RecordStreakCompletion(current *model.Streak, userID uuid.UUID, now time.Time) StreakResult {
	today := CalendarDate(now)

	if current == nil {
		s := newStreak(userID, 1, today, now)
		return StreakResult{Streak: s, View: completedView(s), Created: true}
	}

	s := *current
	gap := DaysBetween(s.LastPracticeDate, today)

	changed := true
	switch {
	case gap <= 0:
		// 同日 (または未来日付) は何も変えない。current が0でもそのまま
		changed = false
	case gap == 1:
		s.CurrentStreak++
		s.LastPracticeDate = today
		raiseLongest(&s)
	default:
		s.CurrentStreak = 1
		s.LastPracticeDate = today
		raiseLongest(&s)
	}

	if changed {
		s.UpdatedAt = &now
	}
	return StreakResult{Streak: &s, View: completedView(&s), Changed: changed}
}

func newStreak(userID uuid.UUID, count int, today, now time.Time) *model.Streak {
	return &model.Streak{
		StreakID:         uuid.New(),
		UserID:           userID,
		CurrentStreak:    count,
		LongestStreak:    count,
		LastPracticeDate: today,
		CreatedAt:        now,
	}
}

func raiseLongest(s *model.Streak) {
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
}

// streakView は GET 用。daysUntilReset は gap>1 なら0、それ以外は 1-gap。
func streakView(s *model.Streak, gap int) *model.StreakResponse {
	daysUntilReset := 1 - gap
	if gap > 1 {
		daysUntilReset = 0
	}
	return &model.StreakResponse{
		CurrentStreak:    s.CurrentStreak,
		LongestStreak:    s.LongestStreak,
		LastPracticeDate: s.LastPracticeDate.UTC().Format(model.DateLayout),
		IsStreakActive:   gap <= 1,
		DaysUntilReset:   daysUntilReset,
	}
}

// completedView は PUT 用。練習直後なので常に active。
func completedView(s *model.Streak) *model.StreakResponse {
	return &model.StreakResponse{
		CurrentStreak:    s.CurrentStreak,
		LongestStreak:    s.LongestStreak,
		LastPracticeDate: s.LastPracticeDate.UTC().Format(model.DateLayout),
		IsStreakActive:   true,
		DaysUntilReset:   1,
	}
}
