package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse は登録・ログイン成功時のレスポンス
type AuthResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// JWTCustomClaims はJWTに含めるカスタムクレーム
type JWTCustomClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type ValidateTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type ValidateTokenResponse struct {
	Username  string    `json:"username"`
	Valid     bool      `json:"valid"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Session はクライアントが保持するログイン状態です。
// グローバルなトークン保存の代わりに値として受け渡します。
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired は now 時点でセッションが失効しているかを返します。
// exp ちょうどの時刻はまだ有効です。
func (s *Session) IsExpired(now time.Time) bool {
	if s == nil || s.Token == "" {
		return true
	}
	return now.After(s.ExpiresAt)
}

// Clear はログアウト時にセッションを空にします
func (s *Session) Clear() {
	*s = Session{}
}
