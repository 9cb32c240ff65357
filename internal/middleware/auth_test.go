package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"spelling_trainer/internal/config"
	"spelling_trainer/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:      "test-secret-key-which-is-long-enough!!",
			Issuer:         "SpellingTrainer",
			Audience:       "SpellingTrainerUsers",
			AccessTokenTTL: time.Hour,
		},
	}
}

// echoUserHandler はコンテキストのユーザーIDをそのまま返します
func echoUserHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(id.String()))
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()
	now := time.Now()

	validToken, _, err := IssueAccessToken(cfg.JWT, userID, "alice", now)
	require.NoError(t, err)
	expiredToken, _, err := IssueAccessToken(cfg.JWT, userID, "alice", now.Add(-2*time.Hour))
	require.NoError(t, err)

	otherCfg := cfg.JWT
	otherCfg.SecretKey = "another-secret-key-which-is-long-enough"
	forgedToken, _, err := IssueAccessToken(otherCfg, userID, "alice", now)
	require.NoError(t, err)

	wrongAud := cfg.JWT
	wrongAud.Audience = "someone-else"
	wrongAudToken, _, err := IssueAccessToken(wrongAud, userID, "alice", now)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"正常系", "Bearer " + validToken, http.StatusOK, ""},
		{"ヘッダーなし", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"形式不正", "Token " + validToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"期限切れ", "Bearer " + expiredToken, http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{"署名不一致", "Bearer " + forgedToken, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"audience不一致", "Bearer " + wrongAudToken, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"壊れたトークン", "Bearer not.a.jwt", http.StatusUnauthorized, "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/streak", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			JWTAuthMiddleware(cfg)(echoUserHandler(t)).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID.String(), rr.Body.String())
				return
			}
			var resp model.APIErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestJWTAuthMiddleware_RejectsNoneAlgorithm(t *testing.T) {
	cfg := testConfig()
	claims := &model.JWTCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    cfg.JWT.Issuer,
			Audience:  jwt.ClaimStrings{cfg.JWT.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	JWTAuthMiddleware(cfg)(echoUserHandler(t)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestIsTokenExpired(t *testing.T) {
	cfg := testConfig()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	token, exp, err := IssueAccessToken(cfg.JWT, uuid.New(), "alice", now)
	require.NoError(t, err)

	assert.False(t, IsTokenExpired(token, now))
	assert.False(t, IsTokenExpired(token, exp), "exp ちょうどはまだ有効")
	assert.True(t, IsTokenExpired(token, exp.Add(time.Second)))
	assert.True(t, IsTokenExpired("garbage", now))
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserIDFromContext(req.Context())
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestDevUserContextMiddleware(t *testing.T) {
	userID := uuid.New()

	t.Run("ヘッダーあり", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", userID.String())
		rr := httptest.NewRecorder()
		DevUserContextMiddleware(echoUserHandler(t)).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, userID.String(), rr.Body.String())
	})

	t.Run("ヘッダーなし", func(t *testing.T) {
		rr := httptest.NewRecorder()
		DevUserContextMiddleware(echoUserHandler(t)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("UUIDでない", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "abc")
		rr := httptest.NewRecorder()
		DevUserContextMiddleware(echoUserHandler(t)).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequestDetailLoggingMiddleware_MasksSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	body := `{"username":"alice","password":"hunter22","nested":{"token":"abc"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer secret-token")
	rr := httptest.NewRecorder()

	RequestDetailLoggingMiddleware(logger)(failing).ServeHTTP(rr, req)

	out := buf.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, maskedValue)
	assert.NotContains(t, out, "hunter22")
	assert.NotContains(t, out, "secret-token")
	assert.NotContains(t, out, `"abc"`)
}

func TestLoggingMiddleware_StoresRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotSame(t, slog.Default(), GetLogger(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	})
	LoggingMiddleware(logger)(h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Contains(t, buf.String(), "Request completed")
	assert.Contains(t, buf.String(), `"status":204`)
}
