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

func TestAuthHandler_Register(t *testing.T) {
	router, svc := newTestRouter(t, newTestConfig(true))

	validReq := model.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"}
	expires := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success - 登録してトークンを返す",
			body: validReq,
			setupMock: func() {
				svc.auth.On("Register", mock.Anything, &validReq).
					Return(&model.AuthResponse{Token: "tok", Username: "alice", Email: "alice@example.com", ExpiresAt: expires}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fail - メール形式不正",
			body:           model.RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret123"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - パスワードが短い",
			body:           model.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "123"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Fail - ユーザー名重複",
			body: validReq,
			setupMock: func() {
				svc.auth.On("Register", mock.Anything, &validReq).
					Return(nil, model.NewAppError("DUPLICATE_USERNAME", "Username is already taken.", "username", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_USERNAME",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			rr := serve(router, createRequest(t, http.MethodPost, "/api/auth/register", tc.body, nil))

			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeError(t, rr).Code)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	router, svc := newTestRouter(t, newTestConfig(true))
	req := model.LoginRequest{Username: "alice", Password: "wrong-password"}

	svc.auth.On("Login", mock.Anything, &req).
		Return(nil, model.NewAppError("AUTHENTICATION_FAILED", "Invalid username or password.", "", model.ErrUnauthorized)).Once()

	rr := serve(router, createRequest(t, http.MethodPost, "/api/auth/login", req, nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "AUTHENTICATION_FAILED", decodeError(t, rr).Code)
}

func TestAuthHandler_ValidateToken(t *testing.T) {
	router, svc := newTestRouter(t, newTestConfig(true))
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	svc.auth.On("ValidateToken", mock.Anything, "tok").
		Return(&model.Session{Token: "tok", Username: "alice", ExpiresAt: expires}, nil).Once()

	rr := serve(router, createRequest(t, http.MethodPost, "/api/auth/validate", model.ValidateTokenRequest{Token: "tok"}, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got model.ValidateTokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Valid)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, expires.Equal(got.ExpiresAt))
}

func TestAuthHandler_Me(t *testing.T) {
	router, svc := newTestRouter(t, newTestConfig(false))
	userID := uuid.New()

	svc.auth.On("GetUser", mock.Anything, userID).
		Return(&model.User{UserID: userID, Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}, nil).Once()

	rr := serve(router, createRequest(t, http.MethodGet, "/api/auth/me", nil, &userID))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hash")
	var got model.UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, userID, got.UserID)
}

func TestHealthHandler(t *testing.T) {
	router, _ := newTestRouter(t, newTestConfig(true))

	rr := serve(router, createRequest(t, http.MethodGet, "/health", nil, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}
