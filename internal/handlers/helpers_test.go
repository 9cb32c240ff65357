package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"spelling_trainer/internal/config"
	"spelling_trainer/internal/handlers"
	"spelling_trainer/internal/model"
	"spelling_trainer/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func newTestConfig(authEnabled bool) *config.Config {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:      "handler-test-secret-key-long-enough!!",
			Issuer:         "SpellingTrainer",
			Audience:       "SpellingTrainerUsers",
			AccessTokenTTL: time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		},
	}
	cfg.Auth.Enabled = authEnabled
	return cfg
}

// openHealthDB はヘルスチェック用のインメモリDBを返します
func openHealthDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

type testServices struct {
	auth   *mocks.AuthService
	word   *mocks.WordService
	streak *mocks.StreakService
}

// newTestRouter は本番と同じルーティングをモックサービスで組み立てます
func newTestRouter(t *testing.T, cfg *config.Config) (http.Handler, testServices) {
	t.Helper()
	svc := testServices{
		auth:   mocks.NewAuthService(t),
		word:   mocks.NewWordService(t),
		streak: mocks.NewStreakService(t),
	}
	router := handlers.NewRouter(cfg, testLogger, handlers.Handlers{
		Auth:   handlers.NewAuthHandler(svc.auth),
		Word:   handlers.NewWordHandler(svc.word),
		Streak: handlers.NewStreakHandler(svc.streak),
		Health: handlers.NewHealthHandler(openHealthDB(t)),
	})
	return router, svc
}

// createRequest は body を JSON にしたリクエストを作り、userID があれば X-User-ID を付けます
func createRequest(t *testing.T, method, path string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp.Error
}
