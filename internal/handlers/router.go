package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"spelling_trainer/internal/config"
	"spelling_trainer/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers はルーターに登録するハンドラの集まりです
type Handlers struct {
	Auth   *AuthHandler
	Word   *WordHandler
	Streak *StreakHandler
	Health *HealthHandler
}

// NewRouter はミドルウェアとルートを組み立てた chi ルーターを返します
func NewRouter(cfg *config.Config, logger *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	if cfg.Log.Detail {
		r.Use(middleware.RequestDetailLoggingMiddleware(logger))
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	authMiddleware := middleware.JWTAuthMiddleware(cfg)
	if !cfg.Auth.Enabled {
		logger.Warn("Authentication is DISABLED. Using X-User-ID header (development only)")
		authMiddleware = middleware.DevUserContextMiddleware
	}

	r.Route("/api", func(r chi.Router) {
		// --- Public routes ---
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/validate", h.Auth.ValidateToken)
			r.With(authMiddleware).Get("/me", h.Auth.Me)
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Route("/words", func(r chi.Router) {
				r.Get("/", h.Word.GetWords)
				r.Post("/", h.Word.PostWord)
				r.Get("/{word_id}", h.Word.GetWord)
				r.Put("/{word_id}", h.Word.PutWord)
				r.Delete("/{word_id}", h.Word.DeleteWord)
				r.Post("/{word_id}/practice", h.Word.PostPractice)
				r.Post("/{word_id}/attempt", h.Word.PostAttempt)
			})

			r.Get("/streak", h.Streak.GetStreak)
			r.Put("/streak", h.Streak.PutStreak)
		})
	})

	r.Get("/health", h.Health.Health)

	return r
}
