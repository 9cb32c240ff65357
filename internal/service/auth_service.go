package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"spelling_trainer/internal/config"
	"spelling_trainer/internal/middleware"
	"spelling_trainer/internal/model"
	"spelling_trainer/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*model.Session, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	mailer   Mailer
	cfg      *config.Config
	now      func() time.Time
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		mailer:   mailer,
		cfg:      cfg,
		now:      time.Now,
	}
}

var errInvalidCredentials = model.NewAppError("AUTHENTICATION_FAILED", "Invalid username or password.", "", model.ErrUnauthorized)

// Register は新しいユーザーを登録し、アクセストークンを発行します。
// ウェルカムメールの送信失敗は登録を失敗させません。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var newUser *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByUsername(ctx, tx, username)
		if err == nil {
			logger.Warn("Username already exists", "username", username)
			return model.NewAppError("DUPLICATE_USERNAME", "Username is already taken.", "username", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		_, err = s.userRepo.FindByEmail(ctx, tx, email)
		if err == nil {
			logger.Warn("Email already exists", "email", email)
			return model.NewAppError("DUPLICATE_EMAIL", "Email is already registered.", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to process password.", "", err)
		}

		user := &model.User{
			UserID:       uuid.New(),
			Username:     username,
			Email:        email,
			PasswordHash: string(hashedPassword),
			CreatedAt:    s.now().UTC(),
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// 重複チェック後に他のリクエストが登録した
				return model.NewAppError("DUPLICATE_ENTRY", "Username or email is already registered.", "username,email", model.ErrConflict)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create user.", "", err)
		}
		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.issue(ctx, newUser)
	if err != nil {
		return nil, err
	}

	s.sendWelcomeEmail(ctx, newUser)

	logger.Info("User registered", "user_id", newUser.UserID.String())
	return resp, nil
}

// Login はユーザー名とパスワードを検証してトークンを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx).With("username", req.Username)

	user, err := s.userRepo.FindByUsername(ctx, s.db, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, errInvalidCredentials
		}
		logger.Error("Login failed: db error on FindByUsername", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID.String())
		return nil, errInvalidCredentials
	}

	now := s.now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, s.db, user.UserID, now); err != nil {
		// ログイン自体は成立させる
		logger.Warn("Failed to record last login", "error", err)
	} else {
		user.LastLoginAt = &now
	}

	logger.Info("Login successful", "user_id", user.UserID.String())
	return s.issue(ctx, user)
}

// ValidateToken はトークンを検証し、セッション情報を返します
func (s *authService) ValidateToken(ctx context.Context, token string) (*model.Session, error) {
	logger := middleware.GetLogger(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "token is required.", "token", model.ErrInvalidInput)
	}

	if middleware.IsTokenExpired(token, s.now()) {
		logger.Info("Token expired or unreadable")
		return nil, model.NewAppError("TOKEN_EXPIRED", "Token has expired.", "token", model.ErrUnauthorized)
	}

	claims, err := middleware.ParseAccessToken(s.cfg.JWT, token)
	if err != nil {
		logger.Warn("Token validation failed", "error", err)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.NewAppError("TOKEN_EXPIRED", "Token has expired.", "token", model.ErrUnauthorized)
		}
		return nil, model.NewAppError("INVALID_TOKEN", "Token is invalid.", "token", model.ErrUnauthorized)
	}

	session := &model.Session{
		Token:    token,
		Username: claims.Username,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return session, nil
}

// GetUser は指定されたIDのユーザーを取得します
func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID.String())
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return user, nil
}

// --- ヘルパー関数 ---

func (s *authService) issue(ctx context.Context, user *model.User) (*model.AuthResponse, error) {
	token, expiresAt, err := middleware.IssueAccessToken(s.cfg.JWT, user.UserID, user.Username, s.now())
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to sign JWT", "error", err, "user_id", user.UserID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue token.", "", err)
	}
	return &model.AuthResponse{
		Token:     token,
		Username:  user.Username,
		Email:     user.Email,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

func (s *authService) sendWelcomeEmail(ctx context.Context, user *model.User) {
	logger := middleware.GetLogger(ctx)
	subject := fmt.Sprintf("Welcome to %s", s.cfg.App.Name)
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Start practicing at:\n%s\n\nPractice a little every day to build your streak!",
		user.Username, s.cfg.App.FrontendURL)

	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		logger.Warn("Failed to send welcome email", "error", err, "user_id", user.UserID.String())
	}
}
