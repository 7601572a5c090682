package user

import (
	"context"
	"errors"
	"time"

	"github.com/JaeMinBird/Courtly/internal/auth"
	"github.com/JaeMinBird/Courtly/internal/logger"
	"github.com/JaeMinBird/Courtly/internal/metrics"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// Mailer queues the signup confirmation email; delivery is best effort.
type Mailer interface {
	SendSignupConfirmation(ctx context.Context, to string) error
}

type Service interface {
	SignUp(ctx context.Context, email, password string) (*User, error)
	SignIn(ctx context.Context, email, password string) (*User, *Session, error)
	SignOut(ctx context.Context, token string) error
	GetByID(ctx context.Context, userID string) (*User, error)
}

type service struct {
	repo      Repository
	sessions  *auth.SessionStore
	mailer    Mailer
	jwtSecret string
}

func NewService(repo Repository, sessions *auth.SessionStore, mailer Mailer, jwtSecret string) Service {
	return &service{
		repo:      repo,
		sessions:  sessions,
		mailer:    mailer,
		jwtSecret: jwtSecret,
	}
}

func (s *service) SignUp(ctx context.Context, email, password string) (*User, error) {
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, email, passwordHash, "member")
	if err != nil {
		return nil, err
	}

	metrics.RecordSignup()

	if s.mailer != nil {
		if err := s.mailer.SendSignupConfirmation(ctx, user.Email); err != nil {
			logger.Errorf("Failed to queue signup confirmation for %s: %v", user.Email, err)
		}
	}

	return user, nil
}

func (s *service) SignIn(ctx context.Context, email, password string) (*User, *Session, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.RecordSignin("failure")
		return nil, nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		metrics.RecordSignin("failure")
		return nil, nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		user.ID,
		user.Email,
		user.Role,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, nil, err
	}

	metrics.RecordSignin("success")
	return user, &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(auth.AccessTokenTTL),
	}, nil
}

// SignOut revokes the presented token for the remainder of its lifetime.
// Signing out without a token, or with one that no longer validates, is a
// no-op success.
func (s *service) SignOut(ctx context.Context, token string) error {
	if token == "" || s.sessions == nil {
		return nil
	}

	claims, err := auth.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil
	}

	ttl := auth.AccessTokenTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}

	return s.sessions.Revoke(ctx, token, ttl)
}

func (s *service) GetByID(ctx context.Context, userID string) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
