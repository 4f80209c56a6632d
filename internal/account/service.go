package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/logger"
	"github.com/samigvnc/csgo-frontend/internal/session"
)

// Auth exchanges credentials for a bearer token.
type Auth interface {
	Login(ctx context.Context, email, password string) (*backend.TokenResponse, error)
	SetToken(token string)
}

// BalanceSyncer pulls the server balance into the mirror.
type BalanceSyncer interface {
	SyncBalance(ctx context.Context) (domain.Money, error)
}

// LoginInput is the sign-in form.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the sign-up form.
type RegisterInput struct {
	Username        string `json:"username" validate:"required,min=2,max=32"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Profile is the mirror plus derived progression.
type Profile struct {
	User     *domain.User `json:"user"`
	Progress float64      `json:"progress"` // percent of the current level
}

// Service manages the signed-in user.
type Service interface {
	Login(ctx context.Context, in LoginInput) (*Profile, error)
	Register(ctx context.Context, in RegisterInput) (*Profile, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*Profile, error)
	Inventory(ctx context.Context) ([]domain.Item, error)
}

type service struct {
	auth   Auth
	syncer BalanceSyncer
	store  *session.Store
}

// NewService creates the account service.
func NewService(auth Auth, syncer BalanceSyncer, store *session.Store) Service {
	return &service{auth: auth, syncer: syncer, store: store}
}

func (s *service) Login(ctx context.Context, in LoginInput) (*Profile, error) {
	email := normalizeEmail(in.Email)
	token, err := s.authenticate(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.User()
	if err != nil || !strings.EqualFold(user.Email, email) {
		user = domain.NewUser("", localPart(email), email)
	}
	return s.start(ctx, user, token)
}

// Register starts a fresh mirror for the new identity. The backend has no
// public registration route, so the credentials must already be accepted by /auth/login.
func (s *service) Register(ctx context.Context, in RegisterInput) (*Profile, error) {
	if in.Password != in.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", domain.ErrInvalidInput)
	}
	email := normalizeEmail(in.Email)
	token, err := s.authenticate(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = localPart(email)
	}
	return s.start(ctx, domain.NewUser("", username, email), token)
}

func (s *service) authenticate(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if res.AccessToken == "" {
		return "", fmt.Errorf("%w: login response carried no token", domain.ErrBackendUnavailable)
	}
	return res.AccessToken, nil
}

func (s *service) start(ctx context.Context, user *domain.User, token string) (*Profile, error) {
	if err := s.store.SetSession(user, token); err != nil {
		return nil, err
	}
	s.auth.SetToken(token)

	if _, err := s.syncer.SyncBalance(ctx); err != nil {
		logger.FromContext(ctx).Warn("Balance sync after login failed", "email", user.Email, "error", err)
	}
	logger.FromContext(ctx).Info("User signed in", "email", user.Email)
	return s.Profile(ctx)
}

func (s *service) Logout(ctx context.Context) error {
	email := s.store.Email()
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.auth.SetToken("")
	if email != "" {
		logger.FromContext(ctx).Info("User signed out", "email", email)
	}
	return nil
}

func (s *service) Profile(ctx context.Context) (*Profile, error) {
	user, err := s.store.User()
	if err != nil {
		return nil, err
	}
	p := &Profile{User: user}
	if user.XPToNextLevel > 0 {
		p.Progress = float64(user.XP) / float64(user.XPToNextLevel) * 100
	}
	return p, nil
}

func (s *service) Inventory(ctx context.Context) ([]domain.Item, error) {
	user, err := s.store.User()
	if err != nil {
		return nil, err
	}
	return user.Inventory, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
