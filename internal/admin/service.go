package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/logger"
)

// Backend is the admin surface of the REST API.
type Backend interface {
	Login(ctx context.Context, email, password string) (*backend.TokenResponse, error)
	ListUsers(ctx context.Context, token string) ([]backend.Account, error)
	SetUserBalance(ctx context.Context, token, id string, balance domain.Money) (*backend.Account, error)
	DeleteUser(ctx context.Context, token, id string) error
	AdminListCases(ctx context.Context, token string) ([]domain.Case, error)
	CreateCase(ctx context.Context, token string, in backend.CaseInput) (*domain.Case, error)
	DeleteCase(ctx context.Context, token, id string) error
}

// CatalogInvalidator drops cached cases after admin edits.
type CatalogInvalidator interface {
	Invalidate(id string)
	Purge()
}

// Status describes the held admin token.
type Status struct {
	LoggedIn  bool       `json:"loggedIn"`
	Email     string     `json:"email,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Service proxies admin operations with an in-memory bearer token.
type Service interface {
	Login(ctx context.Context, email, password string) (*Status, error)
	Logout(ctx context.Context)
	Status(ctx context.Context) *Status
	ListUsers(ctx context.Context) ([]backend.Account, error)
	SetUserBalance(ctx context.Context, id string, balance domain.Money) (*backend.Account, error)
	DeleteUser(ctx context.Context, id string) error
	ListCases(ctx context.Context) ([]domain.Case, error)
	CreateCase(ctx context.Context, in backend.CaseInput) (*domain.Case, error)
	DeleteCase(ctx context.Context, id string) error
	PurgeCatalog(ctx context.Context) error
}

type service struct {
	backend Backend
	catalog CatalogInvalidator
	now     func() time.Time

	mu      sync.Mutex
	token   string
	email   string
	expires *time.Time
}

// NewService creates the admin service. catalog may be nil.
func NewService(b Backend, catalog CatalogInvalidator) Service {
	return &service{backend: b, catalog: catalog, now: time.Now}
}

func (s *service) Login(ctx context.Context, email, password string) (*Status, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if res.AccessToken == "" {
		return nil, fmt.Errorf("%w: login response carried no token", domain.ErrBackendUnavailable)
	}

	s.mu.Lock()
	s.token = res.AccessToken
	s.email = email
	s.expires = nil
	if exp, ok := tokenExpiry(res.AccessToken); ok {
		s.expires = &exp
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Info("Admin signed in", "email", email)
	return s.Status(ctx), nil
}

func (s *service) Logout(ctx context.Context) {
	s.drop()
}

func (s *service) Status(ctx context.Context) *Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return &Status{}
	}
	st := &Status{LoggedIn: true, Email: s.email}
	if s.expires != nil {
		exp := *s.expires
		st.ExpiresAt = &exp
	}
	return st
}

func (s *service) drop() {
	s.mu.Lock()
	s.token, s.email, s.expires = "", "", nil
	s.mu.Unlock()
}

// bearer returns the live token, dropping it once expired.
func (s *service) bearer() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", domain.ErrUnauthorized
	}
	if s.expires != nil && !s.now().Before(*s.expires) {
		s.token, s.email, s.expires = "", "", nil
		return "", domain.ErrAdminTokenExpired
	}
	return s.token, nil
}

// checked forgets the token when the backend answers 401.
func (s *service) checked(ctx context.Context, err error) error {
	if backend.IsStatus(err, http.StatusUnauthorized) {
		logger.FromContext(ctx).Warn("Admin token rejected, signing out")
		s.drop()
	}
	return err
}

func (s *service) ListUsers(ctx context.Context) ([]backend.Account, error) {
	token, err := s.bearer()
	if err != nil {
		return nil, err
	}
	users, err := s.backend.ListUsers(ctx, token)
	return users, s.checked(ctx, err)
}

func (s *service) SetUserBalance(ctx context.Context, id string, balance domain.Money) (*backend.Account, error) {
	if balance < 0 {
		return nil, fmt.Errorf("%w: balance must not be negative", domain.ErrInvalidInput)
	}
	token, err := s.bearer()
	if err != nil {
		return nil, err
	}
	acct, err := s.backend.SetUserBalance(ctx, token, id, balance)
	return acct, s.checked(ctx, err)
}

func (s *service) DeleteUser(ctx context.Context, id string) error {
	token, err := s.bearer()
	if err != nil {
		return err
	}
	return s.checked(ctx, s.backend.DeleteUser(ctx, token, id))
}

func (s *service) ListCases(ctx context.Context) ([]domain.Case, error) {
	token, err := s.bearer()
	if err != nil {
		return nil, err
	}
	cases, err := s.backend.AdminListCases(ctx, token)
	return cases, s.checked(ctx, err)
}

func (s *service) CreateCase(ctx context.Context, in backend.CaseInput) (*domain.Case, error) {
	token, err := s.bearer()
	if err != nil {
		return nil, err
	}
	cs, err := s.backend.CreateCase(ctx, token, in)
	if err = s.checked(ctx, err); err != nil {
		return nil, err
	}
	if s.catalog != nil && cs.ID != "" {
		s.catalog.Invalidate(cs.ID)
	}
	return cs, nil
}

func (s *service) DeleteCase(ctx context.Context, id string) error {
	token, err := s.bearer()
	if err != nil {
		return err
	}
	if err := s.checked(ctx, s.backend.DeleteCase(ctx, token, id)); err != nil {
		return err
	}
	if s.catalog != nil {
		s.catalog.Invalidate(id)
	}
	return nil
}

// PurgeCatalog empties the case cache.
func (s *service) PurgeCatalog(ctx context.Context) error {
	if _, err := s.bearer(); err != nil {
		return err
	}
	if s.catalog != nil {
		s.catalog.Purge()
	}
	logger.FromContext(ctx).Info("Case cache purged")
	return nil
}
