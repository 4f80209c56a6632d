package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/logger"
)

const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute

	DefaultListLimit = 64
	HomeListLimit    = 32
	FeaturedCount    = 3
	RecentCount      = 8

	TypeAll     = "all"
	TypePremium = "premium"
	TypeRegular = "regular"
)

// Backend is the part of the REST client the catalog reads from.
type Backend interface {
	ListCases(ctx context.Context, q backend.CaseQuery) ([]domain.Case, error)
	GetCase(ctx context.Context, id string) (*domain.Case, error)
}

// Query filters a case listing.
type Query struct {
	Limit  int    `json:"limit"`
	Search string `json:"search"`
	Type   string `json:"type"` // all | premium | regular
}

// Home is the landing page selection.
type Home struct {
	Featured []domain.Case `json:"featured"`
	Recent   []domain.Case `json:"recent"`
}

// Service reads cases from the backend and caches full case records.
type Service interface {
	List(ctx context.Context, q Query) ([]domain.Case, error)
	Get(ctx context.Context, id string) (*domain.Case, error)
	Home(ctx context.Context) (*Home, error)
	Invalidate(id string)
	Purge()
}

type service struct {
	backend Backend
	cache   *caseCache
}

// NewService creates a catalog over b with an LRU of the given size and ttl.
func NewService(b Backend, size int, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{backend: b, cache: newCaseCache(size, ttl)}
}

func (s *service) List(ctx context.Context, q Query) ([]domain.Case, error) {
	if q.Limit <= 0 {
		q.Limit = DefaultListLimit
	}
	q.Search = strings.TrimSpace(q.Search)
	q.Type = strings.ToLower(strings.TrimSpace(q.Type))

	bq := backend.CaseQuery{Limit: q.Limit, Search: q.Search}
	if q.Type != "" && q.Type != TypeAll {
		bq.Type = q.Type
	}

	list, err := s.backend.ListCases(ctx, bq)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return Filter(list, q), nil
}

func (s *service) Get(ctx context.Context, id string) (*domain.Case, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty case id", domain.ErrInvalidInput)
	}
	if cs, ok := s.cache.Get(id); ok {
		return &cs, nil
	}

	cs, err := s.backend.GetCase(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCaseNotFound, id)
		}
		return nil, fmt.Errorf("failed to load case %s: %w", id, err)
	}

	s.cache.Set(id, *cs)
	logger.FromContext(ctx).Debug("Case cached", "case_id", id, "contents", len(cs.Contents))
	return cs, nil
}

func (s *service) Home(ctx context.Context) (*Home, error) {
	list, err := s.backend.ListCases(ctx, backend.CaseQuery{Limit: HomeListLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return &Home{Featured: Featured(list), Recent: Recent(list)}, nil
}

func (s *service) Invalidate(id string) {
	s.cache.Invalidate(id)
}

func (s *service) Purge() {
	s.cache.Clear()
}

// Filter applies the name search and the premium/regular split locally,
// since not every backend honors those query parameters.
func Filter(list []domain.Case, q Query) []domain.Case {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	kind := strings.ToLower(q.Type)

	out := make([]domain.Case, 0, len(list))
	for _, c := range list {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		premium := c.IsPremium || strings.EqualFold(c.Type, TypePremium)
		switch kind {
		case TypePremium:
			if !premium {
				continue
			}
		case TypeRegular:
			if premium {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// Featured returns up to three flagged cases, or the first three when none are flagged.
func Featured(list []domain.Case) []domain.Case {
	out := make([]domain.Case, 0, FeaturedCount)
	for _, c := range list {
		if c.Featured || c.IsNew || c.IsPremium {
			out = append(out, c)
			if len(out) == FeaturedCount {
				return out
			}
		}
	}
	if len(out) > 0 {
		return out
	}
	return head(list, FeaturedCount)
}

// Recent returns the first eight cases.
func Recent(list []domain.Case) []domain.Case {
	return head(list, RecentCount)
}

func head(list []domain.Case, n int) []domain.Case {
	if len(list) < n {
		n = len(list)
	}
	out := make([]domain.Case, n)
	copy(out, list[:n])
	return out
}
