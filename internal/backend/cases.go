package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// CaseQuery filters the public case listing.
type CaseQuery struct {
	Limit  int
	Search string
	Type   string
}

func (q CaseQuery) values() url.Values {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	return v
}

// ListCases returns the public catalog.
func (c *Client) ListCases(ctx context.Context, q CaseQuery) ([]domain.Case, error) {
	var raw json.RawMessage
	if err := c.do(ctx, call{method: http.MethodGet, path: "/public/cases", query: q.values(), out: &raw}); err != nil {
		return nil, err
	}
	return decodeList[domain.Case](raw)
}

// GetCase returns one case with its contents.
func (c *Client) GetCase(ctx context.Context, id string) (*domain.Case, error) {
	var out domain.Case
	if err := c.do(ctx, call{method: http.MethodGet, path: "/public/cases/" + url.PathEscape(id), out: &out}); err != nil {
		return nil, err
	}
	if out.ID == "" {
		out.ID = id
	}
	return &out, nil
}
