package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// CaseInput is the payload for creating a case through the admin API.
type CaseInput struct {
	Name     string        `json:"name" validate:"required,min=1,max=100"`
	Price    domain.Money  `json:"price" validate:"gte=0"`
	Image    string        `json:"image,omitempty" validate:"omitempty,url"`
	Type     string        `json:"type,omitempty" validate:"omitempty,max=30"`
	Contents []domain.Item `json:"contents,omitempty" validate:"dive"`
}

// ListUsers returns every account.
func (c *Client) ListUsers(ctx context.Context, token string) ([]Account, error) {
	var raw json.RawMessage
	if err := c.do(ctx, call{method: http.MethodGet, path: "/admin/users", out: &raw, bearer: token}); err != nil {
		return nil, err
	}
	wires, err := decodeList[accountWire](raw)
	if err != nil {
		return nil, err
	}
	out := make([]Account, 0, len(wires))
	for _, w := range wires {
		out = append(out, *w.account())
	}
	return out, nil
}

// SetUserBalance overwrites the balance of account id.
func (c *Client) SetUserBalance(ctx context.Context, token, id string, balance domain.Money) (*Account, error) {
	var w accountWire
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   "/admin/users/" + url.PathEscape(id) + "/balance",
		body:   map[string]domain.Money{"balance": balance},
		out:    &w,
		bearer: token,
	})
	if err != nil {
		return nil, err
	}
	return w.account(), nil
}

// DeleteUser removes account id.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: "/admin/users/" + url.PathEscape(id), bearer: token})
}

// AdminListCases lists cases through the admin route, falling back to the
// public catalog on backends that do not expose it.
func (c *Client) AdminListCases(ctx context.Context, token string) ([]domain.Case, error) {
	var raw json.RawMessage
	err := c.do(ctx, call{method: http.MethodGet, path: "/admin/cases", out: &raw, bearer: token})
	if IsStatus(err, http.StatusNotFound) {
		return c.ListCases(ctx, CaseQuery{Limit: 500})
	}
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Case](raw)
}

// CreateCase adds a case.
func (c *Client) CreateCase(ctx context.Context, token string, in CaseInput) (*domain.Case, error) {
	var out domain.Case
	if err := c.do(ctx, call{method: http.MethodPost, path: "/admin/cases", body: in, out: &out, bearer: token}); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCase removes a case.
func (c *Client) DeleteCase(ctx context.Context, token, id string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: "/admin/cases/" + url.PathEscape(id), bearer: token})
}
