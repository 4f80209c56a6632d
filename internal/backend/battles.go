package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// ListBattles returns lobbies, optionally filtered by status.
func (c *Client) ListBattles(ctx context.Context, status domain.BattleStatus) ([]domain.Battle, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	var raw json.RawMessage
	if err := c.do(ctx, call{method: http.MethodGet, path: "/public/battles", query: q, out: &raw}); err != nil {
		return nil, err
	}
	return decodeList[domain.Battle](raw)
}

// CreateBattle opens a new lobby.
func (c *Client) CreateBattle(ctx context.Context, req domain.CreateBattleRequest) (*domain.Battle, error) {
	var out domain.Battle
	if err := c.do(ctx, call{method: http.MethodPost, path: "/public/battles", body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// JoinBattle seats email in the lobby.
func (c *Client) JoinBattle(ctx context.Context, id, email string) (*domain.Battle, error) {
	var out domain.Battle
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/public/battles/" + url.PathEscape(id) + "/join",
		body:   map[string]string{"email": email},
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// StartBattle asks the backend to roll every round.
func (c *Client) StartBattle(ctx context.Context, id string) (*domain.Battle, error) {
	var out domain.Battle
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/public/battles/" + url.PathEscape(id) + "/start",
		body:   struct{}{},
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBattle fetches a battle with its rounds.
func (c *Client) GetBattle(ctx context.Context, id string) (*domain.Battle, error) {
	var out domain.Battle
	if err := c.do(ctx, call{method: http.MethodGet, path: "/public/battles/" + url.PathEscape(id), out: &out}); err != nil {
		return nil, err
	}
	if out.ID == "" {
		out.ID = id
	}
	return &out, nil
}
