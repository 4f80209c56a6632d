package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// Account is the server-side view of a user: identity and authoritative balance.
type Account struct {
	ID       string       `json:"id"`
	Email    string       `json:"email"`
	Username string       `json:"username,omitempty"`
	Balance  domain.Money `json:"balance"`
	Role     string       `json:"role,omitempty"`
	// HasBalance is false when the response carried no balance field.
	HasBalance bool `json:"-"`
}

type accountWire struct {
	ID       string        `json:"id"`
	MongoID  string        `json:"_id"`
	Email    string        `json:"email"`
	Username string        `json:"username"`
	Balance  *domain.Money `json:"balance"`
	Role     string        `json:"role"`
}

func (w accountWire) account() *Account {
	a := &Account{
		ID:       w.ID,
		Email:    w.Email,
		Username: w.Username,
		Role:     w.Role,
	}
	if a.ID == "" {
		a.ID = w.MongoID
	}
	if w.Balance != nil {
		a.Balance = *w.Balance
		a.HasBalance = true
	}
	return a
}

type balanceDelta struct {
	Delta domain.Money `json:"delta"`
}

// GetUserByEmail fetches the account behind email.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*Account, error) {
	var w accountWire
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/public/user-by-email",
		query:  url.Values{"email": {email}},
		out:    &w,
	})
	if err != nil {
		return nil, err
	}
	return w.account(), nil
}

// AddBalance applies delta (negative to debit) to the account behind email.
func (c *Client) AddBalance(ctx context.Context, email string, delta domain.Money) (*Account, error) {
	var w accountWire
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/public/balance/add",
		query:  url.Values{"email": {email}},
		body:   balanceDelta{Delta: delta},
		out:    &w,
	})
	if err != nil {
		return nil, err
	}
	return w.account(), nil
}
