package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/samigvnc/csgo-frontend/internal/account"
	"github.com/samigvnc/csgo-frontend/internal/domain"
)

func TestHandleLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setup          func(*MockAccountService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: account.LoginInput{Email: "alice@example.com", Password: "secret"},
			setup: func(m *MockAccountService) {
				m.On("Login", mock.Anything, account.LoginInput{Email: "alice@example.com", Password: "secret"}).
					Return(&account.Profile{User: domain.NewUser("1", "alice", "alice@example.com")}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"username":"alice"`,
		},
		{
			name:           "Bad Email",
			body:           account.LoginInput{Email: "alice", Password: "secret"},
			setup:          func(*MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"email":"Invalid email format"`,
		},
		{
			name: "Wrong Password",
			body: account.LoginInput{Email: "alice@example.com", Password: "nope"},
			setup: func(m *MockAccountService) {
				m.On("Login", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMsgInvalidCredentialsError,
		},
		{
			name: "Backend Down",
			body: account.LoginInput{Email: "alice@example.com", Password: "secret"},
			setup: func(m *MockAccountService) {
				m.On("Login", mock.Anything, mock.Anything).Return(nil, domain.ErrBackendUnavailable)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   ErrMsgUnavailableError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAccountService{}
			tt.setup(svc)

			w := serve(t, http.MethodPost, "/auth/login", "/auth/login", tt.body, HandleLogin(svc))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleRegister_PasswordMismatch(t *testing.T) {
	svc := &MockAccountService{}
	body := account.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "secret1", ConfirmPassword: "secret2",
	}

	w := serve(t, http.MethodPost, "/auth/register", "/auth/register", body, HandleRegister(svc))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"confirmPassword":"Passwords do not match"`)
	svc.AssertNotCalled(t, "Register")
}

func TestHandleProfileAndInventory(t *testing.T) {
	user := domain.NewUser("1", "alice", "alice@example.com")
	user.Inventory = []domain.Item{{UID: "u1", Name: "P250 | Sand Dune"}}

	svc := &MockAccountService{}
	svc.On("Profile", mock.Anything).Return(&account.Profile{User: user, Progress: 40}, nil)
	svc.On("Inventory", mock.Anything).Return(user.Inventory, nil)
	svc.On("Logout", mock.Anything).Return(nil)

	w := serve(t, http.MethodGet, "/me", "/me", nil, HandleProfile(svc))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"progress":40`)

	w = serve(t, http.MethodGet, "/me/inventory", "/me/inventory", nil, HandleInventory(svc))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	w = serve(t, http.MethodPost, "/auth/logout", "/auth/logout", nil, HandleLogout(svc))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgLoggedOut)

	svc.AssertExpectations(t)
}

func TestHandleProfile_NotLoggedIn(t *testing.T) {
	svc := &MockAccountService{}
	svc.On("Profile", mock.Anything).Return(nil, domain.ErrNotLoggedIn)

	w := serve(t, http.MethodGet, "/me", "/me", nil, HandleProfile(svc))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgNotLoggedInError)
}
