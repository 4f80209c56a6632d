package handler

import (
	"net/http"

	"github.com/samigvnc/csgo-frontend/internal/account"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/logger"
)

// InventoryResponse lists the mirrored inventory.
type InventoryResponse struct {
	Items []domain.Item `json:"items"`
	Count int           `json:"count"`
}

// HandleLogin signs in against the backend and seeds the local mirror
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body account.LoginInput true "Credentials"
// @Success 200 {object} account.Profile
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/login [post]
func HandleLogin(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req account.LoginInput
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		profile, err := svc.Login(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "login", err)
			return
		}

		logger.FromContext(r.Context()).Info("User logged in", "email", profile.User.Email)
		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleRegister creates the local profile for a backend account
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param request body account.RegisterInput true "Sign-up form"
// @Success 201 {object} account.Profile
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/register [post]
func HandleRegister(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req account.RegisterInput
		if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
			return
		}

		profile, err := svc.Register(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "register", err)
			return
		}

		respondJSON(w, http.StatusCreated, profile)
	}
}

// HandleLogout clears the session mirror
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/auth/logout [post]
func HandleLogout(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context()); err != nil {
			respondServiceError(w, r, "logout", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedOut})
	}
}

// HandleProfile returns the signed-in user with level progress
// @Summary Current profile
// @Tags profile
// @Produce json
// @Success 200 {object} account.Profile
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/me [get]
func HandleProfile(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.Profile(r.Context())
		if err != nil {
			respondServiceError(w, r, "profile", err)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleInventory lists the items won so far
// @Summary Inventory
// @Tags profile
// @Produce json
// @Success 200 {object} InventoryResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/me/inventory [get]
func HandleInventory(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Inventory(r.Context())
		if err != nil {
			respondServiceError(w, r, "inventory", err)
			return
		}
		respondJSON(w, http.StatusOK, InventoryResponse{Items: items, Count: len(items)})
	}
}
