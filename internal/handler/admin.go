package handler

import (
	"net/http"

	"github.com/samigvnc/csgo-frontend/internal/admin"
	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/logger"
)

// AdminLoginRequest holds admin credentials.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SetBalanceRequest overwrites a user balance.
type SetBalanceRequest struct {
	Balance domain.Money `json:"balance" validate:"gte=0"`
}

// AdminUsersResponse lists backend accounts.
type AdminUsersResponse struct {
	Users []backend.Account `json:"users"`
	Count int               `json:"count"`
}

// HandleAdminLogin obtains and holds an admin bearer token
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} admin.Status
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/admin/login [post]
func HandleAdminLogin(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminLoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin login"); err != nil {
			return
		}
		status, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondServiceError(w, r, "admin login", err)
			return
		}
		logger.FromContext(r.Context()).Info("Admin logged in", "email", status.Email)
		respondJSON(w, http.StatusOK, status)
	}
}

// HandleAdminLogout drops the admin token
// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/logout [post]
func HandleAdminLogout(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Logout(r.Context())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedOut})
	}
}

// HandleAdminStatus reports whether an admin token is held
// @Summary Admin status
// @Tags admin
// @Produce json
// @Success 200 {object} admin.Status
// @Router /api/v1/admin/status [get]
func HandleAdminStatus(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Status(r.Context()))
	}
}

// HandleAdminListUsers lists every account
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {object} AdminUsersResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/admin/users [get]
func HandleAdminListUsers(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			respondServiceError(w, r, "admin list users", err)
			return
		}
		respondJSON(w, http.StatusOK, AdminUsersResponse{Users: users, Count: len(users)})
	}
}

// HandleAdminSetBalance overwrites a user balance
// @Summary Set user balance
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body SetBalanceRequest true "New balance"
// @Success 200 {object} backend.Account
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/admin/users/{id}/balance [put]
func HandleAdminSetBalance(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetURLParam(r, w, "id")
		if !ok {
			return
		}
		var req SetBalanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set balance"); err != nil {
			return
		}
		acct, err := svc.SetUserBalance(r.Context(), id, req.Balance)
		if err != nil {
			respondServiceError(w, r, "admin set balance", err)
			return
		}
		respondJSON(w, http.StatusOK, acct)
	}
}

// HandleAdminDeleteUser deletes an account
// @Summary Delete user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/users/{id} [delete]
func HandleAdminDeleteUser(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetURLParam(r, w, "id")
		if !ok {
			return
		}
		if err := svc.DeleteUser(r.Context(), id); err != nil {
			respondServiceError(w, r, "admin delete user", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUserDeleted})
	}
}

// HandleAdminListCases lists cases through the admin API
// @Summary Admin list cases
// @Tags admin
// @Produce json
// @Success 200 {object} CaseListResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/admin/cases [get]
func HandleAdminListCases(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cases, err := svc.ListCases(r.Context())
		if err != nil {
			respondServiceError(w, r, "admin list cases", err)
			return
		}
		respondJSON(w, http.StatusOK, CaseListResponse{Cases: cases, Count: len(cases)})
	}
}

// HandleAdminCreateCase creates a case
// @Summary Create case
// @Tags admin
// @Accept json
// @Produce json
// @Param request body backend.CaseInput true "Case"
// @Success 201 {object} domain.Case
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/admin/cases [post]
func HandleAdminCreateCase(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req backend.CaseInput
		if err := DecodeAndValidateRequest(r, w, &req, "Create case"); err != nil {
			return
		}
		cs, err := svc.CreateCase(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "admin create case", err)
			return
		}
		respondJSON(w, http.StatusCreated, cs)
	}
}

// HandleAdminDeleteCase deletes a case and drops it from the cache
// @Summary Delete case
// @Tags admin
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/cases/{id} [delete]
func HandleAdminDeleteCase(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetURLParam(r, w, "id")
		if !ok {
			return
		}
		if err := svc.DeleteCase(r.Context(), id); err != nil {
			respondServiceError(w, r, "admin delete case", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCaseDeleted})
	}
}

// HandleAdminPurgeCatalog empties the case cache
// @Summary Purge catalog cache
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/admin/cache/purge [post]
func HandleAdminPurgeCatalog(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.PurgeCatalog(r.Context()); err != nil {
			respondServiceError(w, r, "admin purge catalog", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCatalogPurged})
	}
}
