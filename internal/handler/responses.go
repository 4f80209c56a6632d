package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and user message.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", op, "status", status, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "op", op, "status", status, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "The game server is unavailable. Please try again later."

	// Session messages
	ErrMsgNotLoggedInError        = "Please log in first"
	ErrMsgSessionExpiredError     = "Your session has expired. Please log in again."
	ErrMsgInvalidCredentialsError = "Invalid email or password"
	ErrMsgAdminTokenExpiredError  = "Admin session expired. Please log in again."

	// Catalog messages
	ErrMsgResourceNotFoundErr = "Resource not found"
	ErrMsgCaseNotFoundError   = "Case not found"
	ErrMsgEmptyCaseError      = "This case has no items"

	// Inventory and economy messages
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgNotInInventoryError = "You don't have that item"
	ErrMsgNotEnoughMoneyError = "Not enough balance"
	ErrMsgBonusNotReadyError  = "Daily bonus is not ready yet"

	// Reveal messages
	ErrMsgRevealNotFoundError   = "Reveal not found"
	ErrMsgRevealInProgressError = "Finish the current opening first"
	ErrMsgInvalidTransitionErr  = "That reveal cannot do this right now"
	ErrMsgNoWinnerError         = "No item could be drawn from this case"

	// Battle messages
	ErrMsgBattleNotFoundError    = "Battle not found"
	ErrMsgInvalidBattleModeError = "Invalid battle mode"
	ErrMsgPlaybackNotFoundError  = "Battle has not been played yet"
	ErrMsgPlaybackRunningError   = "Battle is already playing"
	ErrMsgNoServerOutcomeError   = "The server did not send a result for this round"

	// Contract messages
	ErrMsgContractRuleNotFoundErr = "These items cannot be used in a contract"
	ErrMsgContractInvalidError    = "Invalid contract selection"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNotLoggedIn):
		return http.StatusUnauthorized, ErrMsgNotLoggedInError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsError
	case errors.Is(err, domain.ErrAdminTokenExpired):
		return http.StatusUnauthorized, ErrMsgAdminTokenExpiredError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgSessionExpiredError
	case errors.Is(err, domain.ErrCaseNotFound):
		return http.StatusNotFound, ErrMsgCaseNotFoundError
	case errors.Is(err, domain.ErrBattleNotFound):
		return http.StatusNotFound, ErrMsgBattleNotFoundError
	case errors.Is(err, domain.ErrRevealNotFound):
		return http.StatusNotFound, ErrMsgRevealNotFoundError
	case errors.Is(err, domain.ErrPlaybackNotFound):
		return http.StatusNotFound, ErrMsgPlaybackNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgResourceNotFoundErr
	case errors.Is(err, domain.ErrContractRuleNotFound):
		return http.StatusBadRequest, ErrMsgContractRuleNotFoundErr
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusBadRequest, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrContractInvalid):
		return http.StatusBadRequest, ErrMsgContractInvalidError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrEmptyCase):
		return http.StatusBadRequest, ErrMsgEmptyCaseError
	case errors.Is(err, domain.ErrNoWinner):
		return http.StatusBadRequest, ErrMsgNoWinnerError
	case errors.Is(err, domain.ErrInvalidBattleMode):
		return http.StatusBadRequest, ErrMsgInvalidBattleModeError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrBonusNotReady):
		return http.StatusTooManyRequests, ErrMsgBonusNotReadyError
	case errors.Is(err, domain.ErrRevealInProgress):
		return http.StatusConflict, ErrMsgRevealInProgressError
	case errors.Is(err, domain.ErrPlaybackRunning):
		return http.StatusConflict, ErrMsgPlaybackRunningError
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, ErrMsgInvalidTransitionErr
	case errors.Is(err, domain.ErrNoServerOutcome):
		return http.StatusBadGateway, ErrMsgNoServerOutcomeError
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusBadGateway, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
