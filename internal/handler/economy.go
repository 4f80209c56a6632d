package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/samigvnc/csgo-frontend/internal/economy"
)

// SellItemRequest names the inventory entry to sell.
type SellItemRequest struct {
	UID string `json:"uid" validate:"required,max=128"`
}

// HandleSellItem sells an inventory item back at its listed price
// @Summary Sell item
// @Tags economy
// @Accept json
// @Produce json
// @Param request body SellItemRequest true "Item to sell"
// @Success 200 {object} economy.SellResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/economy/sell [post]
func HandleSellItem(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SellItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
			return
		}

		res, err := svc.Sell(r.Context(), req.UID)
		if err != nil {
			respondServiceError(w, r, "sell item", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleBonusStatus reports when the daily bonus is claimable
// @Summary Daily bonus status
// @Tags economy
// @Produce json
// @Success 200 {object} economy.BonusStatus
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/economy/bonus [get]
func HandleBonusStatus(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := svc.BonusStatus(r.Context())
		if err != nil {
			respondServiceError(w, r, "bonus status", err)
			return
		}
		respondJSON(w, http.StatusOK, status)
	}
}

// HandleClaimBonus credits the daily bonus
// @Summary Claim daily bonus
// @Tags economy
// @Produce json
// @Success 200 {object} economy.BonusResult
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/economy/bonus/claim [post]
func HandleClaimBonus(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.ClaimDailyBonus(r.Context())
		if err != nil {
			var notReady *economy.BonusNotReadyError
			if errors.As(err, &notReady) {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(notReady.Remaining.Seconds()))))
			}
			respondServiceError(w, r, "claim bonus", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
