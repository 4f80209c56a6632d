package handler

import (
	"net/http"

	"github.com/samigvnc/csgo-frontend/internal/contract"
	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// CompleteContractRequest selects the items traded in.
type CompleteContractRequest struct {
	From domain.Rarity `json:"from" validate:"required,rarity"`
	UIDs []string      `json:"uids" validate:"required,min=1,max=50,dive,required"`
}

// ContractRulesResponse lists every upgrade step.
type ContractRulesResponse struct {
	Rules []domain.ContractRule `json:"rules"`
}

// EligibleResponse lists inventory items usable for a contract from one tier.
type EligibleResponse struct {
	From  domain.Rarity `json:"from"`
	Items []domain.Item `json:"items"`
	Count int           `json:"count"`
}

// ContractResponse wraps the outcome with a user message.
type ContractResponse struct {
	Message string                 `json:"message"`
	Result  *domain.ContractResult `json:"result"`
}

// HandleContractRules lists the tier upgrade rules
// @Summary Contract rules
// @Tags contracts
// @Produce json
// @Success 200 {object} ContractRulesResponse
// @Router /api/v1/contracts/rules [get]
func HandleContractRules(svc contract.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ContractRulesResponse{Rules: svc.Rules(r.Context())})
	}
}

// HandleContractEligible lists inventory items of a tier
// @Summary Eligible contract items
// @Tags contracts
// @Produce json
// @Param from query string true "Input rarity"
// @Success 200 {object} EligibleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/contracts/eligible [get]
func HandleContractEligible(svc contract.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := GetQueryParam(r, w, "from")
		if !ok {
			return
		}
		from := domain.ParseRarity(raw)
		if !from.Known() {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRarity)
			return
		}

		items, err := svc.Eligible(r.Context(), from)
		if err != nil {
			respondServiceError(w, r, "eligible items", err)
			return
		}
		respondJSON(w, http.StatusOK, EligibleResponse{From: from, Items: items, Count: len(items)})
	}
}

// HandleCompleteContract trades the selected items for a roll at the next tier
// @Summary Complete contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param request body CompleteContractRequest true "Selection"
// @Success 200 {object} ContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/contracts [post]
func HandleCompleteContract(svc contract.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompleteContractRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Complete contract"); err != nil {
			return
		}

		res, err := svc.Complete(r.Context(), domain.ParseRarity(string(req.From)), req.UIDs)
		if err != nil {
			respondServiceError(w, r, "complete contract", err)
			return
		}

		msg := MsgContractFailed
		if res.Success {
			msg = MsgContractSucceeded
		}
		respondJSON(w, http.StatusOK, ContractResponse{Message: msg, Result: res})
	}
}
