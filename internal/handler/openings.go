package handler

import (
	"errors"
	"net/http"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/logger"
	"github.com/samigvnc/csgo-frontend/internal/opening"
	"github.com/samigvnc/csgo-frontend/internal/reveal"
)

// OpenCaseRequest starts a reveal for a case.
type OpenCaseRequest struct {
	CaseID string `json:"caseId" validate:"required,max=128"`
}

// SpinRequest carries the live strip measurement from the renderer.
// An empty layout is allowed and yields a zero offset.
type SpinRequest struct {
	Layout reveal.Layout `json:"layout"`
}

// HandleOpenCase debits the case price and builds the reveal strip
// @Summary Open a case
// @Tags openings
// @Accept json
// @Produce json
// @Param request body OpenCaseRequest true "Case to open"
// @Success 201 {object} opening.View
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/openings [post]
func HandleOpenCase(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OpenCaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Open case"); err != nil {
			return
		}

		view, err := svc.Open(r.Context(), req.CaseID)
		if err != nil {
			respondServiceError(w, r, "open case", err)
			return
		}

		logger.FromContext(r.Context()).Info("Case opened",
			"case_id", view.CaseID, "reveal_id", view.ID, "price", view.Price.Format())
		respondJSON(w, http.StatusCreated, view)
	}
}

// HandleSpin computes the scroll target and starts the animation clock
// @Summary Spin a reveal
// @Tags openings
// @Accept json
// @Produce json
// @Param id path string true "Reveal ID"
// @Param request body SpinRequest true "Measured layout"
// @Success 200 {object} opening.View
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/openings/{id}/spin [post]
func HandleSpin(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRevealID(r, w)
		if !ok {
			return
		}
		var req SpinRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Spin reveal"); err != nil {
			return
		}

		view, err := svc.Spin(r.Context(), id, req.Layout)
		if err != nil {
			respondServiceError(w, r, "spin reveal", err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleComplete settles a reveal and commits the winner to the inventory
// @Summary Complete a reveal
// @Tags openings
// @Produce json
// @Param id path string true "Reveal ID"
// @Success 200 {object} opening.View
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/openings/{id}/complete [post]
func HandleComplete(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRevealID(r, w)
		if !ok {
			return
		}
		view, err := svc.Complete(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "complete reveal", err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleGetOpening returns a reveal snapshot
// @Summary Get a reveal
// @Tags openings
// @Produce json
// @Param id path string true "Reveal ID"
// @Success 200 {object} opening.View
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/openings/{id} [get]
func HandleGetOpening(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRevealID(r, w)
		if !ok {
			return
		}
		view, err := svc.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get reveal", err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleActiveOpening returns the unsettled reveal of the signed-in user, if any
// @Summary Active reveal
// @Tags openings
// @Produce json
// @Success 200 {object} opening.View
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/openings/active [get]
func HandleActiveOpening(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.Active(r.Context())
		if errors.Is(err, domain.ErrRevealNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err != nil {
			respondServiceError(w, r, "active reveal", err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}
