package handler

import (
	"net/http"

	"github.com/samigvnc/csgo-frontend/internal/catalog"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/opening"
	"github.com/samigvnc/csgo-frontend/internal/reveal"
)

// CaseListResponse is a page of cases.
type CaseListResponse struct {
	Cases []domain.Case `json:"cases"`
	Count int           `json:"count"`
}

// OddsResponse lists the exact drop chance of every content item.
type OddsResponse struct {
	CaseID string            `json:"caseId"`
	Odds   []reveal.ItemOdds `json:"odds"`
}

// HandleListCases lists cases with optional search and premium/regular filter
// @Summary List cases
// @Tags cases
// @Produce json
// @Param limit query int false "Maximum number of cases"
// @Param search query string false "Name search"
// @Param type query string false "all, premium or regular"
// @Success 200 {object} CaseListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/cases [get]
func HandleListCases(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetOptionalIntParam(r, w, "limit", 0)
		if !ok {
			return
		}
		q := catalog.Query{
			Limit:  limit,
			Search: GetOptionalQueryParam(r, "search", ""),
			Type:   GetOptionalQueryParam(r, "type", catalog.TypeAll),
		}

		cases, err := svc.List(r.Context(), q)
		if err != nil {
			respondServiceError(w, r, "list cases", err)
			return
		}
		respondJSON(w, http.StatusOK, CaseListResponse{Cases: cases, Count: len(cases)})
	}
}

// HandleHome returns the featured and recent selection of the landing page
// @Summary Landing page cases
// @Tags cases
// @Produce json
// @Success 200 {object} catalog.Home
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/cases/home [get]
func HandleHome(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		home, err := svc.Home(r.Context())
		if err != nil {
			respondServiceError(w, r, "home", err)
			return
		}
		respondJSON(w, http.StatusOK, home)
	}
}

// HandleGetCase returns one case with its contents
// @Summary Get case
// @Tags cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} domain.Case
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/cases/{id} [get]
func HandleGetCase(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetURLParam(r, w, "id")
		if !ok {
			return
		}
		cs, err := svc.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get case", err)
			return
		}
		respondJSON(w, http.StatusOK, cs)
	}
}

// HandleCaseOdds returns the per-item drop chance of a case
// @Summary Case odds
// @Tags cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} OddsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/cases/{id}/odds [get]
func HandleCaseOdds(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetURLParam(r, w, "id")
		if !ok {
			return
		}
		odds, err := svc.Odds(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "case odds", err)
			return
		}
		respondJSON(w, http.StatusOK, OddsResponse{CaseID: id, Odds: odds})
	}
}
