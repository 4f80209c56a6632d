package handler

import (
	"context"
	"net/http"

	"github.com/samigvnc/csgo-frontend/internal/battle"
	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/logger"
	"github.com/samigvnc/csgo-frontend/internal/reveal"
)

// BattleListResponse is the lobby listing.
type BattleListResponse struct {
	Battles []domain.Battle `json:"battles"`
	Count   int             `json:"count"`
}

// PlayBattleRequest carries the strip measurement used for every seat.
type PlayBattleRequest struct {
	Layout reveal.Layout `json:"layout"`
}

var battleStatuses = map[domain.BattleStatus]bool{
	domain.BattleStatusWaiting:  true,
	domain.BattleStatusRunning:  true,
	domain.BattleStatusFinished: true,
}

// HandleListBattles lists lobbies by status
// @Summary List battles
// @Tags battles
// @Produce json
// @Param status query string false "waiting, running or finished" default(waiting)
// @Success 200 {object} BattleListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/battles [get]
func HandleListBattles(svc battle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := domain.BattleStatus(GetOptionalQueryParam(r, "status", string(domain.BattleStatusWaiting)))
		if !battleStatuses[status] {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidStatus)
			return
		}

		battles, err := svc.List(r.Context(), status)
		if err != nil {
			respondServiceError(w, r, "list battles", err)
			return
		}
		respondJSON(w, http.StatusOK, BattleListResponse{Battles: battles, Count: len(battles)})
	}
}

// HandleCreateBattle opens a new lobby owned by the signed-in user
// @Summary Create battle
// @Tags battles
// @Accept json
// @Produce json
// @Param request body battle.CreateInput true "Lobby settings"
// @Success 201 {object} domain.Battle
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/battles [post]
func HandleCreateBattle(svc battle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req battle.CreateInput
		if err := DecodeAndValidateRequest(r, w, &req, "Create battle"); err != nil {
			return
		}

		b, err := svc.Create(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "create battle", err)
			return
		}

		logger.FromContext(r.Context()).Info("Battle created", "battle_id", b.ID, "mode", b.Mode)
		respondJSON(w, http.StatusCreated, b)
	}
}

// HandleJoinBattle seats the signed-in user
// @Summary Join battle
// @Tags battles
// @Produce json
// @Param id path string true "Battle ID"
// @Success 200 {object} domain.Battle
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/battles/{id}/join [post]
func HandleJoinBattle(svc battle.Service) http.HandlerFunc {
	return battleAction(svc, battle.Service.Join, "join battle")
}

// HandleStartBattle asks the backend to roll every round
// @Summary Start battle
// @Tags battles
// @Produce json
// @Param id path string true "Battle ID"
// @Success 200 {object} domain.Battle
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/battles/{id}/start [post]
func HandleStartBattle(svc battle.Service) http.HandlerFunc {
	return battleAction(svc, battle.Service.Start, "start battle")
}

// HandleGetBattle returns the backend battle record
// @Summary Get battle
// @Tags battles
// @Produce json
// @Param id path string true "Battle ID"
// @Success 200 {object} domain.Battle
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/battles/{id} [get]
func HandleGetBattle(svc battle.Service) http.HandlerFunc {
	return battleAction(svc, battle.Service.Get, "get battle")
}

// HandlePlayBattle starts the round-by-round playback of a started battle
// @Summary Play battle
// @Description Rounds are revealed in order; progress is pushed on the event stream.
// @Tags battles
// @Accept json
// @Produce json
// @Param id path string true "Battle ID"
// @Param request body PlayBattleRequest false "Measured layout"
// @Success 202 {object} battle.Playback
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/battles/{id}/play [post]
func HandlePlayBattle(svc battle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetURLParam(r, w, "id")
		if !ok {
			return
		}
		var req PlayBattleRequest
		if r.ContentLength != 0 {
			if err := DecodeAndValidateRequest(r, w, &req, "Play battle"); err != nil {
				return
			}
		}

		pb, err := svc.Play(r.Context(), id, req.Layout)
		if err != nil {
			respondServiceError(w, r, "play battle", err)
			return
		}
		respondJSON(w, http.StatusAccepted, pb)
	}
}

// HandleBattlePlayback returns the current playback snapshot
// @Summary Battle playback
// @Tags battles
// @Produce json
// @Param id path string true "Battle ID"
// @Success 200 {object} battle.Playback
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/battles/{id}/playback [get]
func HandleBattlePlayback(svc battle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetURLParam(r, w, "id")
		if !ok {
			return
		}
		pb, err := svc.Playback(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "battle playback", err)
			return
		}
		respondJSON(w, http.StatusOK, pb)
	}
}

// battleAction takes a method expression so svc is only used once a request arrives.
func battleAction(svc battle.Service, call func(battle.Service, context.Context, string) (*domain.Battle, error),
	op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetURLParam(r, w, "id")
		if !ok {
			return
		}
		b, err := call(svc, r.Context(), id)
		if err != nil {
			respondServiceError(w, r, op, err)
			return
		}
		respondJSON(w, http.StatusOK, b)
	}
}
