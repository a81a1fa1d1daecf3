package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/ghostgame/internal/api/request"
	"github.com/mcoot/ghostgame/internal/api/response"
	"github.com/mcoot/ghostgame/internal/model"
	"github.com/mcoot/ghostgame/internal/services/match"
)

// MatchHandler handles match-related endpoints
type MatchHandler struct {
	controller match.ControllerInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(controller match.ControllerInterface) *MatchHandler {
	return &MatchHandler{
		controller: controller,
	}
}

// Create handles POST /api/v1/matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMatchRequest
	// An empty body selects the default strategy
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	m, err := h.controller.CreateMatch(r.Context(), req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchFromModel(m))
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.controller.GetMatch(r.Context(), matchID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Move handles POST /api/v1/matches/{id}/moves
func (h *MatchHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	letter, err := model.NormalizeLetter(req.Letter)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.controller.PlayLetter(r.Context(), matchID(r), letter)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResponseFromResult(result))
}

// Rematch handles POST /api/v1/matches/{id}/rematch
func (h *MatchHandler) Rematch(w http.ResponseWriter, r *http.Request) {
	m, err := h.controller.Rematch(r.Context(), matchID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Abandon handles DELETE /api/v1/matches/{id}
func (h *MatchHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.AbandonMatch(r.Context(), matchID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func matchID(r *http.Request) model.MatchID {
	return model.MatchID(mux.Vars(r)["id"])
}
