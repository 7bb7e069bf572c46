package http

import (
	"encoding/json"
	"net/http"

	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/utils"
	"github.com/akarpov/go-dash-sync/models"
)

func (h *Handler) getViewState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.getViewState").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	state, err := h.services.ViewStateService.GetViewState(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getViewState").Msg("error reading view state")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) saveViewState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.saveViewState").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.ViewStateUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.saveViewState").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	state, err := h.services.ViewStateService.SaveViewState(r.Context(), userID, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveViewState").Msg("error saving view state")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) resetViewState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.resetViewState").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.ViewStateService.ResetViewState(r.Context(), userID); err != nil {
		log.Err(err).Str("func", "*Handler.resetViewState").Msg("error resetting view state")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
