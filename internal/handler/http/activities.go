package http

import (
	"net/http"

	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/utils"
	"github.com/akarpov/go-dash-sync/models"
)

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.listActivities").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	activities, err := h.services.ActivityService.ListActivities(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listActivities").Msg("error listing activities")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ActivitiesResponse{Activities: activities, Length: len(activities)}, http.StatusOK)
}
