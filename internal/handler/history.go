package handler

import (
	"net/http"

	"github.com/osse101/Bouquet_Go/internal/eventlog"
	"github.com/osse101/Bouquet_Go/internal/logger"
	"github.com/osse101/Bouquet_Go/internal/repository"
)

// HandleGetHistory returns journaled garden events.
// Query params: type, from_day, to_day, limit.
// @Summary Event history
// @Tags events
// @Produce json
// @Param type query string false "Event type"
// @Param from_day query int false "First day"
// @Param to_day query int false "Last day"
// @Param limit query int false "Maximum entries"
// @Success 200 {object} DataResponse{data=[]repository.EventLogEntry}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/events [get]
func HandleGetHistory(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter repository.EventLogFilter
		if t := r.URL.Query().Get("type"); t != "" {
			filter.EventType = &t
		}

		var ok bool
		if filter.FromDay, ok = optionalIntQuery(w, r, "from_day"); !ok {
			return
		}
		if filter.ToDay, ok = optionalIntQuery(w, r, "to_day"); !ok {
			return
		}
		limit, ok := optionalIntQuery(w, r, "limit")
		if !ok {
			return
		}
		if limit != nil {
			filter.Limit = min(*limit, eventlog.DefaultHistoryLimit)
		}

		events, err := svc.History(r.Context(), filter)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgHistoryFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgHistoryFailed)
			return
		}
		if events == nil {
			events = []repository.EventLogEntry{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: events})
	}
}

// HandleListSaves describes every stored save slot
// @Summary List save slots
// @Tags saves
// @Produce json
// @Success 200 {object} DataResponse{data=[]repository.SaveInfo}
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/saves [get]
func HandleListSaves(repo repository.Garden) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		saves, err := repo.ListSaves(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgListSavesFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListSavesFailed)
			return
		}
		if saves == nil {
			saves = []repository.SaveInfo{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: saves})
	}
}
