package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/somahealth/vault-companion/internal/utils"
	"github.com/somahealth/vault-companion/models"
)

func (h *Handler) getRecordAccessLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recordID := chi.URLParam(r, "recordId")
	filter := accessLogFilterFromQuery(r)

	logs := h.services.AccessLogService.GetLogsForRecord(ctx, recordID, filter)

	utils.WriteJSON(w, logs, http.StatusOK)
}

func (h *Handler) getAllAccessLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := accessLogFilterFromQuery(r)

	logs := h.services.AccessLogService.GetAllLogs(ctx, filter)

	utils.WriteJSON(w, logs, http.StatusOK)
}

// accessLogFilterFromQuery parses startDate, endDate, page, and limit query
// parameters. Unparseable values are ignored rather than rejected: the
// audit endpoints degrade to an unfiltered listing.
func accessLogFilterFromQuery(r *http.Request) models.AccessLogFilter {
	query := r.URL.Query()

	var filter models.AccessLogFilter

	if raw := query.Get("startDate"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.StartDate = &parsed
		}
	}
	if raw := query.Get("endDate"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.EndDate = &parsed
		}
	}
	if raw := query.Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			filter.Page = parsed
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			filter.Limit = parsed
		}
	}

	return filter
}
