package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/internal/utils"
	"github.com/somahealth/vault-companion/models"
)

// allRecordsID is the synthetic record id used in the audit trail for
// bulk reads.
const allRecordsID = "all-records"

func (h *Handler) getRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "userId")
	mode := models.ParseMode(r.URL.Query().Get("mode"))

	log.Debug().Str("user_id", userID).Str("mode", string(mode)).Msg("fetching records")

	records, err := h.services.RecordService.GetRecords(ctx, userID, mode)
	if err != nil {
		log.Err(err).Msg("error fetching health records")
		writeError(w, err)
		return
	}

	h.logAccess(r, userID, allRecordsID, models.AccessView)

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordID := chi.URLParam(r, "recordId")
	mode := models.ParseMode(r.URL.Query().Get("mode"))

	record, err := h.services.RecordService.GetRecord(ctx, recordID, mode)
	if err != nil {
		log.Err(err).Str("record_id", recordID).Msg("error fetching health record")
		writeError(w, err)
		return
	}

	h.logAccess(r, record.UserID, recordID, models.AccessView)

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) addRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.RecordService.AddRecord(ctx, req)
	if err != nil {
		log.Err(err).Msg("error adding health record")
		writeError(w, err)
		return
	}

	h.logAccess(r, record.UserID, record.ID, models.AccessEdit)

	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordID := chi.URLParam(r, "recordId")

	var req models.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.RecordService.UpdateRecord(ctx, recordID, req)
	if err != nil {
		log.Err(err).Str("record_id", recordID).Msg("error updating health record")
		writeError(w, err)
		return
	}

	log.Debug().Str("record_id", record.ID).Msg("record updated successfully")

	h.logAccess(r, record.UserID, record.ID, models.AccessEdit)

	utils.WriteJSON(w, map[string]any{
		"id":         record.ID,
		"userId":     record.UserID,
		"recordType": record.RecordType,
		"specialty":  record.Specialty,
		"title":      record.Title,
		"content":    record.Content,
		"date":       record.Date,
		"message":    "Record updated successfully",
	}, http.StatusOK)
}

// logAccess appends one best-effort audit entry for the request.
func (h *Handler) logAccess(r *http.Request, userID, recordID, accessType string) {
	h.services.AccessLogService.Log(r.Context(), models.AccessLog{
		UserID:     userID,
		RecordID:   recordID,
		AccessType: accessType,
		IPAddress:  r.RemoteAddr,
		DeviceInfo: r.UserAgent(),
	})
}
