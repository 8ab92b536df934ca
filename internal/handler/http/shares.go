package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/internal/utils"
	"github.com/somahealth/vault-companion/models"
)

func (h *Handler) shareRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordID := chi.URLParam(r, "recordId")

	var req models.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	share, err := h.services.ShareService.ShareRecord(ctx, recordID, req)
	if err != nil {
		log.Err(err).Str("record_id", recordID).Msg("error sharing health record")
		writeError(w, err)
		return
	}

	h.logAccess(r, req.OwnerID, recordID, models.AccessShare)

	utils.WriteJSON(w, map[string]any{
		"message": "Record shared successfully",
		"share":   share,
	}, http.StatusOK)
}

func (h *Handler) sharedWithMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := r.URL.Query().Get("userId")

	sharedRecords, err := h.services.ShareService.SharedWithMe(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error fetching shared records")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, sharedRecords, http.StatusOK)
}

func (h *Handler) revokeShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordID := chi.URLParam(r, "recordId")
	recipientID := chi.URLParam(r, "recipientId")

	var req models.RevokeShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ShareService.RevokeShare(ctx, recordID, recipientID, req); err != nil {
		log.Err(err).Str("record_id", recordID).Msg("error revoking health record access")
		writeError(w, err)
		return
	}

	h.logAccess(r, req.OwnerID, recordID, models.AccessShare)

	utils.WriteJSON(w, map[string]string{
		"message": "Record access revoked successfully",
	}, http.StatusOK)
}
