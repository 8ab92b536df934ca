package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/somahealth/vault-companion/internal/insight"
	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/internal/utils"
	"github.com/somahealth/vault-companion/models"
)

func (h *Handler) availableSources(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, insight.KnowledgeSources(), http.StatusOK)
}

func (h *Handler) availableTypes(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, insight.RecordTypes(), http.StatusOK)
}

func (h *Handler) availableSpecialties(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, insight.RecordSpecialties(), http.StatusOK)
}

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := chi.URLParam(r, "userId")
	sources := h.services.PreferenceService.GetPreferences(ctx, userID)

	utils.WriteJSON(w, sources, http.StatusOK)
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "userId")

	var req models.PreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	sources, err := h.services.PreferenceService.UpdatePreferences(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error updating user preferences")
		writeError(w, err)
		return
	}

	h.logAccess(r, userID, "user-preferences", models.AccessEdit)

	utils.WriteJSON(w, map[string]any{
		"message":     "User preferences updated successfully",
		"preferences": sources,
	}, http.StatusOK)
}
