package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/somahealth/vault-companion/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somahealth/vault-companion/models"
)

func TestAvailableSources(t *testing.T) {
	router := newTestRouter(t, testServices())

	req := httptest.NewRequest(http.MethodGet, "/api/health-records/sources/available", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var sources []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sources))
	assert.Contains(t, sources, "medical")
	assert.Contains(t, sources, "ayurvedic")
}

func TestAvailableTypesAndSpecialties(t *testing.T) {
	router := newTestRouter(t, testServices())

	for _, path := range []string{
		"/api/health-records/types/available",
		"/api/health-records/specialties/available",
	} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)

			var values []string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &values))
			assert.NotEmpty(t, values)
		})
	}
}

func TestGetPreferences(t *testing.T) {
	services := testServices()
	services.PreferenceService = &mockPreferenceSvc{
		getPreferencesFn: func(_ context.Context, userID string) []string {
			assert.Equal(t, "user-1", userID)
			return []string{"medical", "holistic"}
		},
	}
	router := newTestRouter(t, services)

	req := httptest.NewRequest(http.MethodGet, "/api/health-records/preferences/user-1", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var sources []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sources))
	assert.Equal(t, []string{"medical", "holistic"}, sources)
}

func TestUpdatePreferences_Success(t *testing.T) {
	router := newTestRouter(t, testServices())

	body := `{"sources":["medical","eastern"]}`
	req := httptest.NewRequest(http.MethodPut, "/api/health-records/preferences/user-1", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Message     string   `json:"message"`
		Preferences []string `json:"preferences"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "User preferences updated successfully", resp.Message)
	assert.Equal(t, []string{"medical", "eastern"}, resp.Preferences)
}

func TestUpdatePreferences_UnknownTag(t *testing.T) {
	services := testServices()
	services.PreferenceService = &mockPreferenceSvc{
		updatePreferencesFn: func(_ context.Context, _ string, _ models.PreferencesRequest) ([]string, error) {
			return nil, fmt.Errorf("%w: %q", service.ErrUnknownKnowledgeSource, "astrology")
		},
	}
	router := newTestRouter(t, services)

	body := `{"sources":["astrology"]}`
	req := httptest.NewRequest(http.MethodPut, "/api/health-records/preferences/user-1", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
