package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/somahealth/vault-companion/internal/store"
	"github.com/somahealth/vault-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// GET /api/health-records/{userId}
// ─────────────────────────────────────────────

func TestGetRecords_ModeParsing(t *testing.T) {
	tests := []struct {
		query    string
		wantMode models.Mode
	}{
		{"", models.ModeData},
		{"?mode=data", models.ModeData},
		{"?mode=opinion", models.ModeOpinion},
		{"?mode=bogus", models.ModeData},
	}

	for _, tt := range tests {
		t.Run("mode"+tt.query, func(t *testing.T) {
			services := testServices()
			services.RecordService = &mockRecordSvc{
				getRecordsFn: func(_ context.Context, userID string, mode models.Mode) ([]models.HealthRecord, error) {
					assert.Equal(t, "user-1", userID)
					assert.Equal(t, tt.wantMode, mode)
					return []models.HealthRecord{}, nil
				},
			}
			router := newTestRouter(t, services)

			req := httptest.NewRequest(http.MethodGet, "/api/health-records/user-1"+tt.query, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestGetRecords_LogsBulkView(t *testing.T) {
	var logged models.AccessLog
	services := testServices()
	services.AccessLogService = &mockAccessLogSvc{
		logFn: func(_ context.Context, entry models.AccessLog) {
			logged = entry
		},
	}
	router := newTestRouter(t, services)

	req := httptest.NewRequest(http.MethodGet, "/api/health-records/user-1", nil)
	req.Header.Set("User-Agent", "test-agent")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, "all-records", logged.RecordID)
	assert.Equal(t, models.AccessView, logged.AccessType)
	assert.Equal(t, "test-agent", logged.DeviceInfo)
}

// ─────────────────────────────────────────────
// GET /api/health-records/record/{recordId}
// ─────────────────────────────────────────────

func TestGetRecord_NotFound(t *testing.T) {
	services := testServices()
	services.RecordService = &mockRecordSvc{
		getRecordFn: func(_ context.Context, _ string, _ models.Mode) (models.HealthRecord, error) {
			return models.HealthRecord{}, store.ErrRecordNotFound
		},
	}
	router := newTestRouter(t, services)

	req := httptest.NewRequest(http.MethodGet, "/api/health-records/record/missing", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestGetRecord_OpinionModeInsightsInBody(t *testing.T) {
	services := testServices()
	services.RecordService = &mockRecordSvc{
		getRecordFn: func(_ context.Context, recordID string, mode models.Mode) (models.HealthRecord, error) {
			insights := models.NewInsightMap()
			insights.Set("medical", models.InsightBlock{
				Summary:         "summary",
				Recommendations: []string{"rest"},
				Sources:         []string{"guidelines"},
			})
			return models.HealthRecord{ID: recordID, Insights: insights}, nil
		},
	}
	router := newTestRouter(t, services)

	req := httptest.NewRequest(http.MethodGet, "/api/health-records/record/rec-1?mode=opinion", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	insights, ok := body["insights"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, insights, "medical")
}

// ─────────────────────────────────────────────
// POST /api/health-records/
// ─────────────────────────────────────────────

func TestAddRecord_Created(t *testing.T) {
	services := testServices()
	services.RecordService = &mockRecordSvc{
		addRecordFn: func(_ context.Context, req models.RecordRequest) (models.HealthRecord, error) {
			return models.HealthRecord{ID: "rec-1", UserID: req.UserID, Title: req.Title}, nil
		},
	}
	router := newTestRouter(t, services)

	body := `{"userId":"user-1","recordType":"imaging","title":"MRI","content":{"date":"2025-01-01"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/health-records/", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestAddRecord_ValidationErrorShape(t *testing.T) {
	services := testServices()
	services.RecordService = &mockRecordSvc{
		addRecordFn: func(_ context.Context, _ models.RecordRequest) (models.HealthRecord, error) {
			errs := &models.ValidationErrors{}
			errs.Add("userId", "User ID is required")
			return models.HealthRecord{}, errs
		},
	}
	router := newTestRouter(t, services)

	req := httptest.NewRequest(http.MethodPost, "/api/health-records/", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body struct {
		Errors []struct {
			Param string `json:"param"`
			Msg   string `json:"msg"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "userId", body.Errors[0].Param)
}

func TestAddRecord_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, testServices())

	req := httptest.NewRequest(http.MethodPost, "/api/health-records/", strings.NewReader(`{not json`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ─────────────────────────────────────────────
// PUT /api/health-records/record/{recordId}
// ─────────────────────────────────────────────

func TestUpdateRecord_ResponseCarriesMessage(t *testing.T) {
	services := testServices()
	services.RecordService = &mockRecordSvc{
		updateRecordFn: func(_ context.Context, recordID string, req models.RecordRequest) (models.HealthRecord, error) {
			return models.HealthRecord{ID: recordID, UserID: req.UserID, Title: req.Title, Specialty: "medical"}, nil
		},
	}
	router := newTestRouter(t, services)

	body := `{"userId":"user-1","recordType":"appointment","title":"Checkup","content":{}}`
	req := httptest.NewRequest(http.MethodPut, "/api/health-records/record/hr-1", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Record updated successfully", resp["message"])
	assert.Equal(t, "hr-1", resp["id"])
}
