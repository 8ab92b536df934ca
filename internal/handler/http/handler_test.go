// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SomaHealth

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/internal/service"
	"github.com/somahealth/vault-companion/models"
)

// ─────────────────────────────────────────────
// Mock: service.RecordService
// ─────────────────────────────────────────────

type mockRecordSvc struct {
	getRecordsFn   func(ctx context.Context, userID string, mode models.Mode) ([]models.HealthRecord, error)
	getRecordFn    func(ctx context.Context, recordID string, mode models.Mode) (models.HealthRecord, error)
	addRecordFn    func(ctx context.Context, req models.RecordRequest) (models.HealthRecord, error)
	updateRecordFn func(ctx context.Context, recordID string, req models.RecordRequest) (models.HealthRecord, error)
}

func (m *mockRecordSvc) GetRecords(ctx context.Context, userID string, mode models.Mode) ([]models.HealthRecord, error) {
	if m.getRecordsFn != nil {
		return m.getRecordsFn(ctx, userID, mode)
	}
	return []models.HealthRecord{}, nil
}

func (m *mockRecordSvc) GetRecord(ctx context.Context, recordID string, mode models.Mode) (models.HealthRecord, error) {
	if m.getRecordFn != nil {
		return m.getRecordFn(ctx, recordID, mode)
	}
	return models.HealthRecord{}, nil
}

func (m *mockRecordSvc) AddRecord(ctx context.Context, req models.RecordRequest) (models.HealthRecord, error) {
	if m.addRecordFn != nil {
		return m.addRecordFn(ctx, req)
	}
	return models.HealthRecord{}, nil
}

func (m *mockRecordSvc) UpdateRecord(ctx context.Context, recordID string, req models.RecordRequest) (models.HealthRecord, error) {
	if m.updateRecordFn != nil {
		return m.updateRecordFn(ctx, recordID, req)
	}
	return models.HealthRecord{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.PreferenceService
// ─────────────────────────────────────────────

type mockPreferenceSvc struct {
	getPreferencesFn    func(ctx context.Context, userID string) []string
	updatePreferencesFn func(ctx context.Context, userID string, req models.PreferencesRequest) ([]string, error)
}

func (m *mockPreferenceSvc) GetPreferences(ctx context.Context, userID string) []string {
	if m.getPreferencesFn != nil {
		return m.getPreferencesFn(ctx, userID)
	}
	return []string{"medical"}
}

func (m *mockPreferenceSvc) UpdatePreferences(ctx context.Context, userID string, req models.PreferencesRequest) ([]string, error) {
	if m.updatePreferencesFn != nil {
		return m.updatePreferencesFn(ctx, userID, req)
	}
	return req.Sources, nil
}

// ─────────────────────────────────────────────
// Mock: service.ShareService
// ─────────────────────────────────────────────

type mockShareSvc struct {
	shareRecordFn  func(ctx context.Context, recordID string, req models.ShareRequest) (models.Share, error)
	sharedWithMeFn func(ctx context.Context, userID string) ([]models.SharedRecord, error)
	revokeShareFn  func(ctx context.Context, recordID, recipientID string, req models.RevokeShareRequest) error
	checkAccessFn  func(ctx context.Context, recordID, userID string) (models.Share, bool)
}

func (m *mockShareSvc) ShareRecord(ctx context.Context, recordID string, req models.ShareRequest) (models.Share, error) {
	if m.shareRecordFn != nil {
		return m.shareRecordFn(ctx, recordID, req)
	}
	return models.Share{}, nil
}

func (m *mockShareSvc) SharedWithMe(ctx context.Context, userID string) ([]models.SharedRecord, error) {
	if m.sharedWithMeFn != nil {
		return m.sharedWithMeFn(ctx, userID)
	}
	return []models.SharedRecord{}, nil
}

func (m *mockShareSvc) RevokeShare(ctx context.Context, recordID, recipientID string, req models.RevokeShareRequest) error {
	if m.revokeShareFn != nil {
		return m.revokeShareFn(ctx, recordID, recipientID, req)
	}
	return nil
}

func (m *mockShareSvc) CheckAccess(ctx context.Context, recordID, userID string) (models.Share, bool) {
	if m.checkAccessFn != nil {
		return m.checkAccessFn(ctx, recordID, userID)
	}
	return models.Share{}, false
}

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthSvc struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthSvc) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{Name: req.Name, Email: req.Email}, nil
}

func (m *mockAuthSvc) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{ID: "1742961914546", Email: req.Email}, nil
}

func (m *mockAuthSvc) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "stub-token", UserID: user.ID}, nil
}

func (m *mockAuthSvc) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: "1742961914546"}, nil
}

// ─────────────────────────────────────────────
// Mock: service.AccessLogService
// ─────────────────────────────────────────────

type mockAccessLogSvc struct {
	logFn              func(ctx context.Context, entry models.AccessLog)
	getLogsForRecordFn func(ctx context.Context, recordID string, filter models.AccessLogFilter) []models.AccessLog
	getAllLogsFn       func(ctx context.Context, filter models.AccessLogFilter) []models.AccessLog
}

func (m *mockAccessLogSvc) Log(ctx context.Context, entry models.AccessLog) {
	if m.logFn != nil {
		m.logFn(ctx, entry)
	}
}

func (m *mockAccessLogSvc) GetLogsForRecord(ctx context.Context, recordID string, filter models.AccessLogFilter) []models.AccessLog {
	if m.getLogsForRecordFn != nil {
		return m.getLogsForRecordFn(ctx, recordID, filter)
	}
	return []models.AccessLog{}
}

func (m *mockAccessLogSvc) GetAllLogs(ctx context.Context, filter models.AccessLogFilter) []models.AccessLog {
	if m.getAllLogsFn != nil {
		return m.getAllLogsFn(ctx, filter)
	}
	return []models.AccessLog{}
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

// testServices bundles default mock services. Tests override the fields
// they exercise.
func testServices() *service.Services {
	return &service.Services{
		RecordService:     &mockRecordSvc{},
		PreferenceService: &mockPreferenceSvc{},
		ShareService:      &mockShareSvc{},
		AuthService:       &mockAuthSvc{},
		AccessLogService:  &mockAccessLogSvc{},
	}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	h := &Handler{
		services: services,
		logger:   logger.Nop(),
	}
	return h.Init()
}

func validAuthHeader() string { return "Bearer stub-token" }
