package service

import (
	"context"

	"github.com/somahealth/vault-companion/models"
)

// RecordService exposes vault record operations to the transport layer.
// Reads honor the data/opinion mode toggle: opinion-mode results carry an
// Insights map computed from the record owner's enabled knowledge sources,
// data-mode results never do.
type RecordService interface {
	GetRecords(ctx context.Context, userID string, mode models.Mode) ([]models.HealthRecord, error)
	GetRecord(ctx context.Context, recordID string, mode models.Mode) (models.HealthRecord, error)

	AddRecord(ctx context.Context, req models.RecordRequest) (models.HealthRecord, error)
	UpdateRecord(ctx context.Context, recordID string, req models.RecordRequest) (models.HealthRecord, error)
}

// PreferenceService manages per-user knowledge-source selections.
type PreferenceService interface {
	GetPreferences(ctx context.Context, userID string) []string
	UpdatePreferences(ctx context.Context, userID string, req models.PreferencesRequest) ([]string, error)
}

// ShareService manages read-only record shares and the access checks
// built on them.
type ShareService interface {
	ShareRecord(ctx context.Context, recordID string, req models.ShareRequest) (models.Share, error)
	SharedWithMe(ctx context.Context, userID string) ([]models.SharedRecord, error)
	RevokeShare(ctx context.Context, recordID, recipientID string, req models.RevokeShareRequest) error
	CheckAccess(ctx context.Context, recordID, userID string) (models.Share, bool)
}

// AuthService handles the demo authentication flow: a single hard-coded
// user, bcrypt credential checks, and JWT issuance/validation.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccessLogService records and queries the audit trail.
type AccessLogService interface {
	// Log appends one audit entry. It never returns an error: audit
	// logging is best effort and must not fail the triggering request.
	Log(ctx context.Context, entry models.AccessLog)

	GetLogsForRecord(ctx context.Context, recordID string, filter models.AccessLogFilter) []models.AccessLog
	GetAllLogs(ctx context.Context, filter models.AccessLogFilter) []models.AccessLog
}

// InsightEngine selects per-perspective insight blocks for a record.
// Implemented by insight.Engine.
type InsightEngine interface {
	GenerateInsights(record models.HealthRecord, enabledSources []string) *models.InsightMap
}

// IDGenerator produces unique string identifiers.
// Satisfied by utils.UUIDGenerator.
type IDGenerator interface {
	Generate() string
}
