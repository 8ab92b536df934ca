package store

import (
	"context"
	"time"

	"github.com/somahealth/vault-companion/models"
)

// IDGenerator produces unique string identifiers for newly created
// entities. Satisfied by utils.UUIDGenerator.
type IDGenerator interface {
	Generate() string
}

// RecordRepository is the keyed store of health records. All state lives
// in process memory and resets on restart.
type RecordRepository interface {
	// Add creates a new record with a fresh id. It never fails: missing
	// specialty defaults to "medical" and the date derives from the
	// content or the current time.
	Add(ctx context.Context, req models.RecordRequest) models.HealthRecord

	// GetByID returns the record with the given id, or ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (models.HealthRecord, error)

	// GetByUserID returns the user's records in insertion order;
	// an empty slice when none exist.
	GetByUserID(ctx context.Context, userID string) []models.HealthRecord

	// Update mutates the record with the given id in place. An empty id
	// degenerates to Add; an unmatched id creates a new record under that
	// exact id (upsert). Specialty is only overwritten when supplied.
	Update(ctx context.Context, id string, req models.RecordRequest) models.HealthRecord
}

// PreferenceRepository maps a user id to their enabled knowledge sources.
type PreferenceRepository interface {
	// Get returns the stored source list, or the default ["medical"]
	// when the user has never set preferences.
	Get(ctx context.Context, userID string) []string

	// Set replaces the stored source list wholesale and returns it.
	Set(ctx context.Context, userID string, sources []string) []string
}

// ShareRepository stores record shares. Every read filters out expired
// shares; expired rows stay in the underlying store.
type ShareRepository interface {
	Create(ctx context.Context, recordID, ownerID, recipientID, permissionLevel string, expiresAt *time.Time) models.Share
	GetByRecordID(ctx context.Context, recordID string) []models.Share
	GetForRecipient(ctx context.Context, recipientID string) []models.Share
	CheckAccess(ctx context.Context, recordID, userID string) (models.Share, bool)
	Remove(ctx context.Context, recordID, ownerID, recipientID string) bool
}

// AccessLogRepository stores the audit trail of record accesses.
type AccessLogRepository interface {
	// Append records one access event, filling in id and timestamp.
	Append(ctx context.Context, entry models.AccessLog) models.AccessLog

	// Find returns entries matching the filter, newest first.
	Find(ctx context.Context, filter models.AccessLogFilter) []models.AccessLog
}
