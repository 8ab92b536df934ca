package models

import "time"

// Access types recorded in the audit trail.
const (
	AccessView  = "VIEW"
	AccessEdit  = "EDIT"
	AccessShare = "SHARE"
)

// AccessLog is a single audit-trail entry recording who touched which
// record, how, and from where. Logging is best effort: a failed append
// never fails the request that triggered it.
type AccessLog struct {
	// ID is the unique identifier of the log entry.
	ID string `json:"id"`

	// UserID identifies the user who performed the access.
	UserID string `json:"userId"`

	// RecordID identifies the accessed health record. Bulk reads use the
	// synthetic record id "all-records".
	RecordID string `json:"recordId"`

	// AccessType is one of AccessView, AccessEdit, AccessShare.
	AccessType string `json:"accessType"`

	// Timestamp is when the access happened.
	Timestamp time.Time `json:"timestamp"`

	// IPAddress is the caller's address, or "Unknown".
	IPAddress string `json:"ipAddress"`

	// DeviceInfo is the caller's user agent, or "Unknown".
	DeviceInfo string `json:"deviceInfo"`
}

// AccessLogFilter narrows and paginates access-log queries.
type AccessLogFilter struct {
	// RecordID limits results to a single record when non-empty.
	RecordID string

	// StartDate excludes entries before this instant when non-nil.
	StartDate *time.Time

	// EndDate excludes entries after this instant when non-nil.
	EndDate *time.Time

	// Page is the 1-based result page. Zero means the first page.
	Page int

	// Limit is the page size. Zero means the default of 20.
	Limit int
}
