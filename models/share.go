package models

import "time"

// PermissionReadOnly is the only share permission level supported for now.
const PermissionReadOnly = "read-only"

// Share grants another user access to a single health record. Shares are
// an access-control overlay: the record store itself never consults them.
type Share struct {
	// ID is the unique identifier of the share.
	ID string `json:"id"`

	// RecordID identifies the shared health record.
	RecordID string `json:"recordId"`

	// OwnerID is the user who owns the record and created the share.
	OwnerID string `json:"ownerId"`

	// RecipientID is the user the record is shared with.
	RecipientID string `json:"recipientId"`

	// PermissionLevel is the access level granted to the recipient.
	// Only "read-only" is supported.
	PermissionLevel string `json:"permissionLevel"`

	// ExpiresAt is the optional instant after which the share no longer
	// grants access. Nil means the share never expires.
	ExpiresAt *time.Time `json:"expiresAt"`

	// CreatedAt is when the share was created.
	CreatedAt time.Time `json:"createdAt"`
}

// IsExpired reports whether the share has passed its expiry instant.
// Shares without an expiry never expire.
func (s Share) IsExpired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}
	return now.After(*s.ExpiresAt)
}

// SharedRecord pairs a health record with the share that grants the
// caller access to it. Returned by "shared with me" queries.
type SharedRecord struct {
	Record          HealthRecord `json:"record"`
	SharedBy        string       `json:"sharedBy"`
	PermissionLevel string       `json:"permissionLevel"`
	ExpiresAt       *time.Time   `json:"expiresAt"`
}
