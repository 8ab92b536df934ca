package models

// RecordRequest is the payload for creating or updating a health record.
type RecordRequest struct {
	UserID     string         `json:"userId"`
	RecordType string         `json:"recordType"`
	Title      string         `json:"title"`
	Content    map[string]any `json:"content"`
	Specialty  string         `json:"specialty,omitempty"`
}

// PreferencesRequest is the payload for replacing a user's enabled
// knowledge sources wholesale.
type PreferencesRequest struct {
	Sources []string `json:"sources"`
}

// ShareRequest is the payload for sharing a record with another user.
type ShareRequest struct {
	OwnerID         string `json:"ownerId"`
	RecipientID     string `json:"recipientId"`
	PermissionLevel string `json:"permissionLevel"`
	ExpiresAt       string `json:"expiresAt,omitempty"`
}

// RevokeShareRequest is the payload for revoking a previously created share.
type RevokeShareRequest struct {
	OwnerID string `json:"ownerId"`
}

// RegisterRequest is the payload for the demo registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
