// Package validators checks incoming request payloads before they reach
// the service layer. Each function returns nil for a valid payload or a
// *models.ValidationErrors carrying one message per offending field, which
// the HTTP layer renders as a 400 response.
package validators

import (
	"net/mail"
	"time"

	"github.com/somahealth/vault-companion/models"
)

// Validation messages, one per request field. Kept as constants so the
// handler tests and the API docs stay in sync with the actual responses.
const (
	MsgUserIDRequired     = "User ID is required"
	MsgRecordTypeRequired = "Record type is required"
	MsgTitleRequired      = "Title is required"
	MsgContentRequired    = "Content is required"
	MsgSourcesRequired    = "Sources array is required"
	MsgOwnerIDRequired    = "Owner ID is required"
	MsgRecipientRequired  = "Recipient ID is required"
	MsgPermissionInvalid  = "Permission level is required"
	MsgExpiryInvalid      = "Expiration date must be valid ISO date if provided"
	MsgNameRequired       = "Name is required"
	MsgEmailInvalid       = "Please include a valid email"
	MsgPasswordTooShort   = "Password must be at least 6 characters"
	MsgPasswordRequired   = "Password is required"
)

// minPasswordLength applies to demo registration only; login accepts any
// non-empty password.
const minPasswordLength = 6

// ValidateRecordRequest checks the create/update record payload.
func ValidateRecordRequest(req models.RecordRequest) error {
	errs := &models.ValidationErrors{}

	if req.UserID == "" {
		errs.Add("userId", MsgUserIDRequired)
	}
	if req.RecordType == "" {
		errs.Add("recordType", MsgRecordTypeRequired)
	}
	if req.Title == "" {
		errs.Add("title", MsgTitleRequired)
	}
	if req.Content == nil {
		errs.Add("content", MsgContentRequired)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ValidatePreferencesRequest checks the replace-preferences payload.
// Membership of each source tag in the knowledge-source registry is
// checked by the preference service, not here.
func ValidatePreferencesRequest(req models.PreferencesRequest) error {
	if req.Sources == nil {
		errs := &models.ValidationErrors{}
		errs.Add("sources", MsgSourcesRequired)
		return errs
	}
	return nil
}

// ValidateShareRequest checks the share-record payload. Only the
// "read-only" permission level is accepted, and the optional expiry must
// parse as RFC 3339.
func ValidateShareRequest(req models.ShareRequest) error {
	errs := &models.ValidationErrors{}

	if req.OwnerID == "" {
		errs.Add("ownerId", MsgOwnerIDRequired)
	}
	if req.RecipientID == "" {
		errs.Add("recipientId", MsgRecipientRequired)
	}
	if req.PermissionLevel != models.PermissionReadOnly {
		errs.Add("permissionLevel", MsgPermissionInvalid)
	}
	if req.ExpiresAt != "" {
		if _, err := time.Parse(time.RFC3339, req.ExpiresAt); err != nil {
			errs.Add("expiresAt", MsgExpiryInvalid)
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ValidateRevokeShareRequest checks the revoke-share payload.
func ValidateRevokeShareRequest(req models.RevokeShareRequest) error {
	if req.OwnerID == "" {
		errs := &models.ValidationErrors{}
		errs.Add("ownerId", MsgOwnerIDRequired)
		return errs
	}
	return nil
}

// ValidateRegisterRequest checks the demo registration payload.
func ValidateRegisterRequest(req models.RegisterRequest) error {
	errs := &models.ValidationErrors{}

	if req.Name == "" {
		errs.Add("name", MsgNameRequired)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		errs.Add("email", MsgEmailInvalid)
	}
	if len(req.Password) < minPasswordLength {
		errs.Add("password", MsgPasswordTooShort)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ValidateLoginRequest checks the login payload.
func ValidateLoginRequest(req models.LoginRequest) error {
	errs := &models.ValidationErrors{}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		errs.Add("email", MsgEmailInvalid)
	}
	if req.Password == "" {
		errs.Add("password", MsgPasswordRequired)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
