package models

// User represents an account entity used for authentication. The demo
// deployment carries a single hard-coded user; registration returns a
// synthetic account without persisting it.
type User struct {
	// ID is the unique identifier of the user. Record and preference
	// stores key their data by this value.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name,omitempty"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password. Never
	// exposed outside the auth service.
	PasswordHash string `json:"-"`
}
