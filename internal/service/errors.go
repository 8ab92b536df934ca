package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenIsExpired = errors.New("token is expired")

	// ErrNotRecordOwner is returned when a share operation is attempted by
	// a caller who does not own the record.
	ErrNotRecordOwner = errors.New("caller does not own the record")

	// ErrUnknownKnowledgeSource is returned when a preference update
	// carries a tag that is not in the knowledge-source registry.
	ErrUnknownKnowledgeSource = errors.New("unknown knowledge source tag")
)
