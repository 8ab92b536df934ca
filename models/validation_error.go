package models

import "strings"

// FieldError describes a single invalid request field.
type FieldError struct {
	// Param is the name of the offending request field.
	Param string `json:"param"`

	// Msg is the human-readable validation message.
	Msg string `json:"msg"`
}

// ValidationErrors aggregates every field-level problem found in a request
// body. It implements the error interface so services can return it through
// ordinary error paths; the HTTP layer unwraps it with [errors.As] and
// renders the field list as a 400 response.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// Add appends a field-level error.
func (v *ValidationErrors) Add(param, msg string) {
	v.Errors = append(v.Errors, FieldError{Param: param, Msg: msg})
}

// HasErrors reports whether any field failed validation.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface by joining all field messages.
func (v *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v.Errors))
	for _, fieldError := range v.Errors {
		msgs = append(msgs, fieldError.Param+": "+fieldError.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
