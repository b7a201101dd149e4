package errors

import (
	"encoding/json"
)

// ValidationErr is raised when required customer or account data is missing or malformed
type ValidationErr struct {
	target  string
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

// Target returns name of the invalid field
func (e *ValidationErr) Target() string {
	return e.target
}

// MarshalJSON implements json.Marshaler
func (e *ValidationErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

// NewValidationErr builds ValidationErr
func NewValidationErr(target string, msg string) error {
	return &ValidationErr{
		target:  target,
		message: msg,
	}
}

// EntryNotFoundErr is raised when entry with provided id is absent
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// NewEntryNotFoundErr builds EntryNotFoundErr
func NewEntryNotFoundErr(msg string) error {
	return &EntryNotFoundErr{message: msg}
}

// AuthErr is raised on bad credentials, mismatched password confirmation or missing session
type AuthErr struct {
	message string
}

func (e *AuthErr) Error() string {
	return e.message
}

// NewAuthErr builds AuthErr
func NewAuthErr(msg string) error {
	return &AuthErr{message: msg}
}
