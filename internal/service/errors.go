package service

import (
	"errors"
	"fmt"
)

type AuthErrorKind string

const (
	AuthInvalidCredentials AuthErrorKind = "invalid_credentials"
	AuthAccountExists      AuthErrorKind = "account_exists"
	AuthRateLimited        AuthErrorKind = "rate_limited"
	AuthInvalidToken       AuthErrorKind = "invalid_token"
)

// AuthError is always recoverable: handlers turn it into a user-facing
// message, never a fatal condition.
type AuthError struct {
	Kind    AuthErrorKind
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// SyncError means a load from the remote store failed. The local
// collection is left as it was; callers decide between showing stale
// state or an error.
type SyncError struct {
	OwnerID string
	Err     error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("failed to sync notes for owner %s: %v", e.OwnerID, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// SaveError means the remote write did not succeed. No local mutation
// happened before the write, so the collection is unchanged.
type SaveError struct {
	NoteID string
	Err    error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save note %s: %v", e.NoteID, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

var errEmptyTransform = errors.New("provider returned empty text")

// TransformError means the text provider failed; the original text is
// preserved alongside it.
type TransformError struct {
	Action string
	Err    error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("text transform %q failed: %v", e.Action, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}
