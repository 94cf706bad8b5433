package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a session, source or blob that is absent from the
// document store.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateContent is a control-flow signal, not a fault: the content hash
// already has a blob record and the existing record must be reused.
var ErrDuplicateContent = errors.New("duplicate content")

// ErrSessionExpired marks a picker session whose expiry has passed or that
// the remote service no longer serves.
var ErrSessionExpired = errors.New("picker session expired")

// RemoteError wraps a rejected or transport-failed call to an external
// collaborator (picker service, vision capability, device registry).
type RemoteError struct {
	Service string
	Status  int
	Reason  string
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Service, e.Status, e.Reason)
	}

	return fmt.Sprintf("%s: %s", e.Service, e.Reason)
}

// ValidationError reports a structurally invalid external payload, such as a
// malformed vision response or a processing result missing required fields.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
