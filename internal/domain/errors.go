package domain

import "fmt"

// ValidationError reports a scalar value that violates a domain constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a missing row, either the target of a read or a
// referenced parent of a write.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// ConflictError reports a write that would violate a uniqueness constraint,
// or a delete blocked by dependent rows.
type ConflictError struct {
	Entity string
	Detail string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Detail)
}

// TypeMismatchError reports an episode write referencing a media row that is
// not a TV show.
type TypeMismatchError struct {
	MediaID int64
	Actual  MediaType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("media %d is of type %q, expected %q", e.MediaID, e.Actual, MediaTypeTVShow)
}
