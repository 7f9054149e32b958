package store

import "errors"

// NotFound is returned by Get methods when no document exists for the given
// ID. It is an internal signal: the upsert paths treat it as "does not exist
// yet" and it is never shown to a user.
type NotFound struct {
	// Kind is the logical entity name, e.g. "match" or "live score".
	Kind string

	// ID is the document ID that was requested.
	ID string
}

func (e *NotFound) Error() string {
	return e.Kind + " " + e.ID + " not found"
}

// IsNotFound reports whether err is a NotFound from any entity kind.
func IsNotFound(err error) bool {
	var nf *NotFound
	return errors.As(err, &nf)
}
