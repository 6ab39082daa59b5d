package store

import (
	"errors"
)

// ErrEmailTaken is returned by Register when the email is already in use.
var ErrEmailTaken = errors.New("email already registered")

// NotFoundError reports a missing record. The message never says whether the
// record existed before.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// Is matches any NotFoundError for the same resource.
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && t.Resource == e.Resource
}

var (
	ErrUserNotFound        = &NotFoundError{Resource: "user"}
	ErrPatientNotFound     = &NotFoundError{Resource: "patient"}
	ErrAppointmentNotFound = &NotFoundError{Resource: "appointment"}
	ErrNoteNotFound        = &NotFoundError{Resource: "medical note"}
	ErrVitalSignNotFound   = &NotFoundError{Resource: "vital sign"}
	ErrPhotoNotFound       = &NotFoundError{Resource: "photo"}
)
