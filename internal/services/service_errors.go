// filepath: internal/services/service_errors.go
package services

import (
	"errors"
	"fmt"
)

// Standard errors returned by the service layer.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// serviceError carries a user-facing message while still matching one of the
// sentinels above through errors.Is.
type serviceError struct {
	kind error
	msg  string
}

func (e *serviceError) Error() string { return e.msg }
func (e *serviceError) Unwrap() error { return e.kind }

func newError(kind error, format string, args ...interface{}) error {
	return &serviceError{kind: kind, msg: fmt.Sprintf(format, args...)}
}
