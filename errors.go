// Copyright 2016 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package gomaximo

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
)

// MissingCookieFieldError is returned when a session claims to have a
// cookie set but its cookie map is absent or has no "set-cookie" entry.
type MissingCookieFieldError struct {
	errors.Err
}

// NewMissingCookieFieldError constructs a new MissingCookieFieldError. The
// keys are the ones actually present in the session's cookie map.
func NewMissingCookieFieldError(field string, keys []string) error {
	var message string
	if len(keys) == 0 {
		message = fmt.Sprintf("session cookie set but %q missing (no cookie fields)", field)
	} else {
		message = fmt.Sprintf("session cookie set but %q missing (have %s)", field, strings.Join(keys, ", "))
	}
	err := &MissingCookieFieldError{Err: errors.NewErr("%s", message)}
	err.SetLocation(1)
	return err
}

// IsMissingCookieFieldError returns true if err is a MissingCookieFieldError.
func IsMissingCookieFieldError(err error) bool {
	_, ok := errors.Cause(err).(*MissingCookieFieldError)
	return ok
}

// DeserializationError types are returned when the returned JSON data from
// the caller doesn't match the code's expectations.
type DeserializationError struct {
	errors.Err
}

// NewDeserializationError constructs a new DeserializationError and sets the location.
func NewDeserializationError(format string, args ...interface{}) error {
	err := &DeserializationError{Err: errors.NewErr(format, args...)}
	err.SetLocation(1)
	return err
}

// WrapWithDeserializationError constructs a new DeserializationError with the
// specified message followed by the text of err, and sets the location.
func WrapWithDeserializationError(err error, format string, args ...interface{}) error {
	message := fmt.Sprintf(format, args...)
	// The new error is its own cause so IsDeserializationError still holds;
	// the message keeps the text of the error passed in.
	newErr := &DeserializationError{Err: errors.NewErr("%s: %v", message, err)}
	newErr.SetLocation(1)
	return newErr
}

// IsDeserializationError returns true if err is a DeserializationError.
func IsDeserializationError(err error) bool {
	_, ok := errors.Cause(err).(*DeserializationError)
	return ok
}
