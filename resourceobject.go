// Copyright 2016 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package gomaximo

import (
	"github.com/juju/errors"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("maximo")

// NewResourceObject returns the ResourceSet for the business object mbo,
// carrying the session cookie when the session has one set.
//
// If the session claims a cookie but has no "set-cookie" field, a
// MissingCookieFieldError is returned.
func NewResourceObject(session SessionContext, mbo interface{}) (*ResourceSet, error) {
	if session == nil {
		return nil, errors.NotValidf("nil session")
	}
	cookie, err := sessionCookie(session)
	if err != nil {
		return nil, errors.Trace(err)
	}
	// Never log the cookie value.
	logger.Tracef("resource set for %v (cookie: %v)", mbo, cookie != nil)
	return NewResourceSet(ReservedNone, cookie, session, mbo), nil
}

// sessionCookie returns nil when the session has no cookie set; the cookie
// map is only looked at otherwise.
func sessionCookie(session SessionContext) (*string, error) {
	if !session.IsCookieSet() {
		return nil, nil
	}
	fields := session.Cookie()
	value, ok := fields[SetCookieField]
	if !ok {
		return nil, NewMissingCookieFieldError(SetCookieField, cookieKeys(fields).SortedValues())
	}
	return &value, nil
}
