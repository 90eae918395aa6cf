// Copyright 2016 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package gomaximo

import "net/http"

const (
	// SetCookieField is the key in a session's cookie map holding the
	// session token returned by the Maximo server.
	SetCookieField = "set-cookie"
)

// SessionContext represents the connection state shared by everything
// built against one Maximo OSLC server. Only the session cookie is of
// interest here; logging in and refreshing the cookie happen elsewhere.
type SessionContext interface {
	// IsCookieSet reports whether the session holds a cookie. When it
	// returns false, Cookie is never consulted.
	IsCookieSet() bool

	// Cookie returns the cookie fields of the session, keyed by header
	// name. It may return nil.
	Cookie() map[string]string
}

// Signer decorates an outgoing request with whatever credentials it holds.
type Signer interface {
	Sign(request *http.Request) error
}
