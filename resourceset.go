// Copyright 2016 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package gomaximo

import (
	"net/http"
	"strings"
)

// Reserved fills the first, currently unused, slot of a ResourceSet.
type Reserved int

const (
	// ReservedNone is the only Reserved value.
	ReservedNone Reserved = iota
)

// ResourceSet wraps a business object reference together with the session
// it belongs to and the session cookie, if any.
type ResourceSet struct {
	reserved Reserved

	cookie    string
	hasCookie bool

	session SessionContext
	mbo     interface{}
}

// NewResourceSet builds a ResourceSet. A nil cookie means the set carries
// no cookie; the mbo is stored as given.
func NewResourceSet(reserved Reserved, cookie *string, session SessionContext, mbo interface{}) *ResourceSet {
	result := &ResourceSet{
		reserved: reserved,
		session:  session,
		mbo:      mbo,
	}
	if cookie != nil {
		result.cookie = *cookie
		result.hasCookie = true
	}
	return result
}

// Reserved returns the value of the reserved slot.
func (r *ResourceSet) Reserved() Reserved {
	return r.reserved
}

// Cookie returns the session cookie and whether there is one.
func (r *ResourceSet) Cookie() (string, bool) {
	return r.cookie, r.hasCookie
}

// Session returns the session the set was built from.
func (r *ResourceSet) Session() SessionContext {
	return r.session
}

// MBO returns the business object reference.
func (r *ResourceSet) MBO() interface{} {
	return r.mbo
}

// Name returns the business object reference itself, not a name derived
// from it.
func (r *ResourceSet) Name() interface{} {
	return r.mbo
}

// Sign implements Signer. The cookie is read as a Set-Cookie value and each
// cookie in it is added to the request; a value that does not parse is sent
// as the Cookie header verbatim. Without a cookie the request is untouched.
func (r *ResourceSet) Sign(request *http.Request) error {
	if !r.hasCookie || strings.TrimSpace(r.cookie) == "" {
		return nil
	}
	cookies := parseSetCookie(r.cookie)
	if len(cookies) == 0 {
		request.Header.Add("Cookie", r.cookie)
		return nil
	}
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}
	return nil
}

// *ResourceSet implements the Signer interface.
var _ Signer = (*ResourceSet)(nil)

// parseSetCookie splits a Set-Cookie value into cookies. Several cookies
// may be folded into one value separated by newlines.
func parseSetCookie(value string) []*http.Cookie {
	header := http.Header{}
	for _, line := range strings.Split(value, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			header.Add("Set-Cookie", line)
		}
	}
	response := http.Response{Header: header}
	return response.Cookies()
}
