// Copyright 2016 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package gomaximo

import (
	"encoding/json"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/schema"
)

// Session is the concrete SessionContext. It is immutable once built.
type Session struct {
	isCookieSet bool
	cookie      map[string]string
}

// NewAnonymousSession returns a session that carries no cookie.
func NewAnonymousSession() *Session {
	return &Session{}
}

// NewSession returns a session whose cookie map holds setCookie under
// SetCookieField.
func NewSession(setCookie string) *Session {
	return &Session{
		isCookieSet: true,
		cookie:      map[string]string{SetCookieField: setCookie},
	}
}

// NewSessionWithCookie builds a session from its raw parts. The cookie map
// is kept as given, so a session may claim a cookie it does not have.
func NewSessionWithCookie(isCookieSet bool, cookie map[string]string) *Session {
	return &Session{
		isCookieSet: isCookieSet,
		cookie:      cookie,
	}
}

// IsCookieSet implements SessionContext.
func (s *Session) IsCookieSet() bool {
	return s.isCookieSet
}

// Cookie implements SessionContext.
func (s *Session) Cookie() map[string]string {
	return s.cookie
}

// CookieKeys returns the names of the cookie fields held by the session.
func (s *Session) CookieKeys() set.Strings {
	return cookieKeys(s.cookie)
}

func cookieKeys(cookie map[string]string) set.Strings {
	keys := set.NewStrings()
	for key := range cookie {
		keys.Add(key)
	}
	return keys
}

// ParseSession decodes a JSON document describing a session, such as
// {"isCookieSet": true, "cookie": {"set-cookie": "JSESSIONID=abc"}}.
func ParseSession(data []byte) (*Session, error) {
	var source interface{}
	if err := json.Unmarshal(data, &source); err != nil {
		return nil, WrapWithDeserializationError(err, "session JSON")
	}
	session, err := ReadSession(source)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return session, nil
}

// ReadSession builds a session from an already decoded JSON value. The
// "cookie" field is optional.
func ReadSession(source interface{}) (*Session, error) {
	fields := schema.Fields{
		"isCookieSet": schema.Bool(),
		"cookie":      schema.StringMap(schema.String()),
	}
	defaults := schema.Defaults{
		"cookie": schema.Omit,
	}
	checker := schema.FieldMap(fields, defaults)
	coerced, err := checker.Coerce(source, nil)
	if err != nil {
		return nil, WrapWithDeserializationError(err, "session schema check failed")
	}
	valid := coerced.(map[string]interface{})
	// From here we know that the map returned from the schema coercion
	// contains fields of the right type.

	result := &Session{
		isCookieSet: valid["isCookieSet"].(bool),
	}
	if cookie, ok := valid["cookie"]; ok {
		result.cookie = convertToStringMap(cookie)
	}
	logger.Debugf("read session (cookie set: %v, cookie fields: %v)",
		result.isCookieSet, cookieKeys(result.cookie).SortedValues())
	return result, nil
}

func convertToStringMap(field interface{}) map[string]string {
	if field == nil {
		return nil
	}
	// This function is only called after a schema Coerce, so it's
	// safe.
	fieldMap := field.(map[string]interface{})
	result := make(map[string]string, len(fieldMap))
	for key, value := range fieldMap {
		result[key] = value.(string)
	}
	return result
}
