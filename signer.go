// Copyright 2013 Canonical Ltd.  This software is licensed under the
// GNU Lesser General Public License version 3 (see the file COPYING).

package gomaximo

import (
	"net/http"

	"github.com/juju/errors"
)

// Anonymous "signature method" implementation.
type anonSigner struct{}

func (signer anonSigner) Sign(request *http.Request) error {
	return nil
}

// anonSigner implements the Signer interface.
var _ Signer = anonSigner{}

// AnonymousSigner returns a Signer that leaves requests untouched.
func AnonymousSigner() Signer {
	return anonSigner{}
}

// NewSigner returns a Signer carrying the cookie of the given session, or
// an anonymous one if the session has no cookie set.
func NewSigner(session SessionContext) (Signer, error) {
	if session == nil {
		return nil, errors.NotValidf("nil session")
	}
	if !session.IsCookieSet() {
		return AnonymousSigner(), nil
	}
	resources, err := NewResourceObject(session, nil)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return resources, nil
}
