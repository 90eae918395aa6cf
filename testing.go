// Copyright 2012-2016 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package gomaximo

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
)

// FakeSession is a SessionContext whose fields can be set directly, for use
// in tests of code built on this package.
type FakeSession struct {
	CookieSet bool
	Fields    map[string]string

	// Calls records the number of times Cookie was consulted.
	Calls int
}

// IsCookieSet implements SessionContext.
func (s *FakeSession) IsCookieSet() bool {
	return s.CookieSet
}

// Cookie implements SessionContext.
func (s *FakeSession) Cookie() map[string]string {
	s.Calls++
	return s.Fields
}

type singleServingServer struct {
	*httptest.Server
	requestContent *string
	requestHeader  *http.Header
}

// newSingleServingServer creates a single-serving test http server which will
// return only one response as defined by the passed arguments.
func newSingleServingServer(uri string, response string, code int) *singleServingServer {
	var requestContent string
	var requestHeader http.Header
	var requested bool
	handler := func(writer http.ResponseWriter, request *http.Request) {
		if requested {
			http.Error(writer, "Already requested", http.StatusServiceUnavailable)
			return
		}
		res, err := readAndClose(request.Body)
		if err != nil {
			panic(err)
		}
		requestContent = string(res)
		requestHeader = request.Header
		if request.URL.String() != uri {
			errorMsg := fmt.Sprintf("Error 404: page not found (expected '%v', got '%v').", uri, request.URL.String())
			http.Error(writer, errorMsg, http.StatusNotFound)
		} else {
			writer.WriteHeader(code)
			fmt.Fprint(writer, response)
		}
		requested = true
	}
	server := httptest.NewServer(http.HandlerFunc(handler))
	return &singleServingServer{server, &requestContent, &requestHeader}
}

// readAndClose reads and closes the given ReadCloser.
func readAndClose(stream io.ReadCloser) ([]byte, error) {
	defer stream.Close()
	return ioutil.ReadAll(stream)
}
