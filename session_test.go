// Copyright 2016 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package gomaximo

import (
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"
)

type sessionSuite struct{}

var _ = gc.Suite(&sessionSuite{})

func (*sessionSuite) TestNewAnonymousSession(c *gc.C) {
	session := NewAnonymousSession()
	c.Check(session.IsCookieSet(), jc.IsFalse)
	c.Check(session.Cookie(), gc.IsNil)
	c.Check(session.CookieKeys().IsEmpty(), jc.IsTrue)
}

func (*sessionSuite) TestNewSession(c *gc.C) {
	session := NewSession("SID=xyz")
	c.Check(session.IsCookieSet(), jc.IsTrue)
	c.Check(session.Cookie(), jc.DeepEquals, map[string]string{"set-cookie": "SID=xyz"})
	c.Check(session.CookieKeys().SortedValues(), jc.DeepEquals, []string{"set-cookie"})
}

func (*sessionSuite) TestNewSessionWithCookieKeepsMap(c *gc.C) {
	cookie := map[string]string{}
	session := NewSessionWithCookie(true, cookie)
	cookie["set-cookie"] = "late"
	c.Check(session.Cookie()["set-cookie"], gc.Equals, "late")
}

func (*sessionSuite) TestReadSession(c *gc.C) {
	session, err := ReadSession(map[string]interface{}{
		"isCookieSet": true,
		"cookie": map[string]interface{}{
			"set-cookie": "JSESSIONID=abc; Path=/maximo",
		},
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(session.IsCookieSet(), jc.IsTrue)
	c.Check(session.Cookie(), jc.DeepEquals, map[string]string{
		"set-cookie": "JSESSIONID=abc; Path=/maximo",
	})
}

func (*sessionSuite) TestReadSessionCookieOptional(c *gc.C) {
	session, err := ReadSession(map[string]interface{}{
		"isCookieSet": false,
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(session.IsCookieSet(), jc.IsFalse)
	c.Check(session.Cookie(), gc.IsNil)
}

func (*sessionSuite) TestReadSessionBadTypes(c *gc.C) {
	for i, source := range []interface{}{
		"not a map",
		map[string]interface{}{},
		map[string]interface{}{"isCookieSet": "yes"},
		map[string]interface{}{"isCookieSet": true, "cookie": "SID=xyz"},
		map[string]interface{}{"isCookieSet": true, "cookie": map[string]interface{}{"set-cookie": 42.0}},
	} {
		c.Logf("test %d: %v", i, source)
		_, err := ReadSession(source)
		c.Check(err, jc.Satisfies, IsDeserializationError)
		c.Check(err, gc.ErrorMatches, "session schema check failed: .*")
	}
}

func (*sessionSuite) TestParseSession(c *gc.C) {
	session, err := ParseSession([]byte(`{"isCookieSet": true, "cookie": {"set-cookie": "abc123"}}`))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(session.IsCookieSet(), jc.IsTrue)
	c.Check(session.Cookie()["set-cookie"], gc.Equals, "abc123")
}

func (*sessionSuite) TestParseSessionBadJSON(c *gc.C) {
	_, err := ParseSession([]byte(`{"isCookieSet": `))
	c.Check(err, jc.Satisfies, IsDeserializationError)
	c.Check(err, gc.ErrorMatches, "session JSON: .*")
}

func (*sessionSuite) TestParseSessionEmptyCookie(c *gc.C) {
	session, err := ParseSession([]byte(`{"isCookieSet": true, "cookie": {}}`))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(session.IsCookieSet(), jc.IsTrue)
	c.Check(session.Cookie(), gc.HasLen, 0)
}
