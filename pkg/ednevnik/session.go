package ednevnik

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
)

const tokenMarker = "csrf_cookie="

// Session is the cookie jar and anti-forgery token of one logged in user.
//
// It is not safe for concurrent use, calls against one session must be serialized.
type Session struct {
	jar      http.CookieJar
	token    string
	hasToken bool
}

func NewSession() (*Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Session{jar: jar}, nil
}

func (s *Session) Jar() http.CookieJar {
	return s.jar
}

// Token returns the most recent anti-forgery token, ok is false until
// a response has carried one.
func (s *Session) Token() (token string, ok bool) {
	return s.token, s.hasToken
}

func (s *Session) SetToken(token string) {
	s.token = token
	s.hasToken = true
}

// SetTokenFromHeaders updates the token from the Set-Cookie values of a response.
// Not every response rotates the token, when the marker is missing the previous
// token stays in place.
func (s *Session) SetTokenFromHeaders(setCookie []string) {
	token, ok := extractToken(strings.Join(setCookie, ", "))
	if !ok {
		return
	}
	s.SetToken(token)
}

func extractToken(raw string) (string, bool) {
	_, rest, found := strings.Cut(raw, tokenMarker)
	if !found {
		return "", false
	}
	end := strings.IndexAny(rest, ";,")
	if end >= 0 {
		rest = rest[:end]
	}
	return rest, true
}
