package ednevnik

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionToken(t *testing.T) {
	session, err := NewSession()
	require.NoError(t, err)

	_, ok := session.Token()
	require.False(t, ok)

	session.SetTokenFromHeaders([]string{"csrf_cookie=ABC123; expires=Thu, 01-Jan-2099 00:00:00 GMT; path=/"})
	token, ok := session.Token()
	require.True(t, ok)
	require.Equal(t, "ABC123", token)

	// responses that do not rotate the token leave it as is
	session.SetTokenFromHeaders([]string{"ci_session=xyz; path=/; HttpOnly"})
	token, _ = session.Token()
	require.Equal(t, "ABC123", token)

	session.SetTokenFromHeaders(nil)
	token, _ = session.Token()
	require.Equal(t, "ABC123", token)

	session.SetTokenFromHeaders([]string{
		"ci_session=xyz; path=/",
		"csrf_cookie=DEF456; path=/",
	})
	token, _ = session.Token()
	require.Equal(t, "DEF456", token)
}

func TestExtractToken(t *testing.T) {
	table := []struct {
		raw      string
		expected string
		ok       bool
	}{
		{raw: "csrf_cookie=ABC123;", expected: "ABC123", ok: true},
		{raw: "a=b; path=/, csrf_cookie=ABC123; path=/", expected: "ABC123", ok: true},
		{raw: "csrf_cookie=ABC123", expected: "ABC123", ok: true},
		{raw: "csrf_cookie=ABC123, other=1", expected: "ABC123", ok: true},
		{raw: "csrf_cookie=;", expected: "", ok: true},
		{raw: "session=1; path=/", ok: false},
		{raw: "", ok: false},
	}

	for _, row := range table {
		token, ok := extractToken(row.raw)
		require.Equal(t, row.ok, ok, row.raw)
		require.Equal(t, row.expected, token, row.raw)
	}
}
