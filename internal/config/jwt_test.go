package config

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	c := Default()
	c.Session.Secret = "secret"
	j, err := NewJWT(c)
	require.NoError(t, err)

	token, err := j.Sign("abc")
	require.NoError(t, err)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.SessionId)
	assert.WithinDuration(t, time.Now().Add(c.Session.TTL.Duration), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTRejectsForeignKey(t *testing.T) {
	a, err := NewJWT(Default())
	require.NoError(t, err)
	b, err := NewJWT(Default())
	require.NoError(t, err)

	token, err := a.Sign("abc")
	require.NoError(t, err)

	_, err = b.Parse(token)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	c := Default()
	c.Session.TTL = Duration{-time.Minute}
	j, err := NewJWT(c)
	require.NoError(t, err)

	token, err := j.Sign("abc")
	require.NoError(t, err)

	_, err = j.Parse(token)
	assert.Error(t, err)
}

func TestJWTStale(t *testing.T) {
	c := Default()
	j, err := NewJWT(c)
	require.NoError(t, err)
	ttl := c.Session.TTL.Duration

	tests := []struct {
		age  time.Duration
		want bool
	}{
		{age: 0, want: false},
		{age: ttl / 4, want: false},
		{age: ttl * 3 / 4, want: true},
	}
	for _, test := range tests {
		token, err := j.SignAt("abc", time.Now().Add(-test.age))
		require.NoError(t, err)
		claims, err := j.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, test.want, j.Stale(claims), "age %s", test.age)
	}
}

func TestCookies(t *testing.T) {
	c := Default()
	j, err := NewJWT(c)
	require.NoError(t, err)
	cookies := NewCookies(c, j)

	rec := httptest.NewRecorder()
	require.NoError(t, cookies.Refresh(rec, "abc"))

	res := rec.Result()
	require.Len(t, res.Cookies(), 1)
	cookie := res.Cookies()[0]
	assert.Equal(t, SessionCookie, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	claims, err := cookies.ParseSessionClaims(req)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.SessionId)

	_, err = cookies.ParseSessionClaims(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, http.ErrNoCookie)
}
