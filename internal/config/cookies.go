package config

import (
	"net/http"
	"time"
)

const SessionCookie = "session"

type Cookies struct {
	Secure   bool
	SameSite http.SameSite
	jwt      *JWT
}

func NewCookies(c *Config, j *JWT) *Cookies {
	sameSite := http.SameSiteStrictMode
	if c.Development() {
		sameSite = http.SameSiteLaxMode
	}
	return &Cookies{
		Secure:   c.Production(),
		SameSite: sameSite,
		jwt:      j,
	}
}

func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Path:     "/",
		Value:    "delete",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

func (c *Cookies) Refresh(w http.ResponseWriter, sessionId string) error {
	token, err := c.jwt.Sign(sessionId)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Path:     "/",
		Value:    token,
		Expires:  time.Now().Add(c.jwt.tokenLifetime),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
	return nil
}

func (c *Cookies) Stale(claims *SessionClaims) bool {
	return c.jwt.Stale(claims)
}

func (c *Cookies) ParseSessionClaims(r *http.Request) (*SessionClaims, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, err
	}
	return c.jwt.Parse(cookie.Value)
}
