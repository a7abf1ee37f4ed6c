package config

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SessionClaims struct {
	SessionId string `json:"session_id"`
	jwt.RegisteredClaims
}

type JWT struct {
	key           []byte
	signingMethod jwt.SigningMethod
	tokenLifetime time.Duration
}

// NewJWT signs with the configured secret, or with a random key that lives
// as long as the process.
func NewJWT(c *Config) (*JWT, error) {
	key := []byte(c.Session.Secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("unable to generate session key: %w", err)
		}
	}

	j := &JWT{
		key:           key,
		signingMethod: jwt.SigningMethodHS256,
		tokenLifetime: c.Session.TTL.Duration,
	}

	return j, nil
}

func (j *JWT) Sign(sessionId string) (string, error) {
	return j.SignAt(sessionId, time.Now())
}

func (j *JWT) SignAt(sessionId string, now time.Time) (string, error) {
	claims := &SessionClaims{
		SessionId: sessionId,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenLifetime)),
		},
	}
	return jwt.NewWithClaims(j.signingMethod, claims).SignedString(j.key)
}

func (j *JWT) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&SessionClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return j.key, nil
		},
		jwt.WithValidMethods([]string{j.signingMethod.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.SessionId == "" {
		return nil, fmt.Errorf("malformed claims")
	}
	return claims, nil
}

// Stale reports whether a token is past half of its lifetime and should be
// re-issued.
func (j *JWT) Stale(claims *SessionClaims) bool {
	if claims.IssuedAt == nil {
		return true
	}
	return time.Since(claims.IssuedAt.Time) > j.tokenLifetime/2
}
