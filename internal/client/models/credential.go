package models

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoClaims = errors.New("credential carries no readable claims")

// Credential is the bearer token the core operations are authorized with.
// The zero value is the absent credential.
type Credential struct {
	token string
}

// NoCredential returns the absent credential.
func NoCredential() Credential { return Credential{} }

// NewCredential wraps token. An empty token yields the absent credential.
func NewCredential(token string) Credential { return Credential{token: token} }

// Token returns the bearer token and whether one is present.
func (c Credential) Token() (string, bool) {
	return c.token, c.token != ""
}

func (c Credential) Present() bool { return c.token != "" }

// Claims is informational data read from a JWT credential. It is never
// verified client-side and must not be used for access decisions.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Claims decodes the token payload without verifying its signature. Opaque
// (non-JWT) tokens return ErrNoClaims and are still valid credentials.
func (c Credential) Claims() (Claims, error) {
	if !c.Present() {
		return Claims{}, ErrNoClaims
	}

	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.token, mc); err != nil {
		return Claims{}, errors.Join(ErrNoClaims, err)
	}

	var out Claims
	if sub, err := mc.GetSubject(); err == nil && sub != "" {
		out.Subject = sub
	} else if id, ok := mc["user_id"]; ok {
		out.Subject = formatClaim(id)
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// Expired reports whether the decoded expiry lies before now. Tokens without
// an expiry never expire from the client's point of view.
func (c Credential) Expired(now time.Time) bool {
	cl, err := c.Claims()
	if err != nil || cl.ExpiresAt.IsZero() {
		return false
	}
	return cl.ExpiresAt.Before(now)
}

func formatClaim(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}
