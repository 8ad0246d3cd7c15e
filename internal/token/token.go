// Package token inspects stored access tokens without verifying them. The
// server owns verification; the client only peeks at claims to show expiry
// and warn before a doomed request.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	wzerrors "github.com/workzen/workzen-cli/internal/errors"
)

// Info is the subset of claims the client cares about.
type Info struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry has passed. Tokens without an
// exp claim never report expired.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// ExpiresIn returns the remaining lifetime, or zero when there is no exp
// claim or it has passed.
func (i Info) ExpiresIn(now time.Time) time.Duration {
	if i.ExpiresAt.IsZero() || now.After(i.ExpiresAt) {
		return 0
	}
	return i.ExpiresAt.Sub(now)
}

// Peek decodes a JWT's registered claims without signature verification.
func Peek(raw string) (Info, error) {
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return Info{}, wzerrors.Wrap(wzerrors.CodeMalformedResponse, "stored token is not a valid JWT", err)
	}
	info := Info{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
