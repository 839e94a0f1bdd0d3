package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenAlive decodes the token's exp claim locally, without verifying the
// signature: the upstream is the authority on token validity and the
// gateway only trusts the expiry for session restore. A revoked-but-unexpired
// token is caught by the upstream's 401 on the next call.
func tokenAlive(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(now)
}
