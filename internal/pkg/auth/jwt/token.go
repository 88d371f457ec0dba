/*
Package jwt provides read-only helpers over the bearer tokens issued by the huecas backend.

The client treats the token as an opaque credential for authorization purposes; this package
only peeks at the expiry claim without verifying the signature, so the UI can log and hint
when a stored session has lapsed.
*/
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// PeekExpiry parses tokenString without verifying its signature and returns the
// expiry time from the exp claim. Authorization decisions never depend on this
// value; the server remains the sole authority on token validity.
func PeekExpiry(tokenString string) (time.Time, error) {
	parser := jwt.Parser{}
	claims := jwt.StandardClaims{}

	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return time.Time{}, err
	}

	if claims.ExpiresAt == 0 {
		return time.Time{}, errors.New("token carries no expiry claim")
	}

	return time.Unix(claims.ExpiresAt, 0), nil
}

// IsExpired reports whether tokenString carries an exp claim in the past.
// Tokens without a readable expiry are reported as not expired.
func IsExpired(tokenString string, now time.Time) bool {
	expiry, err := PeekExpiry(tokenString)
	if err != nil {
		return false
	}

	return expiry.Before(now)
}
