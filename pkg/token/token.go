// Package token decodes the payload of compact JSON Web Tokens and checks their
// expiration claim. Signatures are never verified, so results are advisory and
// must not be used to authorize a request.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a token.
type Claims = jwt.MapClaims

// ErrMissingExpiration is returned when decoded claims carry no exp claim.
var ErrMissingExpiration = errors.New("Decoded JWT token does not have an expiration date (exp field)")

// ErrMissingPayload is the cause of a DecodeError for tokens without a payload segment.
var ErrMissingPayload = errors.New("token has no payload segment")

// DecodeError reports a token that could not be decoded into claims.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Invalid JWT token: '%v'", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// segmentParser only decodes segments; it is never asked to verify anything.
var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// now is swapped in tests.
var now = time.Now

// Decode returns the claims held in the payload segment of tok.
func Decode(tok string) (Claims, error) {
	parts := strings.Split(tok, ".")
	if len(parts) < 2 {
		return nil, &DecodeError{Err: ErrMissingPayload}
	}

	// Accept both alphabets; the parser expects the URL-safe one.
	segment := strings.NewReplacer("+", "-", "/", "_").Replace(parts[1])
	payload, err := segmentParser.DecodeSegment(segment)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if claims == nil {
		return nil, &DecodeError{Err: errors.New("payload is not a JSON object")}
	}

	return claims, nil
}

// Bounds of the instants ExpiresAt reports, the range RFC 3339 can express.
var (
	minExpiry = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxExpiry = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// expSeconds returns the raw exp claim in Unix seconds.
// A missing or zero exp yields ErrMissingExpiration.
func expSeconds(claims Claims) (float64, error) {
	// GetExpirationTime rejects exp values that are not numbers.
	if _, err := claims.GetExpirationTime(); err != nil {
		return 0, fmt.Errorf("invalid exp claim: %w", err)
	}

	var secs float64
	switch v := claims["exp"].(type) {
	case float64:
		secs = v
	case json.Number:
		secs, _ = v.Float64()
	}
	if secs == 0 {
		return 0, ErrMissingExpiration
	}
	return secs, nil
}

// ExpiresAt returns the instant described by the exp claim, clamped to the
// years 1 through 9999. A missing or zero exp yields ErrMissingExpiration.
func ExpiresAt(claims Claims) (time.Time, error) {
	secs, err := expSeconds(claims)
	if err != nil {
		return time.Time{}, err
	}

	switch {
	case secs >= float64(maxExpiry.Unix()):
		return maxExpiry, nil
	case secs <= float64(minExpiry.Unix()):
		return minExpiry, nil
	}
	whole, frac := math.Modf(secs)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC(), nil
}

// DecodedTokenHasExpired reports whether the current time, in milliseconds, is
// strictly after the exp claim of already decoded claims.
func DecodedTokenHasExpired(claims Claims) (bool, error) {
	secs, err := expSeconds(claims)
	if err != nil {
		return false, err
	}
	return float64(now().UnixMilli()) > secs*1000, nil
}

// HasExpired decodes tok and reports whether it has expired.
func HasExpired(tok string) (bool, error) {
	claims, err := Decode(tok)
	if err != nil {
		return false, err
	}
	return DecodedTokenHasExpired(claims)
}
