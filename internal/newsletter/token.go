package newsletter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var errInvalidToken = errors.New("invalid unsubscribe token")

// NewUnsubscribeToken signs an HS256 token whose subject is the lowercased
// email. Tokens do not expire so links in old emails keep working.
func NewUnsubscribeToken(secret, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: normalizeEmail(email),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("could not sign unsubscribe token: %w", err)
	}

	return signed, nil
}

// ParseUnsubscribeToken verifies token and returns the email it was issued for.
func ParseUnsubscribeToken(secret, token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidToken, err)
	}

	email := normalizeEmail(claims.Subject)
	if !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: subject is not an email", errInvalidToken)
	}

	return email, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
