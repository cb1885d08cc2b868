package stockphoto

import (
	"fmt"
	"guidiqo/pkg/serrors"
	"net/http"
	"strings"
)

// StatusError converts a non-2xx provider response into a semantic error.
// It returns nil for 2xx statuses.
func StatusError(provider string, status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusTooManyRequests:
		return serrors.With(serrors.ErrRateLimited, "%s rate limited: %s", provider, msg)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return serrors.With(serrors.ErrUnauthorized, "%s rejected credentials: %s", provider, msg)
	default:
		return fmt.Errorf("%s search failed with status %d: %s", provider, status, msg)
	}
}

// ErrMissingKey is returned by providers configured without an API key.
func ErrMissingKey(provider string) error {
	return serrors.With(serrors.ErrUnavailable, "%s API key is not configured", provider)
}
