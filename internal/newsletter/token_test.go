package newsletter_test

import (
	"guidiqo/internal/newsletter"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestUnsubscribeToken_RoundTrip(t *testing.T) {
	token, err := newsletter.NewUnsubscribeToken("s3cret", " Jane.Doe@Example.com ")
	require.NoError(t, err)

	email, err := newsletter.ParseUnsubscribeToken("s3cret", token)
	require.NoError(t, err)
	require.Equal(t, "jane.doe@example.com", email)
}

func TestUnsubscribeToken_Invalid(t *testing.T) {
	token, err := newsletter.NewUnsubscribeToken("s3cret", "jane@example.com")
	require.NoError(t, err)

	_, err = newsletter.ParseUnsubscribeToken("other", token)
	require.Error(t, err)

	_, err = newsletter.ParseUnsubscribeToken("s3cret", token+"x")
	require.Error(t, err)

	_, err = newsletter.ParseUnsubscribeToken("s3cret", "garbage")
	require.Error(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "jane@example.com"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = newsletter.ParseUnsubscribeToken("s3cret", none)
	require.Error(t, err)

	noEmail, err := newsletter.NewUnsubscribeToken("s3cret", "jane")
	require.NoError(t, err)
	_, err = newsletter.ParseUnsubscribeToken("s3cret", noEmail)
	require.Error(t, err)
}
