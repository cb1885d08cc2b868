package newsletter_test

import (
	"guidiqo/internal/newsletter"
	"guidiqo/pkg/domain"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposer_Compose(t *testing.T) {
	c := newsletter.Composer{
		From:              "Guidiqo <news@guidiqo.com>",
		PublicBaseURL:     "https://guidiqo.com/",
		UnsubscribeSecret: "s3cret",
	}

	email, err := c.Compose(domain.Campaign{
		Subject:  "Du nouveau",
		Title:    "Les exports PDF <enfin>",
		Body:     "Premier paragraphe\nsur deux lignes.\n\nSecond paragraphe.",
		CTAURL:   "https://guidiqo.com/app",
		CTALabel: "Essayer",
	}, "jane@example.com")
	require.NoError(t, err)

	require.Equal(t, []string{"jane@example.com"}, email.To)
	require.Equal(t, "Guidiqo <news@guidiqo.com>", email.From)
	require.Equal(t, "Du nouveau", email.Subject)
	require.Contains(t, email.HTML, "Les exports PDF &lt;enfin&gt;")
	require.Contains(t, email.HTML, "Premier paragraphe sur deux lignes.")
	require.Contains(t, email.HTML, "https://guidiqo.com/app")
	require.Contains(t, email.Text, "Essayer : https://guidiqo.com/app")
	require.Equal(t, "List-Unsubscribe=One-Click", email.Headers["List-Unsubscribe-Post"])

	header := email.Headers["List-Unsubscribe"]
	require.True(t, strings.HasPrefix(header, "<https://guidiqo.com/api/newsletter/unsubscribe?token="))
	u, err := url.Parse(strings.Trim(header, "<>"))
	require.NoError(t, err)
	got, err := newsletter.ParseUnsubscribeToken("s3cret", u.Query().Get("token"))
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", got)
}
