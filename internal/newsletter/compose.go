package newsletter

import (
	"bytes"
	"embed"
	"fmt"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/mailer"
	"html/template"
	"net/url"
	"strings"
)

// UnsubscribePath is the public endpoint that records opt-outs.
const UnsubscribePath = "/api/newsletter/unsubscribe"

//go:embed templates/*.tmpl
var templatesFS embed.FS

var campaignTemplate = template.Must(template.ParseFS(templatesFS, "templates/campaign.html.tmpl")) //nolint: gochecknoglobals

// Composer turns a campaign into the email sent to one recipient.
type Composer struct {
	From              string
	PublicBaseURL     string
	UnsubscribeSecret string
}

// UnsubscribeURL returns the one-click opt-out link of email.
func (c Composer) UnsubscribeURL(email string) (string, error) {
	token, err := NewUnsubscribeToken(c.UnsubscribeSecret, email)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(c.PublicBaseURL, "/") + UnsubscribePath + "?token=" + url.QueryEscape(token), nil
}

// Compose renders campaign for recipient with its personal unsubscribe link
// and the List-Unsubscribe headers mail clients use for one-click opt-out.
func (c Composer) Compose(campaign domain.Campaign, recipient string) (mailer.Email, error) {
	unsubscribeURL, err := c.UnsubscribeURL(recipient)
	if err != nil {
		return mailer.Email{}, err
	}

	paragraphs := splitParagraphs(campaign.Body)
	cta := campaign.CTALabel
	if cta == "" {
		cta = "Découvrir"
	}

	var html bytes.Buffer
	if err := campaignTemplate.Execute(&html, struct {
		Subject, Title   string
		Paragraphs       []string
		CTALabel, CTAURL string
		UnsubscribeURL   string
	}{
		Subject:        campaign.Subject,
		Title:          campaign.Title,
		Paragraphs:     paragraphs,
		CTALabel:       cta,
		CTAURL:         campaign.CTAURL,
		UnsubscribeURL: unsubscribeURL,
	}); err != nil {
		return mailer.Email{}, fmt.Errorf("could not render campaign template: %w", err)
	}

	var text strings.Builder
	text.WriteString(campaign.Title + "\n\n")
	for _, p := range paragraphs {
		text.WriteString(p + "\n\n")
	}
	if campaign.CTAURL != "" {
		fmt.Fprintf(&text, "%s : %s\n\n", cta, campaign.CTAURL)
	}
	fmt.Fprintf(&text, "Se désinscrire : %s\n", unsubscribeURL)

	return mailer.Email{
		From:    c.From,
		To:      []string{recipient},
		Subject: campaign.Subject,
		HTML:    html.String(),
		Text:    text.String(),
		Headers: map[string]string{
			"List-Unsubscribe":      "<" + unsubscribeURL + ">",
			"List-Unsubscribe-Post": "List-Unsubscribe=One-Click",
		},
	}, nil
}

// splitParagraphs splits body on blank lines and joins wrapped lines.
func splitParagraphs(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	var out []string
	for _, block := range strings.Split(body, "\n\n") {
		if p := strings.Join(strings.Fields(block), " "); p != "" {
			out = append(out, p)
		}
	}

	return out
}
