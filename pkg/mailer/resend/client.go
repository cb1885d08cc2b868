// Package resend provides a mailer.Sender backed by the Resend HTTP API.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"guidiqo/pkg/mailer"
	"guidiqo/pkg/serrors"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL is the public Resend API endpoint.
const DefaultBaseURL = "https://api.resend.com"

// Client talks to the Resend REST API and fulfills the mailer.Sender interface.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// New constructs a Client that uses the provided http.Client and API key.
// An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, apiKey string, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Ensure Client conforms to the mailer.Sender interface at compile time.
var _ mailer.Sender = (*Client)(nil)

type emailPayload struct {
	From    string            `json:"from"`
	To      []string          `json:"to"`
	Subject string            `json:"subject"`
	HTML    string            `json:"html,omitempty"`
	Text    string            `json:"text,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

func toPayload(e mailer.Email) emailPayload {
	return emailPayload{
		From:    e.From,
		To:      e.To,
		Subject: e.Subject,
		HTML:    e.HTML,
		Text:    e.Text,
		Headers: e.Headers,
	}
}

// Send posts a single email to /emails.
func (c *Client) Send(ctx context.Context, email mailer.Email) (string, error) {
	// https://resend.com/docs/api-reference/emails/send-email
	var res struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/emails", toPayload(email), &res); err != nil {
		return "", err
	}

	return res.ID, nil
}

// SendBatch posts up to mailer.MaxBatchSize emails to /emails/batch.
func (c *Client) SendBatch(ctx context.Context, emails []mailer.Email) ([]string, error) {
	// https://resend.com/docs/api-reference/emails/send-batch-emails
	if len(emails) == 0 {
		return nil, nil
	}
	if len(emails) > mailer.MaxBatchSize {
		return nil, fmt.Errorf("batch of %d emails exceeds the limit of %d", len(emails), mailer.MaxBatchSize)
	}

	payload := make([]emailPayload, 0, len(emails))
	for _, e := range emails {
		payload = append(payload, toPayload(e))
	}

	var res struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/emails/batch", payload, &res); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(res.Data))
	for _, d := range res.Data {
		ids = append(ids, d.ID)
	}

	return ids, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	if c.apiKey == "" {
		return serrors.With(serrors.ErrUnavailable, "resend API key is not configured")
	}

	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("could not marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return serrors.With(serrors.ErrRateLimited, "resend rate limited: %s", strings.TrimSpace(string(respBody)))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return serrors.With(serrors.ErrUnauthorized, "resend rejected credentials: %s", strings.TrimSpace(string(respBody)))
	case resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusBadRequest:
		return serrors.With(serrors.ErrBadRequest, "resend rejected email: %s", strings.TrimSpace(string(respBody)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("resend request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}
