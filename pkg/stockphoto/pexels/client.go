// Package pexels provides a stockphoto.Client implementation backed by the
// Pexels search API.
package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/stockphoto"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the public Pexels API endpoint.
const DefaultBaseURL = "https://api.pexels.com/v1"

// locales maps two-letter languages to the locale codes Pexels supports.
var locales = map[string]string{ //nolint: gochecknoglobals
	"fr": "fr-FR",
	"en": "en-US",
	"es": "es-ES",
	"de": "de-DE",
	"it": "it-IT",
	"pt": "pt-PT",
	"nl": "nl-NL",
}

// Client talks to the Pexels REST API and fulfills the stockphoto.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// New constructs a Client that uses the provided http.Client and API key.
// An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, apiKey string, baseURL ...string) *Client {
	c := &Client{httpClient: httpClient, apiKey: apiKey, baseURL: DefaultBaseURL}
	if len(baseURL) > 0 && baseURL[0] != "" {
		c.baseURL = strings.TrimRight(baseURL[0], "/")
	}

	return c
}

// Ensure Client conforms to the stockphoto.Client interface at compile time.
var _ stockphoto.Client = (*Client)(nil)

// Name implements stockphoto.Client.
func (c *Client) Name() domain.ImageSource { return domain.ImageSourcePexels }

type searchResponse struct {
	Page         int `json:"page"`
	PerPage      int `json:"per_page"`
	TotalResults int `json:"total_results"`
	Photos       []struct {
		ID              int64  `json:"id"`
		Width           int    `json:"width"`
		Height          int    `json:"height"`
		URL             string `json:"url"`
		Photographer    string `json:"photographer"`
		PhotographerURL string `json:"photographer_url"`
		AvgColor        string `json:"avg_color"`
		Alt             string `json:"alt"`
		Src             struct {
			Original string `json:"original"`
			Large2x  string `json:"large2x"`
			Large    string `json:"large"`
			Medium   string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

// Search queries /search.
func (c *Client) Search(ctx context.Context, params stockphoto.SearchParams) ([]stockphoto.Photo, error) {
	// https://www.pexels.com/api/documentation/#photos-search
	if c.apiKey == "" {
		return nil, stockphoto.ErrMissingKey("pexels")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(params), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if err := stockphoto.StatusError("pexels", resp.StatusCode, b); err != nil {
		return nil, err
	}

	var sr searchResponse
	if err := json.Unmarshal(b, &sr); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	photos := make([]stockphoto.Photo, 0, len(sr.Photos))
	for _, p := range sr.Photos {
		src := p.Src.Large
		if src == "" {
			src = p.Src.Original
		}
		if src == "" {
			continue
		}
		photos = append(photos, stockphoto.Photo{
			ID:       strconv.FormatInt(p.ID, 10),
			Provider: domain.ImageSourcePexels,
			URL:      src,
			SrcSet:   srcSet(p.Src.Medium, p.Src.Large, p.Src.Large2x),
			Width:    p.Width,
			Height:   p.Height,
			Alt:      p.Alt,
			AvgColor: p.AvgColor,
			Photographer: domain.Photographer{
				Name: p.Photographer,
				URL:  p.PhotographerURL,
			},
			PageURL: p.URL,
		})
	}

	return photos, nil
}

func (c *Client) searchURL(params stockphoto.SearchParams) string {
	q := url.Values{}
	q.Set("query", params.Query)
	if params.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	switch o := strings.ToLower(params.Orientation); o {
	case stockphoto.OrientationLandscape, stockphoto.OrientationPortrait, stockphoto.OrientationSquare:
		q.Set("orientation", o)
	case "squarish":
		q.Set("orientation", stockphoto.OrientationSquare)
	}
	if params.Color != "" {
		q.Set("color", params.Color)
	}
	if l := locale(params.Locale); l != "" {
		q.Set("locale", l)
	}

	return c.baseURL + "/search?" + q.Encode()
}

// locale expands a language tag to a Pexels locale, e.g. "fr" to "fr-FR".
func locale(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	if strings.Contains(tag, "-") {
		return tag
	}

	return locales[strings.ToLower(tag)]
}

// srcSet pairs the Pexels size variants with their nominal widths.
func srcSet(medium, large, large2x string) string {
	var parts []string
	if medium != "" {
		parts = append(parts, medium+" 350w")
	}
	if large != "" {
		parts = append(parts, large+" 940w")
	}
	if large2x != "" {
		parts = append(parts, large2x+" 1880w")
	}

	return strings.Join(parts, ", ")
}
