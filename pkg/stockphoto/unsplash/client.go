// Package unsplash provides a stockphoto.Client implementation backed by the
// Unsplash search API.
package unsplash

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

// DefaultBaseURL is the public Unsplash API endpoint.
const DefaultBaseURL = "https://api.unsplash.com"

// srcSetWidths are the widths requested from the Unsplash image CDN.
var srcSetWidths = []int{640, 1080, 1920} //nolint: gochecknoglobals

// Client talks to the Unsplash REST API and fulfills the stockphoto.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to Unsplash
	accessKey  string       // accessKey is the Unsplash application access key
	baseURL    string
	appName    string // appName is sent as utm_source on attribution links
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") } }

// WithAppName sets the utm_source used on attribution links.
func WithAppName(name string) Option { return func(c *Client) { c.appName = name } }

// New constructs a Client that uses the provided http.Client and access key.
func New(httpClient *http.Client, accessKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		accessKey:  accessKey,
		baseURL:    DefaultBaseURL,
		appName:    "guidiqo",
	}
	for _, o := range opts {
		o(c)
	}

	return c
}

// Ensure Client conforms to the stockphoto.Client interface at compile time.
var _ stockphoto.Client = (*Client)(nil)

// Name implements stockphoto.Client.
func (c *Client) Name() domain.ImageSource { return domain.ImageSourceUnsplash }

type searchResponse struct {
	Total   int `json:"total"`
	Results []struct {
		ID             string `json:"id"`
		Width          int    `json:"width"`
		Height         int    `json:"height"`
		Color          string `json:"color"`
		Description    string `json:"description"`
		AltDescription string `json:"alt_description"`
		URLs           struct {
			Raw     string `json:"raw"`
			Regular string `json:"regular"`
		} `json:"urls"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
		User struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	} `json:"results"`
}

// Search queries /search/photos.
func (c *Client) Search(ctx context.Context, params stockphoto.SearchParams) ([]stockphoto.Photo, error) {
	// https://unsplash.com/documentation#search-photos
	if c.accessKey == "" {
		return nil, stockphoto.ErrMissingKey("unsplash")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(params), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

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
	if err := stockphoto.StatusError("unsplash", resp.StatusCode, b); err != nil {
		return nil, err
	}

	var sr searchResponse
	if err := json.Unmarshal(b, &sr); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	photos := make([]stockphoto.Photo, 0, len(sr.Results))
	for _, r := range sr.Results {
		if r.URLs.Raw == "" && r.URLs.Regular == "" {
			continue
		}
		alt := r.AltDescription
		if alt == "" {
			alt = r.Description
		}
		photos = append(photos, stockphoto.Photo{
			ID:       r.ID,
			Provider: domain.ImageSourceUnsplash,
			URL:      firstNonEmpty(r.URLs.Regular, r.URLs.Raw),
			SrcSet:   srcSet(r.URLs.Raw),
			Width:    r.Width,
			Height:   r.Height,
			Alt:      alt,
			AvgColor: r.Color,
			Photographer: domain.Photographer{
				Name: r.User.Name,
				URL:  c.withUTM(r.User.Links.HTML),
			},
			PageURL: c.withUTM(r.Links.HTML),
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
	if o := orientation(params.Orientation); o != "" {
		q.Set("orientation", o)
	}
	if params.Color != "" {
		q.Set("color", params.Color)
	}
	if l := lang(params.Locale); l != "" {
		q.Set("lang", l)
	}

	return c.baseURL + "/search/photos?" + q.Encode()
}

// withUTM appends the referral parameters required by the Unsplash API guidelines.
func (c *Client) withUTM(link string) string {
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	q := u.Query()
	q.Set("utm_source", c.appName)
	q.Set("utm_medium", "referral")
	u.RawQuery = q.Encode()

	return u.String()
}

// orientation maps a stockphoto orientation to the Unsplash vocabulary.
func orientation(o string) string {
	switch strings.ToLower(o) {
	case stockphoto.OrientationLandscape:
		return "landscape"
	case stockphoto.OrientationPortrait:
		return "portrait"
	case stockphoto.OrientationSquare, "squarish":
		return "squarish"
	default:
		return ""
	}
}

// lang reduces a locale such as "fr-FR" to the two-letter code Unsplash expects.
func lang(locale string) string {
	l, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(locale)), "-")
	l, _, _ = strings.Cut(l, "_")
	if len(l) != 2 {
		return ""
	}

	return l
}

// srcSet builds a responsive srcset from the raw image URL, which accepts
// imgix resizing parameters.
func srcSet(raw string) string {
	if raw == "" {
		return ""
	}
	sep := "?"
	if strings.Contains(raw, "?") {
		sep = "&"
	}
	parts := make([]string, 0, len(srcSetWidths))
	for _, w := range srcSetWidths {
		parts = append(parts, fmt.Sprintf("%s%sw=%d&fit=max&q=80 %dw", raw, sep, w, w))
	}

	return strings.Join(parts, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
