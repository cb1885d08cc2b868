package unsplash_test

import (
	"context"
	"errors"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/serrors"
	"guidiqo/pkg/stockphoto"
	"guidiqo/pkg/stockphoto/unsplash"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *unsplash.Client {
	return unsplash.New(&http.Client{Transport: fn}, "test-key")
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const searchBody = `{
  "total": 2,
  "results": [
    {
      "id": "abc",
      "width": 4000,
      "height": 3000,
      "color": "#26598c",
      "alt_description": "people working in a bright office",
      "urls": {"raw": "https://images.unsplash.com/photo-1?ixid=x", "regular": "https://images.unsplash.com/photo-1?w=1080"},
      "links": {"html": "https://unsplash.com/photos/abc"},
      "user": {"name": "Jane Doe", "links": {"html": "https://unsplash.com/@jane"}}
    },
    {
      "id": "no-urls",
      "urls": {}
    }
  ]
}`

func TestClient_Search_Success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "api.unsplash.com", r.URL.Host)
		require.Equal(t, "/search/photos", r.URL.Path)
		require.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		require.Equal(t, "v1", r.Header.Get("Accept-Version"))

		q := r.URL.Query()
		require.Equal(t, "technology startup office", q.Get("query"))
		require.Equal(t, "5", q.Get("per_page"))
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "squarish", q.Get("orientation"))
		require.Equal(t, "blue", q.Get("color"))
		require.Equal(t, "fr", q.Get("lang"))

		return jsonResponse(http.StatusOK, searchBody), nil
	})

	photos, err := c.Search(context.Background(), stockphoto.SearchParams{
		Query:       "technology startup office",
		PerPage:     5,
		Page:        2,
		Orientation: "square",
		Color:       "blue",
		Locale:      "fr-FR",
	})
	require.NoError(t, err)
	require.Len(t, photos, 1, "results without URLs are skipped")

	p := photos[0]
	require.Equal(t, "abc", p.ID)
	require.Equal(t, domain.ImageSourceUnsplash, p.Provider)
	require.Equal(t, "https://images.unsplash.com/photo-1?w=1080", p.URL)
	require.Equal(t, 4000, p.Width)
	require.Equal(t, "#26598c", p.AvgColor)
	require.Equal(t, "people working in a bright office", p.Alt)
	require.Equal(t, "Jane Doe", p.Photographer.Name)
	require.Contains(t, p.Photographer.URL, "utm_source=guidiqo")
	require.Contains(t, p.PageURL, "utm_medium=referral")
	require.Contains(t, p.SrcSet, "https://images.unsplash.com/photo-1?ixid=x&w=640&fit=max&q=80 640w")
	require.Contains(t, p.SrcSet, "1920w")
}

func TestClient_Search_EmptyResults(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"total":0,"results":[]}`), nil
	})

	photos, err := c.Search(context.Background(), stockphoto.SearchParams{Query: "zzz"})
	require.NoError(t, err)
	require.Empty(t, photos)
}

func TestClient_Search_RateLimited(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests, "Rate Limit Exceeded"), nil
	})

	_, err := c.Search(context.Background(), stockphoto.SearchParams{Query: "x"})
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Search_Unauthorized(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, `{"errors":["OAuth error: The access token is invalid"]}`), nil
	})

	_, err := c.Search(context.Background(), stockphoto.SearchParams{Query: "x"})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestClient_Search_Non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "upstream bad"), nil
	})

	_, err := c.Search(context.Background(), stockphoto.SearchParams{Query: "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream bad")
}

func TestClient_Search_TransportError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	})

	_, err := c.Search(context.Background(), stockphoto.SearchParams{Query: "x"})
	require.Error(t, err)
}

func TestClient_Search_MissingKey(t *testing.T) {
	called := false
	c := unsplash.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		called = true

		return nil, errors.New("unexpected")
	})}, "")

	_, err := c.Search(context.Background(), stockphoto.SearchParams{Query: "x"})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.False(t, called, "no request should be sent without a key")
}

func TestClient_Search_BadJSON(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"results":`), nil
	})

	_, err := c.Search(context.Background(), stockphoto.SearchParams{Query: "x"})
	require.Error(t, err)
}
