package v1handler_test

import (
	"fmt"
	"guidiqo/internal/api/handler/v1handler"
	"guidiqo/internal/stockphoto"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockstockphoto "guidiqo/pkg/stockphoto/mock"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"

	"guidiqo/pkg/domain"
	pkgstockphoto "guidiqo/pkg/stockphoto"
)

// newImageMux serves /api/get-image through a real proxy allowing capacity
// lookups per client and hour.
func newImageMux(t *testing.T, capacity, trustedProxies int) *http.ServeMux {
	t.Helper()
	ctrl := gomock.NewController(t)

	client := mockstockphoto.NewMockClient(ctrl)
	client.EXPECT().Name().Return(domain.ImageSourceUnsplash).AnyTimes()
	client.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]pkgstockphoto.Photo{{
		ID:       "a",
		Provider: domain.ImageSourceUnsplash,
		URL:      "https://img.example.com/a",
		Width:    1600,
		Height:   900,
	}}, nil).AnyTimes()

	proxy, err := stockphoto.New(stockphoto.Options{
		DefaultProvider:   domain.ImageSourceUnsplash,
		CacheTTL:          time.Hour,
		RateLimitCapacity: capacity,
		FallbackURL:       "https://example.com/fallback.jpg",
	}, noop.NewMeterProvider(), client)
	require.NoError(t, err)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Proxy: proxy}, nil, trustedProxies).Register(mux)

	return mux
}

func getImage(mux *http.ServeMux, remoteAddr string, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/get-image?query=forest", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func TestGetImage_ForwardedForIgnoredWithoutTrustedProxy(t *testing.T) {
	mux := newImageMux(t, 2, 0)

	served := 0
	for i := range 10 {
		rec := getImage(mux, "198.51.100.7:4242", fmt.Sprintf("203.0.113.%d", i))
		if rec.Code == http.StatusOK {
			served++

			continue
		}
		require.Equal(t, http.StatusTooManyRequests, rec.Code, rec.Body.String())
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
	}
	require.Equal(t, 2, served)
}

func TestGetImage_SpoofedForwardedForBehindProxy(t *testing.T) {
	mux := newImageMux(t, 2, 1)

	// the proxy at 10.0.0.1 appends the real client, whatever the client sent before it
	served := 0
	for i := range 10 {
		rec := getImage(mux, "10.0.0.1:4242", fmt.Sprintf("203.0.113.%d, 198.51.100.7", i))
		if rec.Code == http.StatusOK {
			served++
		}
	}
	require.Equal(t, 2, served)

	rec := getImage(mux, "10.0.0.1:4242", "198.51.100.8")
	require.Equal(t, http.StatusOK, rec.Code, "another client has its own bucket")
}
