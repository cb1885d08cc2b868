package api_test

import (
	"context"
	"guidiqo/internal/api"
	"guidiqo/internal/api/handler/v1handler"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockadmin "guidiqo/internal/admin/mock"
	mockbrandkit "guidiqo/internal/brandkit/mock"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"guidiqo/pkg/domain"
	"guidiqo/pkg/logger"
	"guidiqo/pkg/metrics"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type serverFixture struct {
	admin    *mockadmin.MockAdmin
	brandKit *mockbrandkit.MockBrandKit
	srv      *http.Server
}

func newServerFixture(t *testing.T, opts api.Options) *serverFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	f := &serverFixture{
		admin:    mockadmin.NewMockAdmin(ctrl),
		brandKit: mockbrandkit.NewMockBrandKit(ctrl),
	}

	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}
	if opts.SecHandlerOptions == nil {
		opts.SecHandlerOptions = &v1handler.SecHandlerOptions{}
	}
	f.srv, err = api.NewServer(api.Deps{
		Deps:          v1handler.Deps{Admin: f.admin, BrandKit: f.brandKit},
		MeterProvider: mp,
		Gatherer:      reg,
	}, opts)
	require.NoError(t, err)

	return f
}

func (f *serverFixture) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestNewServer_ServesSpecAndDocs(t *testing.T) {
	f := newServerFixture(t, api.Options{})

	rec := f.get("/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")

	rec = f.get("/docs/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestNewServer_MetricsRecordsRequests(t *testing.T) {
	f := newServerFixture(t, api.Options{})

	f.admin.EXPECT().Announcement(gomock.Any()).Return(&domain.Announcement{Variant: domain.AnnouncementInfo}, nil)
	require.Equal(t, http.StatusOK, f.get("/api/announcement").Code)

	rec := f.get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "http_server_request_duration_seconds")
}

func TestNewServer_AuthDisabledWithoutKey(t *testing.T) {
	f := newServerFixture(t, api.Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/brands", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	f.srv.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewServer_InvalidPublicKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "nope"},
		MetricsPath:       "/metrics",
	})
	require.Error(t, err)
}

func TestNewServer_CORSPreflight(t *testing.T) {
	f := newServerFixture(t, api.Options{AllowedOrigins: []string{"https://app.guidiqo.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/brands", nil)
	req.Header.Set("Origin", "https://app.guidiqo.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	f.srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://app.guidiqo.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewServer_RequestTimeout(t *testing.T) {
	f := newServerFixture(t, api.Options{RequestTimeout: 20 * time.Millisecond})

	f.admin.EXPECT().Announcement(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.Announcement, error) {
		<-ctx.Done()

		return nil, ctx.Err()
	})

	rec := f.get("/api/announcement")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"code":"TIMEOUT","message":"délai dépassé"}`, rec.Body.String())
}

func TestNewServer_NoPprofOnPublicListener(t *testing.T) {
	f := newServerFixture(t, api.Options{})

	for _, path := range []string{"/debug/pprof/", "/debug/pprof/cmdline", "/debug/pprof/heap"} {
		rec := f.get(path)
		require.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestNewDebugServer(t *testing.T) {
	require.Nil(t, api.NewDebugServer(api.Options{}))

	srv := api.NewDebugServer(api.Options{DebugAddr: "127.0.0.1:6060"})
	require.NotNil(t, srv)
	require.Equal(t, "127.0.0.1:6060", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
