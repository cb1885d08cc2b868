package stockphoto

import (
	"context"
	"errors"
	"fmt"
	"guidiqo/internal/config"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/logger"
	"guidiqo/pkg/metrics"
	"guidiqo/pkg/seeded"
	"guidiqo/pkg/serrors"
	"guidiqo/pkg/stockphoto"
	"math"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 10
	maxPerPage     = 30
	maxPage        = 100
	maxQueryLength = 200
)

// RetryAfterError carries the delay before a throttled client may retry.
type RetryAfterError struct {
	RetryAfter time.Duration
}

func (e *RetryAfterError) Error() string {
	return fmt.Sprintf("retry after %s", e.RetryAfter)
}

// RetryAfterSeconds rounds the delay up to whole seconds, at least one.
func (e *RetryAfterError) RetryAfterSeconds() int {
	return max(1, int(math.Ceil(e.RetryAfter.Seconds())))
}

// Options configure the proxy. They are typically derived from application configuration.
type Options struct {
	// DefaultProvider is queried first unless a request names another provider.
	DefaultProvider domain.ImageSource
	// CacheTTL is how long successful results are served from memory.
	CacheTTL time.Duration
	// RateLimitCapacity is the per-IP bucket size, refilled every hour.
	RateLimitCapacity int
	// FallbackURL is served when every provider failed.
	FallbackURL string
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultProvider:   domain.ImageSource(cfg.Images.DefaultProvider),
		CacheTTL:          cfg.Images.CacheTTL,
		RateLimitCapacity: cfg.Images.RateLimitCapacity,
		FallbackURL:       cfg.Images.FallbackURL,
	}
}

type instruments struct {
	requests         metric.Int64Counter
	cacheLookups     metric.Int64Counter
	rateLimited      metric.Int64Counter
	providerDuration metric.Float64Histogram
}

func newInstruments(mp metric.MeterProvider) (instruments, error) {
	meter := mp.Meter(metrics.MeterName)
	var (
		ins instruments
		err error
	)
	if ins.requests, err = meter.Int64Counter("stockphoto_requests_total",
		metric.WithDescription("Image proxy responses by source.")); err != nil {
		return ins, fmt.Errorf("could not create requests counter: %w", err)
	}
	if ins.cacheLookups, err = meter.Int64Counter("stockphoto_cache_lookups_total",
		metric.WithDescription("Image proxy cache lookups by result.")); err != nil {
		return ins, fmt.Errorf("could not create cache counter: %w", err)
	}
	if ins.rateLimited, err = meter.Int64Counter("stockphoto_rate_limited_total",
		metric.WithDescription("Image proxy requests rejected by the per-IP rate limit.")); err != nil {
		return ins, fmt.Errorf("could not create rate limit counter: %w", err)
	}
	if ins.providerDuration, err = meter.Float64Histogram("stockphoto_provider_duration_seconds",
		metric.WithDescription("Stock-photo provider search latency."),
		metric.WithUnit("s")); err != nil {
		return ins, fmt.Errorf("could not create provider histogram: %w", err)
	}

	return ins, nil
}

// proxy is the concrete implementation of the Proxy interface.
type proxy struct {
	options   Options
	providers []stockphoto.Client
	cache     *TTLCache[Request, domain.ImageResult]
	limiter   *RateLimiter
	ins       instruments
}

// New creates a Proxy over the given providers. Providers are tried in the
// order configured by Options.DefaultProvider and the request hint.
func New(options Options, mp metric.MeterProvider, providers ...stockphoto.Client) (Proxy, error) {
	ins, err := newInstruments(mp)
	if err != nil {
		return nil, err
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &proxy{
		options:   options,
		providers: providers,
		cache:     NewTTLCache[Request, domain.ImageResult](options.CacheTTL),
		limiter:   NewRateLimiter(options.RateLimitCapacity),
		ins:       ins,
	}, nil
}

// normalize validates req and applies defaults and bounds.
func normalize(req Request) (Request, error) {
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return req, serrors.With(serrors.ErrBadRequest, "Le paramètre « query » est requis.")
	}
	if len([]rune(req.Query)) > maxQueryLength {
		return req, serrors.With(serrors.ErrBadRequest,
			"Le paramètre « query » ne doit pas dépasser %d caractères.", maxQueryLength)
	}
	if req.PerPage <= 0 {
		req.PerPage = defaultPerPage
	}
	req.PerPage = min(req.PerPage, maxPerPage)
	req.Page = min(max(req.Page, 1), maxPage)
	req.Orientation = strings.ToLower(strings.TrimSpace(req.Orientation))
	req.Color = strings.ToLower(strings.TrimSpace(req.Color))
	req.Locale = strings.TrimSpace(req.Locale)
	req.Provider = strings.ToLower(strings.TrimSpace(req.Provider))

	return req, nil
}

// GetImage implements Proxy.
func (p *proxy) GetImage(ctx context.Context, clientIP string, req Request) (*domain.ImageResult, error) {
	req, err := normalize(req)
	if err != nil {
		return nil, err
	}

	now := p.options.Now()
	if ok, wait := p.limiter.Allow(clientIP, now); !ok {
		p.ins.rateLimited.Add(ctx, 1)

		return nil, serrors.Wrap(serrors.ErrRateLimited, &RetryAfterError{RetryAfter: wait},
			"Trop de requêtes. Réessayez plus tard.")
	}

	if cached, ok := p.cache.Get(req, now); ok {
		p.ins.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "hit")))
		p.ins.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("source", string(cached.Source))))

		return &cached, nil
	}
	p.ins.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "miss")))

	enhanced := EnhanceQuery(req.Query)
	seed := req.Seed
	if seed == "" {
		seed = req.Query
	}

	params := stockphoto.SearchParams{
		Query:       enhanced,
		PerPage:     req.PerPage,
		Page:        req.Page,
		Orientation: req.Orientation,
		Color:       req.Color,
		Locale:      req.Locale,
	}

	for _, provider := range p.order(req.Provider) {
		photos, err := p.search(ctx, provider, params)
		if err != nil {
			logger.Warn(ctx, "stock photo provider failed",
				zap.String("provider", string(provider.Name())), zap.Error(err))

			continue
		}
		photo, ok := seeded.Pick(seed, photos)
		if !ok {
			continue
		}

		res := resultFromPhoto(req.Query, enhanced, photo)
		p.cache.Set(req, res, now)
		p.ins.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("source", string(res.Source))))

		return &res, nil
	}

	res := p.fallback(req.Query, enhanced)
	p.ins.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("source", string(res.Source))))

	return &res, nil
}

func (p *proxy) search(ctx context.Context,
	provider stockphoto.Client,
	params stockphoto.SearchParams) ([]stockphoto.Photo, error) {
	start := time.Now()
	photos, err := provider.Search(ctx, params)
	p.ins.providerDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("provider", string(provider.Name()))))
	if err != nil {
		return nil, fmt.Errorf("could not search %s: %w", provider.Name(), err)
	}

	return photos, nil
}

// order returns the providers to try: the hinted one first when known, then
// the configured default, then the rest in registration order.
func (p *proxy) order(hint string) []stockphoto.Client {
	ordered := make([]stockphoto.Client, 0, len(p.providers))
	used := make([]bool, len(p.providers))
	take := func(name domain.ImageSource) {
		for i, c := range p.providers {
			if !used[i] && c.Name() == name {
				used[i] = true
				ordered = append(ordered, c)
			}
		}
	}
	if hint != "" {
		take(domain.ImageSource(hint))
	}
	take(p.options.DefaultProvider)
	for i, c := range p.providers {
		if !used[i] {
			ordered = append(ordered, c)
		}
	}

	return ordered
}

func (p *proxy) fallback(query, enhanced string) domain.ImageResult {
	return domain.ImageResult{
		Source:        domain.ImageSourceFallback,
		Query:         query,
		EnhancedQuery: enhanced,
		Image: domain.Image{
			URL:    p.options.FallbackURL,
			SrcSet: "",
			Width:  1920,
			Height: 1280,
			Alt:    query,
		},
		Palette:      DefaultPalette(),
		Attributions: []domain.Attribution{},
	}
}

func resultFromPhoto(query, enhanced string, photo stockphoto.Photo) domain.ImageResult {
	alt := photo.Alt
	if alt == "" {
		alt = query
	}
	res := domain.ImageResult{
		Source:        photo.Provider,
		Query:         query,
		EnhancedQuery: enhanced,
		Image: domain.Image{
			URL:    photo.URL,
			SrcSet: photo.SrcSet,
			Width:  photo.Width,
			Height: photo.Height,
			Alt:    alt,
		},
		Photographer: photo.Photographer,
		Palette:      PaletteFromColor(photo.AvgColor),
		Attributions: []domain.Attribution{},
	}
	if photo.Photographer.Name != "" {
		res.Attributions = append(res.Attributions, domain.Attribution{
			Label: "Photo : " + photo.Photographer.Name,
			URL:   photo.Photographer.URL,
		})
	}
	if photo.PageURL != "" {
		res.Attributions = append(res.Attributions, domain.Attribution{
			Label: providerLabel(photo.Provider),
			URL:   photo.PageURL,
		})
	}

	return res
}

func providerLabel(src domain.ImageSource) string {
	switch src {
	case domain.ImageSourceUnsplash:
		return "Unsplash"
	case domain.ImageSourcePexels:
		return "Pexels"
	default:
		return string(src)
	}
}

// Sweep implements Proxy.
func (p *proxy) Sweep(now time.Time) (int, int) {
	return p.cache.Sweep(now), p.limiter.Sweep(now)
}

// AsRetryAfter extracts the retry delay from a rate-limit error.
func AsRetryAfter(err error) (*RetryAfterError, bool) {
	var ra *RetryAfterError
	if errors.As(err, &ra) {
		return ra, true
	}

	return nil, false
}
