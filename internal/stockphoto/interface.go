package stockphoto

import (
	"context"
	"guidiqo/pkg/domain"
	"time"
)

// Request is a stock-photo lookup as received by the HTTP endpoint. After
// normalization it is also the cache key, so it must stay comparable.
type Request struct {
	Query       string
	PerPage     int
	Page        int
	Orientation string
	Color       string
	Locale      string
	Seed        string
	Provider    string
}

//go:generate mockgen -package mockstockphoto -source=interface.go -destination=mock/mockstockphoto.go *
type Proxy interface {
	// GetImage returns one image for req. Provider failures never surface as
	// errors: the fallback image is returned instead. Errors are reserved for
	// invalid requests and exhausted rate limits.
	GetImage(ctx context.Context, clientIP string, req Request) (*domain.ImageResult, error)
	// Sweep drops expired cache entries and idle rate-limit buckets.
	Sweep(now time.Time) (cacheRemoved, bucketsRemoved int)
}
