// Package stockphoto defines the interface and data types used to search
// third-party stock-photo providers (Unsplash, Pexels...).
package stockphoto

import (
	"context"
	"guidiqo/pkg/domain"
)

// Orientation values accepted by SearchParams. Providers translate them to
// their own vocabulary.
const (
	OrientationLandscape = "landscape"
	OrientationPortrait  = "portrait"
	OrientationSquare    = "square"
)

// SearchParams describes a photo search. Zero values let the provider apply
// its own defaults.
type SearchParams struct {
	Query       string
	PerPage     int
	Page        int
	Orientation string
	Color       string
	// Locale is a language tag such as "fr" or "fr-FR".
	Locale string
}

// Photo is a single provider search result normalized across providers.
type Photo struct {
	ID       string
	Provider domain.ImageSource

	URL    string
	SrcSet string
	Width  int
	Height int
	Alt    string
	// AvgColor is the provider-computed dominant color, "#rrggbb" when known.
	AvgColor string

	Photographer domain.Photographer
	// PageURL links to the photo page on the provider website.
	PageURL string
}

// Client is the abstraction for stock-photo providers.
//
//go:generate mockgen -package mockstockphoto -source=interface.go -destination=mock/mockstockphoto.go *
type Client interface {
	// Name returns the provider identifier, also used as the image source.
	Name() domain.ImageSource
	// Search runs a search and returns the photos of the requested page.
	// An empty slice with a nil error means the provider had no match.
	Search(ctx context.Context, params SearchParams) ([]Photo, error)
}
