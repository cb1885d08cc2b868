package domain

// ImageSource names where an image result came from.
type ImageSource string

const (
	ImageSourceUnsplash ImageSource = "unsplash"
	ImageSourcePexels   ImageSource = "pexels"
	// ImageSourceFallback is the hard-coded image served when every provider failed.
	ImageSourceFallback ImageSource = "fallback"
)

// Image is a renderable picture with its responsive variants.
type Image struct {
	URL    string `json:"url"`
	SrcSet string `json:"srcSet"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

// Photographer credits the author of an image.
type Photographer struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Palette is a three-tone palette derived from an image average color.
type Palette struct {
	Base  string `json:"base"`
	Tint  string `json:"tint"`
	Shade string `json:"shade"`
}

// Attribution is one credit link required by the provider guidelines.
type Attribution struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ImageResult is the payload returned by the stock-photo proxy.
type ImageResult struct {
	Source        ImageSource   `json:"source"`
	Query         string        `json:"query"`
	EnhancedQuery string        `json:"enhancedQuery"`
	Image         Image         `json:"image"`
	Photographer  Photographer  `json:"photographer"`
	Palette       Palette       `json:"palette"`
	Attributions  []Attribution `json:"attributions"`
}
