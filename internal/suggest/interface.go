package suggest

import (
	"context"
	"guidiqo/pkg/domain"
)

// Source tells whether a suggestion was generated or picked from the catalog.
type Source string

const (
	SourceAI      Source = "ai"
	SourceCatalog Source = "catalog"
)

// Input describes the brand a suggestion is made for.
type Input struct {
	Name        string   `json:"name"        validate:"max=80"`
	Industry    string   `json:"industry"    validate:"max=80"`
	Description string   `json:"description" validate:"max=2000"`
	Keywords    []string `json:"keywords"    validate:"max=10,dive,max=40"`
}

type PaletteSuggestion struct {
	Colors domain.Colors
	Source Source
}

type TypographySuggestion struct {
	Typography domain.Typography
	Source     Source
}

type PersonalitySuggestion struct {
	Personality domain.Personality
	Source      Source
}

//go:generate mockgen -package mocksuggest -source=interface.go -destination=mock/mocksuggest.go *
type Suggester interface {
	Palette(ctx context.Context, in Input) (*PaletteSuggestion, error)
	Typography(ctx context.Context, in Input) (*TypographySuggestion, error)
	Personality(ctx context.Context, in Input) (*PersonalitySuggestion, error)
}

// Generator produces a JSON document answering prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
