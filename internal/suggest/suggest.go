// Package suggest proposes palettes, font pairings and brand personalities.
// Suggestions come from a generative model when one is configured and fall
// back to a curated catalog, picked deterministically from the brand, when
// the model fails or answers nonsense.
package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"guidiqo/internal/config"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/logger"
	"guidiqo/pkg/seeded"
	"guidiqo/pkg/validation"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
)

// Options configure the suggester.
type Options struct {
	// Timeout bounds a single generation before falling back to the catalog.
	Timeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{Timeout: cfg.AI.Timeout}
}

var errInvalidPayload = errors.New("invalid suggestion payload")

type suggester struct {
	options Options
	// generator is nil when no model is configured.
	generator Generator
}

func (s suggester) Palette(ctx context.Context, in Input) (*PaletteSuggestion, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	var payload struct {
		Primary    string `json:"primary"`
		Secondary  string `json:"secondary"`
		Accent     string `json:"accent"`
		Background string `json:"background"`
		Text       string `json:"text"`
	}
	if s.generate(ctx, "palette", palettePrompt(in), &payload) {
		colors := domain.Colors{}
		ok := true
		for _, c := range []struct {
			dst *string
			src string
		}{
			{&colors.Primary, payload.Primary},
			{&colors.Secondary, payload.Secondary},
			{&colors.Accent, payload.Accent},
			{&colors.Background, payload.Background},
			{&colors.Text, payload.Text},
		} {
			hex, valid := NormalizeColor(c.src)
			if !valid {
				ok = false

				break
			}
			*c.dst = hex
		}
		if ok {
			return &PaletteSuggestion{Colors: colors, Source: SourceAI}, nil
		}
		logger.Warn(ctx, "discarding generated palette", zap.Any("payload", payload))
	}

	colors, _ := seeded.Pick(seed(in), palettes)

	return &PaletteSuggestion{Colors: colors, Source: SourceCatalog}, nil
}

func (s suggester) Typography(ctx context.Context, in Input) (*TypographySuggestion, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	var payload domain.Typography
	if s.generate(ctx, "typography", typographyPrompt(in), &payload) {
		payload.HeadingFont = strings.TrimSpace(payload.HeadingFont)
		payload.BodyFont = strings.TrimSpace(payload.BodyFont)
		if payload.HeadingFont != "" && payload.BodyFont != "" && validation.Struct(payload) == nil {
			return &TypographySuggestion{Typography: payload, Source: SourceAI}, nil
		}
		logger.Warn(ctx, "discarding generated typography", zap.Any("payload", payload))
	}

	typography, _ := seeded.Pick(seed(in), typographies)

	return &TypographySuggestion{Typography: typography, Source: SourceCatalog}, nil
}

func (s suggester) Personality(ctx context.Context, in Input) (*PersonalitySuggestion, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	var payload domain.Personality
	if s.generate(ctx, "personality", personalityPrompt(in), &payload) {
		payload.Tone = strings.TrimSpace(payload.Tone)
		payload.Archetype = strings.TrimSpace(payload.Archetype)
		if payload.Tone != "" && len(payload.Values) > 0 && validation.Struct(payload) == nil {
			return &PersonalitySuggestion{Personality: payload, Source: SourceAI}, nil
		}
		logger.Warn(ctx, "discarding generated personality", zap.Any("payload", payload))
	}

	personality, _ := seeded.Pick(seed(in), personalities)

	return &PersonalitySuggestion{Personality: personality, Source: SourceCatalog}, nil
}

// generate asks the model and decodes its answer into dst. It reports false,
// after logging, whenever the catalog should be used instead.
func (s suggester) generate(ctx context.Context, kind, prompt string, dst any) bool {
	if s.generator == nil {
		return false
	}

	if s.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.Timeout)
		defer cancel()
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err == nil {
		err = decode(text, dst)
	}
	if err != nil {
		logger.Warn(ctx, "suggestion generation failed, using catalog",
			zap.String("kind", kind), zap.Error(err))

		return false
	}

	return true
}

// decode parses a model answer, tolerating markdown code fences around it.
func decode(text string, dst any) error {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidPayload, err)
	}

	return nil
}

// NormalizeColor parses a hex color and returns it as lowercase #rrggbb.
func NormalizeColor(hex string) (string, bool) {
	hex = strings.TrimSpace(hex)
	if hex != "" && !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", false
	}

	return c.Clamped().Hex(), true
}

func seed(in Input) string {
	return strings.ToLower(strings.TrimSpace(in.Name) + "|" + strings.TrimSpace(in.Industry))
}

func describe(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Marque : %s\n", orDefault(in.Name, "(sans nom)"))
	fmt.Fprintf(&b, "Secteur : %s\n", orDefault(in.Industry, "(non précisé)"))
	if in.Description != "" {
		fmt.Fprintf(&b, "Description : %s\n", in.Description)
	}
	if len(in.Keywords) > 0 {
		fmt.Fprintf(&b, "Mots-clés : %s\n", strings.Join(in.Keywords, ", "))
	}

	return b.String()
}

func palettePrompt(in Input) string {
	return describe(in) + "Propose une palette de couleurs. Format : " +
		`{"primary":"#rrggbb","secondary":"#rrggbb","accent":"#rrggbb","background":"#rrggbb","text":"#rrggbb"}. ` +
		"Le texte doit rester lisible sur le fond."
}

func typographyPrompt(in Input) string {
	return describe(in) + "Propose une paire de polices disponibles sur Google Fonts. Format : " +
		`{"headingFont":"...","bodyFont":"..."}.`
}

func personalityPrompt(in Input) string {
	return describe(in) + "Décris la personnalité de la marque en français. Format : " +
		`{"tone":"...","archetype":"...","values":["..."],"keywords":["..."]} ` +
		"avec trois à cinq valeurs et mots-clés."
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}

	return s
}

// New creates a Suggester. generator may be nil, in which case every
// suggestion comes from the catalog.
func New(generator Generator, options Options) Suggester {
	return &suggester{options: options, generator: generator}
}
