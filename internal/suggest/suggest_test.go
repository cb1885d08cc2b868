package suggest_test

import (
	"context"
	"errors"
	"guidiqo/internal/suggest"
	"testing"
	"time"

	mocksuggest "guidiqo/internal/suggest/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"guidiqo/pkg/logger"
	"guidiqo/pkg/serrors"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

var brand = suggest.Input{Name: "Atelier Nord", Industry: "menuiserie", Keywords: []string{"bois"}} //nolint: gochecknoglobals

func newSuggester(t *testing.T) (*mocksuggest.MockGenerator, suggest.Suggester) {
	t.Helper()

	gen := mocksuggest.NewMockGenerator(gomock.NewController(t))

	return gen, suggest.New(gen, suggest.Options{Timeout: time.Second})
}

func TestPalette_AI(t *testing.T) {
	gen, s := newSuggester(t)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, prompt string) (string, error) {
			_, ok := ctx.Deadline()
			require.True(t, ok)
			require.Contains(t, prompt, "Atelier Nord")
			require.Contains(t, prompt, "bois")

			return "```json\n" + `{"primary":"#1E3A8A","secondary":"e0e7ff","accent":"#f59e0b",` +
				`"background":"#fff","text":"#0f172a"}` + "\n```", nil
		})

	res, err := s.Palette(context.Background(), brand)
	require.NoError(t, err)
	require.Equal(t, suggest.SourceAI, res.Source)
	require.Equal(t, "#1e3a8a", res.Colors.Primary)
	require.Equal(t, "#e0e7ff", res.Colors.Secondary)
	require.Equal(t, "#ffffff", res.Colors.Background)
}

func TestPalette_FallbackIsDeterministic(t *testing.T) {
	gen, s := newSuggester(t)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded")).Times(2)

	first, err := s.Palette(context.Background(), brand)
	require.NoError(t, err)
	require.Equal(t, suggest.SourceCatalog, first.Source)
	require.NotEmpty(t, first.Colors.Primary)

	second, err := s.Palette(context.Background(), brand)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestPalette_InvalidColorFallsBack(t *testing.T) {
	gen, s := newSuggester(t)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(`{"primary":"blue","secondary":"#fff","accent":"#000","background":"#fff","text":"#000"}`, nil)

	res, err := s.Palette(context.Background(), brand)
	require.NoError(t, err)
	require.Equal(t, suggest.SourceCatalog, res.Source)
}

func TestTypography(t *testing.T) {
	t.Run("ai", func(t *testing.T) {
		gen, s := newSuggester(t)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(`{"headingFont":" Fraunces ","bodyFont":"Inter"}`, nil)

		res, err := s.Typography(context.Background(), brand)
		require.NoError(t, err)
		require.Equal(t, suggest.SourceAI, res.Source)
		require.Equal(t, "Fraunces", res.Typography.HeadingFont)
	})

	t.Run("missing body font", func(t *testing.T) {
		gen, s := newSuggester(t)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`{"headingFont":"Fraunces"}`, nil)

		res, err := s.Typography(context.Background(), brand)
		require.NoError(t, err)
		require.Equal(t, suggest.SourceCatalog, res.Source)
		require.NotEmpty(t, res.Typography.BodyFont)
	})
}

func TestPersonality(t *testing.T) {
	t.Run("ai", func(t *testing.T) {
		gen, s := newSuggester(t)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(`{"tone":"sobre","archetype":"Le Sage","values":["rigueur"],"keywords":["bois"]}`, nil)

		res, err := s.Personality(context.Background(), brand)
		require.NoError(t, err)
		require.Equal(t, suggest.SourceAI, res.Source)
		require.Equal(t, []string{"rigueur"}, res.Personality.Values)
	})

	t.Run("not json", func(t *testing.T) {
		gen, s := newSuggester(t)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("Voici une personnalité...", nil)

		res, err := s.Personality(context.Background(), brand)
		require.NoError(t, err)
		require.Equal(t, suggest.SourceCatalog, res.Source)
		require.NotEmpty(t, res.Personality.Tone)
	})
}

func TestSuggester_WithoutGenerator(t *testing.T) {
	s := suggest.New(nil, suggest.Options{})

	res, err := s.Typography(context.Background(), brand)
	require.NoError(t, err)
	require.Equal(t, suggest.SourceCatalog, res.Source)
}

func TestSuggester_Validation(t *testing.T) {
	s := suggest.New(nil, suggest.Options{})

	_, err := s.Palette(context.Background(), suggest.Input{Keywords: make([]string, 11)})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestNormalizeColor(t *testing.T) {
	for in, want := range map[string]string{
		"#ABCDEF":   "#abcdef",
		"abcdef":    "#abcdef",
		" #fff ":    "#ffffff",
		"#0a0B0c  ": "#0a0b0c",
	} {
		got, ok := suggest.NormalizeColor(in)
		require.True(t, ok, in)
		require.Equal(t, want, got)
	}

	for _, in := range []string{"", "red", "#12345", "#gggggg"} {
		_, ok := suggest.NormalizeColor(in)
		require.False(t, ok, in)
	}
}
