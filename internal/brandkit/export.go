package brandkit

import (
	"bytes"
	"embed"
	"fmt"
	"guidiqo/pkg/domain"
	"html/template"
	"net/url"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
)

// PDF page size in CSS pixels.
const (
	PageWidth  = 1280
	PageHeight = 720
)

// Colors used when a brand has not picked its palette yet.
const (
	defaultPrimary    = "#6366f1"
	defaultSecondary  = "#0f172a"
	defaultAccent     = "#f59e0b"
	defaultBackground = "#ffffff"
	defaultText       = "#111827"
	defaultFont       = "Inter"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var exportTemplate = template.Must(template.ParseFS(templatesFS, "templates/export.html.tmpl")) //nolint: gochecknoglobals

type swatch struct {
	Label string
	Hex   template.CSS
	On    template.CSS
}

type exportColors struct {
	Primary, Secondary, Accent, Background, Text template.CSS
}

// exportView is the data rendered by the export template. Colors are
// normalized through go-colorful before being marked as safe CSS.
type exportView struct {
	Width, Height int

	Name, Tagline, Industry, Description string
	Slug                                 string

	Colors                           exportColors
	OnPrimary, OnSecondary, OnAccent template.CSS
	Swatches                         []swatch

	HeadingFont, BodyFont string
	FontsURL              string

	Personality domain.Personality

	CoverURL    string
	CoverCredit string
}

// RenderHTML renders the five export pages of brand (cover, palette,
// typography, personality and mockups) as a single printable document.
func RenderHTML(brand domain.Brand) (string, error) {
	var buf bytes.Buffer
	if err := exportTemplate.Execute(&buf, newExportView(brand)); err != nil {
		return "", fmt.Errorf("could not render brand template: %w", err)
	}

	return buf.String(), nil
}

func newExportView(b domain.Brand) exportView {
	primary := normalizeColor(b.Colors.Primary, defaultPrimary)
	secondary := normalizeColor(b.Colors.Secondary, defaultSecondary)
	accent := normalizeColor(b.Colors.Accent, defaultAccent)
	background := normalizeColor(b.Colors.Background, defaultBackground)
	text := normalizeColor(b.Colors.Text, defaultText)

	heading := fontName(b.Typography.HeadingFont)
	body := fontName(b.Typography.BodyFont)

	name := b.Name
	if name == "" {
		name = "Ma marque"
	}

	v := exportView{
		Width:       PageWidth,
		Height:      PageHeight,
		Name:        name,
		Tagline:     b.Tagline,
		Industry:    b.Industry,
		Description: b.Description,
		Slug:        Slug(name),
		Colors: exportColors{
			Primary:    template.CSS(primary),
			Secondary:  template.CSS(secondary),
			Accent:     template.CSS(accent),
			Background: template.CSS(background),
			Text:       template.CSS(text),
		},
		OnPrimary:   template.CSS(ReadableOn(primary)),
		OnSecondary: template.CSS(ReadableOn(secondary)),
		OnAccent:    template.CSS(ReadableOn(accent)),
		HeadingFont: heading,
		BodyFont:    body,
		FontsURL:    googleFontsURL(heading, body),
		Personality: b.Personality,
		CoverURL:    b.Cover.URL,
	}
	if b.Cover.Photographer != "" {
		v.CoverCredit = "Photo : " + b.Cover.Photographer
		if b.Cover.Source != "" {
			v.CoverCredit += " / " + strings.ToUpper(b.Cover.Source[:1]) + b.Cover.Source[1:]
		}
	}
	for _, s := range []struct{ label, hex string }{
		{"Primaire", primary},
		{"Secondaire", secondary},
		{"Accent", accent},
		{"Fond", background},
		{"Texte", text},
	} {
		v.Swatches = append(v.Swatches, swatch{
			Label: s.label,
			Hex:   template.CSS(s.hex),
			On:    template.CSS(ReadableOn(s.hex)),
		})
	}

	return v
}

// normalizeColor returns hex as lowercase #rrggbb, or fallback when hex is
// not a color.
func normalizeColor(hex, fallback string) string {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return fallback
	}

	return c.Clamped().Hex()
}

// ReadableOn returns a dark or light text color depending on the lightness
// of the background hex color.
func ReadableOn(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return defaultText
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return defaultText
	}

	return defaultBackground
}

// fontName keeps letters, digits and spaces so the name is safe in CSS strings and URLs.
func fontName(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			return r
		}

		return -1
	}, s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return defaultFont
	}

	return s
}

func googleFontsURL(fonts ...string) string {
	q := url.Values{}
	seen := map[string]bool{}
	for _, f := range fonts {
		if seen[f] {
			continue
		}
		seen[f] = true
		q.Add("family", f+":wght@400;700")
	}
	q.Set("display", "swap")

	return "https://fonts.googleapis.com/css2?" + q.Encode()
}

// Slug converts a brand name to a lowercase ASCII slug used in file names.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "brand-kit"
	}

	return s
}
