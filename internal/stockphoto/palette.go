package stockphoto

import (
	"guidiqo/pkg/domain"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPaletteBase is used when a provider gives no usable average color.
const DefaultPaletteBase = "#6366f1"

// paletteBlend is how far tint and shade move toward white and black.
const paletteBlend = 0.4

// DefaultPalette is the palette derived from DefaultPaletteBase.
func DefaultPalette() domain.Palette {
	p, _ := derivePalette(DefaultPaletteBase)

	return p
}

// PaletteFromColor derives a base/tint/shade palette from a hex color. Invalid
// or empty input yields DefaultPalette.
func PaletteFromColor(hex string) domain.Palette {
	if p, ok := derivePalette(hex); ok {
		return p
	}

	return DefaultPalette()
}

func derivePalette(hex string) (domain.Palette, bool) {
	if hex == "" {
		return domain.Palette{}, false
	}
	base, err := colorful.Hex(hex)
	if err != nil {
		return domain.Palette{}, false
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{R: 0, G: 0, B: 0}

	return domain.Palette{
		Base:  base.Hex(),
		Tint:  base.BlendRgb(white, paletteBlend).Clamped().Hex(),
		Shade: base.BlendRgb(black, paletteBlend).Clamped().Hex(),
	}, true
}
