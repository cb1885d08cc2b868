package stockphoto_test

import (
	"guidiqo/internal/stockphoto"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaletteFromColor(t *testing.T) {
	p := stockphoto.PaletteFromColor("#000000")
	require.Equal(t, "#000000", p.Base)
	require.Equal(t, "#666666", p.Tint)
	require.Equal(t, "#000000", p.Shade)

	p = stockphoto.PaletteFromColor("#FFFFFF")
	require.Equal(t, "#ffffff", p.Base)
	require.Equal(t, "#ffffff", p.Tint)
	require.Equal(t, "#999999", p.Shade)
}

func TestPaletteFromColor_InvalidFallsBack(t *testing.T) {
	def := stockphoto.DefaultPalette()
	require.Equal(t, stockphoto.DefaultPaletteBase, def.Base)
	require.NotEqual(t, def.Base, def.Tint)
	require.NotEqual(t, def.Base, def.Shade)

	require.Equal(t, def, stockphoto.PaletteFromColor(""))
	require.Equal(t, def, stockphoto.PaletteFromColor("not-a-color"))
}
