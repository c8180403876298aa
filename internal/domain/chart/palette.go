package chart

import "fmt"

// palette holds the base line colors, assigned by selection order.
var palette = []string{
	"#2563eb", // blue
	"#dc2626", // red
	"#16a34a", // green
	"#d97706", // amber
	"#9333ea", // purple
	"#0891b2", // cyan
	"#db2777", // pink
	"#65a30d", // lime
}

// ColorAt returns the color for selection index i. Beyond the palette the
// base color is reused with a deterministic opacity step per wrap, so any
// index always maps to the same color.
func ColorAt(i int) string {
	if i < 0 {
		i = 0
	}
	base := palette[i%len(palette)]
	wrap := i / len(palette)
	if wrap == 0 {
		return base
	}
	// 0xff, 0xbf, 0x8f, 0x5f, then cycling.
	alphas := []string{"bf", "8f", "5f"}
	return fmt.Sprintf("%s%s", base, alphas[(wrap-1)%len(alphas)])
}

// PaletteSize reports how many base colors exist before wrapping starts.
func PaletteSize() int { return len(palette) }
