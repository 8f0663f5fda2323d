package resolver

import (
	"encoding/base64"
	"fmt"
	"hash/fnv"
)

// placeholderPalettes are the background/accent pairs the generated cover
// cycles through.
var placeholderPalettes = [][2]string{
	{"#1a1a2e", "#e94560"},
	{"#16213e", "#0f3460"},
	{"#2c061f", "#d89216"},
	{"#0b132b", "#5bc0be"},
	{"#1b262c", "#bbe1fa"},
	{"#21094e", "#a5e1ad"},
}

// PlaceholderSVG renders a deterministic cover image for a release with no
// stored art. The same day and title always produce the same image, so cached
// placeholders never flicker between palettes.
func PlaceholderSVG(day int, title string) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d|%s", day, title)
	seed := h.Sum32()

	palette := placeholderPalettes[seed%uint32(len(placeholderPalettes))]
	rotation := int(seed % 360)

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="512" height="512" viewBox="0 0 512 512">`+
		`<rect width="512" height="512" fill="%s"/>`+
		`<g transform="rotate(%d 256 256)">`+
		`<circle cx="256" cy="256" r="140" fill="none" stroke="%s" stroke-width="6"/>`+
		`<circle cx="256" cy="256" r="90" fill="none" stroke="%s" stroke-width="3" opacity="0.6"/>`+
		`</g>`+
		`<text x="256" y="268" font-family="monospace" font-size="96" fill="%s" text-anchor="middle">%03d</text>`+
		`</svg>`,
		palette[0], rotation, palette[1], palette[1], palette[1], day)
}

// PlaceholderDataURL renders the placeholder as a data URL usable directly in
// an image src.
func PlaceholderDataURL(day int, title string) string {
	svg := PlaceholderSVG(day, title)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
