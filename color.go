package lantern

import "image/color"

// Color identifies one of the 16 palette slots, or no color at all.
// Colors are names, not RGB values: the actual RGB triple comes from the
// active Palette at render time.
type Color uint8

const (
	// ColorNone draws nothing. Use it to omit the fill or stroke of a Style.
	ColorNone Color = iota
	// ColorBlack is palette slot 1.
	ColorBlack
	// ColorPurple is palette slot 2.
	ColorPurple
	// ColorRed is palette slot 3.
	ColorRed
	// ColorOrange is palette slot 4.
	ColorOrange
	// ColorYellow is palette slot 5.
	ColorYellow
	// ColorLightGreen is palette slot 6.
	ColorLightGreen
	// ColorGreen is palette slot 7.
	ColorGreen
	// ColorDarkGreen is palette slot 8.
	ColorDarkGreen
	// ColorDarkBlue is palette slot 9.
	ColorDarkBlue
	// ColorBlue is palette slot 10.
	ColorBlue
	// ColorLightBlue is palette slot 11.
	ColorLightBlue
	// ColorCyan is palette slot 12.
	ColorCyan
	// ColorWhite is palette slot 13.
	ColorWhite
	// ColorLightGray is palette slot 14.
	ColorLightGray
	// ColorGray is palette slot 15.
	ColorGray
	// ColorDarkGray is palette slot 16.
	ColorDarkGray

	colorCount = ColorDarkGray
)

// None reports whether the color is the "draw nothing" sentinel.
func (c Color) None() bool {
	return c == ColorNone
}

// Valid reports whether the color names an existing palette slot or is
// ColorNone.
func (c Color) Valid() bool {
	return c <= colorCount
}

// slot returns the zero-based palette slot for the color.
// ColorNone has no slot; callers must check None first. Out-of-range
// values resolve to the last slot so that a bad color still renders
// something rather than aborting the frame.
func (c Color) slot() uint8 {
	if c == ColorNone || c > colorCount {
		return uint8(colorCount - 1)
	}
	return uint8(c - 1)
}

var colorNames = [...]string{
	"none", "black", "purple", "red", "orange", "yellow", "light-green",
	"green", "dark-green", "dark-blue", "blue", "light-blue", "cyan",
	"white", "light-gray", "gray", "dark-gray",
}

// String returns the lowercase color name, or "invalid" for values
// outside the palette.
func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "invalid"
	}
	return colorNames[c]
}

// RGB is a palette entry: an opaque 8-bit RGB triple.
type RGB struct {
	R, G, B uint8
}

// Color converts RGB to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex parses a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
func Hex(hex string) (RGB, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return RGB{}, false
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return RGB{}, false
		}
	default:
		return RGB{}, false
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
