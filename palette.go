package lantern

import (
	"errors"
	"fmt"
	"strconv"
)

// Palette is the set of 16 RGB entries a frame's color slots resolve to.
// Slots a palette does not use keep the zero value (black); built-in
// palettes with fewer than 16 colors simply leave the tail unused.
type Palette [16]RGB

// Sweetie16 is the default color palette.
//
// https://lospec.com/palette-list/sweetie-16
var Sweetie16 = Palette{
	{0x1a, 0x1c, 0x2c}, // black
	{0x5d, 0x27, 0x5d}, // purple
	{0xb1, 0x3e, 0x53}, // red
	{0xef, 0x7d, 0x57}, // orange
	{0xff, 0xcd, 0x75}, // yellow
	{0xa7, 0xf0, 0x70}, // light green
	{0x38, 0xb7, 0x64}, // green
	{0x25, 0x71, 0x79}, // dark green
	{0x29, 0x36, 0x6f}, // dark blue
	{0x3b, 0x5d, 0xc9}, // blue
	{0x41, 0xa6, 0xf6}, // light blue
	{0x73, 0xef, 0xf7}, // cyan
	{0xf4, 0xf4, 0xf4}, // white
	{0x94, 0xb0, 0xc2}, // light gray
	{0x56, 0x6c, 0x86}, // gray
	{0x33, 0x3c, 0x57}, // dark gray
}

// Pico8 is the PICO-8 color palette.
//
// https://nerdyteachers.com/PICO-8/Guide/PALETTES
var Pico8 = Palette{
	{0x00, 0x00, 0x00}, // black
	{0x1d, 0x2b, 0x53}, // dark blue
	{0x7e, 0x25, 0x53}, // dark purple
	{0x00, 0x87, 0x51}, // dark green
	{0xab, 0x52, 0x36}, // brown
	{0x5f, 0x57, 0x4f}, // dark gray
	{0xc2, 0xc3, 0xc7}, // light gray
	{0xff, 0xf1, 0xe8}, // white
	{0xff, 0x00, 0x4d}, // red
	{0xff, 0xa3, 0x00}, // orange
	{0xff, 0xec, 0x27}, // yellow
	{0x00, 0xe4, 0x36}, // green
	{0x29, 0xad, 0xff}, // blue
	{0x83, 0x76, 0x9c}, // indigo
	{0xff, 0x77, 0xa8}, // pink
	{0xff, 0xcc, 0xaa}, // peach
}

// Gameboy is the Kirokaze Gameboy color palette (4 colors).
//
// https://lospec.com/palette-list/kirokaze-gameboy
var Gameboy = Palette{
	{0x33, 0x2c, 0x50}, // purple
	{0x46, 0x87, 0x8f}, // blue
	{0x94, 0xe3, 0x44}, // green
	{0xe2, 0xf3, 0xe4}, // white
}

// ErrUnknownPalette is returned when a palette name resolves to nothing.
var ErrUnknownPalette = errors.New("lantern: unknown palette")

// BuiltinPalette returns a built-in palette by name.
// Recognized aliases follow common fantasy-console naming.
func BuiltinPalette(name string) (Palette, error) {
	switch name {
	case "sweetie16", "sweetie-16", "tic80", "tic-80", "default", "":
		return Sweetie16, nil
	case "pico", "pico8", "pico-8":
		return Pico8, nil
	case "gameboy", "game-boy", "gb", "kirokaze":
		return Gameboy, nil
	}
	return Palette{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}

// ParsePalette builds a palette from a config-style color table: a map of
// one-based color IDs ("1".."16") to 0xRRGGBB values. IDs must start at 1
// and be consecutive; between 2 and 16 colors are allowed.
func ParsePalette(raw map[string]uint32) (Palette, error) {
	var pal Palette
	if len(raw) > len(pal) {
		return pal, fmt.Errorf("lantern: too many colors: %d", len(raw))
	}
	if len(raw) < 2 {
		return pal, fmt.Errorf("lantern: too few colors: %d", len(raw))
	}
	if _, ok := raw["0"]; ok {
		return pal, errors.New("lantern: color IDs must start at 1")
	}
	for id := 1; id <= len(raw); id++ {
		v, ok := raw[strconv.Itoa(id)]
		if !ok {
			return pal, fmt.Errorf("lantern: color IDs must be consecutive but ID %d is missing", id)
		}
		if v > 0xffffff {
			return pal, fmt.Errorf("lantern: color %d is out of range: %#x", id, v)
		}
		pal[id-1] = RGB{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
		}
	}
	return pal, nil
}

// ParsePalettes parses a named set of config-supplied palettes.
func ParsePalettes(raws map[string]map[string]uint32) (map[string]Palette, error) {
	palettes := make(map[string]Palette, len(raws))
	for name, raw := range raws {
		pal, err := ParsePalette(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s palette: %w", name, err)
		}
		palettes[name] = pal
	}
	return palettes, nil
}

// bytes returns the palette as 48 bytes of packed RGB triples,
// the layout used by frame snapshots.
func (p Palette) bytes() []byte {
	buf := make([]byte, 0, len(p)*3)
	for _, c := range p {
		buf = append(buf, c.R, c.G, c.B)
	}
	return buf
}

// paletteFromBytes rebuilds a palette from 48 bytes of packed RGB triples.
func paletteFromBytes(buf []byte) Palette {
	var pal Palette
	for i := range pal {
		pal[i] = RGB{R: buf[i*3], G: buf[i*3+1], B: buf[i*3+2]}
	}
	return pal
}
