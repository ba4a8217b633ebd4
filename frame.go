package lantern

import (
	"image"
	"image/color"
)

// Default canvas dimensions, in pixels.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
)

// Frame is a rectangular buffer of palette slots, one byte per pixel.
// It records which of the 16 palette entries each pixel shows; the RGB
// values come from a Palette only when the frame is converted or
// presented. A zeroed frame shows palette slot 0.
type Frame struct {
	width  int
	height int
	data   []uint8
}

// NewFrame creates a new frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the width of the frame.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame.
func (f *Frame) Height() int {
	return f.height
}

// Data returns the raw slot data, one byte per pixel, row by row.
func (f *Frame) Data() []uint8 {
	return f.data
}

// SetSlot sets the palette slot of a single pixel.
// Out-of-bounds coordinates are ignored.
func (f *Frame) SetSlot(x, y int, slot uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.data[y*f.width+x] = slot
}

// Slot returns the palette slot of a single pixel.
// Out-of-bounds coordinates return slot 0.
func (f *Frame) Slot(x, y int) uint8 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.data[y*f.width+x]
}

// Clear sets every pixel to the given palette slot.
func (f *Frame) Clear(slot uint8) {
	for i := range f.data {
		f.data[i] = slot
	}
}

// FillSpan sets the pixels [x1, x2) on row y to the given slot.
// The span is clipped to the frame bounds.
func (f *Frame) FillSpan(x1, x2, y int, slot uint8) {
	if y < 0 || y >= f.height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > f.width {
		x2 = f.width
	}
	row := f.data[y*f.width : y*f.width+f.width]
	for x := x1; x < x2; x++ {
		row[x] = slot
	}
}

// Image converts the frame to a paletted image using the given palette.
func (f *Frame) Image(pal Palette) *image.Paletted {
	cp := make(color.Palette, len(pal))
	for i, c := range pal {
		cp[i] = c.Color()
	}
	img := image.NewPaletted(image.Rect(0, 0, f.width, f.height), cp)
	copy(img.Pix, f.data)
	return img
}

// RGBA expands the frame to raw 8-bit RGBA pixels using the given
// palette, 4 bytes per pixel, row by row. Presenters use this for
// targets that take truecolor input.
func (f *Frame) RGBA(pal Palette) []uint8 {
	out := make([]uint8, len(f.data)*4)
	for i, slot := range f.data {
		c := pal[slot&0x0f]
		out[i*4+0] = c.R
		out[i*4+1] = c.G
		out[i*4+2] = c.B
		out[i*4+3] = 0xff
	}
	return out
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := NewFrame(f.width, f.height)
	copy(c.data, f.data)
	return c
}
