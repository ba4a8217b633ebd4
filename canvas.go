package lantern

import (
	"math"

	"github.com/gogpu/lantern/internal/raster"
)

// Canvas is an immediate-mode drawing surface over an indexed Frame.
// Draw calls rasterize synchronously; nothing is retained between calls.
//
// A Canvas is not safe for concurrent use. The runtime invokes all
// drawing from a single goroutine, which is the intended model.
type Canvas struct {
	frame *Frame
	pal   Palette
	ras   *raster.Rasterizer
}

// NewCanvas creates a canvas with the given dimensions and the default
// palette. Use NewScreen for the standard console dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		frame: NewFrame(width, height),
		pal:   Sweetie16,
		ras:   raster.NewRasterizer(),
	}
}

// NewScreen creates a canvas with the standard 240×160 dimensions.
func NewScreen() *Canvas {
	return NewCanvas(ScreenWidth, ScreenHeight)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.frame.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.frame.height
}

// Frame returns the frame the canvas draws on.
func (c *Canvas) Frame() *Frame {
	return c.frame
}

// Palette returns the active palette.
func (c *Canvas) Palette() Palette {
	return c.pal
}

// SetPalette replaces the active palette. Pixels already drawn keep
// their slots and re-resolve through the new palette.
func (c *Canvas) SetPalette(pal Palette) {
	c.pal = pal
}

// resolveSlot maps a color to its palette slot for painting.
// Out-of-range values (including ColorNone where a concrete color is
// required) fall back to the last palette slot instead of aborting the
// frame; the mishap is logged at debug level to avoid per-frame spam.
func (c *Canvas) resolveSlot(col Color) uint8 {
	if col.None() || !col.Valid() {
		Logger().Debug("color has no palette slot, using fallback", "color", uint8(col))
	}
	return col.slot()
}

// ClearScreen fills the entire canvas with the given color, discarding
// all prior drawing. By convention it is the first call of every render
// pass.
func (c *Canvas) ClearScreen(col Color) {
	c.frame.Clear(c.resolveSlot(col))
}

// DrawTriangle draws a triangle defined by three points.
//
// The interior is filled first (non-zero winding, pixel centers), then
// the three edges are stroked on top, so the stroke is never occluded
// by the fill. Degenerate triangles never fault: a zero-area interior
// fills nothing and zero-length edges stroke nothing, so a triangle of
// three coincident points draws no pixels at all. Geometry outside the
// canvas is clipped silently.
func (c *Canvas) DrawTriangle(p1, p2, p3 Point, s Style) {
	points := []raster.Point{
		{X: float64(p1.X), Y: float64(p1.Y)},
		{X: float64(p2.X), Y: float64(p2.Y)},
		{X: float64(p3.X), Y: float64(p3.Y)},
	}
	c.fillThenStroke(points, s)
}

// DrawRect draws an axis-aligned rectangle with top-left corner p.
// Zero or negative dimensions draw nothing.
func (c *Canvas) DrawRect(p Point, width, height int, s Style) {
	if width <= 0 || height <= 0 {
		return
	}
	x0, y0 := float64(p.X), float64(p.Y)
	x1, y1 := float64(p.X+width), float64(p.Y+height)
	points := []raster.Point{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
	c.fillThenStroke(points, s)
}

// DrawCircle draws a circle centered at p. The outline is approximated
// by a regular polygon with a segment count derived from the radius, so
// the result is deterministic for a given radius. Radii below one pixel
// draw nothing.
func (c *Canvas) DrawCircle(p Point, radius int, s Style) {
	if radius < 1 {
		return
	}
	n := 4 * radius
	if n < 16 {
		n = 16
	}
	cx, cy, r := float64(p.X), float64(p.Y), float64(radius)
	points := make([]raster.Point, n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := step * float64(i)
		points[i] = raster.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	c.fillThenStroke(points, s)
}

// DrawLine draws a straight line between two points. A zero or negative
// width draws nothing, as does ColorNone.
func (c *Canvas) DrawLine(p1, p2 Point, s LineStyle) {
	if s.Color.None() || s.Width <= 0 {
		return
	}
	c.ras.StrokePolyline(c.frame, []raster.Point{
		{X: float64(p1.X), Y: float64(p1.Y)},
		{X: float64(p2.X), Y: float64(p2.Y)},
	}, float64(s.Width), c.resolveSlot(s.Color))
}

// DrawPoint paints a single pixel. Off-canvas points are clipped.
func (c *Canvas) DrawPoint(p Point, col Color) {
	if col.None() {
		return
	}
	c.frame.SetSlot(p.X, p.Y, c.resolveSlot(col))
}

// fillThenStroke applies a Style to a closed outline: fill first,
// stroke after so it lands on top.
func (c *Canvas) fillThenStroke(points []raster.Point, s Style) {
	if s.hasFill() {
		c.ras.Fill(c.frame, points, raster.FillRuleNonZero, c.resolveSlot(s.FillColor))
	}
	if s.hasStroke() {
		c.ras.StrokePolygon(c.frame, points, float64(s.StrokeWidth), c.resolveSlot(s.StrokeColor))
	}
}
