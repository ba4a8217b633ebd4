// Package raster provides scanline rasterization onto indexed frames.
//
// The rasterizer is deliberately aliased: a pixel is painted when its
// center lies inside the polygon, sampled at (x+0.5, y+0.5). Painting
// writes a palette slot, so the same geometry always produces the same
// pixels and repeated draws are idempotent.
package raster

import "math"

// Target is a surface of palette slots the rasterizer paints on.
type Target interface {
	Width() int
	Height() int
	SetSlot(x, y int, slot uint8)
}

// SpanFiller is an optional Target extension for optimized span filling.
type SpanFiller interface {
	FillSpan(x1, x2, y int, slot uint8)
}

// FillRule specifies how to determine which areas are inside a polygon.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Rasterizer performs scanline rasterization.
type Rasterizer struct {
	aet *ActiveEdgeTable
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		aet: NewActiveEdgeTable(),
	}
}

// Fill rasterizes a closed polygon onto a target. The points describe
// the outline; the last point connects back to the first when they
// differ. Degenerate polygons (fewer than 3 distinct points, zero area)
// paint nothing.
func (r *Rasterizer) Fill(target Target, points []Point, fillRule FillRule, slot uint8) {
	if len(points) < 3 {
		return
	}

	// Close the outline if the caller left it open.
	if points[0] != points[len(points)-1] {
		points = append(points[:len(points):len(points)], points[0])
	}

	// Build edge list, skipping horizontal edges: they never cross a
	// scanline and contribute no winding.
	edges := make([]Edge, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		p0 := points[i]
		p1 := points[i+1]
		if math.Abs(p1.Y-p0.Y) < 1e-9 {
			continue
		}
		edges = append(edges, NewEdge(p0, p1))
	}
	if len(edges) == 0 {
		return
	}

	// Find y bounds
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	yMinInt := int(math.Floor(yMin))
	yMaxInt := int(math.Ceil(yMax))

	// Clamp to target bounds
	if yMinInt < 0 {
		yMinInt = 0
	}
	if yMaxInt > target.Height() {
		yMaxInt = target.Height()
	}

	for y := yMinInt; y < yMaxInt; y++ {
		scanY := float64(y) + 0.5
		r.scanline(target, edges, scanY, y, fillRule, slot)
	}
}

// scanline processes a single scanline.
func (r *Rasterizer) scanline(target Target, edges []Edge, scanY float64, y int, fillRule FillRule, slot uint8) {
	r.aet.Clear()

	for i := range edges {
		if edges[i].y0 <= scanY && scanY < edges[i].y1 {
			r.aet.AddAtY(edges[i], scanY)
		}
	}

	active := r.aet.Edges()
	if len(active) == 0 {
		return
	}
	r.aet.Sort()

	if fillRule == FillRuleNonZero {
		r.fillNonZero(target, active, y, slot)
	} else {
		r.fillEvenOdd(target, active, y, slot)
	}
}

// fillNonZero fills using the non-zero winding rule.
func (r *Rasterizer) fillNonZero(target Target, edges []ActiveEdge, y int, slot uint8) {
	winding := 0
	var x1 float64

	for i := 0; i < len(edges); i++ {
		edge := edges[i]

		if winding == 0 {
			x1 = edge.x
		}

		winding += edge.dir

		if winding == 0 {
			r.fillSpan(target, x1, edge.x, y, slot)
		}
	}
}

// fillEvenOdd fills using the even-odd rule.
func (r *Rasterizer) fillEvenOdd(target Target, edges []ActiveEdge, y int, slot uint8) {
	for i := 0; i+1 < len(edges); i += 2 {
		r.fillSpan(target, edges[i].x, edges[i+1].x, y, slot)
	}
}

// fillSpan paints the pixels whose centers fall in [x1, x2) on row y.
func (r *Rasterizer) fillSpan(target Target, x1, x2 float64, y int, slot uint8) {
	if y < 0 || y >= target.Height() {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	// First pixel whose center (x+0.5) is >= x1, one past the last
	// whose center is < x2.
	start := int(math.Ceil(x1 - 0.5))
	end := int(math.Ceil(x2 - 0.5))

	if start < 0 {
		start = 0
	}
	if end > target.Width() {
		end = target.Width()
	}
	if start >= end {
		return
	}

	if spanFiller, ok := target.(SpanFiller); ok {
		spanFiller.FillSpan(start, end, y, slot)
		return
	}
	for x := start; x < end; x++ {
		target.SetSlot(x, y, slot)
	}
}

// StrokePolygon strokes a closed outline: each consecutive point pair
// becomes a thick line, and the last point connects back to the first.
func (r *Rasterizer) StrokePolygon(target Target, points []Point, lineWidth float64, slot uint8) {
	if len(points) < 2 {
		return
	}
	if points[0] != points[len(points)-1] {
		points = append(points[:len(points):len(points)], points[0])
	}
	r.StrokePolyline(target, points, lineWidth, slot)
}

// StrokePolyline strokes an open path of consecutive line segments.
// Zero-length segments paint nothing.
func (r *Rasterizer) StrokePolyline(target Target, points []Point, lineWidth float64, slot uint8) {
	if len(points) < 2 {
		return
	}
	if lineWidth < 1 {
		lineWidth = 1
	}
	for i := 0; i < len(points)-1; i++ {
		r.strokeLine(target, points[i], points[i+1], lineWidth, slot)
	}
}

// strokeLine draws a thick line as a filled quad around the segment.
func (r *Rasterizer) strokeLine(target Target, p0, p1 Point, width float64, slot uint8) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Sqrt(dx*dx + dy*dy)

	if length < 1e-9 {
		return
	}

	// Perpendicular vector
	nx := -dy / length
	ny := dx / length

	// Offset by half width
	offset := width / 2

	quad := []Point{
		{X: p0.X + nx*offset, Y: p0.Y + ny*offset},
		{X: p0.X - nx*offset, Y: p0.Y - ny*offset},
		{X: p1.X - nx*offset, Y: p1.Y - ny*offset},
		{X: p1.X + nx*offset, Y: p1.Y + ny*offset},
	}
	r.Fill(target, quad, FillRuleNonZero, slot)
}
