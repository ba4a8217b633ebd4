package lantern

// Style bundles the fill and stroke settings of a solid primitive.
// The zero value draws nothing.
//
// Fill and stroke are independent: set FillColor to ColorNone for an
// outline-only shape, or StrokeWidth to zero for a fill-only shape.
// When both are set the stroke is drawn after the fill, so it is never
// occluded by it.
type Style struct {
	// FillColor paints the primitive interior. ColorNone skips the fill.
	FillColor Color

	// StrokeColor paints the primitive outline.
	StrokeColor Color

	// StrokeWidth is the outline width in pixels. Zero or negative
	// widths skip the stroke regardless of StrokeColor.
	StrokeWidth int
}

// LineStyle is the subset of Style that applies to lines and points,
// which have no interior to fill.
type LineStyle struct {
	Color Color
	Width int
}

// lineStyle extracts the stroke settings of a Style.
func (s Style) lineStyle() LineStyle {
	return LineStyle{Color: s.StrokeColor, Width: s.StrokeWidth}
}

// hasFill reports whether the style requests a visible fill.
func (s Style) hasFill() bool {
	return !s.FillColor.None()
}

// hasStroke reports whether the style requests a visible stroke.
func (s Style) hasStroke() bool {
	return !s.StrokeColor.None() && s.StrokeWidth > 0
}
