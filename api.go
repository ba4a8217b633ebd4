package lantern

// The package-level drawing API targets the canvas of the runner that
// invoked the current handler. This is what makes zero-argument
// handlers workable: render code calls lantern.ClearScreen and friends
// without holding a canvas reference.
//
// The binding is set when a runner boots and survives until another
// runner boots. The lifecycle is single-threaded, so a plain package
// variable suffices.

var boundCanvas *Canvas

// bindCanvas makes c the target of the package-level drawing functions.
func bindCanvas(c *Canvas) {
	boundCanvas = c
}

// target returns the bound canvas. Draw calls before any runner booted
// have nowhere to go; they are dropped with a warning rather than
// panicking, consistent with the "always render something" policy.
func target() *Canvas {
	if boundCanvas == nil {
		Logger().Warn("draw call before a runner booted, dropped")
	}
	return boundCanvas
}

// ClearScreen fills the entire canvas with the given color.
// See Canvas.ClearScreen.
func ClearScreen(col Color) {
	if c := target(); c != nil {
		c.ClearScreen(col)
	}
}

// DrawTriangle draws a triangle on the bound canvas.
// See Canvas.DrawTriangle.
func DrawTriangle(p1, p2, p3 Point, s Style) {
	if c := target(); c != nil {
		c.DrawTriangle(p1, p2, p3, s)
	}
}

// DrawRect draws a rectangle on the bound canvas. See Canvas.DrawRect.
func DrawRect(p Point, width, height int, s Style) {
	if c := target(); c != nil {
		c.DrawRect(p, width, height, s)
	}
}

// DrawCircle draws a circle on the bound canvas. See Canvas.DrawCircle.
func DrawCircle(p Point, radius int, s Style) {
	if c := target(); c != nil {
		c.DrawCircle(p, radius, s)
	}
}

// DrawLine draws a line on the bound canvas. See Canvas.DrawLine.
func DrawLine(p1, p2 Point, s LineStyle) {
	if c := target(); c != nil {
		c.DrawLine(p1, p2, s)
	}
}

// DrawPoint paints a single pixel on the bound canvas.
// See Canvas.DrawPoint.
func DrawPoint(p Point, col Color) {
	if c := target(); c != nil {
		c.DrawPoint(p, col)
	}
}

// SetScreenPalette replaces the palette of the bound canvas.
func SetScreenPalette(pal Palette) {
	if c := target(); c != nil {
		c.SetPalette(pal)
	}
}
