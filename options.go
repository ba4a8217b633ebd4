package lantern

// RunnerOption configures a Runner during creation.
//
// Example:
//
//	// Default 240×160 screen at 60 ticks per second
//	lantern.Run(handlers)
//
//	// Custom cadence and palette
//	lantern.Run(handlers, lantern.WithTPS(30), lantern.WithPalette(lantern.Pico8))
type RunnerOption func(*runnerOptions)

// runnerOptions holds optional configuration for Runner creation.
type runnerOptions struct {
	width      int
	height     int
	palette    *Palette
	canvas     *Canvas
	presenter  Presenter
	hasPresent bool
	tps        int
	frameLimit int
}

// defaultRunnerOptions returns the default runner options.
func defaultRunnerOptions() runnerOptions {
	return runnerOptions{
		width:  ScreenWidth,
		height: ScreenHeight,
		tps:    60,
	}
}

// WithSize sets custom canvas dimensions. Non-positive values keep the
// defaults.
func WithSize(width, height int) RunnerOption {
	return func(o *runnerOptions) {
		if width > 0 && height > 0 {
			o.width = width
			o.height = height
		}
	}
}

// WithPalette sets the palette the canvas resolves colors through.
func WithPalette(pal Palette) RunnerOption {
	return func(o *runnerOptions) {
		p := pal
		o.palette = &p
	}
}

// WithCanvas supplies a prepared canvas instead of creating one.
// WithSize and WithPalette are ignored when a canvas is given.
func WithCanvas(c *Canvas) RunnerOption {
	return func(o *runnerOptions) {
		o.canvas = c
	}
}

// WithPresenter sets the presenter for this runner, overriding the
// package-level registration. Pass nil to force headless operation
// even when a presenter is registered.
func WithPresenter(p Presenter) RunnerOption {
	return func(o *runnerOptions) {
		o.presenter = p
		o.hasPresent = true
	}
}

// WithTPS sets the tick cadence of Run in ticks per second.
// Non-positive values keep the default of 60.
func WithTPS(tps int) RunnerOption {
	return func(o *runnerOptions) {
		if tps > 0 {
			o.tps = tps
		}
	}
}

// WithFrameLimit makes Run return after n ticks. Zero means unlimited.
// Useful for tools and tests that drive the lifecycle headless.
func WithFrameLimit(n int) RunnerOption {
	return func(o *runnerOptions) {
		if n > 0 {
			o.frameLimit = n
		}
	}
}
