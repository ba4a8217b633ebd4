package lantern

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Handlers are the three lifecycle callbacks of an application.
// Any of them may be nil; a missing handler makes the corresponding
// phase a no-op. Handlers take no arguments and return nothing; the
// render handler reaches its canvas through the package-level drawing
// functions.
type Handlers struct {
	// Boot runs exactly once, before the first tick.
	Boot func()

	// Update runs once per tick, before Render. Intended for
	// simulation state; by convention it does not draw.
	Update func()

	// Render runs once per tick, after Update. The only phase that
	// should submit draw calls.
	Render func()
}

// runState tracks the lifecycle phase of a Runner.
type runState int

const (
	stateUninitialized runState = iota
	stateBooted
	stateStopped
)

// Runner owns the run loop: it drives the boot/update/render cycle over
// one canvas and hands finished frames to a presenter when one is set.
//
// All handler invocations happen on the goroutine that calls Run or
// Step; the runner itself starts no goroutines.
type Runner struct {
	handlers  Handlers
	canvas    *Canvas
	presenter Presenter
	state     runState
	tps       int
	limit     int
	ticks     uint64

	stopOnce sync.Once
	stop     chan struct{}
}

// NewRunner creates a runner for the given handlers.
// Without options it targets a standard 240×160 screen at 60 ticks per
// second, presenting through the registered presenter if any.
func NewRunner(h Handlers, opts ...RunnerOption) *Runner {
	options := defaultRunnerOptions()
	for _, opt := range opts {
		opt(&options)
	}

	canvas := options.canvas
	if canvas == nil {
		canvas = NewCanvas(options.width, options.height)
		if options.palette != nil {
			canvas.SetPalette(*options.palette)
		}
	}

	presenter := options.presenter
	if !options.hasPresent {
		presenter = RegisteredPresenter()
	}

	return &Runner{
		handlers:  h,
		canvas:    canvas,
		presenter: presenter,
		tps:       options.tps,
		limit:     options.frameLimit,
		stop:      make(chan struct{}),
	}
}

// Canvas returns the canvas the runner draws on.
func (r *Runner) Canvas() *Canvas {
	return r.canvas
}

// Ticks returns the number of completed update/render ticks.
func (r *Runner) Ticks() uint64 {
	return r.ticks
}

// Boot performs the one-time boot transition: it binds the canvas for
// the package-level drawing functions, initializes the presenter and
// invokes the boot handler. Calling Boot again is a no-op; the boot
// handler runs at most once per runner.
func (r *Runner) Boot() error {
	if r.state != stateUninitialized {
		return nil
	}

	bindCanvas(r.canvas)

	if r.presenter != nil {
		if err := r.presenter.Init(r.canvas.Width(), r.canvas.Height()); err != nil {
			return fmt.Errorf("lantern: presenter %s init: %w", r.presenter.Name(), err)
		}
		Logger().Info("presenter ready", "name", r.presenter.Name())
	}

	if r.handlers.Boot != nil {
		r.handlers.Boot()
	}
	r.state = stateBooted
	Logger().Info("runner booted",
		"width", r.canvas.Width(), "height", r.canvas.Height(), "tps", r.tps)
	return nil
}

// Step advances the lifecycle by one tick: update, then render, then
// presentation. The first call boots the runner if Boot was not called
// explicitly. Presentation failures are logged and do not fail the
// tick; draw correctness never depends on the display.
func (r *Runner) Step() error {
	if r.state == stateStopped {
		return nil
	}
	if r.state == stateUninitialized {
		if err := r.Boot(); err != nil {
			return err
		}
	}

	if r.handlers.Update != nil {
		r.handlers.Update()
	}
	if r.handlers.Render != nil {
		r.handlers.Render()
	}
	r.ticks++

	if r.presenter != nil {
		if err := r.presenter.Present(r.canvas.frame, r.canvas.pal); err != nil {
			if errors.Is(err, ErrPresentSkipped) {
				Logger().Debug("frame skipped", "name", r.presenter.Name())
			} else {
				Logger().Warn("present failed", "name", r.presenter.Name(), "err", err)
			}
		}
	}
	return nil
}

// Run boots the runner and ticks it at the configured cadence until
// Stop is called or the frame limit is reached. It blocks for the
// lifetime of the loop and returns the first boot error, if any.
func (r *Runner) Run() error {
	if err := r.Boot(); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Second / time.Duration(r.tps))
	defer ticker.Stop()
	defer r.close()

	for {
		select {
		case <-r.stop:
			return nil
		case <-ticker.C:
			if err := r.Step(); err != nil {
				return err
			}
			if r.limit > 0 && r.ticks >= uint64(r.limit) {
				return nil
			}
		}
	}
}

// Stop makes Run return after the current tick. Safe to call from any
// goroutine and more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}

// close finishes the lifecycle: the presenter is released and further
// Step calls become no-ops.
func (r *Runner) close() {
	r.state = stateStopped
	if r.presenter != nil {
		r.presenter.Close()
	}
}

// Run is the package entry point: it creates a runner for the handlers
// and blocks driving its loop. Most applications call nothing else from
// main.
func Run(h Handlers, opts ...RunnerOption) error {
	return NewRunner(h, opts...).Run()
}
