package lantern

import (
	"errors"
	"sync"
)

// ErrPresentSkipped indicates the presenter cannot show this frame.
// The runner treats it as non-fatal and keeps ticking headless.
var ErrPresentSkipped = errors.New("lantern: frame presentation skipped")

// Presenter turns finished frames into visible output.
//
// When registered via RegisterPresenter, the runner hands every rendered
// frame to the presenter after the render handler returns. If Present
// returns ErrPresentSkipped or any other error, the tick still counts;
// presentation failures never break the lifecycle.
//
// Implementations are provided by display backend packages. Users opt in
// via blank import:
//
//	import _ "github.com/gogpu/lantern/display/gpu" // enables GPU presentation
type Presenter interface {
	// Name returns the presenter name (e.g., "image", "wgpu").
	Name() string

	// Init prepares resources for frames of the given dimensions.
	// Called once when a runner adopts the presenter.
	Init(width, height int) error

	// Present shows one finished frame, resolved through the palette.
	// The frame is owned by the runner and only valid for the duration
	// of the call; presenters that keep pixels must copy them.
	Present(frame *Frame, pal Palette) error

	// Close releases presenter resources.
	Close()
}

var (
	presenterMu sync.RWMutex
	presenter   Presenter
)

// RegisterPresenter installs a presenter for subsequent runners.
// Registering nil removes the current presenter. At most one presenter
// is active at a time; registering a second one replaces the first.
func RegisterPresenter(p Presenter) {
	presenterMu.Lock()
	defer presenterMu.Unlock()
	if presenter != nil && p != nil && presenter != p {
		presenter.Close()
	}
	presenter = p
	if p != nil {
		Logger().Info("presenter registered", "name", p.Name())
	}
}

// RegisteredPresenter returns the currently registered presenter, or nil.
func RegisteredPresenter() Presenter {
	presenterMu.RLock()
	defer presenterMu.RUnlock()
	return presenter
}
