//go:build !nogpu

// Package gpu registers the wgpu presenter backend for GPU-side frame
// expansion.
//
// Import this package to make the GPU backend the active presenter on
// machines with a usable adapter. Each presented frame is packed to
// 4 bits per pixel, uploaded, and expanded through the palette to RGBA
// by a compute shader. The result can be handed to a GoGPU host
// application for on-screen compositing via RenderTo.
//
// Without a usable GPU the backend registers as unavailable, so
// display.NewBest falls back to the software image backend and no
// presenter is auto-registered; nothing breaks on GPU-less machines.
//
// Usage:
//
//	import _ "github.com/gogpu/lantern/display/gpu" // enable GPU presentation
package gpu

import (
	"github.com/gogpu/lantern"
	"github.com/gogpu/lantern/display"
)

func init() {
	display.Register("wgpu", 100, func() (lantern.Presenter, error) {
		return New(), nil
	}, available)

	if available() {
		lantern.RegisterPresenter(New())
	}
}
