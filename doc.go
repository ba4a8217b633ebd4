// Package lantern provides a minimal fantasy-console style 2D runtime for Go.
//
// # Overview
//
// lantern is a Pure Go runtime built around two pieces: a lifecycle
// dispatcher that drives user-supplied boot/update/render callbacks, and an
// immediate-mode canvas with a fixed 16-color palette. It is designed to
// integrate with the GoGPU ecosystem for presentation while staying fully
// usable headless.
//
// # Quick Start
//
//	import "github.com/gogpu/lantern"
//
//	func main() {
//	    lantern.Run(lantern.Handlers{Render: render})
//	}
//
//	func render() {
//	    lantern.ClearScreen(lantern.ColorWhite)
//	    lantern.DrawTriangle(
//	        lantern.Pt(60, 10),
//	        lantern.Pt(40, 40),
//	        lantern.Pt(80, 40),
//	        lantern.Style{
//	            FillColor:   lantern.ColorLightGray,
//	            StrokeColor: lantern.ColorDarkBlue,
//	            StrokeWidth: 1,
//	        },
//	    )
//	}
//
// Handlers take no arguments. Inside Render, the package-level drawing
// functions target the canvas of the runner that invoked the handler; the
// same operations are also available as methods on Canvas for direct use.
//
// # Lifecycle
//
// Boot runs exactly once before the first tick. Every tick then invokes
// Update followed by Render, in that order, on a single goroutine. Absent
// handlers are legal and skipped. Update is intended for simulation state
// and Render exclusively for draw submissions; this split is a convention,
// not enforced by the runtime.
//
// # Drawing Model
//
// Drawing is immediate-mode: primitives rasterize synchronously on
// submission and there is no retained scene graph. Within one render pass,
// later calls draw over earlier ones; that submission order is the only
// ordering guarantee. Rendering is deterministic and aliased: drawing the
// same primitive twice produces identical pixels.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Integer pixel coordinates; geometry outside the canvas clips silently
//
// # Presentation
//
// The runtime is headless by default. Presenters turn finished frames into
// visible output; the display package holds the registry and display/gpu
// provides a GPU-backed presenter via blank import:
//
//	import _ "github.com/gogpu/lantern/display/gpu"
package lantern

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
