// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package display provides presenter backends for the lantern runtime.
//
// A presenter turns finished frames into visible (or inspectable)
// output. Backends register themselves in a priority-ordered registry,
// so third-party presenters plug in without changes to the core:
//
//	func init() {
//	    display.Register("vulkan", 100, vulkanFactory, vulkanAvailable)
//	}
//
// The built-in "image" backend keeps the latest frame as an in-memory
// image, which suits tools and tests. The display/gpu subpackage adds a
// "wgpu" backend that expands frames on the GPU; import it blank to
// make it the active presenter:
//
//	import _ "github.com/gogpu/lantern/display/gpu"
//
// To pick a backend explicitly:
//
//	if err := display.Use("image"); err != nil {
//	    log.Fatal(err)
//	}
//	lantern.Run(handlers)
package display
