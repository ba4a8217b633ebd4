// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"errors"
	"image"
	"os"
	"sync"

	"github.com/gogpu/lantern"
)

// ErrNoFrame is returned when no frame has been presented yet.
var ErrNoFrame = errors.New("display: no frame presented")

// ImagePresenter is a software presenter that keeps a copy of the most
// recently presented frame. It is the default backend for headless use:
// tools render a few ticks, then snapshot or save the result.
//
// Snapshot and SavePNG are safe to call while a runner is ticking on
// another goroutine.
type ImagePresenter struct {
	mu     sync.Mutex
	latest *lantern.Frame
	pal    lantern.Palette
	ticks  uint64
}

// NewImagePresenter creates an image-backed presenter.
func NewImagePresenter() *ImagePresenter {
	return &ImagePresenter{}
}

// Name returns the backend name.
func (p *ImagePresenter) Name() string {
	return "image"
}

// Init implements lantern.Presenter. The image backend needs no setup.
func (p *ImagePresenter) Init(width, height int) error {
	return nil
}

// Present copies the frame; the original stays owned by the runner.
func (p *ImagePresenter) Present(f *lantern.Frame, pal lantern.Palette) error {
	clone := f.Clone()
	p.mu.Lock()
	p.latest = clone
	p.pal = pal
	p.ticks++
	p.mu.Unlock()
	return nil
}

// Close implements lantern.Presenter.
func (p *ImagePresenter) Close() {}

// Snapshot returns the most recently presented frame as an image.
func (p *ImagePresenter) Snapshot() (image.Image, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.latest == nil {
		return nil, ErrNoFrame
	}
	return p.latest.Image(p.pal), nil
}

// Presented returns the number of frames shown so far.
func (p *ImagePresenter) Presented() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ticks
}

// SavePNG writes the most recently presented frame to a PNG file,
// upscaled by the given integer factor.
func (p *ImagePresenter) SavePNG(path string, scale int) error {
	p.mu.Lock()
	frame := p.latest
	pal := p.pal
	p.mu.Unlock()
	if frame == nil {
		return ErrNoFrame
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return frame.WritePNG(f, pal, scale)
}

// init registers the built-in image backend.
func init() {
	Register("image", 10, func() (lantern.Presenter, error) {
		return NewImagePresenter(), nil
	}, nil)
}
