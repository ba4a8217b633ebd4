package lantern

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// Snapshot file layout: one magic byte, 48 bytes of packed RGB palette,
// then the frame at 4 bits per pixel, two pixels per byte with the left
// pixel in the low nibble.
const (
	snapshotMagic       = 0x41
	snapshotPaletteSize = 48
)

// ErrBadSnapshot is returned when snapshot data fails validation.
var ErrBadSnapshot = errors.New("lantern: bad snapshot data")

// SnapshotSize returns the encoded size in bytes of a snapshot for the
// given frame dimensions.
func SnapshotSize(width, height int) int {
	return 1 + snapshotPaletteSize + width*height/2
}

// EncodeSnapshot packs a frame and its palette into the snapshot format.
// The frame width must be even, since pixels pack two to a byte.
func EncodeSnapshot(f *Frame, pal Palette) ([]byte, error) {
	if f.width%2 != 0 {
		return nil, fmt.Errorf("%w: odd frame width %d", ErrBadSnapshot, f.width)
	}

	out := make([]byte, 0, SnapshotSize(f.width, f.height))
	out = append(out, snapshotMagic)
	out = append(out, pal.bytes()...)
	for i := 0; i < len(f.data); i += 2 {
		lo := f.data[i] & 0x0f
		hi := f.data[i+1] & 0x0f
		out = append(out, lo|hi<<4)
	}
	return out, nil
}

// DecodeSnapshot unpacks snapshot data into a frame and its palette.
// The expected dimensions must be supplied; snapshots do not carry them.
func DecodeSnapshot(data []byte, width, height int) (*Frame, Palette, error) {
	if width%2 != 0 {
		return nil, Palette{}, fmt.Errorf("%w: odd frame width %d", ErrBadSnapshot, width)
	}
	want := SnapshotSize(width, height)
	if len(data) != want {
		return nil, Palette{}, fmt.Errorf("%w: size %d, expected %d", ErrBadSnapshot, len(data), want)
	}
	if data[0] != snapshotMagic {
		return nil, Palette{}, fmt.Errorf("%w: invalid magic number %#x", ErrBadSnapshot, data[0])
	}

	pal := paletteFromBytes(data[1 : 1+snapshotPaletteSize])
	f := NewFrame(width, height)
	packed := data[1+snapshotPaletteSize:]
	for i, b := range packed {
		f.data[i*2] = b & 0x0f
		f.data[i*2+1] = b >> 4
	}
	return f, pal, nil
}

// DecodeScreenSnapshot unpacks a snapshot with the standard 240×160
// dimensions.
func DecodeScreenSnapshot(data []byte) (*Frame, Palette, error) {
	return DecodeSnapshot(data, ScreenWidth, ScreenHeight)
}

// SnapshotImage decodes snapshot data and expands it to a truecolor
// image, upscaled by the given integer factor (nearest neighbor, so
// pixels stay crisp). A scale below one is treated as one.
func SnapshotImage(data []byte, width, height, scale int) (image.Image, error) {
	f, pal, err := DecodeSnapshot(data, width, height)
	if err != nil {
		return nil, err
	}
	return scaleFrame(f, pal, scale), nil
}

// WritePNG encodes the frame as a PNG, upscaled by the given integer
// factor.
func (f *Frame) WritePNG(w io.Writer, pal Palette, scale int) error {
	return png.Encode(w, scaleFrame(f, pal, scale))
}

// scaleFrame expands an indexed frame through its palette and upscales
// it with nearest-neighbor sampling.
func scaleFrame(f *Frame, pal Palette, scale int) image.Image {
	src := f.Image(pal)
	if scale <= 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, f.width*scale, f.height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
