package lantern

import (
	"image/color"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f := NewFrame(ScreenWidth, ScreenHeight)
	if f.Width() != ScreenWidth || f.Height() != ScreenHeight {
		t.Errorf("frame size = %dx%d, want %dx%d", f.Width(), f.Height(), ScreenWidth, ScreenHeight)
	}
	if len(f.Data()) != ScreenWidth*ScreenHeight {
		t.Errorf("data length = %d, want %d", len(f.Data()), ScreenWidth*ScreenHeight)
	}
}

func TestFrameSetSlot(t *testing.T) {
	f := NewFrame(10, 10)
	f.SetSlot(3, 4, 7)
	if got := f.Slot(3, 4); got != 7 {
		t.Errorf("Slot(3, 4) = %d, want 7", got)
	}

	// Out-of-bounds writes are dropped, reads return 0.
	f.SetSlot(-1, 0, 9)
	f.SetSlot(10, 0, 9)
	f.SetSlot(0, 10, 9)
	if got := f.Slot(-1, 0); got != 0 {
		t.Errorf("Slot(-1, 0) = %d, want 0", got)
	}
	for _, slot := range f.Data() {
		if slot != 0 && slot != 7 {
			t.Fatalf("out-of-bounds write leaked slot %d into frame", slot)
		}
	}
}

func TestFrameClear(t *testing.T) {
	f := NewFrame(8, 8)
	f.Clear(5)
	for i, slot := range f.Data() {
		if slot != 5 {
			t.Fatalf("pixel %d = %d after Clear(5), want 5", i, slot)
		}
	}
}

func TestFrameFillSpan(t *testing.T) {
	f := NewFrame(10, 3)
	f.FillSpan(2, 6, 1, 4)
	for x := 0; x < 10; x++ {
		want := uint8(0)
		if x >= 2 && x < 6 {
			want = 4
		}
		if got := f.Slot(x, 1); got != want {
			t.Errorf("Slot(%d, 1) = %d, want %d", x, got, want)
		}
	}
}

func TestFrameFillSpanClipped(t *testing.T) {
	f := NewFrame(5, 2)
	f.FillSpan(-3, 99, 0, 2)
	for x := 0; x < 5; x++ {
		if got := f.Slot(x, 0); got != 2 {
			t.Errorf("Slot(%d, 0) = %d, want 2", x, got)
		}
	}
	// Off-row spans are dropped.
	f.FillSpan(0, 5, -1, 3)
	f.FillSpan(0, 5, 2, 3)
	if got := f.Slot(0, 1); got != 0 {
		t.Errorf("Slot(0, 1) = %d, want 0", got)
	}
}

func TestFrameFillSpanSwapped(t *testing.T) {
	f := NewFrame(10, 1)
	f.FillSpan(6, 2, 0, 1)
	if f.Slot(2, 0) != 1 || f.Slot(5, 0) != 1 || f.Slot(6, 0) != 0 {
		t.Error("FillSpan with swapped bounds did not normalize")
	}
}

func TestFrameImage(t *testing.T) {
	f := NewFrame(4, 4)
	f.SetSlot(1, 2, 3)
	img := f.Image(Sweetie16)

	want := Sweetie16[3]
	r, g, b, _ := img.At(1, 2).RGBA()
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("img.At(1, 2) = %v, want %v", img.At(1, 2), want)
	}
	if got := img.At(0, 0); got != (color.NRGBA{R: 0x1a, G: 0x1c, B: 0x2c, A: 0xff}) {
		t.Errorf("img.At(0, 0) = %v, want sweetie black", got)
	}
}

func TestFrameRGBA(t *testing.T) {
	f := NewFrame(2, 1)
	f.SetSlot(1, 0, 12) // white in Sweetie16
	pix := f.RGBA(Sweetie16)
	if len(pix) != 8 {
		t.Fatalf("RGBA length = %d, want 8", len(pix))
	}
	if pix[4] != 0xf4 || pix[5] != 0xf4 || pix[6] != 0xf4 || pix[7] != 0xff {
		t.Errorf("pixel 1 RGBA = %v, want f4 f4 f4 ff", pix[4:8])
	}
}

func TestFrameClone(t *testing.T) {
	f := NewFrame(4, 4)
	f.SetSlot(2, 2, 9)
	c := f.Clone()
	if c.Slot(2, 2) != 9 {
		t.Error("clone lost pixel data")
	}
	c.SetSlot(0, 0, 1)
	if f.Slot(0, 0) != 0 {
		t.Error("clone shares storage with original")
	}
}
