package lantern

import "testing"

func TestPackageDrawingBoundToRunner(t *testing.T) {
	r := NewRunner(Handlers{}, WithPresenter(nil), WithSize(16, 16))
	if err := r.Boot(); err != nil {
		t.Fatalf("Boot error: %v", err)
	}

	ClearScreen(ColorBlue)
	DrawPoint(Pt(3, 3), ColorWhite)
	DrawTriangle(Pt(2, 2), Pt(12, 2), Pt(7, 12), Style{FillColor: ColorRed})
	DrawRect(Pt(0, 14), 4, 2, Style{FillColor: ColorYellow})
	DrawCircle(Pt(13, 13), 2, Style{FillColor: ColorGreen})
	DrawLine(Pt(0, 0), Pt(0, 8), LineStyle{Color: ColorCyan, Width: 1})

	f := r.Canvas().Frame()
	if got := f.Slot(7, 6); got != ColorRed.slot() {
		t.Errorf("triangle interior = %d, want %d", got, ColorRed.slot())
	}
	if got := f.Slot(1, 14); got != ColorYellow.slot() {
		t.Errorf("rect pixel = %d, want %d", got, ColorYellow.slot())
	}
	if got := f.Slot(15, 0); got != ColorBlue.slot() {
		t.Errorf("cleared pixel = %d, want %d", got, ColorBlue.slot())
	}
}

func TestPackageDrawingUnboundIsDropped(t *testing.T) {
	bindCanvas(nil)
	t.Cleanup(func() { bindCanvas(nil) })

	// Nothing to draw on; calls are dropped without panicking.
	ClearScreen(ColorRed)
	DrawTriangle(Pt(0, 0), Pt(5, 0), Pt(0, 5), Style{FillColor: ColorRed})
	DrawPoint(Pt(1, 1), ColorRed)
	SetScreenPalette(Pico8)
}

func TestSetScreenPalette(t *testing.T) {
	r := NewRunner(Handlers{}, WithPresenter(nil))
	if err := r.Boot(); err != nil {
		t.Fatalf("Boot error: %v", err)
	}
	SetScreenPalette(Gameboy)
	if r.Canvas().Palette() != Gameboy {
		t.Error("SetScreenPalette did not reach the bound canvas")
	}
}
