package lantern

import "testing"

func TestPt(t *testing.T) {
	p := Pt(3, 7)
	if p.X != 3 || p.Y != 7 {
		t.Errorf("Pt(3, 7) = %v, want {3 7}", p)
	}
}

func TestPointArithmetic(t *testing.T) {
	a := Pt(10, 20)
	b := Pt(3, 4)

	if got := a.Add(b); got != Pt(13, 24) {
		t.Errorf("Add = %v, want {13 24}", got)
	}
	if got := a.Sub(b); got != Pt(7, 16) {
		t.Errorf("Sub = %v, want {7 16}", got)
	}
	if got := b.Mul(3); got != Pt(9, 12) {
		t.Errorf("Mul = %v, want {9 12}", got)
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(239, 159), true},
		{Pt(240, 0), false},
		{Pt(0, 160), false},
		{Pt(-1, 5), false},
		{Pt(5, -1), false},
	}
	for _, tt := range tests {
		if got := tt.p.In(ScreenWidth, ScreenHeight); got != tt.want {
			t.Errorf("%v.In(240, 160) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
