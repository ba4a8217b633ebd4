package lantern

import "testing"

func TestStyleHasFill(t *testing.T) {
	if (Style{}).hasFill() {
		t.Error("zero Style reports a fill")
	}
	if !(Style{FillColor: ColorRed}).hasFill() {
		t.Error("fill style reports no fill")
	}
}

func TestStyleHasStroke(t *testing.T) {
	tests := []struct {
		s    Style
		want bool
	}{
		{Style{}, false},
		{Style{StrokeColor: ColorRed}, false},
		{Style{StrokeColor: ColorNone, StrokeWidth: 2}, false},
		{Style{StrokeColor: ColorRed, StrokeWidth: -1}, false},
		{Style{StrokeColor: ColorRed, StrokeWidth: 1}, true},
	}
	for _, tt := range tests {
		if got := tt.s.hasStroke(); got != tt.want {
			t.Errorf("%+v hasStroke = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestStyleLineStyle(t *testing.T) {
	s := Style{FillColor: ColorRed, StrokeColor: ColorWhite, StrokeWidth: 3}
	ls := s.lineStyle()
	if ls.Color != ColorWhite || ls.Width != 3 {
		t.Errorf("lineStyle = %+v, want {white 3}", ls)
	}
}
