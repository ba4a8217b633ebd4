package lantern

import "testing"

func TestColorNone(t *testing.T) {
	if !ColorNone.None() {
		t.Error("ColorNone.None() = false, want true")
	}
	if ColorRed.None() {
		t.Error("ColorRed.None() = true, want false")
	}
}

func TestColorValid(t *testing.T) {
	if !ColorNone.Valid() {
		t.Error("ColorNone.Valid() = false, want true")
	}
	if !ColorDarkGray.Valid() {
		t.Error("ColorDarkGray.Valid() = false, want true")
	}
	if Color(17).Valid() {
		t.Error("Color(17).Valid() = true, want false")
	}
}

func TestColorSlot(t *testing.T) {
	if got := ColorBlack.slot(); got != 0 {
		t.Errorf("ColorBlack.slot() = %d, want 0", got)
	}
	if got := ColorDarkGray.slot(); got != 15 {
		t.Errorf("ColorDarkGray.slot() = %d, want 15", got)
	}
	// Out-of-range colors resolve to the last slot.
	if got := Color(200).slot(); got != 15 {
		t.Errorf("Color(200).slot() = %d, want 15", got)
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorNone, "none"},
		{ColorBlack, "black"},
		{ColorLightGreen, "light-green"},
		{ColorDarkGray, "dark-gray"},
		{Color(42), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Color(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#1a1c2c", RGB{0x1a, 0x1c, 0x2c}, true},
		{"1a1c2c", RGB{0x1a, 0x1c, 0x2c}, true},
		{"#FFF", RGB{0xff, 0xff, 0xff}, true},
		{"f0a", RGB{0xff, 0x00, 0xaa}, true},
		{"#12345", RGB{}, false},
		{"zzzzzz", RGB{}, false},
		{"", RGB{}, false},
	}
	for _, tt := range tests {
		got, ok := Hex(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Hex(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRGBColor(t *testing.T) {
	c := RGB{R: 0x1a, G: 0x1c, B: 0x2c}
	r, g, b, a := c.Color().RGBA()
	if r>>8 != 0x1a || g>>8 != 0x1c || b>>8 != 0x2c || a != 0xffff {
		t.Errorf("RGB.Color().RGBA() = %d %d %d %d, want 0x1a 0x1c 0x2c opaque", r>>8, g>>8, b>>8, a)
	}
}
