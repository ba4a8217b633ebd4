package lantern

import (
	"errors"
	"strconv"
	"testing"
)

func TestBuiltinPalette(t *testing.T) {
	tests := []struct {
		name string
		want Palette
	}{
		{"", Sweetie16},
		{"default", Sweetie16},
		{"sweetie16", Sweetie16},
		{"tic-80", Sweetie16},
		{"pico8", Pico8},
		{"pico-8", Pico8},
		{"gameboy", Gameboy},
		{"kirokaze", Gameboy},
	}
	for _, tt := range tests {
		got, err := BuiltinPalette(tt.name)
		if err != nil {
			t.Errorf("BuiltinPalette(%q) error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("BuiltinPalette(%q) returned wrong palette", tt.name)
		}
	}
}

func TestBuiltinPaletteUnknown(t *testing.T) {
	_, err := BuiltinPalette("vaporwave")
	if !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("BuiltinPalette(\"vaporwave\") error = %v, want ErrUnknownPalette", err)
	}
}

func TestSweetie16Values(t *testing.T) {
	if Sweetie16[0] != (RGB{0x1a, 0x1c, 0x2c}) {
		t.Errorf("Sweetie16 slot 0 = %v, want {1a 1c 2c}", Sweetie16[0])
	}
	if Sweetie16[12] != (RGB{0xf4, 0xf4, 0xf4}) {
		t.Errorf("Sweetie16 slot 12 = %v, want {f4 f4 f4}", Sweetie16[12])
	}
}

func TestParsePalette(t *testing.T) {
	raw := map[string]uint32{
		"1": 0x332c50,
		"2": 0x46878f,
		"3": 0x94e344,
		"4": 0xe2f3e4,
	}
	pal, err := ParsePalette(raw)
	if err != nil {
		t.Fatalf("ParsePalette error: %v", err)
	}
	if pal != Gameboy {
		t.Errorf("ParsePalette = %v, want Gameboy", pal)
	}
}

func TestParsePaletteErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]uint32
	}{
		{"too few", map[string]uint32{"1": 0}},
		{"zero id", map[string]uint32{"0": 0, "1": 1}},
		{"gap", map[string]uint32{"1": 0, "3": 1}},
		{"out of range", map[string]uint32{"1": 0x1000000, "2": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePalette(tt.raw); err == nil {
				t.Error("ParsePalette succeeded, want error")
			}
		})
	}
}

func TestParsePaletteTooMany(t *testing.T) {
	raw := make(map[string]uint32)
	for i := 1; i <= 17; i++ {
		raw[strconv.Itoa(i)] = uint32(i)
	}
	if _, err := ParsePalette(raw); err == nil {
		t.Error("ParsePalette with 17 colors succeeded, want error")
	}
}

func TestParsePalettes(t *testing.T) {
	raws := map[string]map[string]uint32{
		"gb": {"1": 0x332c50, "2": 0x46878f, "3": 0x94e344, "4": 0xe2f3e4},
	}
	pals, err := ParsePalettes(raws)
	if err != nil {
		t.Fatalf("ParsePalettes error: %v", err)
	}
	if pals["gb"] != Gameboy {
		t.Errorf("ParsePalettes[gb] = %v, want Gameboy", pals["gb"])
	}

	raws["bad"] = map[string]uint32{"1": 0}
	if _, err := ParsePalettes(raws); err == nil {
		t.Error("ParsePalettes with invalid entry succeeded, want error")
	}
}

func TestPaletteBytesRoundTrip(t *testing.T) {
	buf := Sweetie16.bytes()
	if len(buf) != 48 {
		t.Fatalf("bytes length = %d, want 48", len(buf))
	}
	if got := paletteFromBytes(buf); got != Sweetie16 {
		t.Errorf("paletteFromBytes returned different palette")
	}
}
