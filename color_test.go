package skinforge

import "testing"

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#FF6B00", RGB{255, 107, 0}},
		{"FF6B00", RGB{255, 107, 0}},
		{"#ff6b00", RGB{255, 107, 0}},
		{"#000000", RGB{0, 0, 0}},
		{"#FFFFFF", RGB{255, 255, 255}},
		// Malformed input parses to black rather than failing.
		{"", RGB{}},
		{"#12345", RGB{}},
		{"#1234567", RGB{}},
		{"zzzzzz", RGB{}},
	}

	for _, tt := range tests {
		if got := HexToRGB(tt.in); got != tt.want {
			t.Errorf("HexToRGB(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				if got := HexToRGB(c.Hex()); got != c {
					t.Fatalf("HexToRGB(%q) = %v, want %v", c.Hex(), got, c)
				}
			}
		}
	}
}

func TestDarken(t *testing.T) {
	white := RGB{255, 255, 255}

	if got := white.Darken(0); got != white {
		t.Errorf("Darken(white, 0) = %v, want no change", got)
	}
	if got := white.Darken(100); got != (RGB{}) {
		t.Errorf("Darken(white, 100) = %v, want black", got)
	}

	half := white.Darken(50)
	for _, ch := range []uint8{half.R, half.G, half.B} {
		if ch < 127 || ch > 129 {
			t.Errorf("Darken(white, 50) channel = %d, want 128 within rounding", ch)
		}
	}
}

func TestLighten(t *testing.T) {
	c := RGB{40, 80, 120}

	if got := c.Lighten(0); got != c {
		t.Errorf("Lighten(c, 0) = %v, want no change", got)
	}
	if got := c.Lighten(100); got != (RGB{255, 255, 255}) {
		t.Errorf("Lighten(c, 100) = %v, want white", got)
	}

	// channel + (255-channel)/2, within rounding
	got := c.Lighten(50)
	want := RGB{148, 168, 188}
	for _, ch := range [][2]uint8{{got.R, want.R}, {got.G, want.G}, {got.B, want.B}} {
		if d := int(ch[0]) - int(ch[1]); d < -1 || d > 1 {
			t.Errorf("Lighten(%v, 50) = %v, want %v within 1", c, got, want)
		}
	}
}

func TestBlendClamps(t *testing.T) {
	c := RGB{10, 200, 90}
	if got := c.Blend(RGB{255, 0, 255}, -2); got != c {
		t.Errorf("Blend with t < 0 = %v, want start color", got)
	}
	if got := c.Blend(RGB{255, 0, 255}, 2); got != (RGB{255, 0, 255}) {
		t.Errorf("Blend with t > 1 = %v, want end color", got)
	}
}

func TestHexFormat(t *testing.T) {
	if got := (RGB{255, 107, 0}).Hex(); got != "#ff6b00" {
		t.Errorf("Hex() = %q, want %q", got, "#ff6b00")
	}
	if got := (RGB{0, 0, 7}).Hex(); got != "#000007" {
		t.Errorf("Hex() = %q, want zero-padded %q", got, "#000007")
	}
}
