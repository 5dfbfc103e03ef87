package scene

import "testing"

func TestNewRGBAClampsOpacity(t *testing.T) {
	c := NewRGBA(255, 128, 0, 200)
	rgb := ParseRGB(c)
	if rgb.Opacity != MaxOpacity {
		t.Errorf("Opacity = %d, want %d", rgb.Opacity, MaxOpacity)
	}
}

func TestNewHSVAWrapsHue(t *testing.T) {
	c := NewHSVA(3960+10, 63, 63, MaxOpacity)
	hsv := ParseHSV(c)
	if hsv.H != 10 {
		t.Errorf("H = %d, want 10", hsv.H)
	}
}

func TestRGBToHSVToRGBRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
	}{
		{"red", 255, 0, 0},
		{"green", 0, 255, 0},
		{"blue", 0, 0, 255},
		{"yellow", 255, 255, 0},
		{"cyan", 0, 255, 255},
		{"magenta", 255, 0, 255},
		{"mid-gray-ish", 180, 90, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := RGBToHSV(tt.r, tt.g, tt.b)
			if s < 4 {
				t.Skip("low saturation not required to round-trip precisely")
			}
			r2, g2, b2 := HSVToRGB(h, s, v)
			within := func(a, b uint8) bool {
				d := int(a) - int(b)
				if d < 0 {
					d = -d
				}
				return d <= 8
			}
			if !within(tt.r, r2) || !within(tt.g, g2) || !within(tt.b, b2) {
				t.Errorf("round trip (%d,%d,%d) -> HSV(%d,%d,%d) -> (%d,%d,%d)",
					tt.r, tt.g, tt.b, h, s, v, r2, g2, b2)
			}
		})
	}
}

func TestRGB16(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		wantHi5    uint16
		wantLo5    uint16
		wantMid6   uint16
	}{
		{"white", NewRGB(255, 255, 255), 31, 31, 63},
		{"black", NewRGB(0, 0, 0), 0, 0, 0},
		{"red", NewRGB(255, 0, 0), 31, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGB16(tt.c)
			r := got >> 11 & 0x1f
			g := got >> 5 & 0x3f
			b := got & 0x1f
			if r != tt.wantHi5 || g != tt.wantMid6 || b != tt.wantLo5 {
				t.Errorf("RGB16(%v) = %#04x, r=%d g=%d b=%d, want r=%d g=%d b=%d",
					tt.c, got, r, g, b, tt.wantHi5, tt.wantMid6, tt.wantLo5)
			}
		})
	}
}

func TestRGB24(t *testing.T) {
	c := NewRGB(0x12, 0x34, 0x56)
	if got := RGB24(c); got != 0x123456 {
		t.Errorf("RGB24 = %#08x, want %#08x", got, 0x123456)
	}
}

func TestRGBA24Opaque(t *testing.T) {
	c := NewRGB(0x12, 0x34, 0x56)
	got := RGBA24(c)
	if got>>24 != 0xff {
		t.Errorf("RGBA24 alpha byte = %#02x, want 0xff for full opacity", got>>24)
	}
	if got&0xffffff != 0x123456 {
		t.Errorf("RGBA24 rgb = %#06x, want %#06x", got&0xffffff, 0x123456)
	}
}

func TestIsTransparent(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want bool
	}{
		{"opaque", NewRGB(1, 2, 3), false},
		{"zero opacity", NewRGBA(1, 2, 3, 0), true},
		{"darker50 not transparent", DarkerRGBA50, false},
		{"darker75 not transparent", DarkerRGBA75, false},
		{"transparent sentinel", ColorTransparent, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransparent(tt.c); got != tt.want {
				t.Errorf("IsTransparent(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestLerpEndpoints(t *testing.T) {
	c0 := NewRGB(0, 0, 0)
	c1 := NewRGB(255, 255, 255)
	if got := Lerp(c0, c1, 0); got != c0 {
		t.Errorf("Lerp(c0,c1,0) = %v, want %v", got, c0)
	}
	if got := Lerp(c0, c1, FM1); got != c1 {
		t.Errorf("Lerp(c0,c1,FM1) = %v, want %v", got, c1)
	}
}

func TestLerpColorRampBoundaries(t *testing.T) {
	ramp := []Color{NewRGB(0, 0, 0), NewRGB(128, 128, 128), NewRGB(255, 255, 255)}
	if got := LerpColorRamp(ramp, 0); got != ramp[0] {
		t.Errorf("LerpColorRamp(0) = %v, want %v", got, ramp[0])
	}
	if got := LerpColorRamp(ramp, FM1); got != ramp[2] {
		t.Errorf("LerpColorRamp(FM1) = %v, want %v", got, ramp[2])
	}
	if got := LerpColorRamp(ramp, FM1_2); got != ramp[1] {
		t.Errorf("LerpColorRamp(FM1_2) = %v, want %v", got, ramp[1])
	}
}

func TestBlendOpaqueForeground(t *testing.T) {
	fg := NewRGB(10, 20, 30)
	bg := NewRGB(200, 200, 200)
	got := Blend(fg, bg)
	rgb := ParseRGB(got)
	if rgb.R != 10 || rgb.G != 20 || rgb.B != 30 {
		t.Errorf("Blend(opaque fg, bg) = %v, want fg unchanged", rgb)
	}
}

func TestSprintColor(t *testing.T) {
	c := NewRGBA(255, 0, 0, MaxOpacity)
	want := "RGB(255/255, 0/255, 0/255, 32/32)"
	if got := SprintColor(c); got != want {
		t.Errorf("SprintColor = %q, want %q", got, want)
	}
}
