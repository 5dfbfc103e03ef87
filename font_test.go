package scene

import "testing"

func TestFontPointsAndBold(t *testing.T) {
	tests := []struct {
		name       string
		font       Font
		wantPoints uint8
		wantBold   bool
	}{
		{"small", FontSmall, 0x0f, false},
		{"medium", FontMedium, 0x14, false},
		{"large bold", FontLarge | FontBold, 0x18, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FontPoints(tt.font); got != tt.wantPoints {
				t.Errorf("FontPoints(%#x) = %d, want %d", tt.font, got, tt.wantPoints)
			}
			if got := FontIsBold(tt.font); got != tt.wantBold {
				t.Errorf("FontIsBold(%#x) = %v, want %v", tt.font, got, tt.wantBold)
			}
		})
	}
}

func TestVerticalAlignValues(t *testing.T) {
	if VAlignTop != 0 {
		t.Errorf("VAlignTop = %d, want 0", VAlignTop)
	}
	if VAlignBaseline != 4 {
		t.Errorf("VAlignBaseline = %d, want 4", VAlignBaseline)
	}
}
