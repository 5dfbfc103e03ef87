package scene

import "testing"

func TestCurveLinear(t *testing.T) {
	tests := []struct {
		name string
		in   Fixed
		want Fixed
	}{
		{"zero", 0, 0},
		{"half", FM1_2, FM1_2},
		{"one", FM1, FM1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurveLinear(tt.in); got != tt.want {
				t.Errorf("CurveLinear(%#x) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestNamedCurvesEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"InQuad":     CurveInQuad,
		"OutQuad":    CurveOutQuad,
		"InOutQuad":  CurveInOutQuad,
		"InCubic":    CurveInCubic,
		"OutCubic":   CurveOutCubic,
		"InOutCubic": CurveInOutCubic,
	}
	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			tol := FM1_16
			if got := c(0); abs(got) > tol {
				t.Errorf("%s(0) = %#x, want ~0", name, got)
			}
			if got := c(FM1) - FM1; abs(got) > tol {
				t.Errorf("%s(FM1) = %#x, want ~FM1", name, c(FM1))
			}
		})
	}
}

func abs(v Fixed) Fixed {
	if v < 0 {
		return -v
	}
	return v
}
