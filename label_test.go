package scene

import "testing"

type fakeGlyphSource struct {
	metrics FontMetrics
}

func (f *fakeGlyphSource) Metrics(font Font) (FontMetrics, bool) {
	if font != FontSmall {
		return FontMetrics{}, false
	}
	return f.metrics, true
}

func (f *fakeGlyphSource) Glyph(font Font, r rune) ([]uint32, int, int, int, int, int, bool) {
	if r < 0x20 || r > 0x7e {
		return nil, 0, 0, 0, 0, 0, false
	}
	rows := make([]uint32, f.metrics.Height)
	for i := range rows {
		rows[i] = 0xffffffff
	}
	return rows, f.metrics.Width, f.metrics.Height, 0, 0, f.metrics.Width + labelCellGap, true
}

func TestLabelTextMutators(t *testing.T) {
	s := NewScene(SceneOptions{})
	n := CreateLabel(s, FontSmall, "abc", NewRGB(255, 255, 255), ColorTransparent)

	if got := LabelText(n); got != "abc" {
		t.Fatalf("LabelText = %q, want abc", got)
	}

	AppendText(n, "d")
	if got := LabelText(n); got != "abcd" {
		t.Fatalf("after AppendText = %q, want abcd", got)
	}

	InsertText(n, 0, "X")
	if got := LabelText(n); got != "Xabcd" {
		t.Fatalf("after InsertText = %q, want Xabcd", got)
	}

	SnipText(n, 0, 1)
	if got := LabelText(n); got != "abcd" {
		t.Fatalf("after SnipText = %q, want abcd", got)
	}

	SetLabelText(n, "new")
	if got := LabelText(n); got != "new" {
		t.Fatalf("after SetLabelText = %q, want new", got)
	}

	SetLabelTextFormat(n, "n=%d", 42)
	if got := LabelText(n); got != "n=42" {
		t.Fatalf("after SetLabelTextFormat = %q, want n=42", got)
	}
}

func TestLabelColorAccessors(t *testing.T) {
	s := NewScene(SceneOptions{})
	n := CreateLabel(s, FontSmall, "x", NewRGB(1, 2, 3), NewRGB(4, 5, 6))

	if got := LabelTextColor(n); got != NewRGB(1, 2, 3) {
		t.Errorf("LabelTextColor = %v, want initial", got)
	}
	SetLabelTextColor(n, NewRGB(10, 20, 30))
	if got := LabelTextColor(n); got != NewRGB(10, 20, 30) {
		t.Errorf("SetLabelTextColor did not apply immediately")
	}

	SetLabelOutlineColor(n, NewRGB(9, 9, 9))
	if got := LabelOutlineColor(n); got != NewRGB(9, 9, 9) {
		t.Errorf("SetLabelOutlineColor did not apply immediately")
	}
}

func TestLabelRenderDrawsOpaqueGlyphs(t *testing.T) {
	glyphs := &fakeGlyphSource{metrics: FontMetrics{Width: 4, Height: 6}}
	s := NewScene(SceneOptions{Glyphs: glyphs})
	root := Root(s)
	n := CreateLabel(s, FontSmall, "A", NewRGB(255, 255, 255), ColorTransparent)
	SetPosition(n, Point{10, 10})
	AppendChild(root, n)

	Sequence(s)

	size := Size{Width: 32, Height: 32}
	fragment := make([]uint16, int(size.Width)*int(size.Height))
	Render(s, fragment, Point{0, 0}, size)

	idx := 10*int(size.Width) + 10
	if fragment[idx] == 0 {
		t.Errorf("expected glyph pixel at origin to be drawn, fragment[%d] = %#x", idx, fragment[idx])
	}
}

func TestLabelSkipsRenderWhenFullyTransparent(t *testing.T) {
	glyphs := &fakeGlyphSource{metrics: FontMetrics{Width: 4, Height: 6}}
	s := NewScene(SceneOptions{Glyphs: glyphs})
	root := Root(s)
	n := CreateLabel(s, FontSmall, "A", ColorTransparent, ColorTransparent)
	AppendChild(root, n)

	Sequence(s)

	if s.renderHead != nil {
		t.Error("fully transparent label should emit no render record")
	}
}

func TestLabelTextWidthMonospaced(t *testing.T) {
	got := labelTextWidth([]byte("abc"), 6)
	want := 3*6 - labelCellGap
	if got != want {
		t.Errorf("labelTextWidth = %d, want %d", got, want)
	}
	if got := labelTextWidth(nil, 6); got != 0 {
		t.Errorf("labelTextWidth(empty) = %d, want 0", got)
	}
}
