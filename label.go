package scene

import "fmt"

// Glyph layout constants from original_source/src/node-label.c.
const (
	labelOutlineWidth = 4
	labelCellGap      = 2
)

// labelState holds a label node's font choice, alignment, colors, and
// an owned copy of its text. ASCII 0x20..0x7E are printable; other
// bytes advance the cursor without drawing a glyph.
type labelState struct {
	font         Font
	align        TextAlign
	vAlign       VerticalAlign
	textColor    Color
	outlineColor Color
	text         []byte
}

// labelRenderState is the immutable snapshot captured at sequence time.
type labelRenderState struct {
	position     Point
	font         Font
	align        TextAlign
	vAlign       VerticalAlign
	textColor    Color
	outlineColor Color
	text         []byte
	glyphs       GlyphSource
}

var labelVTable = &nodeVTable{
	name:   "Label",
	render: labelRenderFunc,
}

// The functions refer back to labelVTable, so they are attached in init
// to avoid a package initialization cycle.
func init() {
	labelVTable.sequence = labelSequence
	labelVTable.dump = labelDump
	labelVTable.destroy = labelDestroy
}

// CreateLabel creates a text node using font, drawn in textColor with an
// outlineColor halo. Animatable: textColor, outlineColor, opacity (via
// the corresponding color setter with an adjusted opacity field).
func CreateLabel(s *Scene, font Font, text string, textColor, outlineColor Color) *node {
	return createNode(s, labelVTable, &labelState{
		font:         font,
		textColor:    textColor,
		outlineColor: outlineColor,
		text:         []byte(text),
	})
}

// LabelText returns n's current text.
func LabelText(n *node) string {
	st, ok := getState(n, labelVTable)
	if !ok {
		return ""
	}
	return string(st.(*labelState).text)
}

// SetLabelText replaces n's text with text, not animatable.
func SetLabelText(n *node, text string) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	st.(*labelState).text = []byte(text)
}

// SetLabelTextFormat replaces n's text with a formatted string, the
// label analogue of ffx_sceneLabel_setTextFormat.
func SetLabelTextFormat(n *node, format string, args ...any) {
	SetLabelText(n, fmt.Sprintf(format, args...))
}

// AppendText appends text to n's current text.
func AppendText(n *node, text string) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	ls := st.(*labelState)
	ls.text = append(ls.text, text...)
}

// AppendChar appends a single rune to n's current text.
func AppendChar(n *node, r rune) {
	AppendText(n, string(r))
}

// AppendFormat appends a formatted string to n's current text.
func AppendFormat(n *node, format string, args ...any) {
	AppendText(n, fmt.Sprintf(format, args...))
}

// InsertText inserts text into n's current text at byte offset at,
// clamped to [0, len(text)].
func InsertText(n *node, at int, text string) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	ls := st.(*labelState)
	if at < 0 {
		at = 0
	}
	if at > len(ls.text) {
		at = len(ls.text)
	}
	out := make([]byte, 0, len(ls.text)+len(text))
	out = append(out, ls.text[:at]...)
	out = append(out, text...)
	out = append(out, ls.text[at:]...)
	ls.text = out
}

// InsertChar inserts a single rune at byte offset at.
func InsertChar(n *node, at int, r rune) {
	InsertText(n, at, string(r))
}

// InsertFormat inserts a formatted string at byte offset at.
func InsertFormat(n *node, at int, format string, args ...any) {
	InsertText(n, at, fmt.Sprintf(format, args...))
}

// SnipText removes the byte range [start, end) from n's current text,
// clamped to valid bounds.
func SnipText(n *node, start, end int) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	ls := st.(*labelState)
	if start < 0 {
		start = 0
	}
	if end > len(ls.text) {
		end = len(ls.text)
	}
	if start >= end {
		return
	}
	ls.text = append(ls.text[:start], ls.text[end:]...)
}

// SetLabelFont changes n's font. Not animatable.
func SetLabelFont(n *node, font Font) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	st.(*labelState).font = font
}

// SetLabelAlign changes n's horizontal alignment. Not animatable.
func SetLabelAlign(n *node, align TextAlign) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	st.(*labelState).align = align
}

// SetLabelVerticalAlign changes n's vertical alignment. Not animatable.
func SetLabelVerticalAlign(n *node, align VerticalAlign) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	st.(*labelState).vAlign = align
}

// LabelTextColor returns n's current text color.
func LabelTextColor(n *node) Color {
	st, ok := getState(n, labelVTable)
	if !ok {
		return ColorTransparent
	}
	return st.(*labelState).textColor
}

func setLabelTextColorDirect(n *node, c Color) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	st.(*labelState).textColor = c
}

// SetLabelTextColor sets n's text color directly, or attaches a color
// action while n is capturing.
func SetLabelTextColor(n *node, color Color) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	animateColor(n, st.(*labelState).textColor, color, setLabelTextColorDirect)
}

// LabelOutlineColor returns n's current outline color.
func LabelOutlineColor(n *node) Color {
	st, ok := getState(n, labelVTable)
	if !ok {
		return ColorTransparent
	}
	return st.(*labelState).outlineColor
}

func setLabelOutlineColorDirect(n *node, c Color) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	st.(*labelState).outlineColor = c
}

// SetLabelOutlineColor sets n's outline color directly, or attaches a
// color action while n is capturing.
func SetLabelOutlineColor(n *node, color Color) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	animateColor(n, st.(*labelState).outlineColor, color, setLabelOutlineColorDirect)
}

func labelSequence(n *node, worldPos Point) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	ls := st.(*labelState)
	worldPos = Point{worldPos.X + n.position.X, worldPos.Y + n.position.Y}

	if IsTransparent(ls.textColor) && IsTransparent(ls.outlineColor) {
		return
	}

	text := make([]byte, len(ls.text))
	copy(text, ls.text)

	n.scene.appendRender(labelRenderFunc, &labelRenderState{
		position:     worldPos,
		font:         ls.font,
		align:        ls.align,
		vAlign:       ls.vAlign,
		textColor:    ls.textColor,
		outlineColor: ls.outlineColor,
		text:         text,
		glyphs:       n.scene.options.Glyphs,
	})
}

func labelRenderFunc(state any, fragment []uint16, origin Point, size Size) {
	rs := state.(*labelRenderState)
	if rs.glyphs == nil {
		diagnostic("Label: no GlyphSource configured, skipping")
		return
	}
	metrics, ok := rs.glyphs.Metrics(rs.font)
	if !ok {
		diagnostic("Label: unknown font %#x, skipping", rs.font)
		return
	}

	cellAdvance := metrics.Width + labelCellGap
	totalWidth := labelTextWidth(rs.text, cellAdvance)

	origX := rs.position.X
	switch rs.align {
	case TextAlignCenter:
		origX -= int16(totalWidth / 2)
	case TextAlignRight:
		origX -= int16(totalWidth)
	}

	origY := rs.position.Y
	switch rs.vAlign {
	case VAlignMiddle:
		origY -= int16(metrics.Height / 2)
	case VAlignBottom:
		origY -= int16(metrics.Height)
	case VAlignMiddleBaseline:
		origY -= int16((metrics.Height - metrics.Descent) / 2)
	case VAlignBaseline:
		origY -= int16(metrics.Height - metrics.Descent)
	}

	if !IsTransparent(rs.outlineColor) {
		ow := int16(metrics.OutlineWidth)
		drawLabelPass(fragment, origin, size, rs, origX-ow, origY-ow, rs.outlineColor, cellAdvance)
	}
	if !IsTransparent(rs.textColor) {
		drawLabelPass(fragment, origin, size, rs, origX, origY, rs.textColor, cellAdvance)
	}
}

func labelTextWidth(text []byte, cellAdvance int) int {
	if len(text) == 0 {
		return 0
	}
	return len(text)*cellAdvance - labelCellGap
}

func drawLabelPass(fragment []uint16, origin Point, size Size, rs *labelRenderState, startX, startY int16, color Color, cellAdvance int) {
	cursor := startX
	for _, b := range rs.text {
		if b < 0x20 || b > 0x7e {
			cursor += int16(cellAdvance)
			continue
		}
		rows, w, h, left, top, advance, ok := rs.glyphs.Glyph(rs.font, rune(b))
		if !ok {
			cursor += int16(cellAdvance)
			continue
		}
		drawGlyph(fragment, origin, size, rows, w, h, Point{cursor + int16(left), startY + int16(top)}, color)
		if advance > 0 {
			cursor += int16(advance)
		} else {
			cursor += int16(cellAdvance)
		}
	}
}

func drawGlyph(fragment []uint16, origin Point, size Size, rows []uint32, w, h int, pos Point, color Color) {
	rgb := ParseRGB(color)
	opaque := rgb.Opacity >= MaxOpacity
	word := RGB16(color)

	for row := 0; row < h && row < len(rows); row++ {
		absY := int(pos.Y) + row
		if absY < int(origin.Y) || absY >= int(origin.Y)+int(size.Height) {
			continue
		}
		fragY := absY - int(origin.Y)
		bits := rows[row]
		for col := 0; col < w && col < 32; col++ {
			if bits>>uint(31-col)&1 == 0 {
				continue
			}
			absX := int(pos.X) + col
			if absX < int(origin.X) || absX >= int(origin.X)+int(size.Width) {
				continue
			}
			fragX := absX - int(origin.X)
			idx := fragY*int(size.Width) + fragX
			if idx < 0 || idx >= len(fragment) {
				continue
			}
			if opaque {
				fragment[idx] = word
			} else {
				fragment[idx] = RGB16(Blend(color, rgb565ToColor(fragment[idx])))
			}
		}
	}
}

func rgb565ToColor(word uint16) Color {
	r := uint8(word>>11&0x1f) << 3
	g := uint8(word>>5&0x3f) << 2
	b := uint8(word&0x1f) << 3
	return NewRGB(r, g, b)
}

func labelDestroy(n *node) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	st.(*labelState).text = nil
}

func labelDump(n *node, depth int) {
	st, ok := getState(n, labelVTable)
	if !ok {
		return
	}
	ls := st.(*labelState)
	dumpLine(depth, n, fmt.Sprintf("text=%q", string(ls.text)))
}
