package scene

// fillState holds a fill node's color.
type fillState struct {
	color Color
}

// fillRenderState is the immutable snapshot captured at sequence time.
// A fill paints its entire fragment regardless of clip, since it has no
// size or position of its own.
type fillRenderState struct {
	color Color
}

var fillVTable = &nodeVTable{
	name:   "Fill",
	render: fillRenderFunc,
}

// fillSequence and fillDump refer back to fillVTable, so they are
// attached in init to avoid a package initialization cycle.
func init() {
	fillVTable.sequence = fillSequence
	fillVTable.dump = fillDump
}

// CreateFill creates a node that paints its entire fragment with color
// every frame. Animatable: color (via color lerp).
func CreateFill(s *Scene, color Color) *node {
	return createNode(s, fillVTable, &fillState{color: color})
}

// FillColor returns n's current fill color.
func FillColor(n *node) Color {
	st, ok := getState(n, fillVTable)
	if !ok {
		return ColorTransparent
	}
	return st.(*fillState).color
}

func setFillColorDirect(n *node, c Color) {
	st, ok := getState(n, fillVTable)
	if !ok {
		return
	}
	st.(*fillState).color = c
}

// SetFillColor sets n's color, or, if n is capturing, attaches a color
// action that interpolates toward color.
func SetFillColor(n *node, color Color) {
	st, ok := getState(n, fillVTable)
	if !ok {
		return
	}
	animateColor(n, st.(*fillState).color, color, setFillColorDirect)
}

func fillSequence(n *node, worldPos Point) {
	st, ok := getState(n, fillVTable)
	if !ok {
		return
	}
	color := st.(*fillState).color
	n.scene.appendRender(fillRenderFunc, &fillRenderState{color: color})
}

func fillRenderFunc(state any, fragment []uint16, origin Point, size Size) {
	rs := state.(*fillRenderState)
	word := RGB16(rs.color)
	n := int(size.Width) * int(size.Height)
	if n > len(fragment) {
		n = len(fragment)
	}
	for i := 0; i < n; i++ {
		fragment[i] = word
	}
}

func fillDump(n *node, depth int) {
	st, ok := getState(n, fillVTable)
	if !ok {
		return
	}
	dumpLine(depth, n, "color="+SprintColor(st.(*fillState).color))
}
