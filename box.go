package scene

// boxState holds a box node's size and color.
type boxState struct {
	size  Size
	color Color
}

// boxRenderState is the immutable snapshot captured at sequence time.
type boxRenderState struct {
	position Point
	size     Size
	color    Color
}

var boxVTable = &nodeVTable{
	name:   "Box",
	render: boxRenderFunc,
}

// boxSequence and boxDump refer back to boxVTable, so they are attached
// in init to avoid a package initialization cycle.
func init() {
	boxVTable.sequence = boxSequence
	boxVTable.dump = boxDump
}

// CreateBox creates a filled rectangle node of the given size and color.
// Animatable: color (color lerp), size (size lerp), opacity (via
// SetBoxColor with an adjusted opacity field).
func CreateBox(s *Scene, size Size, color Color) *node {
	return createNode(s, boxVTable, &boxState{size: size, color: color})
}

// BoxColor returns n's current color.
func BoxColor(n *node) Color {
	st, ok := getState(n, boxVTable)
	if !ok {
		return ColorTransparent
	}
	return st.(*boxState).color
}

// BoxSize returns n's current size.
func BoxSize(n *node) Size {
	st, ok := getState(n, boxVTable)
	if !ok {
		return Size{}
	}
	return st.(*boxState).size
}

func setBoxColorDirect(n *node, c Color) {
	st, ok := getState(n, boxVTable)
	if !ok {
		return
	}
	st.(*boxState).color = c
}

func setBoxSizeDirect(n *node, sz Size) {
	st, ok := getState(n, boxVTable)
	if !ok {
		return
	}
	st.(*boxState).size = sz
}

// SetBoxColor sets n's color directly, or attaches a color action while
// n is capturing.
func SetBoxColor(n *node, color Color) {
	st, ok := getState(n, boxVTable)
	if !ok {
		return
	}
	animateColor(n, st.(*boxState).color, color, setBoxColorDirect)
}

// SetBoxSize sets n's size directly, or attaches a size action while n
// is capturing.
func SetBoxSize(n *node, size Size) {
	st, ok := getState(n, boxVTable)
	if !ok {
		return
	}
	animateSize(n, st.(*boxState).size, size, setBoxSizeDirect)
}

func boxSequence(n *node, worldPos Point) {
	st, ok := getState(n, boxVTable)
	if !ok {
		return
	}
	b := st.(*boxState)
	worldPos = Point{worldPos.X + n.position.X, worldPos.Y + n.position.Y}

	if IsTransparent(b.color) {
		return
	}
	if n.scene.fullyOffscreen(worldPos, b.size) {
		return
	}

	n.scene.appendRender(boxRenderFunc, &boxRenderState{position: worldPos, size: b.size, color: b.color})
}

func boxRenderFunc(state any, fragment []uint16, origin Point, size Size) {
	rs := state.(*boxRenderState)
	clip := ComputeClip(rs.position, rs.size, origin, size)
	if clip.Width == 0 {
		return
	}

	stride := int(size.Width)

	switch rs.color {
	case DarkerRGBA50:
		forEachClippedPixel(fragment, stride, clip, func(i int) {
			fragment[i] = (fragment[i] & 0xf7be) >> 1
		})
		return
	case DarkerRGBA75:
		forEachClippedPixel(fragment, stride, clip, func(i int) {
			fragment[i] = (fragment[i] & 0xe79c) >> 2
		})
		return
	}

	rgb := ParseRGB(rs.color)
	if rgb.Opacity >= MaxOpacity {
		word := RGB16(rs.color)
		forEachClippedPixel(fragment, stride, clip, func(i int) {
			fragment[i] = word
		})
		return
	}

	alpha := FixedBitsN(5, uint32(rgb.Opacity))
	inv := FM1 - alpha
	fr := Mul(ToFixed(int32(rgb.R)), alpha)
	fg := Mul(ToFixed(int32(rgb.G)), alpha)
	fb := Mul(ToFixed(int32(rgb.B)), alpha)

	forEachClippedPixel(fragment, stride, clip, func(i int) {
		dst := fragment[i]
		dr8 := int32(dst>>11&0x1f) << 3
		dg8 := int32(dst>>5&0x3f) << 2
		db8 := int32(dst&0x1f) << 3

		rOut := int32(Mul(ToFixed(dr8), inv)+fr) >> 16
		gOut := int32(Mul(ToFixed(dg8), inv)+fg) >> 16
		bOut := int32(Mul(ToFixed(db8), inv)+fb) >> 16

		r5 := uint16(rOut>>3) & 0x1f
		g6 := uint16(gOut>>2) & 0x3f
		b5 := uint16(bOut>>3) & 0x1f
		fragment[i] = r5<<11 | g6<<5 | b5
	})
}

// forEachClippedPixel calls fn once per fragment-buffer index covered by
// clip, scanning rows at the fragment's stride. fn receives an index
// into fragment.
func forEachClippedPixel(fragment []uint16, stride int, clip Clip, fn func(i int)) {
	for row := 0; row < int(clip.Height); row++ {
		base := (int(clip.VpY)+row)*stride + int(clip.VpX)
		for col := 0; col < int(clip.Width); col++ {
			i := base + col
			if i < 0 || i >= len(fragment) {
				continue
			}
			fn(i)
		}
	}
}

func boxDump(n *node, depth int) {
	st, ok := getState(n, boxVTable)
	if !ok {
		return
	}
	b := st.(*boxState)
	dumpLine(depth, n, "size=("+SprintFixed(ToFixed(int32(b.size.Width)))+","+SprintFixed(ToFixed(int32(b.size.Height)))+") color="+SprintColor(b.color))
}
