package scene

import "fmt"

// anchorState wraps exactly one child node plus a numeric tag and an
// opaque user payload. Anchors own their child's lifetime and have no
// visual output of their own.
type anchorState struct {
	child *node
	tag   int
	data  any
}

var anchorVTable = &nodeVTable{name: "Anchor"}

// The functions refer back to anchorVTable, so they are attached in init
// to avoid a package initialization cycle.
func init() {
	anchorVTable.sequence = anchorSequence
	anchorVTable.dump = anchorDump
	anchorVTable.destroy = anchorDestroy
}

// CreateAnchor wraps child in a new anchor node carrying tag and an
// arbitrary payload, for later retrieval via findAnchor/AnchorData.
// Rejected (no-op, nil result, diagnostic) if child already has a
// parent.
func CreateAnchor(s *Scene, child *node, tag int, data any) *node {
	if child == nil {
		diagnostic("CreateAnchor: nil child")
		return nil
	}
	if child.flags&flagHasParent != 0 {
		diagnostic("CreateAnchor: child already has a parent")
		return nil
	}
	child.flags |= flagHasParent
	checkTreeDepth(child)
	return createNode(s, anchorVTable, &anchorState{child: child, tag: tag, data: data})
}

// AnchorTag returns n's tag.
func AnchorTag(n *node) int {
	st, ok := getState(n, anchorVTable)
	if !ok {
		return 0
	}
	return st.(*anchorState).tag
}

// SetAnchorTag changes n's tag. Tags are not animatable.
func SetAnchorTag(n *node, tag int) {
	st, ok := getState(n, anchorVTable)
	if !ok {
		return
	}
	st.(*anchorState).tag = tag
}

// AnchorChild returns the node n wraps.
func AnchorChild(n *node) *node {
	st, ok := getState(n, anchorVTable)
	if !ok {
		return nil
	}
	return st.(*anchorState).child
}

// AnchorData returns the opaque payload n was created with.
func AnchorData(n *node) any {
	st, ok := getState(n, anchorVTable)
	if !ok {
		return nil
	}
	return st.(*anchorState).data
}

func anchorSequence(n *node, worldPos Point) {
	st, ok := getState(n, anchorVTable)
	if !ok {
		return
	}
	a := st.(*anchorState)
	worldPos = Point{worldPos.X + n.position.X, worldPos.Y + n.position.Y}
	if a.child == nil {
		return
	}
	if a.child.flags&flagRemove != 0 {
		free(a.child)
		a.child = nil
		return
	}
	if a.child.flags&flagHidden != 0 {
		return
	}
	if a.child.vtable.sequence != nil {
		a.child.vtable.sequence(a.child, worldPos)
	}
}

func anchorDestroy(n *node) {
	st, ok := getState(n, anchorVTable)
	if !ok {
		return
	}
	a := st.(*anchorState)
	free(a.child)
	a.child = nil
}

func anchorDump(n *node, depth int) {
	st, ok := getState(n, anchorVTable)
	if !ok {
		return
	}
	a := st.(*anchorState)
	dumpLine(depth, n, fmt.Sprintf("tag=%d", a.tag))
}
