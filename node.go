package scene

// nodeFlags is a bitmask of per-node state flags.
type nodeFlags uint8

const (
	flagHasParent nodeFlags = 1 << iota // node is linked into a parent's child list
	flagRemove                          // node is scheduled for unlink+free on the next sequence
	flagHidden                          // node and its subtree are skipped during sequence
)

// nodeVTable is the Go rendering of firefly-scene-private.h's
// _FfxNodeVTable: a table of function values keyed by node kind, attached
// to every node at creation. sequence/render/dump/destroy operate on the
// node's typed state via a closure rather than a void* cast.
type nodeVTable struct {
	name string
	// sequence computes world position and, for leaf kinds, appends a
	// render record (renderFunc + captured state) to the scene.
	sequence func(n *node, worldPos Point)
	// render rasterizes one previously-captured render record against a
	// fragment. It receives the kind's captured state, never the live
	// node, since the render list may be replayed after the node tree
	// has mutated again.
	render  func(state any, fragment []uint16, origin Point, size Size)
	dump    func(n *node, depth int)
	destroy func(n *node)
}

// node is the common header every node kind embeds. Per-kind data lives
// in state, type-asserted by the kind's own accessor functions after a
// vtable check via getState.
type node struct {
	scene            *Scene
	vtable           *nodeVTable
	position         Point
	flags            nodeFlags
	next             *node
	pendingAnimation *Animation
	state            any
}

// createNode allocates a node of the given kind (vtable) with the given
// initial state. Mirrors ffx_scene_createNode.
func createNode(s *Scene, vtable *nodeVTable, state any) *node {
	return &node{scene: s, vtable: vtable, state: state}
}

// isNode reports whether n's vtable matches vtable, the safe-downcast
// check from ffx_scene_isNode.
func isNode(n *node, vtable *nodeVTable) bool {
	return n != nil && n.vtable == vtable
}

// getState returns n's state iff n's vtable matches vtable; otherwise it
// emits a diagnostic identifying both the expected and actual kind and
// returns nil, false. Mirrors ffx_sceneNode_getState.
func getState(n *node, vtable *nodeVTable) (any, bool) {
	if n == nil {
		diagnostic("getState: nil node (want %s)", vtable.name)
		return nil, false
	}
	if n.vtable != vtable {
		diagnostic("getState: vtable mismatch, node is %s, want %s", n.vtable.name, vtable.name)
		return nil, false
	}
	return n.state, true
}

// free invokes n's destroyFunc then drops its state. Mirrors
// ffx_sceneNode_free: any active animations still pointing at n have
// their node pointer cleared (free itself does not invoke onComplete), so
// the next animation step completes them with StopNormal, without
// applying their actions, and dispatches their onComplete then.
func free(n *node) {
	if n == nil {
		return
	}
	if n.scene != nil {
		for a := n.scene.animations; a != nil; a = a.next {
			if a.node == n {
				a.node = nil
			}
		}
	}
	if n.vtable != nil && n.vtable.destroy != nil {
		n.vtable.destroy(n)
	}
	n.state = nil
	n.scene = nil
}

// remove schedules n for unlinking and freeing on its parent's next
// sequence pass. It does not unlink or free immediately.
func remove(n *node) {
	if n == nil {
		diagnostic("remove: nil node")
		return
	}
	n.flags |= flagRemove
}

// isHidden reports whether n's Hidden flag is set.
func isHidden(n *node) bool {
	return n.flags&flagHidden != 0
}

// SetHidden sets or clears n's Hidden flag; hidden subtrees are skipped
// during sequence (and therefore never render).
func SetHidden(n *node, hidden bool) {
	if n == nil {
		diagnostic("SetHidden: nil node")
		return
	}
	if hidden {
		n.flags |= flagHidden
	} else {
		n.flags &^= flagHidden
	}
}

// Position returns n's local position.
func Position(n *node) Point {
	if n == nil {
		diagnostic("Position: nil node")
		return Point{}
	}
	return n.position
}

// SetPosition sets n's local position, or, if n is currently capturing an
// animation (its pendingAnimation is non-null), attaches a point action
// that interpolates toward p instead of writing immediately.
func SetPosition(n *node, p Point) {
	if n == nil {
		diagnostic("SetPosition: nil node")
		return
	}
	animatePosition(n, p)
}

// OffsetPosition nudges n's local position by (dx, dy), relative to its
// current value, through the same capture path as SetPosition. Not in
// the distilled spec; supplemented from ffx_sceneNode_offsetPosition.
func OffsetPosition(n *node, dx, dy int16) {
	if n == nil {
		diagnostic("OffsetPosition: nil node")
		return
	}
	cur := Position(n)
	SetPosition(n, Point{cur.X + dx, cur.Y + dy})
}

// walk performs a pre/post-order depth-first traversal starting at root.
// enter is called before a node's children (if any) are visited; exit is
// called after. Either may return false to abort the walk; the abort
// propagates up through every recursive call. Groups recurse into their
// children; anchors recurse into their single child; other kinds have no
// children to recurse into.
func walk(root *node, enter, exit func(n *node) bool) bool {
	if root == nil {
		return true
	}
	if enter != nil {
		if !enter(root) {
			return false
		}
	}

	switch st := root.state.(type) {
	case *groupState:
		for c := st.firstChild; c != nil; c = c.next {
			if !walk(c, enter, exit) {
				return false
			}
		}
	case *anchorState:
		if st.child != nil {
			if !walk(st.child, enter, exit) {
				return false
			}
		}
	}

	if exit != nil {
		if !exit(root) {
			return false
		}
	}
	return true
}

// findAnchor walks root in pre-order and returns the first anchor node
// whose tag equals tag, or nil if none matches.
func findAnchor(root *node, tag int) *node {
	var found *node
	walk(root, func(n *node) bool {
		if isNode(n, anchorVTable) {
			if st, ok := n.state.(*anchorState); ok && st.tag == tag {
				found = n
				return false
			}
		}
		return true
	}, nil)
	return found
}
