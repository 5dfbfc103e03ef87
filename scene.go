package scene

// SceneOptions configures a Scene at construction, mirroring the four
// hooks from §6 (alloc/free/setupFunc/dispatchFunc) plus a Clock hook
// that stands in for the platform clock §1 places out of scope.
type SceneOptions struct {
	// Alloc and Free are optional instrumentation hooks. Alloc is invoked
	// once when the scene is created and once for each render record
	// appended during Sequence; Free is invoked once per Sequence, when
	// the previous render list is discarded. Creating or freeing nodes and
	// animations invokes neither hook, and the size argument is always 0.
	// Go's garbage collector, not these hooks, owns the actual memory.
	Alloc func(size int, initArg any)
	Free  func(size int, initArg any)

	// Setup is called once per Animate submission, after the capture
	// block closes, to compute a dispatchArg carried through to
	// completion. Optional.
	Setup func(n *node, info *AnimationInfo, initArg any) any

	// Dispatch routes a completed animation's OnComplete callback,
	// typically onto a specific host thread. When nil, OnComplete is
	// invoked directly on the scene thread during Sequence.
	Dispatch func(dispatchArg any, onComplete func(n *node, stop StopCode, arg any), n *node, stop StopCode, arg any, initArg any)

	// Clock returns the current tick in the host clock's units. When
	// nil, Sequence advances an internal counter by one each call,
	// which is sufficient for tests and for hosts with no wall clock.
	Clock func() Fixed

	// InitArg is passed verbatim to Setup and Dispatch.
	InitArg any

	// QueueDepth bounds the submission queue; 0 uses defaultQueueDepth.
	QueueDepth int

	// CanvasSize is the full framebuffer's extent (e.g. 240x240 for the
	// reference display). Leaf kinds use it during sequence to skip
	// emitting a render record for geometry that is fully off-screen,
	// before any fragment-level clip is known. Zero disables the
	// optimization (every leaf still emits; render-time clipping still
	// applies per fragment).
	CanvasSize Size

	// Glyphs supplies concrete bitmap font tables for label rendering.
	// Nil is legal; labels then skip their glyph pass and emit a
	// diagnostic every time their render record is replayed, not only
	// the first time.
	Glyphs GlyphSource
}

// renderRecord is one entry in the per-sequence render list: an
// immutable snapshot (state) captured by a node kind's sequenceFunc,
// paired with that kind's renderFunc. Render replays these head-to-tail
// against each fragment; it never touches the live node tree.
type renderRecord struct {
	render func(state any, fragment []uint16, origin Point, size Size)
	state  any
	next   *renderRecord
}

// Scene owns the node tree, the animation list, the submission queue,
// and the current render list. All scene mutation, sequencing, and
// rendering must happen on one designated scene thread; the submission
// queue is the only cross-thread boundary (§5).
type Scene struct {
	options SceneOptions
	root    *node
	tick    Fixed

	animations     *Animation
	animationsTail *Animation

	queue *submissionQueue

	renderHead *renderRecord
	renderTail *renderRecord
}

// NewScene allocates a Scene with an empty root group. Mirrors
// ffx_scene_init.
func NewScene(options SceneOptions) *Scene {
	s := &Scene{options: options}
	s.queue = newSubmissionQueue(options.QueueDepth)
	s.root = newGroupNode(s)
	s.notifyAlloc(0)
	return s
}

func (s *Scene) notifyAlloc(size int) {
	if s.options.Alloc != nil {
		s.options.Alloc(size, s.options.InitArg)
	}
}

func (s *Scene) notifyFree(size int) {
	if s.options.Free != nil {
		s.options.Free(size, s.options.InitArg)
	}
}

// fullyOffscreen reports whether geometry at pos/size is entirely
// outside the scene's configured canvas. Returns false (never skip)
// when no CanvasSize was configured.
func (s *Scene) fullyOffscreen(pos Point, size Size) bool {
	if s.options.CanvasSize.Width == 0 || s.options.CanvasSize.Height == 0 {
		return false
	}
	return ComputeClip(pos, size, Point{0, 0}, s.options.CanvasSize).Width == 0
}

// Root returns the scene's root group node.
func Root(s *Scene) *node {
	return s.root
}

// appendRender adds a render record to the tail of the scene's current
// render list, built fresh by every Sequence call.
func (s *Scene) appendRender(fn func(state any, fragment []uint16, origin Point, size Size), state any) {
	r := &renderRecord{render: fn, state: state}
	if s.renderTail == nil {
		s.renderHead = r
		s.renderTail = r
	} else {
		s.renderTail.next = r
		s.renderTail = r
	}
	s.notifyAlloc(0)
}

// Sequence drains the animation queue, evaluates active animations,
// frees the previous render list, refreshes the scene tick, and walks
// the tree from the root producing a new render list in document order.
// Mirrors ffx_scene_sequence.
func Sequence(s *Scene) {
	stepAnimations(s)

	s.notifyFree(0)
	s.renderHead = nil
	s.renderTail = nil

	if s.options.Clock != nil {
		s.tick = s.options.Clock()
	} else {
		s.tick++
	}

	if s.root != nil && s.root.vtable.sequence != nil {
		s.root.vtable.sequence(s.root, Point{0, 0})
	}
}

// Render replays the current render list against one fragment of the
// output surface. origin is the fragment's position within the full
// framebuffer; size is its extent. All clipping inside render funcs is
// done against (origin, size). Render is stateless and safe to call
// once per fragment across a single frame. Mirrors ffx_scene_render.
func Render(s *Scene, fragment []uint16, origin Point, size Size) {
	for r := s.renderHead; r != nil; r = r.next {
		r.render(r.state, fragment, origin, size)
	}
}

// Dump writes a human-readable tree listing to stderr, one line per
// node, via each node kind's dumpFunc.
func Dump(s *Scene) {
	depth := 0
	walk(s.root, func(n *node) bool {
		if n.vtable.dump != nil {
			n.vtable.dump(n, depth)
		} else {
			dumpLine(depth, n, "")
		}
		depth++
		return true
	}, func(n *node) bool {
		depth--
		return true
	})
}
