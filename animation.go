package scene

// StopCode identifies how an animation is ending (or Normal if it is
// simply running to completion).
type StopCode uint8

const (
	StopNormal  StopCode = 0b00 // running normally, or completed by reaching its duration
	StopCurrent StopCode = 0b10 // cancelled; property stays at its current interpolated value
	StopFinal   StopCode = 0b11 // cancelled; property snaps to its end value first

	stopAdvance StopCode = 0xff // internal: queue message carries an advance amount, not a stop
)

// AnimationInfo carries an animation's timing, curve, and completion
// callback. A setup function passed to Animate fills this in as an
// out-parameter, mirroring FfxAnimation from firefly-scene.h.
type AnimationInfo struct {
	Delay      Fixed
	Duration   Fixed
	Curve      Curve
	OnComplete func(n *node, stop StopCode, arg any)
	Arg        any
}

// Action is one captured property mutation, attached to an Animation
// while its owning node is capturing. apply interpolates and writes the
// property for progress t in [0, FM1].
type Action struct {
	apply func(n *node, t Fixed)
	next  *Action
}

// Animation is a single scheduled (or active) property animation, or,
// when kind is animationKindControl, a stop/advance control message
// riding the same submission queue to preserve total ordering with
// property writes from the producer's perspective.
type Animation struct {
	kind        animationKind
	node        *node
	startTime   Fixed
	stop        StopCode
	info        AnimationInfo
	dispatchArg any
	actions     *Action
	next        *Animation
}

type animationKind uint8

const (
	animationKindSubmit animationKind = iota
	animationKindControl
)

// isCapturing reports whether n currently has an open pending-animation
// slot; property setters consult this to decide between an immediate
// write and attaching an Action.
func isCapturing(n *node) bool {
	return n != nil && n.pendingAnimation != nil
}

// createAction prepends act to n's pending animation's action list. The
// caller must have already checked isCapturing(n).
func createAction(n *node, act *Action) {
	a := n.pendingAnimation
	act.next = a.actions
	a.actions = act
}

// animatePosition implements the capture rule for Position: if n is not
// capturing, it writes immediately; otherwise it attaches a point
// action that interpolates from n's current position to end.
func animatePosition(n *node, end Point) bool {
	if !isCapturing(n) {
		n.position = end
		return false
	}
	start := n.position
	createAction(n, &Action{apply: func(n *node, t Fixed) {
		n.position = Point{
			X: start.X + int16(Scalar(int32(end.X)-int32(start.X), t)),
			Y: start.Y + int16(Scalar(int32(end.Y)-int32(start.Y), t)),
		}
	}})
	return true
}

// animateColor implements the universal color-action capture rule:
// apply writes the interpolated color through set; direct write when
// not capturing, action when capturing. Used by every node kind with a
// color-typed animatable property (fill/box color, label text/outline
// color, image tint).
func animateColor(n *node, start, end Color, set func(n *node, c Color)) bool {
	if !isCapturing(n) {
		set(n, end)
		return false
	}
	createAction(n, &Action{apply: func(n *node, t Fixed) {
		set(n, Lerp(start, end, t))
	}})
	return true
}

// animateSize implements the universal size-action capture rule,
// interpolating width and height independently via Scalar.
func animateSize(n *node, start, end Size, set func(n *node, s Size)) bool {
	if !isCapturing(n) {
		set(n, end)
		return false
	}
	createAction(n, &Action{apply: func(n *node, t Fixed) {
		w := int32(start.Width) + Scalar(int32(end.Width)-int32(start.Width), t)
		h := int32(start.Height) + Scalar(int32(end.Height)-int32(start.Height), t)
		set(n, Size{Width: uint16(w), Height: uint16(h)})
	}})
	return true
}

// Animate opens a capture block on n: it allocates an Animation, opens
// n's pending-animation slot, invokes setup (which may call animatable
// property setters — captured as Actions — and must fill info's timing
// fields), closes the slot, optionally asks the scene's Setup hook for a
// dispatchArg, and enqueues the Animation. It returns false (without
// applying anything) if the submission queue is full; the animation is
// dropped and a diagnostic is emitted, matching §7's overflow handling.
func Animate(n *node, setup func(n *node, info *AnimationInfo, arg any), arg any) bool {
	if n == nil || n.scene == nil {
		diagnostic("Animate: nil node or detached from scene")
		return false
	}

	a := &Animation{node: n, info: AnimationInfo{Curve: CurveLinear}}
	n.pendingAnimation = a
	if setup != nil {
		setup(n, &a.info, arg)
	}
	n.pendingAnimation = nil
	if a.info.Curve == nil {
		a.info.Curve = CurveLinear
	}

	if n.scene.options.Setup != nil {
		a.dispatchArg = n.scene.options.Setup(n, &a.info, n.scene.options.InitArg)
	}

	if !n.scene.queue.trySend(a) {
		diagnostic("Animate: submission queue full, dropping animation on %s", n.vtable.name)
		return false
	}
	return true
}

// RunAnimation is a convenience wrapper over Animate that takes timing
// parameters positionally instead of through the setup out-parameter.
// Supplemented from ffx_sceneNode_runAnimation; mutate performs the
// property writes that should be captured.
func RunAnimation(n *node, delay, duration Fixed, curve Curve, onComplete func(n *node, stop StopCode, arg any), arg any, mutate func(n *node)) bool {
	return Animate(n, func(nn *node, info *AnimationInfo, a any) {
		info.Delay = delay
		info.Duration = duration
		info.Curve = curve
		info.OnComplete = onComplete
		info.Arg = a
		if mutate != nil {
			mutate(nn)
		}
	}, arg)
}

// IsAnimating reports whether n has any active (non-completed)
// animation in its scene. Supplemented from ffx_sceneNode_isAnimating.
func IsAnimating(n *node) bool {
	if n == nil || n.scene == nil {
		return false
	}
	for a := n.scene.animations; a != nil; a = a.next {
		if a.node == n {
			return true
		}
	}
	return false
}

// StopAnimations submits a stop control message for every active
// animation currently targeting n. code must be StopCurrent or
// StopFinal.
func StopAnimations(n *node, code StopCode) {
	if n == nil || n.scene == nil {
		diagnostic("StopAnimations: nil node or detached from scene")
		return
	}
	msg := &Animation{kind: animationKindControl, node: n, stop: code}
	if !n.scene.queue.trySend(msg) {
		diagnostic("StopAnimations: submission queue full, dropping stop message on %s", n.vtable.name)
	}
}

// AdvanceAnimations submits an advance control message, shifting the
// startTime of every active animation on n backward by amount (clamped
// to FMMax), so the next sequence observes them as further along.
func AdvanceAnimations(n *node, amount Fixed) {
	if n == nil || n.scene == nil {
		diagnostic("AdvanceAnimations: nil node or detached from scene")
		return
	}
	if amount > FMMax {
		amount = FMMax
	}
	msg := &Animation{kind: animationKindControl, node: n, stop: stopAdvance, startTime: amount}
	if !n.scene.queue.trySend(msg) {
		diagnostic("AdvanceAnimations: submission queue full, dropping advance message on %s", n.vtable.name)
	}
}

// stepAnimations runs the per-sequence animation step: drain the queue,
// evaluate the active list, and dispatch completions. Called at the
// start of every Sequence.
func stepAnimations(s *Scene) {
	drainQueue(s)
	evaluateActive(s)
}

func drainQueue(s *Scene) {
	for _, msg := range s.queue.drain() {
		switch msg.kind {
		case animationKindControl:
			if msg.stop == stopAdvance {
				for a := s.animations; a != nil; a = a.next {
					if a.node == msg.node {
						a.startTime -= msg.startTime
					}
				}
			} else {
				for a := s.animations; a != nil; a = a.next {
					if a.node == msg.node {
						a.stop = msg.stop
					}
				}
			}
		default:
			msg.startTime = s.tick
			appendAnimation(s, msg)
		}
	}
}

func appendAnimation(s *Scene, a *Animation) {
	if s.animationsTail == nil {
		s.animations = a
		s.animationsTail = a
	} else {
		s.animationsTail.next = a
		s.animationsTail = a
	}
}

func evaluateActive(s *Scene) {
	var prev *Animation
	var completed []*Animation

	a := s.animations
	for a != nil {
		nextAnim := a.next

		if a.node == nil || a.node.flags&flagRemove != 0 {
			a.stop = StopNormal
			completed = append(completed, a)
			unlinkAnimation(s, prev, a)
			a = nextAnim
			continue
		}

		now := s.tick
		if now <= a.startTime+a.info.Delay && a.stop == StopNormal {
			prev = a
			a = nextAnim
			continue
		}

		if a.stop == StopCurrent {
			completed = append(completed, a)
			unlinkAnimation(s, prev, a)
			a = nextAnim
			continue
		}

		n := now - a.info.Delay
		endTime := a.startTime + a.info.Duration

		var t Fixed
		if a.info.Duration <= 0 {
			t = FM1
		} else {
			t = FM1 - Div(endTime-n, a.info.Duration)
		}
		if t < 0 {
			t = 0
		}
		if t > FM1 {
			t = FM1
		}
		if a.stop == StopFinal {
			t = FM1
		}

		eased := a.info.Curve(t)
		for act := a.actions; act != nil; act = act.next {
			act.apply(a.node, eased)
		}

		if n >= endTime || a.stop == StopFinal {
			completed = append(completed, a)
			unlinkAnimation(s, prev, a)
			a = nextAnim
			continue
		}

		prev = a
		a = nextAnim
	}

	for _, c := range completed {
		dispatchCompletion(s, c)
	}
}

func unlinkAnimation(s *Scene, prev, a *Animation) {
	if prev == nil {
		s.animations = a.next
	} else {
		prev.next = a.next
	}
	if s.animationsTail == a {
		s.animationsTail = prev
	}
}

func dispatchCompletion(s *Scene, a *Animation) {
	if a.info.OnComplete != nil {
		if s.options.Dispatch != nil {
			s.options.Dispatch(a.dispatchArg, a.info.OnComplete, a.node, a.stop, a.info.Arg, s.options.InitArg)
		} else {
			a.info.OnComplete(a.node, a.stop, a.info.Arg)
		}
	}
	a.actions = nil
	a.next = nil
}
