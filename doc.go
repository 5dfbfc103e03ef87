// Package scene is a retained-mode 2D scene graph and software
// rasterizer aimed at small embedded displays (the reference target is
// a 240x240 16-bit RGB565 panel, rendered in horizontal fragments).
//
// Applications build a tree of nodes (groups, fills, boxes, labels,
// images, anchors) under a [Scene]'s root, mutate node properties,
// optionally schedule property animations with timing curves via
// [Animate], and repeatedly call [Sequence] followed by one [Render]
// call per output fragment.
//
// # Quick start
//
//	s := scene.NewScene(scene.SceneOptions{
//		CanvasSize: scene.Size{Width: 240, Height: 240},
//	})
//	root := scene.Root(s)
//	box := scene.CreateBox(s, scene.Size{Width: 40, Height: 20}, scene.NewRGB(255, 0, 0))
//	scene.SetPosition(box, scene.Point{X: 10, Y: 10})
//	scene.AppendChild(root, box)
//
//	scene.Sequence(s)
//	fragment := make([]uint16, 240*24)
//	scene.Render(s, fragment, scene.Point{X: 0, Y: 0}, scene.Size{Width: 240, Height: 24})
//
// # Scene graph
//
// Every visual element is a node returned by a typed constructor:
// [CreateGroup], [CreateFill], [CreateBox], [CreateLabel], [CreateImage],
// [CreateAnchor]. Groups own an ordered child list; [AppendChild] links a
// detached child as the last child of a group. [Root] returns the
// scene's root group.
//
// # Animation
//
// Property setters on animatable nodes (color, position, size) are
// polymorphic over capture state: outside an [Animate] block they write
// immediately; inside one they attach an interpolating [Action] instead.
// [Sequence] steps the animation engine once per call, draining the
// submission queue and advancing every active animation by the
// configured [Curve] before producing the frame's render list.
//
// # Concurrency
//
// All scene mutation, [Sequence], and [Render] calls must happen on one
// designated scene thread. Other goroutines participate only by calling
// [Animate], [StopAnimations], or [AdvanceAnimations], which enqueue onto
// the scene's bounded, non-blocking submission queue.
package scene
