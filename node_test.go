package scene

import "testing"

func TestCreateNodeAndIsNode(t *testing.T) {
	s := NewScene(SceneOptions{})
	n := CreateFill(s, NewRGB(1, 2, 3))
	if !isNode(n, fillVTable) {
		t.Error("isNode should match the creating vtable")
	}
	if isNode(n, groupVTable) {
		t.Error("isNode should not match a different vtable")
	}
	if isNode(nil, fillVTable) {
		t.Error("isNode(nil, ...) should be false")
	}
}

func TestGetStateRejectsWrongVTable(t *testing.T) {
	s := NewScene(SceneOptions{})
	fill := CreateFill(s, NewRGB(1, 2, 3))
	if _, ok := getState(fill, groupVTable); ok {
		t.Error("getState should fail for a mismatched vtable")
	}
	if _, ok := getState(fill, fillVTable); !ok {
		t.Error("getState should succeed for the matching vtable")
	}
}

func TestSetPositionAndOffsetPosition(t *testing.T) {
	s := NewScene(SceneOptions{})
	n := CreateFill(s, NewRGB(1, 2, 3))

	SetPosition(n, Point{10, 20})
	if got := Position(n); got != (Point{10, 20}) {
		t.Fatalf("Position = %+v, want {10 20}", got)
	}

	OffsetPosition(n, 5, -5)
	if got := Position(n); got != (Point{15, 15}) {
		t.Fatalf("Position after offset = %+v, want {15 15}", got)
	}
}

func TestSetHiddenAndIsHidden(t *testing.T) {
	s := NewScene(SceneOptions{})
	n := CreateFill(s, NewRGB(1, 2, 3))
	if isHidden(n) {
		t.Error("node should not start hidden")
	}
	SetHidden(n, true)
	if !isHidden(n) {
		t.Error("SetHidden(true) should set the flag")
	}
	SetHidden(n, false)
	if isHidden(n) {
		t.Error("SetHidden(false) should clear the flag")
	}
}

func TestRemoveSchedulesFlagWithoutUnlinking(t *testing.T) {
	s := NewScene(SceneOptions{})
	root := Root(s)
	n := CreateFill(s, NewRGB(1, 2, 3))
	AppendChild(root, n)

	remove(n)
	if n.flags&flagRemove == 0 {
		t.Error("remove should set flagRemove")
	}

	gst, _ := getState(root, groupVTable)
	g := gst.(*groupState)
	if g.firstChild != n {
		t.Error("remove should not unlink immediately")
	}
}

func TestFreeClearsDanglingAnimationNodePointer(t *testing.T) {
	s := NewScene(SceneOptions{})
	n := CreateFill(s, NewRGB(1, 2, 3))

	anim := &Animation{node: n}
	appendAnimation(s, anim)

	free(n)

	if anim.node != nil {
		t.Error("free should clear any active animation's node pointer")
	}
	if n.state != nil {
		t.Error("free should drop node state")
	}
}

func TestWalkGroupVisitsChildrenInOrder(t *testing.T) {
	s := NewScene(SceneOptions{})
	root := Root(s)
	a := CreateFill(s, NewRGB(1, 0, 0))
	b := CreateFill(s, NewRGB(2, 0, 0))
	AppendChild(root, a)
	AppendChild(root, b)

	var visited []*node
	walk(root, func(n *node) bool {
		visited = append(visited, n)
		return true
	}, nil)

	if len(visited) != 3 {
		t.Fatalf("visited %d nodes, want 3 (root, a, b)", len(visited))
	}
	if visited[0] != root || visited[1] != a || visited[2] != b {
		t.Error("walk should visit root then children in insertion order")
	}
}

func TestWalkAnchorRecursesIntoChild(t *testing.T) {
	s := NewScene(SceneOptions{})
	root := Root(s)
	child := CreateFill(s, NewRGB(1, 0, 0))
	anchor := CreateAnchor(s, child, 7, nil)
	AppendChild(root, anchor)

	var visited []*node
	walk(root, func(n *node) bool {
		visited = append(visited, n)
		return true
	}, nil)

	if len(visited) != 3 {
		t.Fatalf("visited %d nodes, want 3 (root, anchor, child)", len(visited))
	}
	if visited[2] != child {
		t.Error("walk should recurse into the anchor's child")
	}
}

func TestWalkAbortPropagates(t *testing.T) {
	s := NewScene(SceneOptions{})
	root := Root(s)
	a := CreateFill(s, NewRGB(1, 0, 0))
	b := CreateFill(s, NewRGB(2, 0, 0))
	AppendChild(root, a)
	AppendChild(root, b)

	count := 0
	walk(root, func(n *node) bool {
		count++
		return n != a
	}, nil)

	if count != 2 {
		t.Errorf("walk should stop right after visiting a, got %d visits", count)
	}
}

func TestFindAnchorMatchesByTag(t *testing.T) {
	s := NewScene(SceneOptions{})
	root := Root(s)
	a1 := CreateAnchor(s, CreateFill(s, NewRGB(1, 0, 0)), 1, nil)
	a2 := CreateAnchor(s, CreateFill(s, NewRGB(2, 0, 0)), 2, nil)
	AppendChild(root, a1)
	AppendChild(root, a2)

	if found := findAnchor(root, 2); found != a2 {
		t.Error("findAnchor(2) should return a2")
	}
	if found := findAnchor(root, 99); found != nil {
		t.Error("findAnchor with no match should return nil")
	}
}
