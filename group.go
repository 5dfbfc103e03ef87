package scene

import "fmt"

// groupState holds a group node's child list. Children are linked
// through node.next in insertion order; lastChild lets AppendChild run
// in O(1).
type groupState struct {
	firstChild *node
	lastChild  *node
}

var groupVTable = &nodeVTable{name: "Group"}

// The functions refer back to groupVTable, so they are attached in init
// to avoid a package initialization cycle.
func init() {
	groupVTable.sequence = groupSequence
	groupVTable.dump = groupDump
	groupVTable.destroy = groupDestroy
}

func newGroupNode(s *Scene) *node {
	return createNode(s, groupVTable, &groupState{})
}

// CreateGroup creates a new, empty group node. Groups emit no render
// record of their own; they only carry children.
func CreateGroup(s *Scene) *node {
	return newGroupNode(s)
}

// AppendChild links child as the last child of parent. It is rejected
// (no-op, diagnostic, per §7) if child is already parented anywhere, or
// if parent is not a group.
func AppendChild(parent, child *node) bool {
	st, ok := getState(parent, groupVTable)
	if !ok {
		return false
	}
	if child == nil {
		diagnostic("AppendChild: nil child")
		return false
	}
	if child.flags&flagHasParent != 0 {
		diagnostic("AppendChild: child already has a parent")
		return false
	}
	g := st.(*groupState)
	child.flags |= flagHasParent
	child.next = nil
	if g.lastChild == nil {
		g.firstChild = child
		g.lastChild = child
	} else {
		g.lastChild.next = child
		g.lastChild = child
	}
	checkTreeDepth(child)
	return true
}

func groupSequence(n *node, worldPos Point) {
	st, ok := getState(n, groupVTable)
	if !ok {
		return
	}
	g := st.(*groupState)
	worldPos = Point{worldPos.X + n.position.X, worldPos.Y + n.position.Y}

	var prev *node
	c := g.firstChild
	for c != nil {
		next := c.next
		if c.flags&flagRemove != 0 {
			if prev == nil {
				g.firstChild = next
			} else {
				prev.next = next
			}
			if g.lastChild == c {
				g.lastChild = prev
			}
			free(c)
		} else {
			if c.flags&flagHidden == 0 && c.vtable.sequence != nil {
				c.vtable.sequence(c, worldPos)
			}
			prev = c
		}
		c = next
	}
	checkGroupChildren(g)
}

func groupDestroy(n *node) {
	st, ok := getState(n, groupVTable)
	if !ok {
		return
	}
	g := st.(*groupState)
	for c := g.firstChild; c != nil; {
		next := c.next
		free(c)
		c = next
	}
	g.firstChild = nil
	g.lastChild = nil
}

func groupDump(n *node, depth int) {
	st, ok := getState(n, groupVTable)
	if !ok {
		return
	}
	g := st.(*groupState)
	count := 0
	for c := g.firstChild; c != nil; c = c.next {
		count++
	}
	dumpLine(depth, n, fmt.Sprintf("children=%d", count))
}
