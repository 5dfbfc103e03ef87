package scene

import (
	"fmt"
	"os"
	"strings"
)

// maxTreeDepth and maxGroupChildren are soft ceilings used only to flag
// runaway trees during development; neither is enforced, matching
// willow's debugCheckTreeDepth/debugCheckChildCount posture of "warn,
// never abort".
const (
	maxTreeDepth     = 64
	maxGroupChildren = 4096
)

// checkTreeDepth reports (without aborting) if walking root would exceed
// maxTreeDepth, a symptom of an accidental cycle that reparenting checks
// didn't catch (e.g. two anchors pointing at each other's subtrees).
func checkTreeDepth(root *node) {
	depth := 0
	walk(root, func(n *node) bool {
		depth++
		if depth > maxTreeDepth {
			logf("tree depth exceeds %d at node kind %s; possible cycle", maxTreeDepth, n.vtable.name)
			return false
		}
		return true
	}, func(n *node) bool {
		depth--
		return true
	})
}

// checkGroupChildren reports if a group's child list grows past
// maxGroupChildren. groupSequence calls it after draining Remove-flagged
// children, so the count covers surviving children only.
func checkGroupChildren(g *groupState) {
	n := 0
	for c := g.firstChild; c != nil; c = c.next {
		n++
	}
	if n > maxGroupChildren {
		logf("group child count %d exceeds %d", n, maxGroupChildren)
	}
}

// dumpLine writes a single indented line describing n to stderr, in the
// format "<indent><kind> pos=(x,y) [flags] detail". Per-kind dumpFunc
// implementations call this then add their own state as detail.
func dumpLine(depth int, n *node, detail string) {
	indent := strings.Repeat("  ", depth)
	flags := dumpFlags(n)
	if detail != "" {
		fmt.Fprintf(os.Stderr, "%s%s pos=(%d,%d)%s %s\n", indent, n.vtable.name, n.position.X, n.position.Y, flags, detail)
	} else {
		fmt.Fprintf(os.Stderr, "%s%s pos=(%d,%d)%s\n", indent, n.vtable.name, n.position.X, n.position.Y, flags)
	}
}

func dumpFlags(n *node) string {
	var parts []string
	if n.flags&flagHidden != 0 {
		parts = append(parts, "hidden")
	}
	if n.flags&flagRemove != 0 {
		parts = append(parts, "removing")
	}
	if n.pendingAnimation != nil {
		parts = append(parts, "capturing")
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, ",") + "]"
}
