package zenith

import (
	"fmt"
	"os"
	"time"
)

// cameraStats holds per-camera render metrics for one frame.
// Only populated when Scene.debug is true.
type cameraStats struct {
	name       string
	candidates int
	culled     int
	rendered   int
	renderTime time.Duration
}

// debugLog prints the frame's per-camera stats to stderr.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	for _, st := range s.stats {
		_, _ = fmt.Fprintf(os.Stderr,
			"[zenith] camera %q: candidates: %d | culled: %d | rendered: %d | render: %v\n",
			st.name, st.candidates, st.culled, st.rendered, st.renderTime)
	}
	_, _ = fmt.Fprintf(os.Stderr, "[zenith] cameras: %d | custom viewports: %d | tweens: %d\n",
		s.cameras.Len(), s.cameras.CustomViewports(), len(s.tweens))
}

// debugCheckDestroyed panics with a descriptive message when a destroyed
// camera is stepped or rendered. Only called in debug mode.
func debugCheckDestroyed(c *Camera, op string) {
	if c.destroyed {
		panic(fmt.Sprintf("zenith debug: %s on destroyed camera %q (ID was %d)", op, c.Name, c.id))
	}
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("zenith debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[zenith] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[zenith] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
