package gesture

import (
	"fmt"
	"io"
	"os"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugOut receives tree warnings. Scene.SetDebugOutput replaces it.
var debugOut io.Writer = os.Stderr

// debugf writes one recognizer trace line when debug mode is on.
func (r *Recognizer) debugf(format string, args ...any) {
	if r.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(r.debugOut, "[gesture] "+format+"\n", args...)
}

// nodeLabel names a node in trace output.
func nodeLabel(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q#%d", n.Name, n.ID)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("gesture debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOut, "[gesture] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOut, "[gesture] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
