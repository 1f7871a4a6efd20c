package tree

import "fmt"

// Handle addresses a node inside the arena. It is a stable index with no
// ownership semantics; the arena owns every node for the life of the tree.
type Handle int

// None marks the absence of a handle, e.g. the root's parent.
const None Handle = -1

// arena owns all nodes by value. Nodes are never removed, so every handle
// ever returned by insert stays valid until the tree is dropped.
type arena struct {
	nodes []Node
}

func (a *arena) insert(n Node) Handle {
	a.nodes = append(a.nodes, n)
	return Handle(len(a.nodes) - 1)
}

// get resolves a handle. An out-of-range handle means a broken tree
// invariant, which is a programming error rather than a runtime condition,
// so it panics instead of returning an error.
func (a *arena) get(h Handle) *Node {
	if h < 0 || int(h) >= len(a.nodes) {
		panic(fmt.Sprintf("tree: invalid handle %d (arena holds %d nodes)", h, len(a.nodes)))
	}
	return &a.nodes[h]
}

func (a *arena) len() int { return len(a.nodes) }
