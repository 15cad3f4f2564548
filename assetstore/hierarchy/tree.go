// Package hierarchy implements an owning tree: every node owns its
// children, lookups walk the tree depth-first in pre-order, and deleting a
// node releases its whole subtree.
package hierarchy

import (
	"errors"
	"slices"
)

var (
	// ErrNilNode is returned when a nil node is passed to a tree operation
	ErrNilNode = errors.New("hierarchy: nil node")

	// ErrAttached is returned when attaching a node that already has a parent
	ErrAttached = errors.New("hierarchy: node already has a parent")

	// ErrCycle is returned when attaching a node under one of its own descendants
	ErrCycle = errors.New("hierarchy: attaching node would create a cycle")

	// ErrNotInTree is returned when the parent node does not belong to the tree
	ErrNotInTree = errors.New("hierarchy: parent is not part of this tree")
)

// Node is a tree node carrying a payload
type Node[T any] struct {
	Value T

	parent   *Node[T]
	children []*Node[T]
}

// NewNode creates a detached node
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Parent returns the parent node, nil for a root or detached node
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Children returns the direct children in attachment order
func (n *Node[T]) Children() []*Node[T] {
	return slices.Clone(n.children)
}

// IsRoot reports whether the node has no parent
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// Tree is a rooted tree whose nodes are identified by a key derived from
// their payload
type Tree[K comparable, T any] struct {
	root *Node[T]
	key  func(T) K
	size int // non-root nodes
}

// New creates a tree with a root node holding root
func New[K comparable, T any](root T, key func(T) K) *Tree[K, T] {
	return &Tree[K, T]{root: NewNode(root), key: key}
}

// Root returns the root node, nil when the tree was emptied by deleting it
func (t *Tree[K, T]) Root() *Node[T] {
	return t.root
}

// SetRoot replaces the root with a fresh node holding value. The previous
// root and all of its descendants are released.
func (t *Tree[K, T]) SetRoot(value T) *Node[T] {
	if t.root != nil {
		release(t.root, nil)
	}
	t.root = NewNode(value)
	t.size = 0
	return t.root
}

// Find returns the first node, in depth-first pre-order, whose payload key
// equals key
func (t *Tree[K, T]) Find(key K) *Node[T] {
	var found *Node[T]
	t.Walk(func(n *Node[T], _ int) bool {
		if t.key(n.Value) == key {
			found = n
			return false
		}
		return true
	})
	return found
}

// AddChild attaches child as the last child of parent. Keys are not checked
// for duplicates.
func (t *Tree[K, T]) AddChild(parent, child *Node[T]) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}
	if child.parent != nil || child == t.root {
		return ErrAttached
	}
	top := parent
	for p := parent; p != nil; p = p.parent {
		if p == child {
			return ErrCycle
		}
		top = p
	}
	if top != t.root {
		return ErrNotInTree
	}

	child.parent = parent
	parent.children = append(parent.children, child)
	t.size += 1 + countDescendants(child)
	return nil
}

// RemoveChild unlinks child from parent by identity. The child keeps its own
// subtree; the caller decides whether to re-attach or release it. It reports
// whether child was a child of parent.
func (t *Tree[K, T]) RemoveChild(parent, child *Node[T]) bool {
	if parent == nil || child == nil {
		return false
	}
	i := slices.Index(parent.children, child)
	if i < 0 {
		return false
	}
	parent.children = slices.Delete(parent.children, i, i+1)
	child.parent = nil
	t.size -= 1 + countDescendants(child)
	return true
}

// Depth returns the number of parent links between node and the root.
// The root has depth 0.
func (t *Tree[K, T]) Depth(node *Node[T]) int {
	depth := 0
	if node == nil {
		return 0
	}
	for p := node.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// DeleteSubtree detaches node from its parent and releases it together with
// every descendant. The released payloads are returned in pre-order.
// Deleting the root empties the tree.
func (t *Tree[K, T]) DeleteSubtree(node *Node[T]) []T {
	if node == nil {
		return nil
	}
	if node == t.root {
		var released []T
		release(t.root, &released)
		t.root = nil
		t.size = 0
		return released
	}
	if node.parent != nil {
		t.RemoveChild(node.parent, node)
	}
	var released []T
	release(node, &released)
	return released
}

// Walk visits every node in depth-first pre-order together with its depth.
// Returning false from fn stops the walk.
func (t *Tree[K, T]) Walk(fn func(n *Node[T], depth int) bool) {
	if t.root == nil {
		return
	}
	walk(t.root, 0, fn)
}

// Flatten returns the payloads of all non-root nodes in pre-order
func (t *Tree[K, T]) Flatten() []T {
	out := make([]T, 0, t.size)
	t.Walk(func(n *Node[T], depth int) bool {
		if depth > 0 {
			out = append(out, n.Value)
		}
		return true
	})
	return out
}

// Descendants returns the payloads below node in pre-order
func (t *Tree[K, T]) Descendants(node *Node[T]) []T {
	if node == nil {
		return nil
	}
	var out []T
	for _, child := range node.children {
		walk(child, 0, func(n *Node[T], _ int) bool {
			out = append(out, n.Value)
			return true
		})
	}
	return out
}

// Len returns the number of non-root nodes
func (t *Tree[K, T]) Len() int {
	return t.size
}

func walk[T any](n *Node[T], depth int, fn func(*Node[T], int) bool) bool {
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.children {
		if !walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}

func countDescendants[T any](n *Node[T]) int {
	count := 0
	for _, child := range n.children {
		count += 1 + countDescendants(child)
	}
	return count
}

// release clears the links of n and its descendants so stale handles cannot
// reach the rest of the tree. Payloads are appended to out in pre-order.
func release[T any](n *Node[T], out *[]T) {
	if out != nil {
		*out = append(*out, n.Value)
	}
	for _, child := range n.children {
		release(child, out)
	}
	clear(n.children)
	n.children = nil
	n.parent = nil
}
