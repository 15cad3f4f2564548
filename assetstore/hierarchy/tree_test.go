package hierarchy

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type part struct {
	id   string
	name string
}

func partKey(p part) string { return p.id }

// buildTree creates:
//
//	root
//	├── a
//	│   ├── a1
//	│   │   └── a1x
//	│   └── a2
//	└── b
func buildTree(t *testing.T) (*Tree[string, part], map[string]*Node[part]) {
	t.Helper()
	tree := New(part{id: "root"}, partKey)
	nodes := map[string]*Node[part]{"root": tree.Root()}

	attach := func(parentID, id string) {
		n := NewNode(part{id: id, name: "part " + id})
		if err := tree.AddChild(nodes[parentID], n); err != nil {
			t.Fatalf("failed to attach %s under %s: %v", id, parentID, err)
		}
		nodes[id] = n
	}
	attach("root", "a")
	attach("a", "a1")
	attach("a1", "a1x")
	attach("a", "a2")
	attach("root", "b")
	return tree, nodes
}

func keys(parts []part) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.id)
	}
	return out
}

func TestFindPreOrder(t *testing.T) {
	tree, nodes := buildTree(t)

	if got := tree.Find("a1x"); got != nodes["a1x"] {
		t.Errorf("Find(a1x) returned wrong node: %+v", got)
	}
	if got := tree.Find("root"); got != tree.Root() {
		t.Error("Find(root) should return the root")
	}
	if got := tree.Find("missing"); got != nil {
		t.Errorf("Find(missing) should be nil, got %+v", got)
	}

	t.Run("first match wins", func(t *testing.T) {
		dup := NewNode(part{id: "a1", name: "duplicate"})
		if err := tree.AddChild(nodes["b"], dup); err != nil {
			t.Fatalf("attach duplicate: %v", err)
		}
		if got := tree.Find("a1"); got != nodes["a1"] {
			t.Errorf("expected the earlier pre-order match, got %q", got.Value.name)
		}
	})
}

func TestDepth(t *testing.T) {
	tree, nodes := buildTree(t)

	tests := map[string]int{"root": 0, "a": 1, "b": 1, "a1": 2, "a2": 2, "a1x": 3}
	for id, want := range tests {
		if got := tree.Depth(nodes[id]); got != want {
			t.Errorf("Depth(%s) = %d, want %d", id, got, want)
		}
	}

	tree.Walk(func(n *Node[part], depth int) bool {
		if n.Parent() != nil && tree.Depth(n) != 1+tree.Depth(n.Parent()) {
			t.Errorf("depth invariant broken at %s", n.Value.id)
		}
		if tree.Depth(n) != depth {
			t.Errorf("walk depth %d disagrees with Depth %d for %s", depth, tree.Depth(n), n.Value.id)
		}
		return true
	})
}

func TestFlatten(t *testing.T) {
	tree, _ := buildTree(t)
	if diff := cmp.Diff([]string{"a", "a1", "a1x", "a2", "b"}, keys(tree.Flatten())); diff != "" {
		t.Errorf("pre-order mismatch (-want +got):\n%s", diff)
	}
	if tree.Len() != 5 {
		t.Errorf("expected 5 non-root nodes, got %d", tree.Len())
	}
}

func TestAddChildGuards(t *testing.T) {
	tree, nodes := buildTree(t)

	if err := tree.AddChild(nil, NewNode(part{id: "x"})); !errors.Is(err, ErrNilNode) {
		t.Errorf("expected ErrNilNode, got %v", err)
	}
	if err := tree.AddChild(nodes["b"], nodes["a1"]); !errors.Is(err, ErrAttached) {
		t.Errorf("expected ErrAttached, got %v", err)
	}
	if err := tree.AddChild(nodes["a"], tree.Root()); !errors.Is(err, ErrAttached) {
		t.Errorf("expected ErrAttached for root, got %v", err)
	}

	detached := NewNode(part{id: "d"})
	inner := NewNode(part{id: "d1"})
	other := New(part{id: "other"}, partKey)
	if err := other.AddChild(other.Root(), detached); err != nil {
		t.Fatalf("attach in other tree: %v", err)
	}
	if err := other.AddChild(detached, inner); err != nil {
		t.Fatalf("attach inner: %v", err)
	}
	if err := tree.AddChild(detached, NewNode(part{id: "z"})); !errors.Is(err, ErrNotInTree) {
		t.Errorf("expected ErrNotInTree, got %v", err)
	}

	// a detached subtree cannot be hung below its own descendant
	loose := NewNode(part{id: "loose"})
	below := NewNode(part{id: "below"})
	scratch := New(part{id: "scratch"}, partKey)
	_ = scratch.AddChild(scratch.Root(), loose)
	_ = scratch.AddChild(loose, below)
	scratch.RemoveChild(scratch.Root(), loose)
	if err := scratch.AddChild(below, loose); err == nil {
		t.Error("expected an error when attaching a node under its descendant")
	}
}

func TestRemoveChild(t *testing.T) {
	tree, nodes := buildTree(t)

	if !tree.RemoveChild(nodes["a"], nodes["a1"]) {
		t.Fatal("RemoveChild should unlink a1")
	}
	if nodes["a1"].Parent() != nil {
		t.Error("removed child still has a parent")
	}
	if len(nodes["a1"].Children()) != 1 {
		t.Error("removed child lost its own subtree")
	}
	if tree.Find("a1x") != nil {
		t.Error("detached subtree still reachable from the root")
	}
	if tree.Len() != 3 {
		t.Errorf("expected 3 nodes after detaching a1 subtree, got %d", tree.Len())
	}
	if tree.RemoveChild(nodes["a"], nodes["a1"]) {
		t.Error("second removal should report false")
	}

	// re-attach elsewhere
	if err := tree.AddChild(nodes["b"], nodes["a1"]); err != nil {
		t.Fatalf("re-attach: %v", err)
	}
	if tree.Depth(nodes["a1x"]) != 3 {
		t.Errorf("expected a1x at depth 3 under b, got %d", tree.Depth(nodes["a1x"]))
	}
	if tree.Len() != 5 {
		t.Errorf("expected 5 nodes after re-attach, got %d", tree.Len())
	}
}

func TestDeleteSubtree(t *testing.T) {
	tree, nodes := buildTree(t)

	released := tree.DeleteSubtree(nodes["a"])
	if diff := cmp.Diff([]string{"a", "a1", "a1x", "a2"}, keys(released)); diff != "" {
		t.Errorf("released payloads mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, keys(tree.Flatten())); diff != "" {
		t.Errorf("remaining tree mismatch (-want +got):\n%s", diff)
	}
	if tree.Len() != 1 {
		t.Errorf("expected 1 node left, got %d", tree.Len())
	}
	if nodes["a1"].Parent() != nil || len(nodes["a1"].Children()) != 0 {
		t.Error("released nodes should have their links cleared")
	}

	t.Run("delete root empties the tree", func(t *testing.T) {
		released := tree.DeleteSubtree(tree.Root())
		if diff := cmp.Diff([]string{"root", "b"}, keys(released)); diff != "" {
			t.Errorf("released payloads mismatch (-want +got):\n%s", diff)
		}
		if tree.Root() != nil || tree.Len() != 0 {
			t.Error("tree should be empty")
		}
		if tree.Find("b") != nil {
			t.Error("find on empty tree should return nil")
		}
		if len(tree.Flatten()) != 0 {
			t.Error("flatten on empty tree should be empty")
		}
	})

	t.Run("set root revives the tree", func(t *testing.T) {
		root := tree.SetRoot(part{id: "fresh"})
		if err := tree.AddChild(root, NewNode(part{id: "c"})); err != nil {
			t.Fatalf("attach under new root: %v", err)
		}
		if tree.Find("c") == nil {
			t.Error("child of new root not found")
		}
	})
}

func TestDescendants(t *testing.T) {
	tree, nodes := buildTree(t)
	if diff := cmp.Diff([]string{"a1", "a1x", "a2"}, keys(tree.Descendants(nodes["a"]))); diff != "" {
		t.Errorf("descendants mismatch (-want +got):\n%s", diff)
	}
	if got := tree.Descendants(nodes["b"]); len(got) != 0 {
		t.Errorf("leaf should have no descendants, got %v", got)
	}
}
