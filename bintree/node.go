// Package bintree is a binary search tree over int payloads.
//
// A *Node is a tree handle: nil is the empty tree, and every method accepts a
// nil receiver so the empty tree is the base case of each recursive
// operation. Each child slot exclusively owns its subtree.
package bintree

// Node is one tree vertex. Left and Right are nil when empty.
type Node struct {
	Data  int
	Left  *Node
	Right *Node
}

// NewNode returns a node holding data with two empty children.
func NewNode(data int) *Node {
	var empty *Node
	return &Node{Data: data, Left: empty, Right: empty}
}

// Free releases the tree in post-order, unlinking children before their
// parent, and returns the empty tree:
//
//	t = t.Free()
func (t *Node) Free() *Node {
	if t == nil {
		return t
	}
	t.Left = t.Left.Free()
	t.Right = t.Right.Free()
	return nil
}

// Equal reports whether t and other have the same shape and payloads.
func (t *Node) Equal(other *Node) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Data == other.Data &&
		t.Left.Equal(other.Left) &&
		t.Right.Equal(other.Right)
}
