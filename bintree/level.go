package bintree

import "io"

// LevelOrder returns t's payloads breadth-first, left to right within each
// level.
//
// NOTE: there is no reference output for this traversal; the breadth-first
// order is our own choice and callers should not treat it as part of the
// depth-first traversal contract.
func (t *Node) LevelOrder() []int {
	arr := make([]int, 0, t.Size())
	pending := newQueue[*Node]()
	if t != nil {
		pending.Push(t)
	}
	for {
		n, ok := pending.Pop()
		if !ok {
			break
		}
		arr = append(arr, n.Data)
		if n.Left != nil {
			pending.Push(n.Left)
		}
		if n.Right != nil {
			pending.Push(n.Right)
		}
	}
	return arr
}

// PrintLevelOrder writes LevelOrder to w, or EmptyMarker for an empty tree.
func (t *Node) PrintLevelOrder(w io.Writer) {
	if t == nil {
		io.WriteString(w, EmptyMarker)
		return
	}
	PrintIntArray(w, t.LevelOrder())
}
