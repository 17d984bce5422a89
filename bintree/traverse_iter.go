package bintree

// The Iter traversals visit nodes in the same order as their recursive
// counterparts but keep pending nodes on an explicit stack, so a deeply skewed
// tree does not grow the goroutine stack.

// PreOrderIter returns the same slice as PreOrder.
func (t *Node) PreOrderIter() []int {
	arr := make([]int, 0, t.Size())
	pending := newStack[*Node]()
	if t != nil {
		pending.Push(t)
	}
	for {
		n, ok := pending.Pop()
		if !ok {
			break
		}
		arr = append(arr, n.Data)
		// right first so left is popped first
		if n.Right != nil {
			pending.Push(n.Right)
		}
		if n.Left != nil {
			pending.Push(n.Left)
		}
	}
	return arr
}

// InOrderIter returns the same slice as InOrder.
func (t *Node) InOrderIter() []int {
	arr := make([]int, 0, t.Size())
	pending := newStack[*Node]()
	var cur = t
	for cur != nil || pending.Len() > 0 {
		for cur != nil {
			pending.Push(cur)
			cur = cur.Left
		}
		n, _ := pending.Pop()
		arr = append(arr, n.Data)
		cur = n.Right
	}
	return arr
}

// PostOrderIter returns the same slice as PostOrder.
//
// Nodes are popped in node, right, left order onto a second stack, which then
// unwinds as left, right, node.
func (t *Node) PostOrderIter() []int {
	arr := make([]int, 0, t.Size())
	pending := newStack[*Node]()
	visited := newStack[*Node]()
	if t != nil {
		pending.Push(t)
	}
	for {
		n, ok := pending.Pop()
		if !ok {
			break
		}
		visited.Push(n)
		if n.Left != nil {
			pending.Push(n.Left)
		}
		if n.Right != nil {
			pending.Push(n.Right)
		}
	}
	for {
		n, ok := visited.Pop()
		if !ok {
			break
		}
		arr = append(arr, n.Data)
	}
	return arr
}
