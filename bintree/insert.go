package bintree

// Insert attaches n as a leaf of the search tree rooted at t and returns the
// new root, which differs from t only when t is empty. The boolean reports
// whether n was attached.
//
// Keys greater than a node go right and lesser keys go left. An equal key goes
// left when allowDuplicates is set, so duplicates nest below their first
// occurrence; otherwise the insert is rejected and n is left untouched for the
// caller to dispose of.
func (t *Node) Insert(n *Node, allowDuplicates bool) (*Node, bool) {
	if t == nil {
		return n, true
	}
	var ok bool
	if n.Data > t.Data {
		t.Right, ok = t.Right.Insert(n, allowDuplicates)
	} else if n.Data < t.Data || allowDuplicates {
		t.Left, ok = t.Left.Insert(n, allowDuplicates)
	}
	// if n.Data == t.Data and duplicates are off, ok stays false
	return t, ok
}

// InsertValue is Insert with a freshly allocated node.
func (t *Node) InsertValue(data int, allowDuplicates bool) (*Node, bool) {
	return t.Insert(NewNode(data), allowDuplicates)
}

// FromValues builds a search tree by inserting values in order. It returns the
// root and the number of values rejected as duplicates.
func FromValues(values []int, allowDuplicates bool) (*Node, int) {
	var t *Node
	var rejected = 0
	for _, v := range values {
		var ok bool
		t, ok = t.InsertValue(v, allowDuplicates)
		if !ok {
			rejected++
		}
	}
	return t, rejected
}
