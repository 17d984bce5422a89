package bintree

import "github.com/goose-lang/std"

// Size returns the number of nodes in t; the empty tree has size 0.
func (t *Node) Size() uint64 {
	if t == nil {
		return 0
	}
	return std.SumAssumeNoOverflow(1,
		std.SumAssumeNoOverflow(t.Left.Size(), t.Right.Size()))
}

// Depth returns the number of edges on the longest root-to-leaf path: -1 for
// the empty tree and 0 for a single node.
//
// This is the naive formulation, which carries a running depth down to every
// empty child and takes the maximum on the way back up. DepthEfficient
// computes the same value.
func (t *Node) Depth() int {
	return t.depthFrom(-1)
}

func (t *Node) depthFrom(depth int) int {
	if t == nil {
		return depth
	}
	return max(t.Left.depthFrom(depth+1), t.Right.depthFrom(depth+1))
}

// DepthEfficient returns the same value as Depth using a single pass that
// raises a shared maximum whenever the current level exceeds it.
func (t *Node) DepthEfficient() int {
	if t == nil {
		return -1
	}
	var maxLevel = 0
	t.raiseMaxLevel(&maxLevel, 0)
	return maxLevel
}

func (t *Node) raiseMaxLevel(maxLevel *int, level int) {
	if t == nil {
		return
	}
	if level > *maxLevel {
		*maxLevel = level
	}
	t.Left.raiseMaxLevel(maxLevel, level+1)
	t.Right.raiseMaxLevel(maxLevel, level+1)
}

// Find returns the first node holding target on its search path, or nil if
// there is none. With duplicates the match is the shallowest occurrence.
func (t *Node) Find(target int) *Node {
	if t == nil {
		return nil
	}
	if t.Data == target {
		return t
	}
	if target > t.Data {
		return t.Right.Find(target)
	}
	return t.Left.Find(target)
}

// Contains reports whether Find locates target.
func (t *Node) Contains(target int) bool {
	return t.Find(target) != nil
}

// IsBST checks the ordering invariant Insert maintains: left subtrees hold
// strictly smaller keys (or equal ones when allowDuplicates is set) and right
// subtrees strictly greater keys.
func (t *Node) IsBST(allowDuplicates bool) bool {
	return t.within(nil, nil, allowDuplicates)
}

// within checks every key k satisfies *lo < k and k < *hi, where k == *hi is
// also allowed for duplicates. A nil bound is unbounded.
func (t *Node) within(lo, hi *int, allowDuplicates bool) bool {
	if t == nil {
		return true
	}
	if lo != nil && t.Data <= *lo {
		return false
	}
	if hi != nil && (t.Data > *hi || (t.Data == *hi && !allowDuplicates)) {
		return false
	}
	return t.Left.within(lo, &t.Data, allowDuplicates) &&
		t.Right.within(&t.Data, hi, allowDuplicates)
}
