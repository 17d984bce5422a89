// Package selfcheck exercises the bintree package against its documented
// properties on pseudo-random input.
package selfcheck

import (
	"slices"

	"github.com/gotlibsh/trees/bintree"
)

// Property names reported by Check.
const (
	PropSorted      = "in-order sorted"
	PropBST         = "ordering invariant"
	PropDistinct    = "size counts distinct values"
	PropDepth       = "depth algorithms agree"
	PropLengths     = "traversal lengths equal size"
	PropPermutation = "traversals are permutations"
	PropIter        = "iterative traversals match"
	PropFind        = "find locates inserted values"
	PropRoundTrip   = "rebuild round-trip"
	PropFree        = "free empties the tree"
)

// Check builds a search tree from values and returns the names of the
// properties it violates, or nil if none.
//
// The rebuild round-trip is only checked when duplicates are disallowed,
// since reconstruction makes no promise about duplicate-bearing trees.
func Check(values []int, allowDuplicates bool) []string {
	var failed []string
	fail := func(prop string) {
		failed = append(failed, prop)
	}

	tree, rejected := bintree.FromValues(values, allowDuplicates)
	size := tree.Size()
	pre, in, post := tree.PreOrder(), tree.InOrder(), tree.PostOrder()

	if !slices.IsSorted(in) {
		fail(PropSorted)
	}
	if !tree.IsBST(allowDuplicates) {
		fail(PropBST)
	}
	if !allowDuplicates {
		d := append([]int{}, values...)
		slices.Sort(d)
		d = slices.Compact(d)
		if uint64(len(d)) != size || len(values)-len(d) != rejected {
			fail(PropDistinct)
		}
	} else if rejected != 0 {
		fail(PropDistinct)
	}
	if tree.Depth() != tree.DepthEfficient() {
		fail(PropDepth)
	}
	if uint64(len(pre)) != size || uint64(len(in)) != size || uint64(len(post)) != size {
		fail(PropLengths)
	} else if !isPermutation(pre, in) || !isPermutation(pre, post) {
		fail(PropPermutation)
	}
	if !slices.Equal(pre, tree.PreOrderIter()) ||
		!slices.Equal(in, tree.InOrderIter()) ||
		!slices.Equal(post, tree.PostOrderIter()) {
		fail(PropIter)
	}
	for _, v := range values {
		n := tree.Find(v)
		if n == nil || n.Data != v {
			fail(PropFind)
			break
		}
	}
	if !allowDuplicates {
		rebuilt, err := bintree.Rebuild(pre, in)
		if err != nil || !rebuilt.Equal(tree) {
			fail(PropRoundTrip)
		}
		rebuilt.Free()
	}

	root := tree
	tree = tree.Free()
	if tree != nil || (root != nil && (root.Left != nil || root.Right != nil)) {
		fail(PropFree)
	}
	return failed
}

func isPermutation(a, b []int) bool {
	a = slices.Clone(a)
	b = slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}
