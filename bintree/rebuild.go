package bintree

import (
	"fmt"

	"github.com/goose-lang/primitive"
)

// Rebuild reconstructs a tree from its pre-order and in-order traversals.
//
// The first pre-order element is the root. Its first occurrence in the
// in-order slice splits that slice into the left and right subtrees, and the
// rest of the pre-order slice splits at the same left-subtree length.
//
// If the original tree had no duplicate payloads the result has the same
// shape. With duplicates there is no such promise: the first-match scan may
// pair a pre-order root with the wrong in-order occurrence, producing a
// different tree (or ErrRootNotFound) even though the inputs came from a real
// tree.
//
// The inputs are checked to have the same length and the same multiset of
// values before any node is built; a malformed pair returns a nil tree and an
// error wrapping one of the sentinel errors.
func Rebuild(preOrder, inOrder []int) (*Node, error) {
	if len(preOrder) != len(inOrder) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(preOrder), len(inOrder))
	}
	if err := sameMultiset(preOrder, inOrder); err != nil {
		return nil, err
	}
	t, err := rebuild(preOrder, inOrder)
	if err != nil {
		return t.Free(), err
	}
	return t, nil
}

func sameMultiset(a, b []int) error {
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		if counts[v] == 0 {
			return fmt.Errorf("%w: extra %d in in-order", ErrMultisetMismatch, v)
		}
		counts[v]--
	}
	// equal lengths, so no count can be left over
	return nil
}

// rootIndex returns the index of the first occurrence of root in inOrder.
func rootIndex(inOrder []int, root int) (int, bool) {
	for i, v := range inOrder {
		if v == root {
			return i, true
		}
	}
	return 0, false
}

// rebuild assumes len(preOrder) == len(inOrder). On error the partially built
// tree is returned so the caller can free it.
func rebuild(preOrder, inOrder []int) (*Node, error) {
	if len(preOrder) == 0 {
		return nil, nil
	}
	root := NewNode(preOrder[0])
	k, ok := rootIndex(inOrder, root.Data)
	if !ok {
		return root, fmt.Errorf("%w: %d", ErrRootNotFound, root.Data)
	}
	primitive.Assert(k < len(preOrder))

	var err error
	root.Left, err = rebuild(preOrder[1:1+k], inOrder[:k])
	if err != nil {
		return root, err
	}
	root.Right, err = rebuild(preOrder[1+k:], inOrder[k+1:])
	return root, err
}
