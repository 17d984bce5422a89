package bintree_test

import (
	"testing"

	"github.com/gotlibsh/trees/bintree"
	"github.com/stretchr/testify/assert"
)

func TestInsertScenario(t *testing.T) {
	assert := assert.New(t)

	tree, rejected := bintree.FromValues([]int{5, 3, 8, 1, 4}, false)
	assert.Equal(0, rejected)

	assert.Equal([]int{1, 3, 4, 5, 8}, tree.InOrder())
	assert.Equal([]int{5, 3, 1, 4, 8}, tree.PreOrder())
	assert.Equal([]int{1, 4, 3, 8, 5}, tree.PostOrder())
	assert.Equal(uint64(5), tree.Size())
	assert.Equal(2, tree.Depth())
	assert.Equal(2, tree.DepthEfficient())
}

func TestInsertDuplicatesNestLeft(t *testing.T) {
	assert := assert.New(t)

	tree, rejected := bintree.FromValues([]int{5, 5, 5}, true)
	assert.Equal(0, rejected)
	assert.Equal(uint64(3), tree.Size())
	assert.Equal([]int{5, 5, 5}, tree.InOrder())
	assert.Equal(2, tree.Depth())

	// each duplicate is the left child of the previous one
	assert.Nil(tree.Right)
	assert.Nil(tree.Left.Right)
	assert.NotNil(tree.Left.Left)
	assert.True(tree.IsBST(true))
}

func TestInsertRejectsDuplicate(t *testing.T) {
	assert := assert.New(t)

	tree, _ := bintree.FromValues([]int{5, 3, 8}, false)
	n := bintree.NewNode(3)
	tree, ok := tree.Insert(n, false)
	assert.False(ok)
	assert.Equal(uint64(3), tree.Size())
	// the rejected node is untouched and still owned by the caller
	assert.Nil(n.Left)
	assert.Nil(n.Right)
	assert.Nil(tree.Find(3).Left)

	tree, rejected := bintree.FromValues([]int{1, 1, 2, 2, 2}, false)
	assert.Equal(3, rejected)
	assert.Equal([]int{1, 2}, tree.InOrder())
}

func TestInsertIntoEmpty(t *testing.T) {
	assert := assert.New(t)

	var tree *bintree.Node
	n := bintree.NewNode(7)
	tree, ok := tree.Insert(n, false)
	assert.True(ok)
	assert.Same(n, tree)
}

func TestEmptyTree(t *testing.T) {
	assert := assert.New(t)

	var tree *bintree.Node
	assert.Equal(uint64(0), tree.Size())
	assert.Equal(-1, tree.Depth())
	assert.Equal(-1, tree.DepthEfficient())
	assert.Empty(tree.PreOrder())
	assert.Empty(tree.InOrder())
	assert.Empty(tree.PostOrder())
	assert.Empty(tree.LevelOrder())
	assert.Nil(tree.Find(0))
	assert.False(tree.Contains(0))
	assert.True(tree.IsBST(false))
	assert.Nil(tree.Free())
}

func TestSingleNode(t *testing.T) {
	assert := assert.New(t)

	tree := bintree.NewNode(0)
	assert.Equal(uint64(1), tree.Size())
	assert.Equal(0, tree.Depth())
	assert.Equal(0, tree.DepthEfficient())
	assert.Equal([]int{0}, tree.PreOrder())
	assert.Same(tree, tree.Find(0))
}

func TestFind(t *testing.T) {
	assert := assert.New(t)

	tree, _ := bintree.FromValues([]int{5, 3, 8, 1, 4}, false)
	n := tree.Find(4)
	if assert.NotNil(n) {
		assert.Equal(4, n.Data)
		assert.Same(tree.Left.Right, n)
	}
	assert.Nil(tree.Find(99))
	assert.Nil(tree.Find(2), "2 would sit below 1 but is absent")
	assert.True(tree.Contains(8))
}

func TestFindDuplicateReturnsShallowest(t *testing.T) {
	tree, _ := bintree.FromValues([]int{5, 5}, true)
	assert.Same(t, tree, tree.Find(5))
}

func TestDepthSkewed(t *testing.T) {
	assert := assert.New(t)

	// sorted input degrades to a list
	tree, _ := bintree.FromValues([]int{1, 2, 3, 4, 5, 6}, false)
	assert.Equal(5, tree.Depth())
	assert.Equal(5, tree.DepthEfficient())
	assert.Nil(tree.Left)
}

func TestFree(t *testing.T) {
	assert := assert.New(t)

	tree, _ := bintree.FromValues([]int{5, 3, 8, 1, 4}, false)
	root := tree
	left := tree.Left
	tree = tree.Free()
	assert.Nil(tree)
	assert.Nil(root.Left)
	assert.Nil(root.Right)
	assert.Nil(left.Left)
	assert.Nil(left.Right)
}

func TestEqual(t *testing.T) {
	assert := assert.New(t)

	a, _ := bintree.FromValues([]int{2, 1, 3}, false)
	b, _ := bintree.FromValues([]int{2, 3, 1}, false)
	c, _ := bintree.FromValues([]int{1, 2, 3}, false)
	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
	assert.False(a.Equal(nil))

	var empty *bintree.Node
	assert.True(empty.Equal(nil))
}

func TestIsBST(t *testing.T) {
	assert := assert.New(t)

	// hand-built trees can break the ordering invariant
	bad := &bintree.Node{Data: 5, Left: bintree.NewNode(7)}
	assert.False(bad.IsBST(true))

	deep := &bintree.Node{Data: 5, Left: &bintree.Node{Data: 3, Right: bintree.NewNode(6)}}
	assert.False(deep.IsBST(false))

	dupRight := &bintree.Node{Data: 5, Right: bintree.NewNode(5)}
	assert.False(dupRight.IsBST(true))

	dupLeft := &bintree.Node{Data: 5, Left: bintree.NewNode(5)}
	assert.True(dupLeft.IsBST(true))
	assert.False(dupLeft.IsBST(false))
}
