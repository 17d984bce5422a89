package bintree

import (
	"fmt"
	"io"

	"github.com/goose-lang/primitive"
)

// EmptyMarker is what the print traversals write for an empty tree.
const EmptyMarker = "NULL "

func printData(w io.Writer, data int) {
	fmt.Fprintf(w, "%d ", data)
}

// PrintPreOrder writes t to w in pre-order (node, left, right), each payload
// followed by a space.
func (t *Node) PrintPreOrder(w io.Writer) {
	if t == nil {
		io.WriteString(w, EmptyMarker)
		return
	}
	t.printPreOrder(w)
}

func (t *Node) printPreOrder(w io.Writer) {
	if t == nil {
		return
	}
	printData(w, t.Data)
	t.Left.printPreOrder(w)
	t.Right.printPreOrder(w)
}

// PrintInOrder writes t to w in in-order (left, node, right).
func (t *Node) PrintInOrder(w io.Writer) {
	if t == nil {
		io.WriteString(w, EmptyMarker)
		return
	}
	t.printInOrder(w)
}

func (t *Node) printInOrder(w io.Writer) {
	if t == nil {
		return
	}
	t.Left.printInOrder(w)
	printData(w, t.Data)
	t.Right.printInOrder(w)
}

// PrintPostOrder writes t to w in post-order (left, right, node).
func (t *Node) PrintPostOrder(w io.Writer) {
	if t == nil {
		io.WriteString(w, EmptyMarker)
		return
	}
	t.printPostOrder(w)
}

func (t *Node) printPostOrder(w io.Writer) {
	if t == nil {
		return
	}
	t.Left.printPostOrder(w)
	t.Right.printPostOrder(w)
	printData(w, t.Data)
}

// PrintSorted writes a search tree's keys in non-decreasing order.
func (t *Node) PrintSorted(w io.Writer) {
	t.PrintInOrder(w)
}

// PrintIntArray writes each element of arr followed by a space.
func PrintIntArray(w io.Writer, arr []int) {
	for _, v := range arr {
		printData(w, v)
	}
}

// PreOrder returns a new slice of t's payloads in pre-order. Its length is
// t.Size().
func (t *Node) PreOrder() []int {
	arr := make([]int, t.Size())
	var i = uint64(0)
	t.fillPreOrder(arr, &i)
	primitive.Assert(i == uint64(len(arr)))
	return arr
}

func (t *Node) fillPreOrder(arr []int, i *uint64) {
	if t == nil {
		return
	}
	arr[*i] = t.Data
	*i++
	t.Left.fillPreOrder(arr, i)
	t.Right.fillPreOrder(arr, i)
}

// InOrder returns a new slice of t's payloads in in-order. For a search tree
// the result is sorted.
func (t *Node) InOrder() []int {
	arr := make([]int, t.Size())
	var i = uint64(0)
	t.fillInOrder(arr, &i)
	primitive.Assert(i == uint64(len(arr)))
	return arr
}

func (t *Node) fillInOrder(arr []int, i *uint64) {
	if t == nil {
		return
	}
	t.Left.fillInOrder(arr, i)
	arr[*i] = t.Data
	*i++
	t.Right.fillInOrder(arr, i)
}

// PostOrder returns a new slice of t's payloads in post-order.
func (t *Node) PostOrder() []int {
	arr := make([]int, t.Size())
	var i = uint64(0)
	t.fillPostOrder(arr, &i)
	primitive.Assert(i == uint64(len(arr)))
	return arr
}

func (t *Node) fillPostOrder(arr []int, i *uint64) {
	if t == nil {
		return
	}
	t.Left.fillPostOrder(arr, i)
	t.Right.fillPostOrder(arr, i)
	arr[*i] = t.Data
	*i++
}
