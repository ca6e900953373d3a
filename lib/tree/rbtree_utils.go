package tree

import (
	"go.uber.org/multierr"

	"github.com/benz9527/xtree/lib/infra"
)

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

func isRedNode[T any](n Node[T]) bool {
	return n != nil && n.Color() == Red
}

func isBlackNode[T any](n Node[T]) bool {
	return n == nil || n.Color() == Black
}

// inorder visits nodes by the iterative inorder traversal and stops
// at the first error returned by fn.
func inorder[T any](root Node[T], fn func(n Node[T]) error) error {
	stack := make([]Node[T], 0, 32)
	defer func() {
		clear(stack)
	}()

	for aux := root; aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]
		if err := fn(aux); err != nil {
			return err
		}
		for aux = aux.Right(); aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
	}
	return nil
}

func RootColorValidate[T any](tree BinarySearchTree[T]) error {
	if isRedNode[T](tree.Root()) {
		return ErrRootNotBlack
	}
	return nil
}

// RedViolationValidate no red node has a red parent.
func RedViolationValidate[T any](tree BinarySearchTree[T]) error {
	return inorder[T](tree.Root(), func(n Node[T]) error {
		if isRedNode[T](n) && isRedNode[T](n.Parent()) {
			return ErrRedViolation
		}
		return nil
	})
}

// BFS traversal to load all nodes with at least one nil child.
func bfsLeaves[T any](root Node[T]) []Node[T] {
	if root == nil {
		return nil
	}

	leaves := make([]Node[T], 0, 32)
	queue := make([]Node[T], 0, 32)
	queue = append(queue, root)
	for len(queue) > 0 {
		aux := queue[0]
		queue = queue[1:]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ l == nil || r == nil {
			leaves = append(leaves, aux)
		}
		if l != nil {
			queue = append(queue, l)
		}
		if r != nil {
			queue = append(queue, r)
		}
	}
	return leaves
}

func blackDepth[T any](n Node[T]) int {
	depth := 0
	for aux := n; aux != nil; aux = aux.Parent() {
		if isBlackNode[T](aux) {
			depth++
		}
	}
	return depth
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
	        /  \
	     <8>    <15>
	     / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            <16>

Each nil leaf to root black depth are equal.
*/
func BlackViolationValidate[T any](tree BinarySearchTree[T]) error {
	leaves := bfsLeaves[T](tree.Root())
	if len(leaves) == 0 {
		return nil
	}

	depth := blackDepth[T](leaves[0])
	for i := 1; i < len(leaves); i++ {
		if blackDepth[T](leaves[i]) != depth {
			return ErrBlackViolation
		}
	}
	return nil
}

// OrderViolationValidate the inorder sequence must be non-decreasing
// by cmp, and each child must point back to its parent.
func OrderViolationValidate[T any](tree BinarySearchTree[T], cmp infra.Comparator[T]) error {
	var prev Node[T]
	return inorder[T](tree.Root(), func(n Node[T]) error {
		if l := n.Left(); l != nil && l.Parent() != n {
			return ErrOrderViolation
		}
		if r := n.Right(); r != nil && r.Parent() != n {
			return ErrOrderViolation
		}
		if prev != nil && cmp(prev.Val(), n.Val()) > 0 {
			return ErrOrderViolation
		}
		prev = n
		return nil
	})
}

// Validate checks all the red-black tree properties and the BST order
// at once. The returned error combines every violation found.
func Validate[T any](tree BinarySearchTree[T], cmp infra.Comparator[T]) error {
	return multierr.Combine(
		RootColorValidate[T](tree),
		RedViolationValidate[T](tree),
		BlackViolationValidate[T](tree),
		OrderViolationValidate[T](tree, cmp),
	)
}
