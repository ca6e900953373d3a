package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

// rotate swaps the levels of child and parent. A right child is
// rotated to the left, a left child is rotated to the right.
// The in order sequence of all values is kept.
//
// If parent was the root, child is the new root when rotate returns.
func (tree *binarySearchTree[T]) rotate(child, parent *node[T]) error {
	if child == nil || parent == nil {
		return ErrNullInput
	}

	var dir RBDirection
	switch {
	case parent.right == child:
		tree.leftRotate(child, parent)
		dir = Left
	case parent.left == child:
		tree.rightRotate(child, parent)
		dir = Right
	default:
		return infra.WrapErrorStack(ErrUnrelatedNodes)
	}
	tree.recorder.RecordRotation(dir)
	return nil
}

/*
		 |                         |
		 P                         C
		/ \     leftRotate(C,P)   / \
	   L   C    ============>    P   R
		  / \                   / \
		 M   R                 L   M
*/
func (tree *binarySearchTree[T]) leftRotate(child, parent *node[T]) {
	middle := child.left
	parent.right = middle
	if middle != nil {
		middle.parent = parent
	}
	child.left = parent
	tree.replaceSlot(parent, child)
}

/*
		   |                         |
		   P                         C
		  / \    rightRotate(C,P)   / \
		 C   R   ============>     L   P
		/ \                           / \
	   L   M                         M   R
*/
func (tree *binarySearchTree[T]) rightRotate(child, parent *node[T]) {
	middle := child.right
	parent.left = middle
	if middle != nil {
		middle.parent = parent
	}
	child.right = parent
	tree.replaceSlot(parent, child)
}

// replaceSlot puts child into the slot parent used to occupy and
// hangs parent below child. Called after the child's inner side has
// been handed over to parent.
func (tree *binarySearchTree[T]) replaceSlot(parent, child *node[T]) {
	gp := parent.parent
	switch dir := parent.direction(); dir {
	case Root:
		tree.root = child
	case Left:
		gp.left = child
	case Right:
		gp.right = child
	default:
		// impossible run to here
		panic( /* debug assertion */ "[tree] unknown node direction to rotate")
	}
	parent.parent = child
	child.parent = gp
}
