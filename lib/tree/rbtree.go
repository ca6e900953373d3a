package tree

import (
	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
)

// References:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.

var _ BinarySearchTree[int] = (*rbTree[int])(nil)

type rbTree[T any] struct {
	*binarySearchTree[T]
}

// Insert places a red leaf by the ordinary descent, repairs the
// red-violation upward and paints the root black.
func (tree *rbTree[T]) Insert(val T) error {
	if tree.isNil(val) {
		return ErrNullInput
	}

	z := &node[T]{
		val:   val,
		color: Red,
	}
	tree.insertLeaf(z)
	tree.ensureRedProperty(z)
	tree.root.color = Black
	return nil
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).

Stop: X is the root, X's parent is the root, or X's parent P is black.

FixupRecolor: both the parent P and the uncle U are red, grandpa G is black.
After repainted G into red may be still red-violation.
Continue to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

FixupInnerRotate: the parent P is red but the uncle U is black.
X is opposite direction to P. Rotate X with P, then P is the outer
grandchild and must enter FixupOuterRotate.

	  [G]                  [G]
	  / \   rotate(X,P)    / \
	<P> [U]  ========>   <X> [U]
	  \                  /
	  <X>              <P>

FixupOuterRotate: X is the same direction as its parent.

	    [G]                 [P]                 [P]
	    / \    repaint      / \   rotate(P,G)   / \
	  <P> [U]  ======>    <X> <G>  ========>  <X> <G>
	  /                         \                   \
	<X>                         [U]                 [U]
*/
func (tree *rbTree[T]) ensureRedProperty(x *node[T]) {
	steps := int64(0)
	defer func() {
		tree.recorder.RecordFixupSteps(steps)
	}()

	for ; ; steps++ {
		if x == nil || x.parent == nil || x.grandpa() == nil {
			tree.debug("rbtree fixup stopped, the node, parent or grandpa is absent",
				zap.Int64("steps", steps),
			)
			return
		}
		if x.parent.isBlack() {
			return
		}

		p, gp, u := x.parent, x.grandpa(), x.uncle()
		if /* case 1 */ u.isRed() {
			p.flipColor()
			u.flipColor()
			gp.flipColor()
			tree.recorder.RecordFixup(FixupRecolor)
			x = gp
			continue
		}

		if /* case 2 */ x.direction() != p.direction() {
			tree.mustRotate(x, p, FixupInnerRotate)
			tree.recorder.RecordFixup(FixupInnerRotate)
			// The former parent is the outer grandchild now.
			x, p = p, x
		}

		/* case 3 */
		p.flipColor()
		gp.flipColor()
		tree.mustRotate(p, gp, FixupOuterRotate)
		tree.recorder.RecordFixup(FixupOuterRotate)
		steps++
		return
	}
}

// A rotation failure in the fixup means the tree links are broken.
func (tree *rbTree[T]) mustRotate(child, parent *node[T], c FixupCase) {
	if err := tree.rotate(child, parent); err != nil {
		err = infra.WrapErrorStackWithMessage(err, "rbtree fixup "+c.String())
		tree.errorStack(err, "rbtree fixup rotate failed")
		panic(err)
	}
}

func NewRBTree[T infra.OrderedKey](opts ...BSTOption[T]) BinarySearchTree[T] {
	return &rbTree[T]{
		binarySearchTree: newBinarySearchTree[T](infra.OrderedKeyCompare[T], opts...),
	}
}

func NewRBTreeFunc[T any](cmp infra.Comparator[T], opts ...BSTOption[T]) BinarySearchTree[T] {
	return &rbTree[T]{
		binarySearchTree: newBinarySearchTree[T](cmp, opts...),
	}
}
