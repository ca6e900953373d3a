package tree

var _ Node[int] = (*node[int])(nil)

// The parent is a back reference for upward traversal only,
// the children are owned by the node.
type node[T any] struct {
	parent *node[T]
	left   *node[T]
	right  *node[T]
	val    T
	color  RBColor
}

func (n *node[T]) Val() T {
	return n.val
}

func (n *node[T]) Color() RBColor {
	return n.color
}

func (n *node[T]) Left() Node[T] {
	if n == nil || n.left == nil {
		return nil
	}
	return n.left
}

func (n *node[T]) Right() Node[T] {
	if n == nil || n.right == nil {
		return nil
	}
	return n.right
}

func (n *node[T]) Parent() Node[T] {
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent
}

// Nil nodes are black.
func (n *node[T]) isBlack() bool {
	return n == nil || n.color == Black
}

func (n *node[T]) isRed() bool {
	return n != nil && n.color == Red
}

func (n *node[T]) isRoot() bool {
	return n != nil && n.parent == nil
}

func (n *node[T]) flipColor() {
	if n.color == Red {
		n.color = Black
	} else {
		n.color = Red
	}
}

func (n *node[T]) direction() RBDirection {
	if n.isRoot() {
		return Root
	}
	if n == n.parent.left {
		return Left
	}
	return Right
}

func (n *node[T]) sibling() *node[T] {
	switch n.direction() {
	case Left:
		return n.parent.right
	case Right:
		return n.parent.left
	default:
	}
	return nil
}

func (n *node[T]) grandpa() *node[T] {
	if n.parent == nil {
		return nil
	}
	return n.parent.parent
}

// The uncle may be nil, it is treated as black.
func (n *node[T]) uncle() *node[T] {
	if n.grandpa() == nil {
		return nil
	}
	return n.parent.sibling()
}
