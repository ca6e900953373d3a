package tree

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
	}
	return "RBColor(unknown)"
}

type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

func (d RBDirection) String() string {
	switch d {
	case Left:
		return "Left"
	case Root:
		return "Root"
	case Right:
		return "Right"
	default:
	}
	return "RBDirection(unknown)"
}

// FixupCase is the repair applied to a double-red violation.
type FixupCase uint8

const (
	// FixupRecolor the uncle is red, flip parent, uncle and grandpa,
	// then continue from grandpa.
	FixupRecolor FixupCase = iota + 1
	// FixupInnerRotate the node is the inner grandchild, rotate it
	// with its parent into the straight line shape.
	FixupInnerRotate
	// FixupOuterRotate the node is the outer grandchild, repaint and
	// rotate the parent into grandpa's place.
	FixupOuterRotate
)

func (c FixupCase) String() string {
	switch c {
	case FixupRecolor:
		return "recolor"
	case FixupInnerRotate:
		return "inner-rotate"
	case FixupOuterRotate:
		return "outer-rotate"
	default:
	}
	return "unknown"
}

type TreeErr string

const (
	ErrNullInput      TreeErr = "[tree] null input"
	ErrUnrelatedNodes TreeErr = "[tree] rotate unrelated nodes"
	ErrRootNotBlack   TreeErr = "[tree] rbtree root is not black"
	ErrRedViolation   TreeErr = "[tree] rbtree red violation"
	ErrBlackViolation TreeErr = "[tree] rbtree black violation"
	ErrOrderViolation TreeErr = "[tree] bst order violation"
)

func (err TreeErr) Error() string {
	return string(err)
}

type Node[T any] interface {
	Val() T
	Color() RBColor
	Left() Node[T]
	Right() Node[T]
	Parent() Node[T]
}

// BinarySearchTree is an ordered collection allowing duplicates.
// Equal values are placed into the left subtree.
// Implementations are not safe for concurrent use.
type BinarySearchTree[T any] interface {
	Root() Node[T]
	Insert(val T) error
	Contains(val T) bool
	// ContainsFunc descends by fn, which returns the comparison of the
	// target against the visited node: 0 found, < 0 go left, > 0 go right.
	ContainsFunc(fn func(node Node[T]) int64) bool
	Size() int64
	IsEmpty() bool
	Clear()
}

// RebalanceRecorder receives the structural changes made by a tree.
// It is called synchronously on the insert path.
type RebalanceRecorder interface {
	RecordInsert()
	RecordRotation(dir RBDirection)
	RecordFixup(c FixupCase)
	RecordFixupSteps(steps int64)
}
