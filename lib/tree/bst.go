package tree

import (
	"reflect"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/xlog"
)

var _ BinarySearchTree[int] = (*binarySearchTree[int])(nil)

type binarySearchTree[T any] struct {
	root     *node[T]
	cmp      infra.Comparator[T]
	isDesc   bool
	nillable bool
	logger   xlog.XLogger
	recorder RebalanceRecorder
}

func (tree *binarySearchTree[T]) compare(i, j T) int64 {
	return tree.cmp(i, j)
}

// Only pointer like values are able to be absent.
func (tree *binarySearchTree[T]) isNil(val T) bool {
	return tree.nillable && lo.IsNil(val)
}

func (tree *binarySearchTree[T]) Root() Node[T] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

// Insert without any rebalancing.
func (tree *binarySearchTree[T]) Insert(val T) error {
	if tree.isNil(val) {
		return ErrNullInput
	}
	tree.insertLeaf(&node[T]{val: val})
	return nil
}

// insertLeaf attaches z at the first vacant slot by the
// ordinary descent. Ties go left.
func (tree *binarySearchTree[T]) insertLeaf(z *node[T]) {
	tree.recorder.RecordInsert()
	if tree.root == nil {
		tree.root = z
		return
	}

	var x, y *node[T] = tree.root, nil
	res := int64(0)
	for x != nil {
		y = x
		if res = tree.compare(z.val, x.val); /* less or equal */ res <= 0 {
			x = x.left
		} else /* greater */ {
			x = x.right
		}
	}

	z.parent = y
	if res <= 0 {
		y.left = z
	} else {
		y.right = z
	}
}

func (tree *binarySearchTree[T]) Contains(val T) bool {
	if tree.isNil(val) {
		return false
	}
	return tree.search(func(n *node[T]) int64 {
		return tree.compare(val, n.val)
	}) != nil
}

func (tree *binarySearchTree[T]) ContainsFunc(fn func(node Node[T]) int64) bool {
	if fn == nil {
		return false
	}
	return tree.search(func(n *node[T]) int64 {
		return fn(n)
	}) != nil
}

func (tree *binarySearchTree[T]) search(fn func(*node[T]) int64) *node[T] {
	for aux := tree.root; aux != nil; {
		res := fn(aux)
		if res == 0 {
			return aux
		} else if res > 0 {
			aux = aux.right
		} else {
			aux = aux.left
		}
	}
	return nil
}

// Size walks the whole tree, duplicates are counted one by one.
func (tree *binarySearchTree[T]) Size() int64 {
	if tree.root == nil {
		return 0
	}

	size := int64(0)
	stack := make([]*node[T], 0, 32)
	stack = append(stack, tree.root)
	for len(stack) > 0 {
		aux := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		if aux.left != nil {
			stack = append(stack, aux.left)
		}
		if aux.right != nil {
			stack = append(stack, aux.right)
		}
	}
	return size
}

func (tree *binarySearchTree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Clear releases the root and unlinks every node, so the Node
// handles held by callers do not keep the rest of the tree alive.
func (tree *binarySearchTree[T]) Clear() {
	aux := tree.root
	tree.root = nil
	if aux == nil {
		return
	}

	stack := make([]*node[T], 0, 32)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)
	for len(stack) > 0 {
		aux = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if aux.left != nil {
			stack = append(stack, aux.left)
		}
		if aux.right != nil {
			stack = append(stack, aux.right)
		}
		aux.parent, aux.left, aux.right = nil, nil, nil
	}
}

func (tree *binarySearchTree[T]) debug(msg string, fields ...zap.Field) {
	if tree.logger == nil {
		return
	}
	tree.logger.Debug(msg, fields...)
}

func (tree *binarySearchTree[T]) errorStack(err error, msg string, fields ...zap.Field) {
	if tree.logger == nil {
		return
	}
	tree.logger.ErrorStack(err, msg, fields...)
}

type BSTOption[T any] func(*binarySearchTree[T])

// WithBSTComparator overrides the comparator given to the constructor.
func WithBSTComparator[T any](cmp infra.Comparator[T]) BSTOption[T] {
	return func(tree *binarySearchTree[T]) {
		if cmp != nil {
			tree.cmp = cmp
		}
	}
}

func WithBSTDesc[T any]() BSTOption[T] {
	return func(tree *binarySearchTree[T]) {
		tree.isDesc = true
	}
}

func WithBSTLogger[T any](logger xlog.XLogger) BSTOption[T] {
	return func(tree *binarySearchTree[T]) {
		if logger != nil {
			tree.logger = logger.Named("xtree")
		}
	}
}

func WithBSTRecorder[T any](recorder RebalanceRecorder) BSTOption[T] {
	return func(tree *binarySearchTree[T]) {
		if recorder != nil {
			tree.recorder = recorder
		}
	}
}

func newBinarySearchTree[T any](cmp infra.Comparator[T], opts ...BSTOption[T]) *binarySearchTree[T] {
	tree := &binarySearchTree[T]{
		cmp:      cmp,
		nillable: isNillable[T](),
		recorder: noopRecorder{},
	}
	for _, o := range opts {
		o(tree)
	}
	if tree.cmp == nil {
		panic( /* debug assertion */ "[tree] nil comparator")
	}
	if tree.isDesc {
		tree.cmp = infra.ReverseComparator[T](tree.cmp)
	}
	return tree
}

func isNillable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
	}
	return false
}

func NewBinarySearchTree[T infra.OrderedKey](opts ...BSTOption[T]) BinarySearchTree[T] {
	return newBinarySearchTree[T](infra.OrderedKeyCompare[T], opts...)
}

func NewBinarySearchTreeFunc[T any](cmp infra.Comparator[T], opts ...BSTOption[T]) BinarySearchTree[T] {
	return newBinarySearchTree[T](cmp, opts...)
}

type noopRecorder struct{}

func (noopRecorder) RecordInsert()                {}
func (noopRecorder) RecordRotation(RBDirection)   {}
func (noopRecorder) RecordFixup(FixupCase)        {}
func (noopRecorder) RecordFixupSteps(steps int64) {}
