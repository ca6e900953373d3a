package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/lib/infra"
)

type song struct {
	title string
	year  int
}

func songCompare(i, j *song) int64 {
	if i.year != j.year {
		return infra.OrderedKeyCompare(i.year, j.year)
	}
	return infra.OrderedKeyCompare(i.title, j.title)
}

func inorderVals[T any](tree BinarySearchTree[T]) []T {
	res := make([]T, 0, 32)
	_ = inorder[T](tree.Root(), func(n Node[T]) error {
		res = append(res, n.Val())
		return nil
	})
	return res
}

func TestBinarySearchTree_InsertContainsSize(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	require.True(t, tree.IsEmpty())
	require.Equal(t, int64(0), tree.Size())
	require.Nil(t, tree.Root())

	for _, v := range []int{10, 5, 15, 3, 7} {
		require.NoError(t, tree.Insert(v))
	}
	require.False(t, tree.IsEmpty())
	require.Equal(t, int64(5), tree.Size())
	require.True(t, tree.Contains(7))
	require.False(t, tree.Contains(6))
	require.Equal(t, []int{3, 5, 7, 10, 15}, inorderVals[int](tree))
	require.NoError(t, OrderViolationValidate[int](tree, infra.OrderedKeyCompare[int]))

	root := tree.Root()
	require.Equal(t, 10, root.Val())
	require.Nil(t, root.Parent())
	require.Equal(t, 5, root.Left().Val())
	require.Equal(t, 15, root.Right().Val())
	require.Equal(t, 3, root.Left().Left().Val())
	require.Equal(t, 7, root.Left().Right().Val())
	require.Same(t, root, root.Left().Parent())
	require.Nil(t, root.Right().Left())
	require.Nil(t, root.Right().Right())
}

func TestBinarySearchTree_Interior(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	for _, v := range []int{8, 4, 17, 9, 1} {
		require.NoError(t, tree.Insert(v))
	}
	require.True(t, tree.Contains(8))
	require.True(t, tree.Contains(9))
	require.False(t, tree.Contains(5))
	require.Equal(t, int64(5), tree.Size())
}

func TestBinarySearchTree_DuplicatesGoLeft(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	for _, v := range []int{14, 21, 29, 17, 9, 9, 13} {
		require.NoError(t, tree.Insert(v))
	}
	require.Equal(t, int64(7), tree.Size())
	require.True(t, tree.Contains(9))
	require.True(t, tree.Contains(29))
	require.False(t, tree.Contains(10))

	// The second 9 lands in the left subtree of the first one.
	first := tree.Root().Left()
	require.Equal(t, 9, first.Val())
	require.Equal(t, 9, first.Left().Val())
	require.Equal(t, 13, first.Right().Val())
	require.Equal(t, []int{9, 9, 13, 14, 17, 21, 29}, inorderVals[int](tree))

	tree.Clear()
	require.Equal(t, int64(0), tree.Size())
	require.True(t, tree.IsEmpty())
}

func TestBinarySearchTree_Strings(t *testing.T) {
	tree := NewBinarySearchTree[string]()
	for _, v := range []string{"dog", "cat", "aardvark", "badger", "goat", "pig"} {
		require.NoError(t, tree.Insert(v))
	}
	require.Equal(t, "dog", tree.Root().Val())
	require.Equal(t, "badger", tree.Root().Left().Left().Right().Val())
	require.True(t, tree.Contains("pig"))
	require.True(t, tree.Contains("badger"))
	require.True(t, tree.Contains("aardvark"))
	require.Equal(t, int64(6), tree.Size())
}

func TestBinarySearchTree_NullInput(t *testing.T) {
	tree := NewBinarySearchTreeFunc[*song](songCompare)
	require.ErrorIs(t, tree.Insert(nil), ErrNullInput)
	require.True(t, tree.IsEmpty())
	require.False(t, tree.Contains(nil))

	require.NoError(t, tree.Insert(&song{title: "apt.", year: 2024}))
	require.NoError(t, tree.Insert(&song{title: "Hey Ya!", year: 2003}))
	require.True(t, tree.Contains(&song{title: "apt.", year: 2024}))
	require.False(t, tree.Contains(&song{title: "apt.", year: 2023}))
	require.Equal(t, int64(2), tree.Size())

	var noop func()
	fnTree := NewBinarySearchTreeFunc[func()](func(i, j func()) int64 { return 0 })
	require.ErrorIs(t, fnTree.Insert(noop), ErrNullInput)
}

func TestBinarySearchTree_ContainsFunc(t *testing.T) {
	tree := NewBinarySearchTreeFunc[*song](songCompare)
	for _, s := range []*song{
		{title: "Yeah!", year: 2004},
		{title: "Toxic", year: 2003},
		{title: "Umbrella", year: 2007},
	} {
		require.NoError(t, tree.Insert(s))
	}

	byYear := func(year int) func(Node[*song]) int64 {
		return func(n Node[*song]) int64 {
			return infra.OrderedKeyCompare(year, n.Val().year)
		}
	}
	require.True(t, tree.ContainsFunc(byYear(2003)))
	require.True(t, tree.ContainsFunc(byYear(2007)))
	require.False(t, tree.ContainsFunc(byYear(2000)))
	require.False(t, tree.ContainsFunc(nil))
}

func TestBinarySearchTree_Desc(t *testing.T) {
	tree := NewBinarySearchTree[int](WithBSTDesc[int]())
	for _, v := range []int{10, 5, 15, 3, 7} {
		require.NoError(t, tree.Insert(v))
	}
	require.Equal(t, []int{15, 10, 7, 5, 3}, inorderVals[int](tree))
	require.Equal(t, 15, tree.Root().Left().Val())
	require.True(t, tree.Contains(3))
	require.NoError(t, OrderViolationValidate[int](tree, infra.ReverseComparator[int](infra.OrderedKeyCompare[int])))
}

func TestBinarySearchTree_WithComparator(t *testing.T) {
	byLen := func(i, j string) int64 {
		return infra.OrderedKeyCompare(len(i), len(j))
	}
	tree := NewBinarySearchTree[string](WithBSTComparator[string](byLen))
	for _, v := range []string{"ccc", "a", "bb", "dddd"} {
		require.NoError(t, tree.Insert(v))
	}
	require.Equal(t, []string{"a", "bb", "ccc", "dddd"}, inorderVals[string](tree))
	require.True(t, tree.Contains("zz"))

	require.Panics(t, func() {
		NewBinarySearchTreeFunc[int](nil)
	})
}

func TestBinarySearchTree_ClearIdempotent(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	tree.Clear()
	require.True(t, tree.IsEmpty())
	require.Equal(t, int64(0), tree.Size())

	for i := 0; i < 100; i++ {
		require.NoError(t, tree.Insert(i%7))
	}
	root := tree.Root()
	require.Equal(t, int64(100), tree.Size())

	tree.Clear()
	require.True(t, tree.IsEmpty())
	require.Equal(t, int64(0), tree.Size())
	require.False(t, tree.Contains(3))
	// Stale handles are unlinked from the released nodes.
	require.Nil(t, root.Left())
	require.Nil(t, root.Right())
	require.Nil(t, root.Parent())

	tree.Clear()
	require.True(t, tree.IsEmpty())
	require.NoError(t, tree.Insert(1))
	require.Equal(t, int64(1), tree.Size())
}

func TestBinarySearchTree_NoRebalance(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	for i := 1; i <= 5; i++ {
		require.NoError(t, tree.Insert(i))
	}
	// Ascending input degenerates into a right spine.
	aux := tree.Root()
	for i := 1; i <= 5; i++ {
		require.Equal(t, i, aux.Val())
		require.Nil(t, aux.Left())
		aux = aux.Right()
	}
	require.Nil(t, aux)
}
