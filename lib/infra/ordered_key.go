package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// Comparator
// Assume i is the new value.
//  1. i == j, return 0
//  2. i > j, return 1, turn to right part.
//  3. i < j, return -1, turn to left part.
type Comparator[T any] func(i, j T) int64

func OrderedKeyCompare[K OrderedKey](i, j K) int64 {
	if i == j {
		return 0
	} else if i < j {
		return -1
	}
	return 1
}

// ReverseComparator flips the sign of cmp, so the tree is kept in
// descending order. Zero stays zero, ties still go left.
func ReverseComparator[T any](cmp Comparator[T]) Comparator[T] {
	return func(i, j T) int64 {
		return -cmp(i, j)
	}
}
