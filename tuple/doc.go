// Package tuple a collection of generic struct types
// that hold a specific number of values.
//
// A TN value is an argument pack: its elements can be spread
// into the positional arguments of a call with [T2.Values] and friends,
// or handed whole to the adapters in tuple/tuplefunc.
//
// Every tuple type has an Unwrap method. On a T1 it returns the
// single element; on any other size it returns the tuple itself.
// The choice is made by the static type of the tuple, so code generated
// or written for a particular arity pays nothing for it:
//
//	tuple.Mk1(5).Unwrap()    // 5
//	tuple.Mk2(2, 3).Unwrap() // (2, 3)
//	tuple.Mk0().Unwrap()     // ()
//
// UnwrapRef is the same operation on a pointer, so that the
// result refers to the original storage rather than a copy.
//
// Only one level is unwrapped: a T1[T2[A, B]] unwraps to a T2[A, B].
//
// See the tuple/tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tuple

//go:generate go run generate.go

// MaxArity holds the largest tuple size provided by this package.
const MaxArity = 6

// Tuple is implemented by all the tuple types in this package.
type Tuple interface {
	// Len returns the number of elements in the tuple.
	// It is constant for a given type.
	Len() int
}

var (
	_ Tuple = T0{}
	_ Tuple = T1[int]{}
	_ Tuple = T2[int, int]{}
	_ Tuple = T3[int, int, int]{}
	_ Tuple = T4[int, int, int, int]{}
	_ Tuple = T5[int, int, int, int, int]{}
	_ Tuple = T6[int, int, int, int, int, int]{}
)
