// Package tuplefunc provides functions that convert between multiple-argument
// and multiple-return functions and single-argument, single-return functions.
// This makes it trivial to pass arbitrary functions to generic operations
// that are designed to operate on arbitrary functions.
//
// For functions with as many argument or return parameters as can be represented by
// the tuple package, this package provides a function to convert to and from those
// forms.
//
// The names of most functions in this package match the following regular expression:
//
//	(To|From)C?A?R?E?_[0-9]+_[0-9]+
//
// Each optional letter represents one aspect of the function that's being converted to.
//
//	C - context.Context argument
//	A - argument parameter
//	R - return parameter
//	E - error return
//
// The first number is the number of argument parameters (not including context.Context for a C function);
// the second number is the number of return parameters (not including error for an E function).
//
// So, for example:
//
//	ToCAE_3_1
//
// converts from (for some types A0, A1, A2 and R)
//
//	func(context.Context, A0, A1, A2) (R, error)
//
// to:
//
//	func(context.Context, tuple.T3[A0, A1, A2]) (R, error)
//
// The forms provided are ToA_n_0, ToA_n_1, ToAE_n_1, ToCAE_n_1 and FromA_n_1
// for every tuple size, and ToR_0_n for sizes of two or more.
//
// # Forwarding adapters
//
// A ForwardN value holds a callable of type F by value and applies
// TN tuples to it:
//
//	add := tuplefunc.NewForward2(func(x, y int) int { return x + y })
//	add.Apply(tuple.Mk2(2, 3)) // 5
//
// F is anything with a Call method of the right shape; see CallerN.
// NewForwardN adapts an ordinary function and ForwardOfN takes any
// CallerN; a ForwardN literal can also be built directly from
// whatever produces the callable.
//
// ForwardN.Apply has a value receiver, so when F is a value type each
// call sees the callable as it was stored and cannot change it. When F
// is a pointer type, the callable changes the state it points to, which
// is shared by every copy of the ForwardN.
//
// ForwardMutN is for a callable T whose Call method has a pointer
// receiver. It holds T itself and its Apply method has a pointer
// receiver too, so the callable's changes to itself stay inside that
// ForwardMutN:
//
//	var f tuplefunc.ForwardMut1[counter, int, int, *counter]
//	f.Apply(tuple.Mk1(2))
//
// ForwardActN is the same as ForwardN for callables that return
// nothing (see ActorN and ActN).
//
// None of these adapters add locking. Concurrent calls to Apply are safe
// exactly when concurrent calls to the callable's Call method are; for
// a ForwardMutN that means Call must do its own synchronization.
//
// Nothing in this package adds failure modes of its own: errors and
// panics from the callable reach the caller unchanged.
package tuplefunc

//go:generate go run generate.go
