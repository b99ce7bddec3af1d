package tuplefunc_test

import (
	"fmt"
	"strings"

	"github.com/rogpeppe/generic/tuple"
	"github.com/rogpeppe/generic/tuple/tuplefunc"
)

func ExampleNewForward2() {
	f := tuplefunc.NewForward2(func(x, y int) int {
		return x + y
	})
	fmt.Println(f.Apply(tuple.Mk2(2, 3)))
	// Output:
	// 5
}

// This example applies a list of queued argument packs to a single
// callback, as a dispatcher might.
func ExampleForward2_Apply() {
	queue := []tuple.T2[string, int]{
		tuple.Mk2("a", 1),
		tuple.Mk2("b", 3),
	}
	f := tuplefunc.NewForward2(strings.Repeat)
	for _, args := range queue {
		fmt.Println(f.Apply(args))
	}
	// Output:
	// a
	// bbb
}

// This example collects multiple results into a tuple.
func Example_collectResults() {
	f := tuplefunc.ToR_0_2(func() (string, bool) {
		return "ok", true
	})
	fmt.Println(f())
	// Output:
	// (ok, true)
}
