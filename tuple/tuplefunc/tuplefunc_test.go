package tuplefunc_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"testing/quick"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"

	"github.com/rogpeppe/generic/tuple"
	"github.com/rogpeppe/generic/tuple/tuplefunc"
)

func add(x, y int) int {
	return x + y
}

func TestNewForwardApply(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.NewForward2(add)
	c.Assert(f.Apply(tuple.Mk2(2, 3)), qt.Equals, 5)
}

func TestForwardMatchesDirectCall(t *testing.T) {
	c := qt.New(t)
	join := func(a string, n int, b []string) string {
		return fmt.Sprintf("%s:%d:%s", a, n, strings.Join(b, ","))
	}
	f := tuplefunc.NewForward3(join)
	check := func(a string, n int, b []string) bool {
		return f.Apply(tuple.Mk3(a, n, b)) == join(a, n, b)
	}
	c.Assert(quick.Check(check, nil), qt.IsNil)
}

func TestForwardAllArities(t *testing.T) {
	c := qt.New(t)
	c.Check(tuplefunc.NewForward0(func() int {
		return 42
	}).Apply(tuple.Mk0()), qt.Equals, 42)
	c.Check(tuplefunc.NewForward1(func(a int) int {
		return a
	}).Apply(tuple.Mk1(1)), qt.Equals, 1)
	c.Check(tuplefunc.NewForward4(func(a, b, d, e int) int {
		return a + b + d + e
	}).Apply(tuple.Mk4(1, 2, 3, 4)), qt.Equals, 10)
	c.Check(tuplefunc.NewForward5(func(a, b, d, e, f int) []int {
		return []int{a, b, d, e, f}
	}).Apply(tuple.Mk5(1, 2, 3, 4, 5)), qt.DeepEquals, []int{1, 2, 3, 4, 5})
	c.Check(tuplefunc.NewForward6(func(a int, b string, d bool, e float64, f rune, g byte) string {
		return fmt.Sprint(a, b, d, e, string(f), g)
	}).Apply(tuple.Mk6(1, "x", true, 1.5, 'r', byte(7))), qt.Equals, "1xtrue 1.5r7")
}

// adder is a value-typed callable.
type adder struct {
	base int
}

func newAdder(base int) adder {
	return adder{base: base}
}

func (a adder) Call(x, y int) int {
	return a.base + x + y
}

func TestForwardOfMatchesLiteral(t *testing.T) {
	c := qt.New(t)
	fromValue := tuplefunc.ForwardOf2[adder, int, int, int](adder{base: 10})
	fromCtor := tuplefunc.Forward2[adder, int, int, int]{Fn: newAdder(10)}
	c.Assert(fromValue, qt.Equals, fromCtor)
	for _, args := range []tuple.T2[int, int]{{0, 0}, {2, 3}, {-7, 100}} {
		c.Assert(fromValue.Apply(args), qt.Equals, fromCtor.Apply(args))
		c.Assert(fromValue.Apply(args), qt.Equals, 10+args.V0+args.V1)
	}
}

func TestForwardOfOwnsCopy(t *testing.T) {
	c := qt.New(t)
	a := adder{base: 1}
	f := tuplefunc.ForwardOf2[adder, int, int, int](a)
	a.base = 1000
	c.Assert(f.Apply(tuple.Mk2(1, 1)), qt.Equals, 3)
}

// stamp tries to record how often it has been called, but
// its Call method has a value receiver.
type stamp struct {
	calls int
}

func (s stamp) Call() int {
	s.calls++
	return s.calls
}

func TestForwardValueCallerIsStable(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ForwardOf0[stamp, int](stamp{})
	for i := 0; i < 3; i++ {
		c.Assert(f.Apply(tuple.Mk0()), qt.Equals, 1)
	}
	c.Assert(f.Fn.calls, qt.Equals, 0)
}

// counter is a callable that accumulates its arguments.
type counter struct {
	total int
}

func (c *counter) Call(x int) int {
	c.total += x
	return c.total
}

func TestForwardPointerCallerMutates(t *testing.T) {
	c := qt.New(t)
	var cnt counter
	f := tuplefunc.ForwardOf1[*counter, int, int](&cnt)
	c.Assert(f.Apply(tuple.Mk1(2)), qt.Equals, 2)
	c.Assert(f.Apply(tuple.Mk1(3)), qt.Equals, 5)
	c.Assert(cnt.total, qt.Equals, 5)
}

func TestForwardDoesNotModifyTuple(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.NewForward2(func(s []int, n int) int {
		n *= 2
		s = append(s[:0:0], n)
		return len(s)
	})
	args := tuple.Mk2([]int{1, 2, 3}, 4)
	c.Assert(f.Apply(args), qt.Equals, 1)
	c.Assert(args, qt.DeepEquals, tuple.Mk2([]int{1, 2, 3}, 4))
}

func TestForwardPanicPropagates(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.NewForward1(func(s string) int {
		panic("bad argument " + s)
	})
	c.Assert(func() {
		f.Apply(tuple.Mk1("x"))
	}, qt.PanicMatches, "bad argument x")
}

func TestForwardConcurrentApply(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ForwardOf2[adder, int, int, int](adder{base: 1})
	var wg sync.WaitGroup
	results := make([]int, 20)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = f.Apply(tuple.Mk2(i, i))
		}()
	}
	wg.Wait()
	for i, r := range results {
		c.Check(r, qt.Equals, 1+2*i)
	}
}

func TestToA(t *testing.T) {
	c := qt.New(t)
	var got []string
	record := tuplefunc.ToA_2_0(func(s string, n int) {
		got = append(got, fmt.Sprint(s, n))
	})
	record(tuple.Mk2("a", 1))
	record(tuple.Mk2("b", 2))
	c.Assert(got, qt.DeepEquals, []string{"a1", "b2"})

	ran := false
	tuplefunc.ToA_0_0(func() {
		ran = true
	})(tuple.Mk0())
	c.Assert(ran, qt.IsTrue)

	c.Assert(tuplefunc.ToA_2_1(add)(tuple.Mk2(2, 3)), qt.Equals, 5)
}

func TestToAMatchesDirectCall(t *testing.T) {
	c := qt.New(t)
	swap := func(a int, b string) tuple.T2[string, int] {
		return tuple.Mk2(b, a)
	}
	tf := tuplefunc.ToA_2_1(swap)
	check := func(a int, b string) bool {
		return cmp.Equal(tf(tuple.Mk2(a, b)), swap(a, b))
	}
	c.Assert(quick.Check(check, nil), qt.IsNil)
}

var errNegative = errors.New("negative")

func sqrtInt(n int) (int, error) {
	if n < 0 {
		return 0, errNegative
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r, nil
}

func TestToAEPassesErrorThrough(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToAE_1_1(sqrtInt)
	r, err := f(tuple.Mk1(17))
	c.Assert(err, qt.IsNil)
	c.Assert(r, qt.Equals, 4)

	_, err = f(tuple.Mk1(-1))
	c.Assert(err, qt.Equals, errNegative)
}

type ctxKey struct{}

func TestToCAE(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToCAE_2_1(func(ctx context.Context, a, b string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return fmt.Sprint(ctx.Value(ctxKey{}), a, b), nil
	})
	ctx := context.WithValue(context.Background(), ctxKey{}, "x")
	r, err := f(ctx, tuple.Mk2("y", "z"))
	c.Assert(err, qt.IsNil)
	c.Assert(r, qt.Equals, "xyz")

	ctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = f(ctx, tuple.Mk2("y", "z"))
	c.Assert(err, qt.Equals, context.Canceled)
}

func TestFromAInvertsToA(t *testing.T) {
	c := qt.New(t)
	sum := tuplefunc.FromA_3_1(func(t tuple.T3[int, int, int]) int {
		return t.V0 + t.V1 + t.V2
	})
	c.Assert(sum(1, 2, 3), qt.Equals, 6)

	round := tuplefunc.FromA_2_1(tuplefunc.ToA_2_1(add))
	c.Assert(round(20, 22), qt.Equals, 42)

	zero := tuplefunc.FromA_0_1(func(t tuple.T0) int {
		return t.Len()
	})
	c.Assert(zero(), qt.Equals, 0)
}

func TestToR(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToR_0_3(func() (int, string, bool) {
		return 1, "two", true
	})
	c.Assert(f(), qt.Equals, tuple.Mk3(1, "two", true))
}

func TestFuncImplementsCaller(t *testing.T) {
	c := qt.New(t)
	var caller tuplefunc.Caller2[int, int, int] = tuplefunc.Func2[int, int, int](add)
	c.Assert(caller.Call(4, 5), qt.Equals, 9)

	f := tuplefunc.ForwardOf2[tuplefunc.Caller2[int, int, int], int, int, int](caller)
	c.Assert(f.Apply(tuple.Mk2(4, 5)), qt.Equals, 9)
}

func TestForwardUnwrappedResult(t *testing.T) {
	c := qt.New(t)
	// A callable returning a one-element tuple can have its result
	// unwrapped without knowing anything else about it.
	f := tuplefunc.NewForward2(func(a, b int) tuple.T1[int] {
		return tuple.Mk1(a * b)
	})
	c.Assert(f.Apply(tuple.Mk2(6, 7)).Unwrap(), qt.Equals, 42)
}

func TestForwardMutCopiesHaveOwnState(t *testing.T) {
	c := qt.New(t)
	cnt := counter{total: 100}
	f1 := tuplefunc.ForwardMutOf1[counter, int, int](cnt)
	f2 := f1
	c.Assert(f1.Apply(tuple.Mk1(10)), qt.Equals, 110)
	c.Assert(f2.Apply(tuple.Mk1(1)), qt.Equals, 101)
	c.Assert(f1.Apply(tuple.Mk1(10)), qt.Equals, 120)
	c.Assert(f1.Fn.total, qt.Equals, 120)
	c.Assert(f2.Fn.total, qt.Equals, 101)
	c.Assert(cnt.total, qt.Equals, 100)
}

func TestForwardMutZeroValue(t *testing.T) {
	c := qt.New(t)
	var f tuplefunc.ForwardMut1[counter, int, int, *counter]
	c.Assert(f.Apply(tuple.Mk1(2)), qt.Equals, 2)
	c.Assert(f.Apply(tuple.Mk1(3)), qt.Equals, 5)
}

// lockedCounter is like counter but safe for concurrent use.
type lockedCounter struct {
	mu    sync.Mutex
	total int
}

func (c *lockedCounter) Call(x int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total += x
	return c.total
}

func TestForwardMutConcurrentApply(t *testing.T) {
	c := qt.New(t)
	// Concurrent calls to a ForwardMut are only safe because
	// lockedCounter.Call is.
	var f tuplefunc.ForwardMut1[lockedCounter, int, int, *lockedCounter]
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Apply(tuple.Mk1(1))
		}()
	}
	wg.Wait()
	c.Assert(f.Fn.total, qt.Equals, 20)
}

func TestForwardActNoResult(t *testing.T) {
	c := qt.New(t)
	var got []string
	f := tuplefunc.NewForwardAct2(func(s string, n int) {
		got = append(got, strings.Repeat(s, n))
	})
	f.Apply(tuple.Mk2("a", 2))
	f.Apply(tuple.Mk2("b", 1))
	c.Assert(got, qt.DeepEquals, []string{"aa", "b"})

	calls := 0
	tuplefunc.NewForwardAct0(func() {
		calls++
	}).Apply(tuple.Mk0())
	c.Assert(calls, qt.Equals, 1)
}

// logger is a callable with no result.
type logger struct {
	lines *[]string
}

func (l logger) Call(s string) {
	*l.lines = append(*l.lines, s)
}

func TestForwardActOf(t *testing.T) {
	c := qt.New(t)
	var lines []string
	f := tuplefunc.ForwardActOf1[logger, string](logger{lines: &lines})
	f.Apply(tuple.Mk1("one"))
	f.Apply(tuple.Mk1("two"))
	c.Assert(lines, qt.DeepEquals, []string{"one", "two"})

	var a tuplefunc.Actor1[string] = tuplefunc.Act1[string](func(s string) {
		lines = append(lines, s)
	})
	a.Call("three")
	c.Assert(lines, qt.HasLen, 3)
}

func TestForwardActPanicPropagates(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.NewForwardAct1(func(n int) {
		panic(fmt.Sprintf("cannot handle %d", n))
	})
	c.Assert(func() {
		f.Apply(tuple.Mk1(3))
	}, qt.PanicMatches, "cannot handle 3")
}
