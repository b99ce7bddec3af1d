package tuple_test

import (
	"testing"
	"testing/quick"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"

	"github.com/rogpeppe/generic/tuple"
)

func TestUnwrapSingle(t *testing.T) {
	c := qt.New(t)
	var got int = tuple.Mk1(5).Unwrap()
	c.Assert(got, qt.Equals, 5)

	s := tuple.Mk1("hello").Unwrap()
	c.Assert(s, qt.Equals, "hello")
}

func TestUnwrapRefSharesStorage(t *testing.T) {
	c := qt.New(t)
	x := tuple.Mk1(5)
	p := x.UnwrapRef()
	*p = 7
	c.Assert(x.V0, qt.Equals, 7)

	// The value form is a copy.
	v := x.Unwrap()
	c.Assert(&v, qt.Not(qt.Equals), p)
}

func TestUnwrapRefThroughSlice(t *testing.T) {
	c := qt.New(t)
	packs := []tuple.T1[[]int]{
		tuple.Mk1([]int{1, 2}),
		tuple.Mk1([]int{3}),
	}
	for i := range packs {
		p := packs[i].UnwrapRef()
		*p = append(*p, 99)
	}
	c.Assert(packs, qt.DeepEquals, []tuple.T1[[]int]{
		tuple.Mk1([]int{1, 2, 99}),
		tuple.Mk1([]int{3, 99}),
	})
}

func TestUnwrapEmpty(t *testing.T) {
	c := qt.New(t)
	var got tuple.T0 = tuple.Mk0().Unwrap()
	c.Assert(got, qt.Equals, tuple.T0{})
	c.Assert(got.Len(), qt.Equals, 0)

	x := tuple.Mk0()
	c.Assert(x.UnwrapRef(), qt.Equals, &x)
}

func TestUnwrapMultiple(t *testing.T) {
	c := qt.New(t)
	var two tuple.T2[int, int] = tuple.Mk2(2, 3).Unwrap()
	c.Assert(two, qt.Equals, tuple.Mk2(2, 3))

	three := tuple.Mk3(1, "a", true).Unwrap()
	c.Assert(three, qt.Equals, tuple.Mk3(1, "a", true))

	six := tuple.Mk6(1, 2, 3, 4, 5, 6)
	c.Assert(six.Unwrap(), qt.Equals, six)
	c.Assert(six.UnwrapRef(), qt.Equals, &six)
}

func TestUnwrapRefMultipleSharesStorage(t *testing.T) {
	c := qt.New(t)
	x := tuple.Mk2(2, "b")
	p := x.UnwrapRef()
	p.V0 = 20
	c.Assert(x, qt.Equals, tuple.Mk2(20, "b"))
}

func TestUnwrapDoesNotFlatten(t *testing.T) {
	c := qt.New(t)
	inner := tuple.Mk2(1, "a")
	var got tuple.T2[int, string] = tuple.Mk1(inner).Unwrap()
	c.Assert(got, qt.Equals, inner)

	var nested tuple.T1[int] = tuple.Mk1(tuple.Mk1(4)).Unwrap()
	c.Assert(nested, qt.Equals, tuple.Mk1(4))
}

func TestUnwrapPreservesContent(t *testing.T) {
	c := qt.New(t)
	f := func(a int, b string, d []byte) bool {
		x := tuple.Mk3(a, b, d)
		return cmp.Equal(x.Unwrap(), x)
	}
	c.Assert(quick.Check(f, nil), qt.IsNil)

	g := func(a int) bool {
		return tuple.Mk1(a).Unwrap() == a
	}
	c.Assert(quick.Check(g, nil), qt.IsNil)
}

var lenTests = []struct {
	t    tuple.Tuple
	want int
}{
	{tuple.Mk0(), 0},
	{tuple.Mk1(1), 1},
	{tuple.Mk2(1, 2), 2},
	{tuple.Mk3(1, 2, 3), 3},
	{tuple.Mk4(1, 2, 3, 4), 4},
	{tuple.Mk5(1, 2, 3, 4, 5), 5},
	{tuple.Mk6(1, 2, 3, 4, 5, 6), tuple.MaxArity},
}

func TestLen(t *testing.T) {
	c := qt.New(t)
	for _, test := range lenTests {
		c.Check(test.t.Len(), qt.Equals, test.want, qt.Commentf("%T", test.t))
	}
}

func TestValues(t *testing.T) {
	c := qt.New(t)
	a, b, d := tuple.Mk3(1, "x", 2.5).Values()
	c.Assert(a, qt.Equals, 1)
	c.Assert(b, qt.Equals, "x")
	c.Assert(d, qt.Equals, 2.5)

	c.Assert(tuple.Mk1('r').Values(), qt.Equals, 'r')
}

func TestString(t *testing.T) {
	c := qt.New(t)
	c.Assert(tuple.Mk0().String(), qt.Equals, "()")
	c.Assert(tuple.Mk1(5).String(), qt.Equals, "(5)")
	c.Assert(tuple.Mk2(2, 3).String(), qt.Equals, "(2, 3)")
	c.Assert(tuple.Mk3("a", 1, true).String(), qt.Equals, "(a, 1, true)")
	c.Assert(tuple.Mk1(tuple.Mk2(1, 2)).String(), qt.Equals, "((1, 2))")
}
