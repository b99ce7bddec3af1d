//go:build ignore

package main

import (
	"bytes"
	"flag"
	"go/format"
	"log"
	"os"
	"strconv"
	"strings"
	"text/template"
)

// maxArity must agree with tuple.MaxArity.
const maxArity = 6

var output = flag.String("o", "tuplefunc_gen.go", "output file")

func main() {
	flag.Parse()
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities(maxArity)); err != nil {
		log.Fatal(err)
	}
	data, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated source: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile(*output, data, 0o666); err != nil {
		log.Fatal(err)
	}
}

type arity struct {
	N     int
	Types []string
	Args  []string
}

func arities(maxN int) []arity {
	as := make([]arity, maxN+1)
	for n := range as {
		a := arity{N: n}
		for i := 0; i < n; i++ {
			a.Types = append(a.Types, "A"+strconv.Itoa(i))
			a.Args = append(a.Args, "a"+strconv.Itoa(i))
		}
		as[n] = a
	}
	return as
}

// TypeParams returns a type parameter list holding the
// argument types followed by extra.
func (a arity) TypeParams(extra ...string) string {
	ts := append(append([]string(nil), a.Types...), extra...)
	if len(ts) == 0 {
		return ""
	}
	return "[" + strings.Join(ts, ", ") + " any]"
}

// TypeArgs is like TypeParams but without the constraint.
func (a arity) TypeArgs(extra ...string) string {
	ts := append(append([]string(nil), a.Types...), extra...)
	if len(ts) == 0 {
		return ""
	}
	return "[" + strings.Join(ts, ", ") + "]"
}

// Tuple returns the tuple type holding the arguments.
func (a arity) Tuple() string {
	return "tuple.T" + strconv.Itoa(a.N) + a.TypeArgs()
}

func (a arity) ArgTypes() string {
	return strings.Join(a.Types, ", ")
}

// CtxArgTypes is like ArgTypes but with a leading context.Context.
func (a arity) CtxArgTypes() string {
	return strings.Join(append([]string{"context.Context"}, a.Types...), ", ")
}

func (a arity) Params() string {
	ps := make([]string, a.N)
	for i := range ps {
		ps[i] = a.Args[i] + " " + a.Types[i]
	}
	return strings.Join(ps, ", ")
}

func (a arity) ArgList() string {
	return strings.Join(a.Args, ", ")
}

// TupleParam returns the parameter declaration for the tuple
// argument, using the blank identifier when it has no elements.
func (a arity) TupleParam() string {
	if a.N == 0 {
		return "_ " + a.Tuple()
	}
	return "t " + a.Tuple()
}

// Spread returns the expressions for all the tuple fields.
func (a arity) Spread() string {
	fs := make([]string, a.N)
	for i := range fs {
		fs[i] = "t.V" + strconv.Itoa(i)
	}
	return strings.Join(fs, ", ")
}

// ResultTypes returns the type parameters used for multiple results.
func (a arity) ResultTypes() []string {
	rs := make([]string, a.N)
	for i := range rs {
		rs[i] = "R" + strconv.Itoa(i)
	}
	return rs
}

func (a arity) ResultParams() string {
	return "[" + strings.Join(a.ResultTypes(), ", ") + " any]"
}

func (a arity) ResultList() string {
	return strings.Join(a.ResultTypes(), ", ")
}

func (a arity) ResultTuple() string {
	return "tuple.T" + strconv.Itoa(a.N) + "[" + a.ResultList() + "]"
}

func (a arity) ResultVars() string {
	rs := a.ResultTypes()
	for i := range rs {
		rs[i] = "r" + strconv.Itoa(i)
	}
	return strings.Join(rs, ", ")
}

var tmpl = template.Must(template.New("").Parse(`// Code generated by generate.go; DO NOT EDIT.

package tuplefunc

import (
	"context"

	"github.com/rogpeppe/generic/tuple"
)

{{range .}}
// Caller{{.N}} is implemented by values that can be called
// with {{.N}} argument{{if ne .N 1}}s{{end}}.
type Caller{{.N}}{{.TypeParams "R"}} interface {
	Call({{.ArgTypes}}) R
}

// Func{{.N}} is an ordinary function that implements Caller{{.N}}.
type Func{{.N}}{{.TypeParams "R"}} func({{.ArgTypes}}) R

// Call implements Caller{{.N}} by calling f.
func (f Func{{.N}}{{.TypeArgs "R"}}) Call({{.Params}}) R {
	return f({{.ArgList}})
}

// Forward{{.N}} holds a callable of type F and calls it with
// the elements of a T{{.N}}.
type Forward{{.N}}[F Caller{{.N}}{{.TypeArgs "R"}}, {{with .ArgTypes}}{{.}}, {{end}}R any] struct {
	Fn F
}

// NewForward{{.N}} returns a Forward{{.N}} holding f.
func NewForward{{.N}}{{.TypeParams "R"}}(f func({{.ArgTypes}}) R) Forward{{.N}}[Func{{.N}}{{.TypeArgs "R"}}, {{with .ArgTypes}}{{.}}, {{end}}R] {
	return Forward{{.N}}[Func{{.N}}{{.TypeArgs "R"}}, {{with .ArgTypes}}{{.}}, {{end}}R]{Fn: f}
}

// ForwardOf{{.N}} returns a Forward{{.N}} holding a copy of f.
func ForwardOf{{.N}}[F Caller{{.N}}{{.TypeArgs "R"}}, {{with .ArgTypes}}{{.}}, {{end}}R any](f F) Forward{{.N}}[F, {{with .ArgTypes}}{{.}}, {{end}}R] {
	return Forward{{.N}}[F, {{with .ArgTypes}}{{.}}, {{end}}R]{Fn: f}
}

// Apply calls the held callable with the elements of t
// as arguments and returns its result.
func (f Forward{{.N}}[F, {{with .ArgTypes}}{{.}}, {{end}}R]) Apply({{.TupleParam}}) R {
	return f.Fn.Call({{.Spread}})
}

// CallerPtr{{.N}} is satisfied by *T when *T implements Caller{{.N}}.
type CallerPtr{{.N}}[T any, {{with .ArgTypes}}{{.}}, {{end}}R any] interface {
	*T
	Caller{{.N}}{{.TypeArgs "R"}}
}

// ForwardMut{{.N}} is like Forward{{.N}} for a callable whose Call method
// has a pointer receiver. It holds its own T, so changes the callable
// makes to itself are kept in the ForwardMut{{.N}} and are not shared
// with copies of it.
type ForwardMut{{.N}}[T any, {{with .ArgTypes}}{{.}}, {{end}}R any, PT CallerPtr{{.N}}[T, {{with .ArgTypes}}{{.}}, {{end}}R]] struct {
	Fn T
}

// ForwardMutOf{{.N}} returns a ForwardMut{{.N}} holding a copy of f.
func ForwardMutOf{{.N}}[T any, {{with .ArgTypes}}{{.}}, {{end}}R any, PT CallerPtr{{.N}}[T, {{with .ArgTypes}}{{.}}, {{end}}R]](f T) ForwardMut{{.N}}[T, {{with .ArgTypes}}{{.}}, {{end}}R, PT] {
	return ForwardMut{{.N}}[T, {{with .ArgTypes}}{{.}}, {{end}}R, PT]{Fn: f}
}

// Apply calls the held callable through a pointer to f.Fn with the
// elements of t as arguments and returns its result.
func (f *ForwardMut{{.N}}[T, {{with .ArgTypes}}{{.}}, {{end}}R, PT]) Apply({{.TupleParam}}) R {
	return PT(&f.Fn).Call({{.Spread}})
}

// Actor{{.N}} is implemented by values that can be called
// with {{.N}} argument{{if ne .N 1}}s{{end}} and return nothing.
type Actor{{.N}}{{.TypeParams}} interface {
	Call({{.ArgTypes}})
}

// Act{{.N}} is an ordinary function that implements Actor{{.N}}.
type Act{{.N}}{{.TypeParams}} func({{.ArgTypes}})

// Call implements Actor{{.N}} by calling f.
func (f Act{{.N}}{{.TypeArgs}}) Call({{.Params}}) {
	f({{.ArgList}})
}

// ForwardAct{{.N}} is like Forward{{.N}} for a callable with no result.
type ForwardAct{{.N}}[F Actor{{.N}}{{.TypeArgs}}{{with .ArgTypes}}, {{.}} any{{end}}] struct {
	Fn F
}

// NewForwardAct{{.N}} returns a ForwardAct{{.N}} holding f.
func NewForwardAct{{.N}}{{.TypeParams}}(f func({{.ArgTypes}})) ForwardAct{{.N}}[Act{{.N}}{{.TypeArgs}}{{with .ArgTypes}}, {{.}}{{end}}] {
	return ForwardAct{{.N}}[Act{{.N}}{{.TypeArgs}}{{with .ArgTypes}}, {{.}}{{end}}]{Fn: f}
}

// ForwardActOf{{.N}} returns a ForwardAct{{.N}} holding a copy of f.
func ForwardActOf{{.N}}[F Actor{{.N}}{{.TypeArgs}}{{with .ArgTypes}}, {{.}} any{{end}}](f F) ForwardAct{{.N}}[F{{with .ArgTypes}}, {{.}}{{end}}] {
	return ForwardAct{{.N}}[F{{with .ArgTypes}}, {{.}}{{end}}]{Fn: f}
}

// Apply calls the held callable with the elements of t as arguments.
func (f ForwardAct{{.N}}[F{{with .ArgTypes}}, {{.}}{{end}}]) Apply({{.TupleParam}}) {
	f.Fn.Call({{.Spread}})
}

// ToA_{{.N}}_0 converts a function with {{.N}} argument{{if ne .N 1}}s{{end}} and no
// results to a function that takes a single tuple argument.
func ToA_{{.N}}_0{{.TypeParams}}(f func({{.ArgTypes}})) func({{.Tuple}}) {
	return func({{.TupleParam}}) {
		f({{.Spread}})
	}
}

// ToA_{{.N}}_1 converts a function with {{.N}} argument{{if ne .N 1}}s{{end}} to a function
// that takes a single tuple argument.
func ToA_{{.N}}_1{{.TypeParams "R"}}(f func({{.ArgTypes}}) R) func({{.Tuple}}) R {
	return func({{.TupleParam}}) R {
		return f({{.Spread}})
	}
}

// ToAE_{{.N}}_1 is like ToA_{{.N}}_1 for a function that also returns an error.
func ToAE_{{.N}}_1{{.TypeParams "R"}}(f func({{.ArgTypes}}) (R, error)) func({{.Tuple}}) (R, error) {
	return func({{.TupleParam}}) (R, error) {
		return f({{.Spread}})
	}
}

// ToCAE_{{.N}}_1 is like ToAE_{{.N}}_1 for a function that also takes a context.
func ToCAE_{{.N}}_1{{.TypeParams "R"}}(f func({{.CtxArgTypes}}) (R, error)) func(context.Context, {{.Tuple}}) (R, error) {
	return func(ctx context.Context, {{.TupleParam}}) (R, error) {
		return f(ctx{{with .Spread}}, {{.}}{{end}})
	}
}

// FromA_{{.N}}_1 is the inverse of ToA_{{.N}}_1.
func FromA_{{.N}}_1{{.TypeParams "R"}}(f func({{.Tuple}}) R) func({{.ArgTypes}}) R {
	return func({{.Params}}) R {
		return f(tuple.Mk{{.N}}({{.ArgList}}))
	}
}
{{if ge .N 2}}
// ToR_0_{{.N}} converts a function with {{.N}} results to a function
// that returns a single tuple.
func ToR_0_{{.N}}{{.ResultParams}}(f func() ({{.ResultList}})) func() {{.ResultTuple}} {
	return func() {{.ResultTuple}} {
		{{.ResultVars}} := f()
		return tuple.Mk{{.N}}({{.ResultVars}})
	}
}
{{end}}{{end}}`))
