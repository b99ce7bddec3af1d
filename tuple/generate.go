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

// maxArity must agree with MaxArity in doc.go.
const maxArity = 6

var output = flag.String("o", "tuple_gen.go", "output file")

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

// arity holds the names used when generating the declarations
// for a single tuple size.
type arity struct {
	N int
	// Types holds the type parameter names, A0, A1, etc.
	Types []string
	// Fields holds the field names, V0, V1, etc.
	Fields []string
	// Args holds the argument names, a0, a1, etc.
	Args []string
}

func arities(maxN int) []arity {
	as := make([]arity, maxN+1)
	for n := range as {
		a := arity{N: n}
		for i := 0; i < n; i++ {
			a.Types = append(a.Types, "A"+strconv.Itoa(i))
			a.Fields = append(a.Fields, "V"+strconv.Itoa(i))
			a.Args = append(a.Args, "a"+strconv.Itoa(i))
		}
		as[n] = a
	}
	return as
}

// TypeParams returns the type parameter list, including brackets.
func (a arity) TypeParams() string {
	if a.N == 0 {
		return ""
	}
	return "[" + strings.Join(a.Types, ", ") + " any]"
}

// TypeArgs returns the type argument list, including brackets.
func (a arity) TypeArgs() string {
	if a.N == 0 {
		return ""
	}
	return "[" + strings.Join(a.Types, ", ") + "]"
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

func (a arity) ResultTypes() string {
	if a.N < 2 {
		return strings.Join(a.Types, ", ")
	}
	return "(" + strings.Join(a.Types, ", ") + ")"
}

func (a arity) FieldRefs() string {
	rs := make([]string, a.N)
	for i := range rs {
		rs[i] = "t." + a.Fields[i]
	}
	return strings.Join(rs, ", ")
}

func (a arity) Format() string {
	return `"(` + strings.TrimSuffix(strings.Repeat("%v, ", a.N), ", ") + `)"`
}

var tmpl = template.Must(template.New("").Parse(`// Code generated by generate.go; DO NOT EDIT.

package tuple

import "fmt"

{{range .}}{{$a := .}}{{$T := printf "T%d%s" .N .TypeArgs}}
{{- if eq .N 0}}
// T0 holds the empty tuple.
type T0 struct{}
{{- else}}
// T{{.N}} holds a tuple of {{.N}} value{{if ne .N 1}}s{{end}}.
type T{{.N}}{{.TypeParams}} struct {
{{- range $i, $f := .Fields}}
	{{$f}} {{index $a.Types $i}}
{{- end}}
}
{{- end}}

// Mk{{.N}} returns a T{{.N}} holding the given values.
func Mk{{.N}}{{.TypeParams}}({{.Params}}) {{$T}} {
	return {{$T}}{ {{- .ArgList -}} }
}

// Len returns {{.N}}.
func ({{$T}}) Len() int {
	return {{.N}}
}

// Values returns the elements of t as multiple values.
func (t {{$T}}) Values() {{.ResultTypes}} {
{{- if ne .N 0}}
	return {{.FieldRefs}}
{{- end}}
}

func (t {{$T}}) String() string {
{{- if eq .N 0}}
	return "()"
{{- else}}
	return fmt.Sprintf({{.Format}}, {{.FieldRefs}})
{{- end}}
}
{{if eq .N 1}}
// Unwrap returns the single element of t.
func (t {{$T}}) Unwrap() A0 {
	return t.V0
}

// UnwrapRef returns a pointer to the single element of *t.
// Changes made through the pointer are visible in *t.
func (t *{{$T}}) UnwrapRef() *A0 {
	return &t.V0
}
{{else}}
// Unwrap returns t unchanged. Only a T1 unwraps to its element.
func (t {{$T}}) Unwrap() {{$T}} {
	return t
}

// UnwrapRef returns t unchanged.
func (t *{{$T}}) UnwrapRef() *{{$T}} {
	return t
}
{{end}}{{end}}`))
