// Command gentuple writes the TupleN composite types of package state, one
// specialization per arity.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"strings"
	"text/template"
)

type member struct {
	Index  int
	Letter string
}

type tuple struct {
	N          int
	Name       string
	TypeParams string
	TypeArgs   string
	Params     string
	Members    []member
}

// each operator family shares one method body shape
var (
	binary       = []string{"Add", "Sub", "Mul", "Div"}
	binaryAssign = []string{"AddAssign", "SubAssign", "MulAssign", "DivAssign", "Assign"}
	unary        = []string{"Clone", "Zero", "Neg", "Abs"}
	scalar       = []string{"AddScalar", "SubScalar", "SubFrom", "MulScalar", "DivScalar"}
	scalarAssign = []string{"AddScalarAssign", "SubScalarAssign", "MulScalarAssign", "DivScalarAssign"}
)

const letters = "ABCDEFGH"

type genData struct {
	Tuples       []tuple
	Unary        []string
	Binary       []string
	BinaryAssign []string
	Scalar       []string
	ScalarAssign []string
}

func newTuple(n int) tuple {
	t := tuple{N: n, Name: fmt.Sprintf("Tuple%d", n)}
	var tp, ta, ps []string
	for i := 0; i < n; i++ {
		l := string(letters[i])
		t.Members = append(t.Members, member{Index: i, Letter: l})
		tp = append(tp, fmt.Sprintf("%s Vector[%s, S]", l, l))
		ta = append(ta, l)
		ps = append(ps, fmt.Sprintf("m%d %s", i, l))
	}
	t.TypeParams = strings.Join(append(tp, "S Scalar"), ", ")
	t.TypeArgs = strings.Join(append(ta, "S"), ", ")
	t.Params = strings.Join(ps, ", ")
	return t
}

var tmpl = template.Must(template.New("tuples").Parse(`// Code generated by gentuple; DO NOT EDIT.

package state
{{range $t := .Tuples}}
// {{$t.Name}} is a composite of {{$t.N}} members combined position-wise.
type {{$t.Name}}[{{$t.TypeParams}}] struct {
{{- range $t.Members}}
	M{{.Index}} {{.Letter}}
{{- end}}
}

// New{{$t.Name}} builds a composite that owns the given members.
func New{{$t.Name}}[{{$t.TypeParams}}]({{$t.Params}}) *{{$t.Name}}[{{$t.TypeArgs}}] {
	return &{{$t.Name}}[{{$t.TypeArgs}}]{ {{- range $i, $m := $t.Members}}{{if $i}}, {{end}}M{{$m.Index}}: m{{$m.Index}}{{end -}} }
}

// Len returns the number of members.
func (t *{{$t.Name}}[{{$t.TypeArgs}}]) Len() int { return {{$t.N}} }

// NormInf returns the largest member norm.
func (t *{{$t.Name}}[{{$t.TypeArgs}}]) NormInf() float64 {
	return maxNorm({{range $i, $m := $t.Members}}{{if $i}}, {{end}}t.M{{$m.Index}}.NormInf(){{end}})
}
{{range $op := $.Unary}}
func (t *{{$t.Name}}[{{$t.TypeArgs}}]) {{$op}}() *{{$t.Name}}[{{$t.TypeArgs}}] {
	return &{{$t.Name}}[{{$t.TypeArgs}}]{ {{- range $i, $m := $t.Members}}{{if $i}}, {{end}}M{{$m.Index}}: t.M{{$m.Index}}.{{$op}}(){{end -}} }
}
{{end}}
{{- range $op := $.Binary}}
func (t *{{$t.Name}}[{{$t.TypeArgs}}]) {{$op}}(o *{{$t.Name}}[{{$t.TypeArgs}}]) *{{$t.Name}}[{{$t.TypeArgs}}] {
	return &{{$t.Name}}[{{$t.TypeArgs}}]{ {{- range $i, $m := $t.Members}}{{if $i}}, {{end}}M{{$m.Index}}: t.M{{$m.Index}}.{{$op}}(o.M{{$m.Index}}){{end -}} }
}
{{end}}
{{- range $op := $.BinaryAssign}}
func (t *{{$t.Name}}[{{$t.TypeArgs}}]) {{$op}}(o *{{$t.Name}}[{{$t.TypeArgs}}]) *{{$t.Name}}[{{$t.TypeArgs}}] {
{{- range $t.Members}}
	t.M{{.Index}} = t.M{{.Index}}.{{$op}}(o.M{{.Index}})
{{- end}}
	return t
}
{{end}}
{{- range $op := $.Scalar}}
func (t *{{$t.Name}}[{{$t.TypeArgs}}]) {{$op}}(s S) *{{$t.Name}}[{{$t.TypeArgs}}] {
	return &{{$t.Name}}[{{$t.TypeArgs}}]{ {{- range $i, $m := $t.Members}}{{if $i}}, {{end}}M{{$m.Index}}: t.M{{$m.Index}}.{{$op}}(s){{end -}} }
}
{{end}}
{{- range $op := $.ScalarAssign}}
func (t *{{$t.Name}}[{{$t.TypeArgs}}]) {{$op}}(s S) *{{$t.Name}}[{{$t.TypeArgs}}] {
{{- range $t.Members}}
	t.M{{.Index}} = t.M{{.Index}}.{{$op}}(s)
{{- end}}
	return t
}
{{end}}
{{- end}}`))

func main() {
	out := flag.String("o", "tuples_gen.go", "output file")
	maxN := flag.Int("max", 4, "largest arity to generate")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *maxN < 2 || *maxN > len(letters) {
		logger.Error("arity out of range", "max", *maxN, "limit", len(letters))
		os.Exit(1)
	}

	data := genData{
		Unary:        unary,
		Binary:       binary,
		BinaryAssign: binaryAssign,
		Scalar:       scalar,
		ScalarAssign: scalarAssign,
	}
	for n := 2; n <= *maxN; n++ {
		data.Tuples = append(data.Tuples, newTuple(n))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logger.Error("execute template", "err", err)
		os.Exit(1)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		logger.Error("format generated code", "err", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		logger.Error("write output", "path", *out, "err", err)
		os.Exit(1)
	}
	logger.Info("generated tuples", "path", *out, "arities", *maxN-1)
}
