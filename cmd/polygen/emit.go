package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const header = "// Code generated by polygen. DO NOT EDIT.\n\n"

// writeSource formats src, fixes its import block and writes it to path.
func writeSource(path string, src []byte) error {
	formatted, err := imports.Process(filepath.Base(path), src, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	return os.WriteFile(path, formatted, 0644)
}

// horner returns the nested scalar expression for p[lo] .. p[hi], spaced
// the way gofmt prints it.
func horner(lo, hi int) string {
	if lo == hi {
		return fmt.Sprintf("p[%d]", lo)
	}
	if hi == lo+1 {
		return fmt.Sprintf("p[%d] + x*p[%d]", lo, hi)
	}
	return fmt.Sprintf("p[%d] + x*(%s)", lo, strings.ReplaceAll(horner(lo+1, hi), " + ", "+"))
}

func generatePoly(pkg string, maxDeg, maxRat int) ([]byte, error) {
	if maxDeg < maxRat {
		return nil, fmt.Errorf("maxdeg %d is below maxrat %d", maxDeg, maxRat)
	}
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("import \"github.com/go-jbm/jbm/hwy\"\n\n")

	for n := 1; n <= maxDeg; n++ {
		fmt.Fprintf(&buf, "// Poly%d evaluates the degree-%d polynomial with coefficients p[0] .. p[%d].\n", n, n, n)
		fmt.Fprintf(&buf, "func Poly%d[T hwy.Floats](x T, p []T) T {\n", n)
		fmt.Fprintf(&buf, "\t_ = p[%d]\n", n)
		fmt.Fprintf(&buf, "\treturn %s\n}\n\n", horner(0, n))

		fmt.Fprintf(&buf, "// Poly%dVec is Poly%d over a lane group.\n", n, n)
		fmt.Fprintf(&buf, "func Poly%dVec[T hwy.Floats](x hwy.Vec[T], p []T) hwy.Vec[T] {\n", n)
		fmt.Fprintf(&buf, "\t_ = p[%d]\n", n)
		fmt.Fprintf(&buf, "\tr := hwy.SetLike(x, p[%d])\n", n)
		for i := n - 1; i >= 1; i-- {
			fmt.Fprintf(&buf, "\tr = hwy.MulAdd(r, x, hwy.SetLike(x, p[%d]))\n", i)
		}
		buf.WriteString("\treturn hwy.MulAdd(r, x, hwy.SetLike(x, p[0]))\n}\n\n")
	}

	for n := 1; n <= maxRat; n++ {
		for m := 0; m < n; m++ {
			writeRational(&buf, n, m)
		}
	}
	return buf.Bytes(), nil
}

// writeRational emits Rational<n>_<m>: a degree-m numerator over a degree
// n-m denominator with unit constant term, n+1 coefficients in total.
func writeRational(buf *bytes.Buffer, n, m int) {
	q := n - m - 1 // degree of Q in 1 + x*Q(x)
	num, numVec := "p[0]", "hwy.SetLike(x, p[0])"
	if m > 0 {
		num = fmt.Sprintf("Poly%d(x, p[:%d])", m, m+1)
		numVec = fmt.Sprintf("Poly%dVec(x, p[:%d])", m, m+1)
	}
	den, denVec := fmt.Sprintf("p[%d]", m+1), fmt.Sprintf("hwy.SetLike(x, p[%d])", m+1)
	if q > 0 {
		den = fmt.Sprintf("Poly%d(x, p[%d:])", q, m+1)
		denVec = fmt.Sprintf("Poly%dVec(x, p[%d:])", q, m+1)
	}
	name := fmt.Sprintf("Rational%d_%d", n, m)

	fmt.Fprintf(buf, "// %s evaluates P(x) / (1 + x*Q(x)) with P = p[0] .. p[%d] and Q = p[%d] .. p[%d].\n", name, m, m+1, n)
	fmt.Fprintf(buf, "func %s[T hwy.Floats](x T, p []T) T {\n", name)
	fmt.Fprintf(buf, "\t_ = p[%d]\n", n)
	fmt.Fprintf(buf, "\treturn %s / (1 + x*%s)\n}\n\n", num, den)

	fmt.Fprintf(buf, "// %sVec is %s over a lane group.\n", name, name)
	fmt.Fprintf(buf, "func %sVec[T hwy.Floats](x hwy.Vec[T], p []T) hwy.Vec[T] {\n", name)
	fmt.Fprintf(buf, "\t_ = p[%d]\n", n)
	fmt.Fprintf(buf, "\tden := hwy.MulAdd(x, %s, hwy.SetLike(x, 1))\n", denVec)
	fmt.Fprintf(buf, "\treturn hwy.Div(%s, den)\n}\n\n", numVec)
}

// kernelShape describes how a math kernel maps lanes to lanes.
type kernelShape int

const (
	unary  kernelShape = iota // f(x)
	binary                    // f(a, b)
	pair                      // (f(x), g(x))
)

type kernel struct {
	Name  string
	Shape kernelShape
}

var kernels = []kernel{
	{"Exp2", unary}, {"Exp", unary}, {"Exp10", unary}, {"Expm1", unary},
	{"Log2", unary}, {"Log", unary}, {"Log10", unary},
	{"Sin", unary}, {"Cos", unary}, {"Tan", unary}, {"SinCos", pair},
	{"Atan", unary}, {"Asin", unary}, {"Acos", unary}, {"Atan2", binary},
	{"Sinh", unary}, {"Cosh", unary}, {"Tanh", unary},
	{"Erf", unary}, {"Erfc", unary}, {"Pow", binary},
}

type laneType struct {
	Elem   string // float32
	Short  string // f32
	Widths []int
}

var laneTypes = []laneType{
	{"float32", "f32", []int{2, 4, 8, 16}},
	{"float64", "f64", []int{2, 4, 8}},
}

func generateWidths(pkg string, ks []kernel) ([]byte, error) {
	title := cases.Title(language.English)
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("import \"github.com/go-jbm/jbm/hwy\"\n\n")

	for _, k := range ks {
		for _, lt := range laneTypes {
			for _, w := range lt.Widths {
				suffix := fmt.Sprintf("%sx%d", title.String(lt.Short), w)
				arr := fmt.Sprintf("[%d]%s", w, lt.Elem)
				fn := k.Name + "_" + suffix
				switch k.Shape {
				case unary:
					fmt.Fprintf(&buf, "// %s applies %sVec to %d %s lanes.\n", fn, k.Name, w, lt.Elem)
					fmt.Fprintf(&buf, "func %s(x %s) %s {\n", fn, arr, arr)
					fmt.Fprintf(&buf, "\tvar r %s\n", arr)
					fmt.Fprintf(&buf, "\thwy.Store(%sVec(hwy.LoadN(x[:], %d)), r[:])\n", k.Name, w)
				case binary:
					fmt.Fprintf(&buf, "// %s applies %sVec to %d %s lanes.\n", fn, k.Name, w, lt.Elem)
					fmt.Fprintf(&buf, "func %s(a, b %s) %s {\n", fn, arr, arr)
					fmt.Fprintf(&buf, "\tvar r %s\n", arr)
					fmt.Fprintf(&buf, "\thwy.Store(%sVec(hwy.LoadN(a[:], %d), hwy.LoadN(b[:], %d)), r[:])\n", k.Name, w, w)
				case pair:
					fmt.Fprintf(&buf, "// %s applies %sVec to %d %s lanes.\n", fn, k.Name, w, lt.Elem)
					fmt.Fprintf(&buf, "func %s(x %s) (%s, %s) {\n", fn, arr, arr, arr)
					fmt.Fprintf(&buf, "\tvar s, c %s\n", arr)
					fmt.Fprintf(&buf, "\tsv, cv := %sVec(hwy.LoadN(x[:], %d))\n", k.Name, w)
					buf.WriteString("\thwy.Store(sv, s[:])\n\thwy.Store(cv, c[:])\n\treturn s, c\n}\n\n")
					continue
				}
				buf.WriteString("\treturn r\n}\n\n")
			}
		}
	}
	if len(ks) == 0 {
		return nil, fmt.Errorf("no kernels to generate")
	}
	return buf.Bytes(), nil
}
