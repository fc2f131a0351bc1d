package main

import (
	"fmt"
	stdmath "math"
	"strings"

	"github.com/samber/lo"

	"github.com/go-jbm/jbm/hwy"
	jmath "github.com/go-jbm/jbm/hwy/contrib/math"
)

// interval is a sampling domain. When log is set, lo and hi are decimal
// exponents and points are spread evenly in log space.
type interval struct {
	lo, hi float64
	log    bool
}

func (d interval) at(u float64) float64 {
	v := d.lo + (d.hi-d.lo)*u
	if d.log {
		return stdmath.Pow(10, v)
	}
	return v
}

// function is one entry of the registry: a kernel in both precisions,
// scalar and lane-group, and the reference it is checked against. Unary
// kernels ignore their second argument.
type function struct {
	name  string
	args  int
	ref   func(x, y float64) float64
	f32   func(x, y float32) float32
	f64   func(x, y float64) float64
	vec32 func(x, y hwy.Vec[float32]) hwy.Vec[float32]
	vec64 func(x, y hwy.Vec[float64]) hwy.Vec[float64]
	x, y  interval
}

func unary(name string, ref func(float64) float64,
	f32 func(float32) float32, f64 func(float64) float64,
	vec32 func(hwy.Vec[float32]) hwy.Vec[float32], vec64 func(hwy.Vec[float64]) hwy.Vec[float64],
	x interval) function {
	return function{
		name:  name,
		args:  1,
		ref:   func(x, _ float64) float64 { return ref(x) },
		f32:   func(x, _ float32) float32 { return f32(x) },
		f64:   func(x, _ float64) float64 { return f64(x) },
		vec32: func(x, _ hwy.Vec[float32]) hwy.Vec[float32] { return vec32(x) },
		vec64: func(x, _ hwy.Vec[float64]) hwy.Vec[float64] { return vec64(x) },
		x:     x,
	}
}

// kernels returns the scalar and lane-group forms of f for T.
func kernels[T hwy.Floats](f function) (func(x, y T) T, func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return any(f.f32).(func(x, y T) T), any(f.vec32).(func(x, y hwy.Vec[T]) hwy.Vec[T])
	}
	return any(f.f64).(func(x, y T) T), any(f.vec64).(func(x, y hwy.Vec[T]) hwy.Vec[T])
}

// refAsin and refAcos avoid the cancellation in 1 - x*x that the
// standard library versions suffer near |x| = 1.
func refAsin(x float64) float64 { return stdmath.Atan2(x, stdmath.Sqrt((1-x)*(1+x))) }

func refAcos(x float64) float64 { return 2 * stdmath.Atan(stdmath.Sqrt((1-x)/(1+x))) }

// registry lists the checked functions in report order.
var registry = []function{
	unary("exp2", stdmath.Exp2, jmath.Exp2[float32], jmath.Exp2[float64], jmath.Exp2Vec[float32], jmath.Exp2Vec[float64], interval{lo: -120, hi: 120}),
	unary("exp", stdmath.Exp, jmath.Exp[float32], jmath.Exp[float64], jmath.ExpVec[float32], jmath.ExpVec[float64], interval{lo: -80, hi: 80}),
	unary("exp10", func(x float64) float64 { return stdmath.Pow(10, x) },
		jmath.Exp10[float32], jmath.Exp10[float64], jmath.Exp10Vec[float32], jmath.Exp10Vec[float64], interval{lo: -35, hi: 35}),
	unary("expm1", stdmath.Expm1, jmath.Expm1[float32], jmath.Expm1[float64], jmath.Expm1Vec[float32], jmath.Expm1Vec[float64], interval{lo: -20, hi: 20}),
	unary("log2", stdmath.Log2, jmath.Log2[float32], jmath.Log2[float64], jmath.Log2Vec[float32], jmath.Log2Vec[float64], interval{lo: -30, hi: 30, log: true}),
	unary("log", stdmath.Log, jmath.Log[float32], jmath.Log[float64], jmath.LogVec[float32], jmath.LogVec[float64], interval{lo: -30, hi: 30, log: true}),
	unary("log10", stdmath.Log10, jmath.Log10[float32], jmath.Log10[float64], jmath.Log10Vec[float32], jmath.Log10Vec[float64], interval{lo: -30, hi: 30, log: true}),
	unary("sin", stdmath.Sin, jmath.Sin[float32], jmath.Sin[float64], jmath.SinVec[float32], jmath.SinVec[float64], interval{lo: -100, hi: 100}),
	unary("cos", stdmath.Cos, jmath.Cos[float32], jmath.Cos[float64], jmath.CosVec[float32], jmath.CosVec[float64], interval{lo: -100, hi: 100}),
	unary("sin_large", stdmath.Sin, jmath.Sin[float32], jmath.Sin[float64], jmath.SinVec[float32], jmath.SinVec[float64], interval{lo: 0, hi: 38, log: true}),
	unary("cos_large", stdmath.Cos, jmath.Cos[float32], jmath.Cos[float64], jmath.CosVec[float32], jmath.CosVec[float64], interval{lo: 0, hi: 38, log: true}),
	unary("tan", stdmath.Tan, jmath.Tan[float32], jmath.Tan[float64], jmath.TanVec[float32], jmath.TanVec[float64], interval{lo: -10, hi: 10}),
	unary("atan", stdmath.Atan, jmath.Atan[float32], jmath.Atan[float64], jmath.AtanVec[float32], jmath.AtanVec[float64], interval{lo: -50, hi: 50}),
	unary("asin", refAsin, jmath.Asin[float32], jmath.Asin[float64], jmath.AsinVec[float32], jmath.AsinVec[float64], interval{lo: -1, hi: 1}),
	unary("acos", refAcos, jmath.Acos[float32], jmath.Acos[float64], jmath.AcosVec[float32], jmath.AcosVec[float64], interval{lo: -1, hi: 1}),
	unary("sinh", stdmath.Sinh, jmath.Sinh[float32], jmath.Sinh[float64], jmath.SinhVec[float32], jmath.SinhVec[float64], interval{lo: -30, hi: 30}),
	unary("cosh", stdmath.Cosh, jmath.Cosh[float32], jmath.Cosh[float64], jmath.CoshVec[float32], jmath.CoshVec[float64], interval{lo: -30, hi: 30}),
	unary("tanh", stdmath.Tanh, jmath.Tanh[float32], jmath.Tanh[float64], jmath.TanhVec[float32], jmath.TanhVec[float64], interval{lo: -30, hi: 30}),
	unary("erf", stdmath.Erf, jmath.Erf[float32], jmath.Erf[float64], jmath.ErfVec[float32], jmath.ErfVec[float64], interval{lo: -6, hi: 6}),
	unary("erfc", stdmath.Erfc, jmath.Erfc[float32], jmath.Erfc[float64], jmath.ErfcVec[float32], jmath.ErfcVec[float64], interval{lo: -6, hi: 9}),
	{
		name: "atan2", args: 2, ref: stdmath.Atan2,
		f32: jmath.Atan2[float32], f64: jmath.Atan2[float64],
		vec32: jmath.Atan2Vec[float32], vec64: jmath.Atan2Vec[float64],
		x: interval{lo: -10, hi: 10}, y: interval{lo: -10, hi: 10},
	},
	{
		name: "pow", args: 2, ref: stdmath.Pow,
		f32: jmath.Pow[float32], f64: jmath.Pow[float64],
		vec32: jmath.PowVec[float32], vec64: jmath.PowVec[float64],
		x: interval{lo: -2, hi: 2, log: true}, y: interval{lo: -8, hi: 8},
	},
}

// selectFunctions returns the registry entries named in names, in registry
// order. An empty list selects everything.
func selectFunctions(all []function, names []string) ([]function, error) {
	if len(names) == 0 {
		return all, nil
	}
	names = lo.Uniq(lo.Map(names, func(s string, _ int) string { return strings.ToLower(strings.TrimSpace(s)) }))
	known := lo.Map(all, func(f function, _ int) string { return f.name })
	if unknown := lo.Without(names, known...); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown functions %s (known: %s)", strings.Join(unknown, ", "), strings.Join(known, ", "))
	}
	return lo.Filter(all, func(f function, _ int) bool { return lo.Contains(names, f.name) }), nil
}
