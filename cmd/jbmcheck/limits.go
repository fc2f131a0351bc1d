package main

import (
	"fmt"
	"io"
	stdmath "math"

	"github.com/go-jbm/jbm/hwy"
	jmath "github.com/go-jbm/jbm/hwy/contrib/math"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
	"github.com/go-jbm/jbm/hwy/contrib/rootfind"
	"github.com/go-jbm/jbm/hwy/contrib/workerpool"
)

// limit is a range boundary of one function: the last argument, walking
// from start towards end, at which holds is true.
type limit struct {
	fn    string
	what  string
	holds func(x float64) bool
	start float64
	end   float64
}

func finite(x float64) bool { return !stdmath.IsInf(x, 0) && !stdmath.IsNaN(x) }

// limitsFor returns the boundaries probed for T.
func limitsFor[T hwy.Floats]() []limit {
	call := func(f func(T) T) func(float64) float64 {
		return func(x float64) float64 { return float64(f(T(x))) }
	}
	exp2, exp, erfc := call(jmath.Exp2[T]), call(jmath.Exp[T]), call(jmath.Erfc[T])
	cosh, tanh := call(jmath.Cosh[T]), call(jmath.Tanh[T])
	return []limit{
		{"exp2", "overflow", func(x float64) bool { return finite(exp2(x)) }, 0, 2048},
		{"exp2", "underflow", func(x float64) bool { return exp2(x) > 0 }, 0, -2048},
		{"exp", "overflow", func(x float64) bool { return finite(exp(x)) }, 0, 1024},
		{"exp", "underflow", func(x float64) bool { return exp(x) > 0 }, 0, -1024},
		{"cosh", "overflow", func(x float64) bool { return finite(cosh(x)) }, 0, 1024},
		{"tanh", "saturation", func(x float64) bool { return tanh(x) < 1 }, 0, 64},
		{"erfc", "underflow", func(x float64) bool { return erfc(x) > 0 }, 0, 64},
	}
}

// boundary is a located limit.
type boundary struct {
	limit
	tname string
	x     string
	err   error
}

// runLimits locates every boundary of the selected functions on pool and
// prints them in order.
func runLimits(out io.Writer, pool *workerpool.Pool, fns []function, opts *options) error {
	selected := make(map[string]bool, len(fns))
	for _, fn := range fns {
		selected[fn.name] = true
	}

	type probe struct {
		limit
		f32 bool
	}
	var probes []probe
	for _, f32 := range opts.precisions() {
		list := limitsFor[float64]()
		if f32 {
			list = limitsFor[float32]()
		}
		for _, l := range list {
			if selected[l.fn] {
				probes = append(probes, probe{l, f32})
			}
		}
	}
	if len(probes) == 0 {
		return fmt.Errorf("no range limits for the selected functions")
	}

	found := workerpool.Map(pool, len(probes), func(i int) boundary {
		p := probes[i]
		if p.f32 {
			return locate[float32](p.limit, "f32")
		}
		return locate[float64](p.limit, "f64")
	})
	for _, b := range found {
		if b.err != nil {
			return fmt.Errorf("%s/%s %s: %w", b.fn, b.tname, b.what, b.err)
		}
		fmt.Fprintf(out, "%-5s %-4s %-10s x=%s\n", b.fn, b.tname, b.what, b.x)
	}
	return nil
}

func locate[T hwy.Floats](l limit, tname string) boundary {
	x, err := rootfind.Boundary(func(x T) bool { return l.holds(float64(x)) }, T(l.start), T(l.end))
	return boundary{limit: l, tname: tname, x: precision.Sprint(x), err: err}
}
