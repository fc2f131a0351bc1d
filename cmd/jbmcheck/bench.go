package main

import (
	"context"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-jbm/jbm/hwy"
)

// benchTime is how long each form of each function is timed.
const benchTime = 100 * time.Millisecond

// timing holds nanoseconds per element for the scalar form, the lane-group
// form at the natural width and the float64 reference.
type timing struct {
	scalar, lanes, ref float64
}

// runBench times every selected function in the selected precisions and
// prints one line per function and type.
func runBench(ctx context.Context, out io.Writer, fns []function, opts *options) error {
	p := message.NewPrinter(language.English)
	p.Fprintf(out, "%-8s %-4s %12s %12s %12s\n", "func", "type", "scalar ns", "lanes ns", "math ns")
	for _, fn := range fns {
		for _, f32 := range opts.precisions() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var t timing
			tname := "f64"
			if f32 {
				tname = "f32"
				t = benchFunction[float32](fn, opts.samples, opts.seed)
			} else {
				t = benchFunction[float64](fn, opts.samples, opts.seed)
			}
			p.Fprintf(out, "%-8s %-4s %12.2f %12.2f %12.2f\n", fn.name, tname, t.scalar, t.lanes, t.ref)
		}
	}
	return nil
}

// sink keeps results alive so the timed loops are not optimized away.
var sink float64

func benchFunction[T hwy.Floats](fn function, n int, seed uint64) timing {
	scalar, vec := kernels[T](fn)
	xs, ys := samples[T](fn, n, seed)
	out := make([]T, n)
	lanes := hwy.MaxLanes[T]()

	t := timing{
		scalar: perElement(n, func() {
			for i := range xs {
				out[i] = scalar(xs[i], ys[i])
			}
		}),
		lanes: perElement(n, func() {
			for i := 0; i < n; i += lanes {
				hwy.Store(vec(hwy.Load(xs[i:]), hwy.Load(ys[i:])), out[i:])
			}
		}),
	}
	sink += float64(out[n/2])

	x64, y64 := make([]float64, n), make([]float64, n)
	for i := range xs {
		x64[i], y64[i] = float64(xs[i]), float64(ys[i])
	}
	var acc float64
	t.ref = perElement(n, func() {
		for i := range x64 {
			acc += fn.ref(x64[i], y64[i])
		}
	})
	sink += acc
	return t
}

// perElement runs body, which processes n elements, repeatedly for at
// least benchTime and returns the mean cost per element in nanoseconds.
func perElement(n int, body func()) float64 {
	body()
	var (
		reps    int
		elapsed time.Duration
	)
	start := time.Now()
	for elapsed < benchTime {
		body()
		reps++
		elapsed = time.Since(start)
	}
	return float64(elapsed.Nanoseconds()) / float64(reps*max(n, 1))
}
