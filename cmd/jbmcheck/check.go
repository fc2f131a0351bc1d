package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdmath "math"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
)

// maxK is the error bound, in units of epsilon, above which a function
// fails.
const maxK = 1024

// errFailed is returned after a FAIL line has been printed.
var errFailed = errors.New("accuracy check failed")

// job is one function checked in one precision at one lane width; width
// 1 is the scalar form.
type job struct {
	fn    function
	f32   bool
	width int
}

func (j job) String() string {
	tname := "f64"
	if j.f32 {
		tname = "f32"
	}
	if j.width == 1 {
		return fmt.Sprintf("%s/%s", j.fn.name, tname)
	}
	return fmt.Sprintf("%s/%s/x%d", j.fn.name, tname, j.width)
}

// outcome is the result of a job: the smallest power of two k such that
// every sample is within k epsilons, or the first sample that is not.
type outcome struct {
	k          int
	iterations int
	failed     bool
	x, y       float64
	got, want  float64
}

// jobs expands functions into the ordered list of checks selected by opts.
func jobs(fns []function, opts *options) []job {
	var list []job
	for _, fn := range fns {
		for _, f32 := range opts.precisions() {
			widths := []int{1}
			if f32 {
				widths = append(widths, hwy.LaneWidths[float32]()...)
			} else {
				widths = append(widths, hwy.LaneWidths[float64]()...)
			}
			for _, w := range widths {
				if opts.width == 0 || opts.width == w {
					list = append(list, job{fn: fn, f32: f32, width: w})
				}
			}
		}
	}
	return list
}

// runCheck checks every job, at most opts.parallel at a time, and reports
// the outcomes in job order. It stops at the first failure and returns
// errFailed.
func runCheck(ctx context.Context, out, progress io.Writer, fns []function, opts *options) error {
	list := jobs(fns, opts)
	if len(list) == 0 {
		return fmt.Errorf("no lane width %d for the selected types", opts.width)
	}
	outcomes := make([]outcome, len(list))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.parallel)
	for i, j := range list {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if j.f32 {
				outcomes[i] = checkJob[float32](j, opts.samples, opts.seed)
			} else {
				outcomes[i] = checkJob[float64](j, opts.samples, opts.seed)
			}
			if opts.verbose {
				fmt.Fprintf(progress, "checked %s\n", j)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	for i, o := range outcomes {
		if o.failed {
			f32 := list[i].f32
			p.Fprintf(out, "FAIL %s x=%s", list[i], format(f32, o.x))
			if list[i].fn.args == 2 {
				p.Fprintf(out, " y=%s", format(f32, o.y))
			}
			p.Fprintf(out, " got=%s want=%s\n", format(f32, o.got), format(f32, o.want))
			return errFailed
		}
		p.Fprintf(out, "PASS %s k=%d iterations=%d\n", list[i], o.k, o.iterations)
	}
	return nil
}

// format prints v with the digits of the job's precision.
func format(f32 bool, v float64) string {
	if f32 {
		return precision.Sprint(float32(v))
	}
	return precision.Sprint(v)
}

// samples returns n argument pairs for fn: half on an even grid over its
// domain, half uniformly random from seed.
func samples[T hwy.Floats](fn function, n int, seed uint64) (xs, ys []T) {
	r := rand.New(rand.NewPCG(seed, uint64(len(fn.name))))
	xs, ys = make([]T, n), make([]T, n)
	grid := n / 2
	for i := range n {
		u, v := r.Float64(), r.Float64()
		if i < grid {
			u = float64(i) / float64(max(grid-1, 1))
		}
		xs[i] = T(fn.x.at(u))
		if fn.args == 2 {
			ys[i] = T(fn.y.at(v))
		}
	}
	return xs, ys
}

// checkJob evaluates one job over its samples and compares each result to
// the reference evaluated in float64 at the same argument.
func checkJob[T hwy.Floats](j job, n int, seed uint64) outcome {
	scalar, vec := kernels[T](j.fn)
	xs, ys := samples[T](j.fn, n, seed)
	got := make([]T, n)
	if j.width == 1 {
		for i := range n {
			got[i] = scalar(xs[i], ys[i])
		}
	} else {
		for i := 0; i < n; i += j.width {
			r := vec(hwy.LoadN(xs[i:], j.width), hwy.LoadN(ys[i:], j.width))
			hwy.Store(r, got[i:])
		}
	}

	eps := float64(precision.Epsilon[T]())
	o := outcome{k: 1, iterations: n}
	for i := range n {
		x, y := float64(xs[i]), float64(ys[i])
		want := j.fn.ref(x, y)
		k, ok := errorBound(float64(got[i]), want, eps)
		if !ok {
			return outcome{failed: true, iterations: i + 1, x: x, y: y, got: float64(got[i]), want: want}
		}
		o.k = max(o.k, k)
	}
	return o
}

// errorBound returns the smallest power of two k below maxK such that got
// is within k epsilons of want, relatively or absolutely. Special values
// must match exactly.
func errorBound(got, want, eps float64) (int, bool) {
	switch {
	case stdmath.IsNaN(want):
		return 1, stdmath.IsNaN(got)
	case stdmath.IsInf(want, 0):
		return 1, got == want
	}
	diff := stdmath.Abs(got - want)
	rel := stdmath.Abs(got/want - 1)
	for k := 1; k < maxK; k *= 2 {
		if b := float64(k) * eps; diff <= b || rel <= b {
			return k, true
		}
	}
	return 0, false
}
