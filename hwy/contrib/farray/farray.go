// Package farray provides Array, a dynamically sized float array that
// optionally keeps its buffer aligned for lane-group access.
//
// An Array is created with New, NewAligned or FromSlice and released with
// Release, which drops the buffer whatever its alignment. Element-wise
// operations and reductions run on lane groups through package vec.
package farray

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
	"github.com/go-jbm/jbm/hwy/contrib/vec"
	"github.com/go-jbm/jbm/hwy/contrib/workerpool"
)

var (
	// ErrSize is returned for a non-positive element count.
	ErrSize = errors.New("farray: size must be positive")

	// ErrLength is returned when two arrays differ in length.
	ErrLength = errors.New("farray: length mismatch")

	// ErrReleased is returned when an operation meets a released array.
	ErrReleased = errors.New("farray: array released")
)

// Array is a float array with a logical length and an optional aligned
// buffer. The zero value is a released array.
type Array[T hwy.Floats] struct {
	data    []T
	aligned bool
}

func farrayErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// alloc returns n zeroed elements. Aligned buffers get capacity for a
// whole number of lane groups.
func alloc[T hwy.Floats](n int, aligned bool) []T {
	if aligned {
		return hwy.AlignedAlloc[T](hwy.AlignedSize[T](n))[:n]
	}
	return make([]T, n)
}

// New returns a zeroed array of n elements.
func New[T hwy.Floats](n int) (*Array[T], error) {
	if n <= 0 {
		return nil, farrayErrorf("New", fmt.Errorf("n=%d: %w", n, ErrSize))
	}
	return &Array[T]{data: alloc[T](n, false)}, nil
}

// NewAligned returns a zeroed array of n elements whose buffer starts on a
// hwy.VectorAlign boundary.
func NewAligned[T hwy.Floats](n int) (*Array[T], error) {
	if n <= 0 {
		return nil, farrayErrorf("NewAligned", fmt.Errorf("n=%d: %w", n, ErrSize))
	}
	return &Array[T]{data: alloc[T](n, true), aligned: true}, nil
}

// FromSlice returns an array holding a copy of s.
func FromSlice[T hwy.Floats](s []T) (*Array[T], error) {
	if len(s) == 0 {
		return nil, farrayErrorf("FromSlice", fmt.Errorf("empty slice: %w", ErrSize))
	}
	a := &Array[T]{data: alloc[T](len(s), false)}
	copy(a.data, s)
	return a, nil
}

// Release drops the buffer. It is safe to call more than once.
func (a *Array[T]) Release() {
	a.data = nil
}

// Released reports whether the array has no buffer.
func (a *Array[T]) Released() bool { return a.data == nil }

// Aligned reports whether the array was created with NewAligned.
func (a *Array[T]) Aligned() bool { return a.aligned }

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Last returns the index of the last element, -1 when released.
func (a *Array[T]) Last() int { return len(a.data) - 1 }

// At returns element i.
func (a *Array[T]) At(i int) T { return a.data[i] }

// Set stores v at element i.
func (a *Array[T]) Set(i int, v T) { a.data[i] = v }

// Data returns the backing slice. It stays valid until the next Resize
// or Release.
func (a *Array[T]) Data() []T { return a.data }

// Resize changes the length to n, keeping the leading elements and zeroing
// new ones. The alignment of the buffer is preserved.
func (a *Array[T]) Resize(n int) error {
	if n <= 0 {
		return farrayErrorf("Resize", fmt.Errorf("n=%d: %w", n, ErrSize))
	}
	if a.Released() {
		return farrayErrorf("Resize", ErrReleased)
	}
	if n <= cap(a.data) {
		old := len(a.data)
		a.data = a.data[:n]
		clear(a.data[min(old, n):])
		return nil
	}
	data := alloc[T](n, a.aligned)
	copy(data, a.data)
	a.data = data
	return nil
}

// Copy returns an independent array with the same contents and alignment.
func (a *Array[T]) Copy() (*Array[T], error) {
	if a.Released() {
		return nil, farrayErrorf("Copy", ErrReleased)
	}
	b := &Array[T]{data: alloc[T](len(a.data), a.aligned), aligned: a.aligned}
	copy(b.data, a.data)
	return b, nil
}

func (a *Array[T]) check(op string, b *Array[T]) error {
	switch {
	case a.Released() || b.Released():
		return farrayErrorf(op, ErrReleased)
	case len(a.data) != len(b.data):
		return farrayErrorf(op, fmt.Errorf("%d and %d elements: %w", len(a.data), len(b.data), ErrLength))
	}
	return nil
}

// Add performs a[i] += b[i].
func (a *Array[T]) Add(b *Array[T]) error {
	if err := a.check("Add", b); err != nil {
		return err
	}
	vec.Add(a.data, b.data)
	return nil
}

// Sub performs a[i] -= b[i].
func (a *Array[T]) Sub(b *Array[T]) error {
	if err := a.check("Sub", b); err != nil {
		return err
	}
	vec.Sub(a.data, b.data)
	return nil
}

// Mul performs a[i] *= b[i].
func (a *Array[T]) Mul(b *Array[T]) error {
	if err := a.check("Mul", b); err != nil {
		return err
	}
	vec.Mul(a.data, b.data)
	return nil
}

// Div performs a[i] /= b[i].
func (a *Array[T]) Div(b *Array[T]) error {
	if err := a.check("Div", b); err != nil {
		return err
	}
	vec.Div(a.data, b.data)
	return nil
}

// AddScalar performs a[i] += c.
func (a *Array[T]) AddScalar(c T) { vec.AddConst(c, a.data) }

// SubScalar performs a[i] -= c.
func (a *Array[T]) SubScalar(c T) { vec.AddConst(-c, a.data) }

// MulScalar performs a[i] *= c.
func (a *Array[T]) MulScalar(c T) { vec.Scale(c, a.data) }

// DivScalar performs a[i] /= c.
func (a *Array[T]) DivScalar(c T) {
	a.Apply(func(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Div(v, hwy.SetLike(v, c)) })
}

// Sum returns the sum of the elements.
func (a *Array[T]) Sum() T { return vec.Sum(a.data) }

// Dot returns the inner product with b.
func (a *Array[T]) Dot(b *Array[T]) (T, error) {
	if err := a.check("Dot", b); err != nil {
		return 0, err
	}
	return vec.Dot(a.data, b.data), nil
}

// Max returns the largest element. It panics on a released array.
func (a *Array[T]) Max() T { return vec.Max(a.data) }

// Min returns the smallest element. It panics on a released array.
func (a *Array[T]) Min() T { return vec.Min(a.data) }

// MaxMin returns the largest and smallest elements in one pass.
func (a *Array[T]) MaxMin() (hi, lo T) {
	lo, hi = vec.MinMax(a.data)
	return hi, lo
}

// Search returns the index i of the interval data[i] <= x < data[i+1] of
// ascending data, clamped to [0, Last()-1] for x outside the range.
func (a *Array[T]) Search(x T) int { return Search(a.data, x) }

// SearchExtended is Search without clamping: it returns -1 for x below the
// first element and Last() for x at or above the last.
func (a *Array[T]) SearchExtended(x T) int { return SearchExtended(a.data, x) }

// Search returns the interval of ascending s containing x, clamped to
// [0, len(s)-2]. It returns 0 when s has fewer than two elements.
func Search[T hwy.Floats](s []T, x T) int {
	i := SearchExtended(s, x)
	return max(0, min(i, len(s)-2))
}

// SearchExtended returns the index i with s[i] <= x < s[i+1] for ascending
// s, -1 when x < s[0] and len(s)-1 when x >= s[len(s)-1].
func SearchExtended[T hwy.Floats](s []T, x T) int {
	return sort.Search(len(s), func(i int) bool { return s[i] > x }) - 1
}

// Apply replaces every element with the lane-group kernel fn of it.
func (a *Array[T]) Apply(fn func(hwy.Vec[T]) hwy.Vec[T]) {
	hwy.MapSlice(a.data, a.data, hwy.MaxLanes[T](), fn)
}

// MinParallel is the element count below which ApplyParallel runs on the
// calling goroutine.
const MinParallel = 16384

// ApplyParallel is Apply with the array split into lane-aligned chunks
// that run on pool. A nil pool or a short array is processed in place.
func (a *Array[T]) ApplyParallel(pool *workerpool.Pool, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	if pool == nil || len(a.data) < MinParallel {
		a.Apply(fn)
		return
	}
	lanes := hwy.MaxLanes[T]()
	pool.ParallelForAligned(len(a.data), lanes, func(start, end int) {
		s := a.data[start:end]
		hwy.MapSlice(s, s, lanes, fn)
	})
}

// String formats the elements with all significant digits.
func (a *Array[T]) String() string {
	if a.Released() {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(precision.Sprint(v))
	}
	b.WriteByte(']')
	return b.String()
}
