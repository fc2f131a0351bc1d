package flux

import (
	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
)

// LimiterVec returns the lane-group form of the limiter of kind k, or nil
// for an unknown kind. Lanes follow the scalar limiter exactly, including
// the degenerate value.
func LimiterVec[T hwy.Floats](k Kind) func(d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	switch k {
	case KindTotal:
		return func(d1, _ hwy.Vec[T]) hwy.Vec[T] { return hwy.SetLike(d1, 0) }
	case KindNull:
		return func(d1, _ hwy.Vec[T]) hwy.Vec[T] { return hwy.SetLike(d1, 1) }
	case KindCentred:
		return centredVec[T]
	case KindSuperbee:
		return limited(func(r hwy.Vec[T]) hwy.Vec[T] {
			return hwy.Max(hwy.Min(hwy.Add(r, r), hwy.SetLike(r, 1)), hwy.Min(r, hwy.SetLike(r, 2)))
		})
	case KindVanLeer:
		return limited(func(r hwy.Vec[T]) hwy.Vec[T] {
			return hwy.Div(hwy.Add(r, r), hwy.Add(hwy.SetLike(r, 1), r))
		})
	case KindVanAlbada:
		return limited(func(r hwy.Vec[T]) hwy.Vec[T] {
			k := hwy.Mul(r, r)
			return hwy.Div(hwy.Add(r, k), hwy.Add(hwy.SetLike(r, 1), k))
		})
	case KindMinsuper:
		return limited(func(r hwy.Vec[T]) hwy.Vec[T] { return hwy.Min(r, hwy.SetLike(r, 2)) })
	case KindSupermin:
		return limited(func(r hwy.Vec[T]) hwy.Vec[T] { return hwy.Min(hwy.Add(r, r), hwy.SetLike(r, 1)) })
	case KindMinmod:
		return limited(func(r hwy.Vec[T]) hwy.Vec[T] { return hwy.Min(r, hwy.SetLike(r, 1)) })
	case KindMonotonizedCentral:
		return limited(monotonizedCentralVec[T])
	case KindMean:
		return limited(func(r hwy.Vec[T]) hwy.Vec[T] {
			return hwy.Div(hwy.Add(r, hwy.SetLike(r, 1)), hwy.SetLike(r, 2))
		})
	}
	return nil
}

// limited wraps a function of r = d1/d2 with the degenerate test.
func limited[T hwy.Floats](fn func(r hwy.Vec[T]) hwy.Vec[T]) func(d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return func(d1, d2 hwy.Vec[T]) hwy.Vec[T] {
		eps := hwy.SetLike(d1, precision.Epsilon[T]())
		deg := hwy.LessEqual(hwy.Mul(d1, d2), eps)
		return hwy.IfThenZeroElse(deg, fn(hwy.Div(d1, d2)))
	}
}

func centredVec[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	small := hwy.LessThan(hwy.Abs(d2), hwy.SetLike(d2, precision.Epsilon[T]()))
	return hwy.IfThenZeroElse(small, hwy.Div(d1, d2))
}

func monotonizedCentralVec[T hwy.Floats](r hwy.Vec[T]) hwy.Vec[T] {
	mid := hwy.Div(hwy.Add(r, hwy.SetLike(r, 1)), hwy.SetLike(r, 2))
	out := hwy.IfThenElse(hwy.GreaterEqual(r, hwy.SetLike(r, T(1)/3)), mid, hwy.Add(r, r))
	return hwy.IfThenElse(hwy.GreaterEqual(r, hwy.SetLike(r, 3)), hwy.SetLike(r, 2), out)
}

// Slice applies the limiter of kind k to the pairs d1[i], d2[i] and stores
// the weights in out. It does nothing for an unknown kind.
func Slice[T hwy.Floats](k Kind, d1, d2, out []T) {
	fn := LimiterVec[T](k)
	if fn == nil {
		return
	}
	hwy.MapSlice2(d1, d2, out, hwy.MaxLanes[T](), fn)
}
