package ieee

import (
	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
)

// normalSplit runs the normal-number path of Frexp on every lane.
func normalSplit[T hwy.Floats](v hwy.Vec[T]) (hwy.Vec[T], []int) {
	t := precision.Traits[T]()
	expMask := uint64(1)<<(t.Bits-t.MantissaBits-1) - 1
	data := v.Data()
	m := make([]T, len(data))
	e := make([]int, len(data))
	for i, x := range data {
		b := Bits(x)
		biased := int(b >> t.MantissaBits & expMask)
		m[i] = FromBits[T](b&^(expMask<<t.MantissaBits) | uint64(t.Bias-1)<<t.MantissaBits)
		e[i] = biased - t.Bias + 1
	}
	return hwy.LoadN(m, len(m)), e
}

// FrexpVec is Frexp over a lane group. The exponents are returned as one
// int per lane. Zero, NaN and infinite lanes keep their input value and get
// exponent 0; subnormal lanes are rescaled before splitting.
func FrexpVec[T hwy.Floats](v hwy.Vec[T]) (hwy.Vec[T], []int) {
	t := precision.Traits[T]()
	abs := hwy.Abs(v)
	special := hwy.MaskOr(hwy.MaskOr(hwy.IsNaN(v), hwy.IsInf(v, 0)), hwy.Equal(v, hwy.SetLike(v, 0)))
	sub := hwy.MaskAndNot(special, hwy.LessThan(abs, hwy.SetLike(v, precision.SmallestNormal[T]())))

	m, e := normalSplit(v)
	if sub.AnyTrue() {
		ms, es := normalSplit(hwy.Mul(v, hwy.SetLike(v, Exp2n[T](t.MantissaBits))))
		m = hwy.IfThenElse(sub, ms, m)
		for i := range e {
			if sub.GetBit(i) {
				e[i] = es[i] - t.MantissaBits
			}
		}
	}
	for i := range e {
		if special.GetBit(i) {
			e[i] = 0
		}
	}
	return hwy.IfThenElse(special, v, m), e
}

// Exp2nVec returns a lane group with lane i set to Exp2n(e[i]).
func Exp2nVec[T hwy.Floats](e []int) hwy.Vec[T] {
	out := make([]T, len(e))
	for i, n := range e {
		out[i] = Exp2n[T](n)
	}
	return hwy.LoadN(out, len(out))
}

// LdexpVec is Ldexp over a lane group with one exponent per lane.
func LdexpVec[T hwy.Floats](v hwy.Vec[T], e []int) hwy.Vec[T] {
	t := precision.Traits[T]()
	e1 := make([]int, v.NumLanes())
	e2 := make([]int, v.NumLanes())
	for i := range e1 {
		if i < len(e) {
			e1[i], e2[i] = splitExp(e[i], t)
		}
	}
	r := hwy.Mul(hwy.Mul(v, Exp2nVec[T](e1)), Exp2nVec[T](e2))
	keep := hwy.MaskOr(hwy.Equal(v, hwy.SetLike(v, 0)), hwy.MaskNot(hwy.IsFinite(v)))
	return hwy.IfThenElse(keep, v, r)
}

// TruncateMantissaVec applies TruncateMantissa to every lane.
func TruncateMantissaVec[T hwy.Floats](v hwy.Vec[T], keep int) hwy.Vec[T] {
	data := v.Data()
	out := make([]T, len(data))
	for i, x := range data {
		out[i] = TruncateMantissa(x, keep)
	}
	return hwy.LoadN(out, len(out))
}
