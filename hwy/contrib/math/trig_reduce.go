package math

import (
	stdmath "math"
	"math/bits"

	"github.com/go-jbm/jbm/hwy"
)

// Arguments below these magnitudes are reduced with the three-part pi/2
// split in their own precision; k*pio2_1 and k*pio2_2 stay exact there.
const (
	cwLimit32 = 1 << 12
	cwLimit64 = 1 << 20
)

// twoByPiBits is the binary expansion of 2/pi, 64 bits per word, after
// one zero word.
var twoByPiBits = [...]uint64{
	0x0000000000000000, 0xa2f9836e4e441529, 0xfc2757d1f534ddc0, 0xdb6295993c439041,
	0xfe5163abdebbc561, 0xb7246e3a424dd2e0, 0x06492eea09d1921c, 0xfe1deb1cb129a73e,
	0xe88235f52ebb4484, 0xe99c7026b45f7e41, 0x3991d639835339f4, 0x9c845f8bbdf9283b,
	0x1ff897ffde05980f, 0xef2f118b5a0a6d1f, 0x6d367ecf27cb09b7, 0x4f463f669e5fea2d,
	0x7527bac7ebe5f17b, 0x3d0739f78a5292ea, 0x6bfb5fb11f8d5d08, 0x56033046fc7b6bab,
}

// reduceHalfPi returns r and q with x = (4n+q)*pi/2 + r, |r| <= pi/4 and
// q in 0..3. x must be finite.
func reduceHalfPi[T hwy.Floats](x T) (T, int) {
	if abs(x) < pick[T](cwLimit32, cwLimit64) {
		return cwHalfPi(x)
	}
	r, q := reduceHalfPi64(float64(x))
	return T(r), q
}

func reduceHalfPi64(x float64) (float64, int) {
	if stdmath.Abs(x) < cwLimit64 {
		return cwHalfPi(x)
	}
	r, q := payneHanek(stdmath.Abs(x))
	if x < 0 {
		return -r, -q & 3
	}
	return r, q
}

func cwHalfPi[T hwy.Floats](x T) (T, int) {
	k := roundToEven(x * T(twoByPi))
	r := x - k*pick[T](pio2_1_f32, pio2_1_f64)
	r -= k * pick[T](pio2_2_f32, pio2_2_f64)
	r -= k * pick[T](pio2_3_f32, pio2_3_f64)
	return r, int(k) & 3
}

// payneHanek reduces a finite x >= 2^-10 against 192 bits of 2/pi taken
// at the position that drops the multiples of 4 from the product.
func payneHanek(x float64) (float64, int) {
	b := stdmath.Float64bits(x)
	e := int(b>>52&0x7ff) - 1023 - 52
	m := b&(1<<52-1) | 1<<52

	start := e - 2 + 64
	w, s := start/64, uint(start%64)
	z0 := twoByPiBits[w]<<s | twoByPiBits[w+1]>>(64-s)
	z1 := twoByPiBits[w+1]<<s | twoByPiBits[w+2]>>(64-s)
	z2 := twoByPiBits[w+2]<<s | twoByPiBits[w+3]>>(64-s)

	// Low 192 bits of z*m: two integer bits then the fraction.
	hi2, p2 := bits.Mul64(z2, m)
	hi1, lo1 := bits.Mul64(z1, m)
	p1, carry := bits.Add64(lo1, hi2, 0)
	p0 := z0*m + hi1 + carry

	q := int(p0 >> 62)
	hi := p0<<2 | p1>>62
	lo := p1<<2 | p2>>62
	neg := hi>>63 == 1
	if neg {
		q = (q + 1) & 3
		hi = ^hi
		lo = -lo
		if lo == 0 {
			hi++
		}
	}

	var f float64
	switch {
	case hi != 0:
		n := uint(bits.LeadingZeros64(hi))
		f = stdmath.Ldexp(float64(hi<<n|lo>>(64-n)), -64-int(n))
	case lo != 0:
		f = stdmath.Ldexp(float64(lo), -128)
	}
	r := f * (stdmath.Pi / 2)
	if neg {
		r = -r
	}
	return r, q
}

// reduceHalfPiVec is reduceHalfPi over a lane group. Lanes past the
// three-part limit take the scalar reduction, so both forms agree.
func reduceHalfPiVec[T hwy.Floats](x hwy.Vec[T]) (hwy.Vec[T], []int) {
	k := hwy.RoundToEven(hwy.Mul(x, hwy.SetLike(x, T(twoByPi))))
	r := hwy.NegMulAdd(k, hwy.SetLike(x, pick[T](pio2_1_f32, pio2_1_f64)), x)
	r = hwy.NegMulAdd(k, hwy.SetLike(x, pick[T](pio2_2_f32, pio2_2_f64)), r)
	r = hwy.NegMulAdd(k, hwy.SetLike(x, pick[T](pio2_3_f32, pio2_3_f64)), r)
	// k mod 4 before conversion, which saturates large k.
	q := hwy.NegMulAdd(hwy.Floor(hwy.Mul(k, hwy.SetLike(k, 0.25))), hwy.SetLike(k, 4), k)
	qs := hwy.ToInts(q)

	limit := hwy.SetLike(x, pick[T](cwLimit32, cwLimit64))
	large := hwy.MaskAnd(hwy.GreaterEqual(hwy.Abs(x), limit), hwy.IsFinite(x))
	if !large.AnyTrue() {
		return r, qs
	}
	rs := make([]T, r.NumLanes())
	hwy.Store(r, rs)
	for i := range rs {
		if large.GetBit(i) {
			rs[i], qs[i] = reduceHalfPi(x.Lane(i))
		}
	}
	return hwy.LoadN(rs, len(rs)), qs
}
