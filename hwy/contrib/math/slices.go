package math

import "github.com/go-jbm/jbm/hwy"

// The slice forms process hwy.MaxLanes[T]() elements per step and stop at
// the shorter of input and output.

// Exp2Slice applies Exp2 to each element of input.
func Exp2Slice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), Exp2Vec[T])
}

// ExpSlice applies Exp to each element of input.
func ExpSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), ExpVec[T])
}

// Exp10Slice applies Exp10 to each element of input.
func Exp10Slice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), Exp10Vec[T])
}

// Expm1Slice applies Expm1 to each element of input.
func Expm1Slice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), Expm1Vec[T])
}

// Log2Slice applies Log2 to each element of input.
func Log2Slice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), Log2Vec[T])
}

// LogSlice applies Log to each element of input.
func LogSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), LogVec[T])
}

// Log10Slice applies Log10 to each element of input.
func Log10Slice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), Log10Vec[T])
}

// SinSlice applies Sin to each element of input.
func SinSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), SinVec[T])
}

// CosSlice applies Cos to each element of input.
func CosSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), CosVec[T])
}

// TanSlice applies Tan to each element of input.
func TanSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), TanVec[T])
}

// AtanSlice applies Atan to each element of input.
func AtanSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), AtanVec[T])
}

// AsinSlice applies Asin to each element of input.
func AsinSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), AsinVec[T])
}

// AcosSlice applies Acos to each element of input.
func AcosSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), AcosVec[T])
}

// SinhSlice applies Sinh to each element of input.
func SinhSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), SinhVec[T])
}

// CoshSlice applies Cosh to each element of input.
func CoshSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), CoshVec[T])
}

// TanhSlice applies Tanh to each element of input.
func TanhSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), TanhVec[T])
}

// ErfSlice applies Erf to each element of input.
func ErfSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), ErfVec[T])
}

// ErfcSlice applies Erfc to each element of input.
func ErfcSlice[T hwy.Floats](input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), ErfcVec[T])
}

// Atan2Slice computes Atan2(y[i], x[i]) for each i.
func Atan2Slice[T hwy.Floats](y, x, output []T) {
	hwy.MapSlice2(y, x, output, hwy.MaxLanes[T](), Atan2Vec[T])
}

// PowSlice computes Pow(x[i], y[i]) for each i.
func PowSlice[T hwy.Floats](x, y, output []T) {
	hwy.MapSlice2(x, y, output, hwy.MaxLanes[T](), PowVec[T])
}

// SinCosSlice computes Sin and Cos of each element of input.
func SinCosSlice[T hwy.Floats](input, sin, cos []T) {
	size := min(len(input), len(sin), len(cos))
	lanes := hwy.MaxLanes[T]()
	hwy.ProcessWithTail(size, lanes,
		func(offset int) {
			s, c := SinCosVec(hwy.LoadN(input[offset:offset+lanes], lanes))
			hwy.Store(s, sin[offset:offset+lanes])
			hwy.Store(c, cos[offset:offset+lanes])
		},
		func(offset, count int) {
			s, c := SinCosVec(hwy.LoadN(input[offset:offset+count], lanes))
			hwy.Store(s, sin[offset:offset+count])
			hwy.Store(c, cos[offset:offset+count])
		},
	)
}
