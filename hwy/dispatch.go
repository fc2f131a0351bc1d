package hwy

import (
	"fmt"
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel is the instruction set class detected at start-up. It only
// fixes the natural lane-group width used by slice entry points; every
// kernel accepts any lane count.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

// levels maps each level to its name and register width in bytes. The
// scalar level still groups 16 bytes so that slice loops keep a fixed shape.
var levels = [...]struct {
	name  string
	width int
}{
	DispatchScalar: {"scalar", 16},
	DispatchSSE2:   {"sse2", 16},
	DispatchAVX2:   {"avx2", 32},
	DispatchAVX512: {"avx512", 64},
	DispatchNEON:   {"neon", 16},
}

func (d DispatchLevel) String() string {
	if d < 0 || int(d) >= len(levels) {
		return "unknown"
	}
	return levels[d].name
}

// Width returns the lane-group width of d in bytes.
func (d DispatchLevel) Width() int {
	if d < 0 || int(d) >= len(levels) {
		return levels[DispatchScalar].width
	}
	return levels[d].width
}

var currentLevel DispatchLevel

func init() {
	currentLevel = DispatchScalar
	if !NoSimdEnv() {
		currentLevel = detect()
	}
}

// CurrentLevel returns the instruction set class detected at start-up.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the lane-group width in bytes: 16 for scalar, SSE2
// and NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int { return currentLevel.Width() }

// CurrentName returns the name of the current level.
func CurrentName() string { return currentLevel.String() }

// Describe summarises the dispatch state for diagnostics, for example
// "avx2, 8 float32 lanes, 4 float64 lanes, fma".
func Describe() string {
	s := fmt.Sprintf("%s, %d float32 lanes, %d float64 lanes", currentLevel, MaxLanes[float32](), MaxLanes[float64]())
	if HasFMA() {
		s += ", fma"
	}
	return s
}

// NoSimdEnv reports whether JBM_NO_SIMD requests the scalar level. Any
// value that does not parse as false counts as set.
func NoSimdEnv() bool {
	val := os.Getenv("JBM_NO_SIMD")
	if val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	return err != nil || b
}

// MaxLanes returns the natural lane count for T at the current level: the
// lane-group width divided by the element size.
func MaxLanes[T Lanes]() int {
	var zero T
	return CurrentWidth() / int(unsafe.Sizeof(zero))
}
