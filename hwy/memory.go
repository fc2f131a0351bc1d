package hwy

import "unsafe"

// VectorAlign is the byte alignment of buffers returned by AlignedAlloc.
// It matches the widest lane group (512 bits).
const VectorAlign = 64

// BlendedStore stores elements from v to dst only where mask is true.
// Existing values in dst are preserved where mask is false.
func BlendedStore[T Lanes](v Vec[T], mask Mask[T], dst []T) {
	n := min(len(dst), min(len(mask.bits), len(v.data)))
	for i := range n {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// AlignedAlloc returns a zeroed slice of n elements whose first element is
// VectorAlign-byte aligned. The slice capacity is exactly n.
func AlignedAlloc[T Lanes](n int) []T {
	if n <= 0 {
		return nil
	}
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	pad := VectorAlign / size
	buf := make([]T, n+pad)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := 0
	if rem := int(addr % VectorAlign); rem != 0 {
		off = (VectorAlign - rem) / size
	}
	return buf[off : off+n : off+n]
}

// IsAddrAligned reports whether the first element of s sits on a
// VectorAlign-byte boundary. An empty slice is aligned.
func IsAddrAligned[T Lanes](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%VectorAlign == 0
}
