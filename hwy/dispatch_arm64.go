//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

// detect returns NEON when ASIMD is present, which every ARMv8-A core has.
func detect() DispatchLevel {
	if cpu.ARM64.HasASIMD {
		return DispatchNEON
	}
	return DispatchScalar
}

// HasFMA reports whether FMLA is available; it is part of ASIMD.
func HasFMA() bool {
	return cpu.ARM64.HasASIMD
}
