//go:build !amd64 && !arm64

package hwy

func detect() DispatchLevel { return DispatchScalar }

// HasFMA reports whether the CPU has fused multiply-add instructions.
func HasFMA() bool { return false }
