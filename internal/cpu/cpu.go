// Package cpu reports which CPU features are available on the running
// machine. The engine's codelets are all portable Go (see
// internal/fftypes.SIMDLevel), so nothing here gates dispatch today; it
// exists so Features() has real data to report and so a future vectorised
// codelet family has a detection layer ready to key off.
package cpu

import "github.com/Signalsmith-Audio/fft/internal/fftypes"

// Features describes the SIMD-relevant CPU capabilities detected for the
// current process.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool
}

// Best returns the highest fftypes.SIMDLevel these features would satisfy.
func (f Features) Best() fftypes.SIMDLevel {
	switch {
	case f.HasAVX2:
		return fftypes.SIMDAVX2
	case f.HasNEON:
		return fftypes.SIMDNEON
	case f.HasSSE2:
		return fftypes.SIMDSSE2
	default:
		return fftypes.SIMDNone
	}
}

// Detect returns the CPU features available on the current machine.
func Detect() Features {
	return detect()
}
