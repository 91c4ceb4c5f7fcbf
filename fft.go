// Package fft is a one-dimensional, mixed-radix Cooley-Tukey discrete
// Fourier transform engine over complex64/complex128 sequences, with a
// real-to-complex wrapper built on top (see RealFFT).
//
// A transform length N is decomposed into prime factors; the planner
// builds an ordered list of radix-2/3/4 (and generic radix-r) butterfly
// passes plus the twiddle table and permutation they need, and the
// executor runs that plan in either direction (forward or inverse)
// without duplicating any of the butterfly code. See internal/plan and internal/kernel.
package fft

import (
	"github.com/Signalsmith-Audio/fft/internal/cpu"
	"github.com/Signalsmith-Audio/fft/internal/fftypes"
	"github.com/Signalsmith-Audio/fft/internal/kernel"
	"github.com/Signalsmith-Audio/fft/internal/plan"
)

// FFT is a reusable complex-to-complex transform of a fixed size N. It
// owns its plan and scratch buffers; the same instance must not be used
// concurrently from multiple goroutines, but independent instances never
// contend.
type FFT[T Complex] struct {
	size    int
	plan    *plan.Plan[T]
	working []T
	scratch []T

	// CacheBudgetBytes is the planner's very-large-sub-length threshold
	// (see internal/plan.DefaultCacheBudgetBytes). It is read by SetSize
	// and friends; changing it takes effect on the next resize.
	CacheBudgetBytes int
}

// New constructs an FFT for the given size. fastDirection > 0 rounds N up
// to the nearest fast size (SizeMinimum), < 0 rounds down (SizeMaximum),
// and 0 uses N exactly. Any N >= 1 is valid exactly: the generic radix-r
// kernel handles prime factors the specialised radix-2/3/4 kernels don't,
// so "fast size" is a performance hint, not a validity requirement.
func New[T Complex](n, fastDirection int) (*FFT[T], error) {
	f := &FFT[T]{CacheBudgetBytes: plan.DefaultCacheBudgetBytes}
	if _, err := f.SetSize(resolveFastSize(n, fastDirection)); err != nil {
		return nil, err
	}

	return f, nil
}

// NewComplex64 constructs a complex64 FFT of exactly size n.
func NewComplex64(n int) (*FFT[complex64], error) {
	return New[complex64](n, 0)
}

// NewComplex128 constructs a complex128 FFT of exactly size n.
func NewComplex128(n int) (*FFT[complex128], error) {
	return New[complex128](n, 0)
}

// SetSize resizes the instance, rebuilding its plan, twiddle table, and
// permutation if the size actually changes. It returns the size used
// (always n, since every positive N is supported) or ErrInvalidSize for
// n <= 0.
func (f *FFT[T]) SetSize(n int) (int, error) {
	if n == f.size && f.plan != nil {
		return f.size, nil
	}

	p, err := plan.Build[T](n, f.cacheBudget())
	if err != nil {
		return 0, ErrInvalidSize
	}

	f.size = n
	f.plan = p
	f.working = make([]T, n)
	f.scratch = make([]T, n)

	return f.size, nil
}

// SetSizeMinimum resizes to SizeMinimum(n).
func (f *FFT[T]) SetSizeMinimum(n int) (int, error) {
	return f.SetSize(SizeMinimum(n))
}

// SetSizeMaximum resizes to SizeMaximum(n).
func (f *FFT[T]) SetSizeMaximum(n int) (int, error) {
	return f.SetSize(SizeMaximum(n))
}

// Size returns the current transform length.
func (f *FFT[T]) Size() int {
	return f.size
}

func (f *FFT[T]) cacheBudget() int {
	if f.CacheBudgetBytes <= 0 {
		return plan.DefaultCacheBudgetBytes
	}

	return f.CacheBudgetBytes
}

// Forward computes X[k] = sum_n input[n] * exp(-2*pi*i*k*n/N) for k in
// [0, N). input and output must both have length Size(); they may alias
// the same underlying array.
func (f *FFT[T]) Forward(input, output []T) error {
	return f.transform(input, output, false)
}

// Inverse computes the unnormalised inverse transform
// x[n] = sum_k input[k] * exp(+2*pi*i*k*n/N). The result is NOT divided
// by N; callers that want the normalised inverse scale it themselves.
func (f *FFT[T]) Inverse(input, output []T) error {
	return f.transform(input, output, true)
}

func (f *FFT[T]) transform(input, output []T, inverse bool) error {
	if f.plan == nil {
		return ErrInvalidSize
	}

	if input == nil || output == nil {
		return ErrNilSlice
	}

	if len(input) != f.size || len(output) != f.size {
		return ErrLengthMismatch
	}

	if f.size == 0 {
		return nil
	}

	if aliasSlices(input, output) {
		kernel.Run(f.plan, input, f.working, f.scratch, inverse)
		copy(output, f.working)

		return nil
	}

	kernel.Run(f.plan, input, output, f.scratch, inverse)

	return nil
}

func aliasSlices[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	return &a[0] == &b[0]
}

// Features reports the CPU SIMD features detected on this machine. The
// engine's codelets are all portable Go today (see internal/fftypes.
// SIMDLevel), so this is informational rather than a dispatch signal.
func Features() fftypes.SIMDLevel {
	return cpu.Detect().Best()
}
