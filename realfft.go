package fft

import (
	"math"

	"github.com/Signalsmith-Audio/fft/internal/numeric"
)

// RealFFT is a real-to-complex transform of even length N built on top of
// FFT using the half-length trick: the N real samples are treated as an
// N/2-long complex signal, transformed with the complex engine, and the
// result is unpacked into the N/2+1 non-redundant real-DFT bins. Those
// N/2+1 bins (N real values) are stored in N/2 Complex slots:
// bin 0 (DC) and bin N/2 (Nyquist) are both purely real, so they are
// packed together into output[0] as (DC, Nyquist).
//
// R is the real sample type (float32/float64) and C is its matching
// Complex precision (complex64/complex128); use NewRealFFT32/64 rather
// than instantiating RealFFT directly, since Go generics cannot enforce
// the R/C pairing for you.
type RealFFT[R Float, C Complex] struct {
	size         int
	halfRotation bool

	complexFFT *FFT[C]
	buf1, buf2 []C

	twiddlesMinusI []C
	modRotations   []C
}

// NewRealFFT32 constructs a single-precision real FFT of exactly size n
// (n must be even). halfRotation selects the half-bin-rotated ("modified")
// variant, which centres the spectrum on half-bin offsets instead of
// packing DC/Nyquist together.
func NewRealFFT32(n int, halfRotation bool) (*RealFFT[float32, complex64], error) {
	return newRealFFT[float32, complex64](n, halfRotation)
}

// NewRealFFT64 constructs a double-precision real FFT of exactly size n.
func NewRealFFT64(n int, halfRotation bool) (*RealFFT[float64, complex128], error) {
	return newRealFFT[float64, complex128](n, halfRotation)
}

func newRealFFT[R Float, C Complex](n int, halfRotation bool) (*RealFFT[R, C], error) {
	r := &RealFFT[R, C]{halfRotation: halfRotation}
	if _, err := r.SetSize(n); err != nil {
		return nil, err
	}

	return r, nil
}

// RealSizeMinimum returns the smallest even N >= n whose half-length N/2
// is a fast complex transform size.
func RealSizeMinimum(n int) int {
	return 2 * SizeMinimum((n+1)/2)
}

// RealSizeMaximum returns the largest even N <= n whose half-length N/2
// is a fast complex transform size.
func RealSizeMaximum(n int) int {
	return 2 * SizeMaximum(n/2)
}

// SetSize resizes the instance to exactly n, which must be even and >= 2.
// It rebuilds the inner complex FFT, the post-processing twiddle table,
// and (for the half-rotation variant) the pre-rotation table.
func (r *RealFFT[R, C]) SetSize(n int) (int, error) {
	if n <= 0 || n%2 != 0 {
		return 0, ErrInvalidSize
	}

	half := n / 2

	complexFFT, err := New[C](half, 0)
	if err != nil {
		return 0, err
	}

	r.size = n
	r.complexFFT = complexFFT
	r.buf1 = make([]C, half)
	r.buf2 = make([]C, half)

	hhSize := n/4 + 1
	r.twiddlesMinusI = make([]C, hhSize)

	for i := 0; i < hhSize; i++ {
		idx := float64(i)
		if r.halfRotation {
			idx += 0.5
		}

		rotPhase := -numeric.TwoPi * idx / float64(n)
		r.twiddlesMinusI[i] = numeric.FromPolar[C](math.Sin(rotPhase), -math.Cos(rotPhase))
	}

	if r.halfRotation {
		r.modRotations = make([]C, half)
		for i := 0; i < half; i++ {
			r.modRotations[i] = numeric.Twiddle[C](float64(i), float64(n))
		}
	} else {
		r.modRotations = nil
	}

	return r.size, nil
}

// SetSizeMinimum resizes to RealSizeMinimum(n).
func (r *RealFFT[R, C]) SetSizeMinimum(n int) (int, error) {
	return r.SetSize(RealSizeMinimum(n))
}

// SetSizeMaximum resizes to RealSizeMaximum(n).
func (r *RealFFT[R, C]) SetSizeMaximum(n int) (int, error) {
	return r.SetSize(RealSizeMaximum(n))
}

// Size returns the real signal length N.
func (r *RealFFT[R, C]) Size() int {
	return r.size
}

// Forward computes the real-to-complex DFT of input (length Size()) into
// output (length Size()/2): output[0] packs (DC, Nyquist), and output[k]
// for 0 < k < N/2 holds the complex bin at frequency k.
func (r *RealFFT[R, C]) Forward(input []R, output []C) error {
	if r.complexFFT == nil {
		return ErrInvalidSize
	}

	if input == nil || output == nil {
		return ErrNilSlice
	}

	hSize := r.size / 2
	if len(input) != r.size || len(output) != hSize {
		return ErrLengthMismatch
	}

	for i := 0; i < hSize; i++ {
		re := numeric.WidenFloat(input[2*i])
		im := numeric.WidenFloat(input[2*i+1])
		sample := numeric.FromPolar[C](re, im)

		if r.halfRotation {
			sample = sample * r.modRotations[i]
		}

		r.buf1[i] = sample
	}

	if err := r.complexFFT.Forward(r.buf1, r.buf2); err != nil {
		return err
	}

	start := 1
	if r.halfRotation {
		start = 0
	}

	if !r.halfRotation {
		re0, im0 := numeric.Parts(r.buf2[0])
		output[0] = numeric.FromPolar[C](re0+im0, re0-im0)
	}

	for i := start; i <= hSize/2; i++ {
		conjI := hSize - i
		if r.halfRotation {
			conjI = hSize - 1 - i
		}

		odd := (r.buf2[i] + numeric.Conj(r.buf2[conjI])) * numeric.FromPolar[C](0.5, 0)
		evenI := (r.buf2[i] - numeric.Conj(r.buf2[conjI])) * numeric.FromPolar[C](0.5, 0)
		evenRot := evenI * r.twiddlesMinusI[i]

		output[i] = odd + evenRot
		output[conjI] = numeric.Conj(odd - evenRot)
	}

	return nil
}

// Inverse is the exact dual of Forward: input has length Size()/2 in the
// packed format Forward produces, output has length Size().
func (r *RealFFT[R, C]) Inverse(input []C, output []R) error {
	if r.complexFFT == nil {
		return ErrInvalidSize
	}

	if input == nil || output == nil {
		return ErrNilSlice
	}

	hSize := r.size / 2
	if len(input) != hSize || len(output) != r.size {
		return ErrLengthMismatch
	}

	if !r.halfRotation {
		re0, im0 := numeric.Parts(input[0])
		r.buf1[0] = numeric.FromPolar[C](re0+im0, re0-im0)
	}

	start := 1
	if r.halfRotation {
		start = 0
	}

	for i := start; i <= hSize/2; i++ {
		conjI := hSize - i
		if r.halfRotation {
			conjI = hSize - 1 - i
		}

		v, v2 := input[i], input[conjI]
		odd := v + numeric.Conj(v2)
		evenRot := v - numeric.Conj(v2)
		evenI := numeric.MulConj(true, evenRot, r.twiddlesMinusI[i])

		r.buf1[i] = odd + evenI
		r.buf1[conjI] = numeric.Conj(odd - evenI)
	}

	if err := r.complexFFT.Inverse(r.buf1, r.buf2); err != nil {
		return err
	}

	for i := 0; i < hSize; i++ {
		v := r.buf2[i]
		if r.halfRotation {
			v = numeric.MulConj(true, v, r.modRotations[i])
		}

		re, im := numeric.Parts(v)
		output[2*i] = numeric.NarrowFloat[R](re)
		output[2*i+1] = numeric.NarrowFloat[R](im)
	}

	return nil
}
