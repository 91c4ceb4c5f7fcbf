package fft

import "github.com/Signalsmith-Audio/fft/internal/numeric"

// Convolve computes the linear convolution of a and b: a result of length
// len(a)+len(b)-1, where result[n] = sum_k a[k]*b[n-k]. It pads both
// operands to a shared fast transform length, multiplies their spectra
// pointwise, and inverse-transforms, scaling by 1/N.
func Convolve[T Complex](a, b []T) ([]T, error) {
	if a == nil || b == nil {
		return nil, ErrNilSlice
	}

	if len(a) == 0 || len(b) == 0 {
		return nil, ErrLengthMismatch
	}

	outLen := len(a) + len(b) - 1
	n := SizeMinimum(outLen)

	transform, err := New[T](n, 0)
	if err != nil {
		return nil, err
	}

	bufA := make([]T, n)
	bufB := make([]T, n)
	copy(bufA, a)
	copy(bufB, b)

	specA := make([]T, n)
	specB := make([]T, n)

	if err := transform.Forward(bufA, specA); err != nil {
		return nil, err
	}

	if err := transform.Forward(bufB, specB); err != nil {
		return nil, err
	}

	product := make([]T, n)
	for i := range product {
		product[i] = specA[i] * specB[i]
	}

	timeDomain := make([]T, n)
	if err := transform.Inverse(product, timeDomain); err != nil {
		return nil, err
	}

	scale := numeric.FromPolar[T](1/float64(n), 0)

	result := make([]T, outLen)
	for i := range result {
		result[i] = timeDomain[i] * scale
	}

	return result, nil
}

// Convolve64 convolves two complex64 sequences.
func Convolve64(a, b []complex64) ([]complex64, error) {
	return Convolve[complex64](a, b)
}

// Convolve128 convolves two complex128 sequences.
func Convolve128(a, b []complex128) ([]complex128, error) {
	return Convolve[complex128](a, b)
}
