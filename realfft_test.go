package fft_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/Signalsmith-Audio/fft"
)

func TestRealFFTAgreesWithComplexFFT(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 6, 8, 12, 40} {
		realTransform, err := fft.NewRealFFT64(n, false)
		if err != nil {
			t.Fatalf("NewRealFFT64(%d): %v", n, err)
		}

		complexTransform, err := fft.NewComplex128(n)
		if err != nil {
			t.Fatalf("NewComplex128(%d): %v", n, err)
		}

		rng := rand.New(rand.NewSource(int64(n)))

		signal := make([]float64, n)
		for i := range signal {
			signal[i] = rng.Float64()*2 - 1
		}

		complexInput := make([]complex128, n)
		for i, v := range signal {
			complexInput[i] = complex(v, 0)
		}

		fullSpectrum := make([]complex128, n)
		if err := complexTransform.Forward(complexInput, fullSpectrum); err != nil {
			t.Fatalf("Forward(complex): %v", err)
		}

		realSpectrum := make([]complex128, n/2)
		if err := realTransform.Forward(signal, realSpectrum); err != nil {
			t.Fatalf("Forward(real): %v", err)
		}

		dc := real(fullSpectrum[0])
		nyquist := real(fullSpectrum[n/2])
		assertApproxComplex128(t, realSpectrum[0], complex(dc, nyquist), 1e-8*float64(n), "n=%d packed DC/Nyquist", n)

		for k := 1; k < n/2; k++ {
			assertApproxComplex128(t, realSpectrum[k], fullSpectrum[k], 1e-8*float64(n), "n=%d bin %d", n, k)
		}
	}
}

func TestRealFFTRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 6, 8, 12, 40, 60} {
		realTransform, err := fft.NewRealFFT64(n, false)
		if err != nil {
			t.Fatalf("NewRealFFT64(%d): %v", n, err)
		}

		signal := make([]float64, n)
		for i := range signal {
			signal[i] = math.Sin(float64(i)) + float64(i)
		}

		spectrum := make([]complex128, n/2)
		if err := realTransform.Forward(signal, spectrum); err != nil {
			t.Fatalf("Forward: %v", err)
		}

		back := make([]float64, n)
		if err := realTransform.Inverse(spectrum, back); err != nil {
			t.Fatalf("Inverse: %v", err)
		}

		for i := range back {
			want := signal[i] * float64(n)
			if diff := math.Abs(back[i] - want); diff > 1e-6*float64(n) {
				t.Fatalf("n=%d index %d: got %v want %v (diff=%v)", n, i, back[i], want, diff)
			}
		}
	}
}

func TestRealFFTHalfRotationRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 8, 12, 40} {
		realTransform, err := fft.NewRealFFT64(n, true)
		if err != nil {
			t.Fatalf("NewRealFFT64(%d, true): %v", n, err)
		}

		signal := make([]float64, n)
		for i := range signal {
			signal[i] = float64(i+1) * 0.5
		}

		spectrum := make([]complex128, n/2)
		if err := realTransform.Forward(signal, spectrum); err != nil {
			t.Fatalf("Forward: %v", err)
		}

		back := make([]float64, n)
		if err := realTransform.Inverse(spectrum, back); err != nil {
			t.Fatalf("Inverse: %v", err)
		}

		for i := range back {
			want := signal[i] * float64(n)
			if diff := math.Abs(back[i] - want); diff > 1e-6*float64(n) {
				t.Fatalf("n=%d index %d: got %v want %v (diff=%v)", n, i, back[i], want, diff)
			}
		}
	}
}

func TestRealFFTInvalidSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -4, 5, 7} {
		if _, err := fft.NewRealFFT64(n, false); !errors.Is(err, fft.ErrInvalidSize) {
			t.Errorf("NewRealFFT64(%d) = %v, want ErrInvalidSize", n, err)
		}
	}
}

func TestRealFFTLengthMismatch(t *testing.T) {
	t.Parallel()

	realTransform, err := fft.NewRealFFT64(8, false)
	if err != nil {
		t.Fatal(err)
	}

	spectrum := make([]complex128, 4)
	if err := realTransform.Forward(make([]float64, 4), spectrum); !errors.Is(err, fft.ErrLengthMismatch) {
		t.Errorf("Forward with short input = %v, want ErrLengthMismatch", err)
	}
}

func TestRealFFTSizeHelpers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 7, 8, 100, 1000} {
		min := fft.RealSizeMinimum(n)
		max := fft.RealSizeMaximum(n)

		if min < n {
			t.Errorf("RealSizeMinimum(%d) = %d, want >= %d", n, min, n)
		}

		if min%2 != 0 {
			t.Errorf("RealSizeMinimum(%d) = %d, want even", n, min)
		}

		if max > n {
			t.Errorf("RealSizeMaximum(%d) = %d, want <= %d", n, max, n)
		}

		if max%2 != 0 {
			t.Errorf("RealSizeMaximum(%d) = %d, want even", n, max)
		}
	}
}
