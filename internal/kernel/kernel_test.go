package kernel

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/Signalsmith-Audio/fft/internal/plan"
)

func TestRunSingleBinIdentity(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 4, 5, 6, 8, 9, 12, 16, 40} {
		p, err := plan.Build[complex128](n, plan.DefaultCacheBudgetBytes)
		if err != nil {
			t.Fatalf("Build(%d): %v", n, err)
		}

		for bin := 0; bin < n; bin++ {
			input := make([]complex128, n)
			for i := range input {
				phase := 2 * math.Pi * float64(i*bin) / float64(n)
				input[i] = cmplx.Exp(complex(0, phase))
			}

			output := make([]complex128, n)
			scratch := make([]complex128, n)
			Run(p, input, output, scratch, false)

			for k, got := range output {
				want := complex128(0)
				if k == bin {
					want = complex(float64(n), 0)
				}

				if cmplx.Abs(got-want) > 1e-9*float64(n) {
					t.Fatalf("n=%d bin=%d: output[%d] = %v, want %v", n, bin, k, got, want)
				}
			}
		}
	}
}

func TestRunRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 6, 12, 40, 60} {
		p, err := plan.Build[complex128](n, plan.DefaultCacheBudgetBytes)
		if err != nil {
			t.Fatalf("Build(%d): %v", n, err)
		}

		input := make([]complex128, n)
		for i := range input {
			input[i] = complex(float64(i+1), float64(-i))
		}

		freq := make([]complex128, n)
		scratch := make([]complex128, n)
		Run(p, input, freq, scratch, false)

		back := make([]complex128, n)
		Run(p, freq, back, scratch, true)

		for i := range back {
			want := input[i] * complex(float64(n), 0)
			if cmplx.Abs(back[i]-want) > 1e-8*float64(n) {
				t.Fatalf("n=%d: round-trip[%d] = %v, want %v", n, i, back[i], want)
			}
		}
	}
}
