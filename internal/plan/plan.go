// Package plan builds the ordered list of butterfly passes ("steps") that
// the executor runs to compute one transform of a fixed size, along with
// the twiddle table and permutation those steps reference.
package plan

import (
	"errors"

	"github.com/Signalsmith-Audio/fft/internal/numeric"
	"github.com/Signalsmith-Audio/fft/internal/permute"
	"github.com/Signalsmith-Audio/fft/internal/primes"
	"github.com/Signalsmith-Audio/fft/internal/twiddle"
)

// ErrInvalidSize is returned when Build is asked to plan a non-positive
// transform length.
var ErrInvalidSize = errors.New("plan: size must be positive")

// Complex is a type alias for the complex number constraint.
type Complex = numeric.Complex

// StepKind tags which butterfly kernel a Step dispatches to.
type StepKind uint8

const (
	// Generic is the O(r^2) fallback for any factor, used for primes >= 5.
	Generic StepKind = iota
	Radix2
	Radix3
	Radix4
)

// String names a StepKind for diagnostics.
func (k StepKind) String() string {
	switch k {
	case Radix2:
		return "radix2"
	case Radix3:
		return "radix3"
	case Radix4:
		return "radix4"
	default:
		return "generic"
	}
}

// Step describes one in-place butterfly pass over the output buffer.
type Step struct {
	Kind StepKind
	// Factor is the radix of this pass (2, 3, 4, or a prime >= 5 for Generic).
	Factor int
	// Start is the element offset into the buffer this pass begins at.
	Start int
	// InnerRepeats is the element stride between the Factor inputs of one
	// butterfly, and the number of butterflies per outer repeat.
	InnerRepeats int
	// OuterRepeats is how many times this pass repeats over disjoint
	// blocks of Factor*InnerRepeats elements.
	OuterRepeats int
	// TwiddleOffset indexes into Plan.Twiddles for this pass's block of
	// Factor*InnerRepeats twiddle factors.
	TwiddleOffset int
}

// DefaultCacheBudgetBytes is the working-set size (per complex buffer,
// in bytes) above which the planner splits a repeat-1 pass into several
// smaller cache-friendly passes instead of recursing once at full width.
const DefaultCacheBudgetBytes = 64 * 1024

// Plan is the fully built set of steps, twiddles, and permutation for one
// transform size. It is immutable once returned by Build.
type Plan[T Complex] struct {
	Size        int
	Factors     []int
	Steps       []Step
	Twiddles    []T
	Permutation []permute.Pair
}

// Build constructs a Plan for the given size. cacheBudgetBytes selects the
// very-large-sub-length split threshold from §4.4; pass
// DefaultCacheBudgetBytes to match the reference behaviour.
func Build[T Complex](size int, cacheBudgetBytes int) (*Plan[T], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	factors, err := primes.Factorize(size)
	if err != nil {
		return nil, err
	}

	b := &builder[T]{
		factors:          factors,
		cacheBudgetBytes: cacheBudgetBytes,
		elemBytes:        elemSize[T](),
	}
	b.addSteps(0, 0, size, 1)

	return &Plan[T]{
		Size:        size,
		Factors:     factors,
		Steps:       b.steps,
		Twiddles:    b.twiddles,
		Permutation: permute.Build(size, factors),
	}, nil
}

func elemSize[T Complex]() int {
	var zero T

	switch any(zero).(type) {
	case complex64:
		return 8
	case complex128:
		return 16
	default:
		return 16
	}
}

type builder[T Complex] struct {
	factors          []int
	steps            []Step
	twiddles         []T
	cacheBudgetBytes int
	elemBytes        int
}

// addSteps mirrors signalsmith-fft.h's addPlanSteps: it recurses
// depth-first over the factor list, optionally fusing two consecutive
// radix-2 factors into one radix-4 step, and emits one Step per recursion
// level after recursing into the remaining sub-length (so the resulting
// Steps slice runs from the smallest sub-transform to the largest, the
// order the executor applies them in for both directions).
func (b *builder[T]) addSteps(factorIndex, start, length, repeats int) {
	if factorIndex >= len(b.factors) {
		return
	}

	factor := b.factors[factorIndex]
	if factorIndex+1 < len(b.factors) && b.factors[factorIndex] == 2 && b.factors[factorIndex+1] == 2 {
		factorIndex++
		factor = 4
	}

	subLength := length / factor
	step := Step{
		Kind:          kindForFactor(factor),
		Factor:        factor,
		Start:         start,
		InnerRepeats:  subLength,
		OuterRepeats:  repeats,
		TwiddleOffset: len(b.twiddles),
	}

	shared := false

	for _, existing := range b.steps {
		if existing.Factor == step.Factor && existing.InnerRepeats == step.InnerRepeats {
			step.TwiddleOffset = existing.TwiddleOffset
			shared = true

			break
		}
	}

	if !shared {
		b.twiddles = append(b.twiddles, twiddle.Block[T](length, factor)...)
	}

	if repeats == 1 && subLength*b.elemBytes > b.cacheBudgetBytes {
		for i := 0; i < factor; i++ {
			b.addSteps(factorIndex+1, start+i*subLength, subLength, 1)
		}
	} else {
		b.addSteps(factorIndex+1, start, subLength, repeats*factor)
	}

	b.steps = append(b.steps, step)
}

func kindForFactor(factor int) StepKind {
	switch factor {
	case 2:
		return Radix2
	case 3:
		return Radix3
	case 4:
		return Radix4
	default:
		return Generic
	}
}
