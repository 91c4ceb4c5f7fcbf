// Package twiddle computes the phase-factor blocks a plan step multiplies
// its inputs by. The table itself is just the flat, append-only slice the
// planner assembles one block at a time; the sharing logic (detecting two
// steps with identical (radix, inner-repeats) and reusing an offset) lives
// in internal/plan, since only the planner has the full step history to
// search.
package twiddle

import (
	"github.com/Signalsmith-Audio/fft/internal/numeric"
)

// Complex is a type alias for the complex number constraint.
type Complex = numeric.Complex

// Block returns the (subLength * factor) twiddle factors for one plan
// step of outer length "length" and the given factor, in the canonical
// forward convention:
//
//	block[i*factor+f] = exp(-2*pi*i*i*f/length)   for i in [0, subLength), f in [0, factor)
//
// where subLength = length/factor. Kernels read this block with a stride
// of "factor" per input element; the inverse direction conjugates entries
// at execution time rather than building a second table.
func Block[T Complex](length, factor int) []T {
	subLength := length / factor
	block := make([]T, 0, subLength*factor)

	for i := 0; i < subLength; i++ {
		for f := 0; f < factor; f++ {
			block = append(block, numeric.Twiddle[T](float64(i*f), float64(length)))
		}
	}

	return block
}
