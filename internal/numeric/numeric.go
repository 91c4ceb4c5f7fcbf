// Package numeric holds small generic helpers shared by the planner and
// the kernel executor: constructing a Complex from float64 components,
// conjugation, and the 2*Pi constant used throughout twiddle generation.
package numeric

import (
	"math"

	"github.com/Signalsmith-Audio/fft/internal/fftypes"
)

// TwoPi is 2*Pi with full float64 precision.
const TwoPi = 2.0 * math.Pi

// Complex is a type alias for the complex number constraint.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// FromPolar builds a Complex of type T from float64 real/imaginary parts,
// narrowing to float32 for complex64.
func FromPolar[T Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("numeric: unsupported complex type")
	}
}

// Parts returns the real and imaginary components of v as float64,
// widening from float32 for complex64.
func Parts[T Complex](v T) (re, im float64) {
	switch c := any(v).(type) {
	case complex64:
		return float64(real(c)), float64(imag(c))
	case complex128:
		return real(c), imag(c)
	default:
		panic("numeric: unsupported complex type")
	}
}

// Float is a type alias for the real number constraint.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// WidenFloat converts a Float value to float64.
func WidenFloat[R Float](v R) float64 {
	switch f := any(v).(type) {
	case float32:
		return float64(f)
	case float64:
		return f
	default:
		panic("numeric: unsupported float type")
	}
}

// NarrowFloat converts a float64 to a Float, narrowing to float32 if R is
// float32.
func NarrowFloat[R Float](v float64) R {
	var zero R

	switch any(zero).(type) {
	case float32:
		result, _ := any(float32(v)).(R)
		return result
	case float64:
		result, _ := any(v).(R)
		return result
	default:
		panic("numeric: unsupported float type")
	}
}

// Conj returns the complex conjugate of v.
func Conj[T Complex](v T) T {
	switch c := any(v).(type) {
	case complex64:
		result, _ := any(complex(real(c), -imag(c))).(T)
		return result
	case complex128:
		result, _ := any(complex(real(c), -imag(c))).(T)
		return result
	default:
		panic("numeric: unsupported complex type")
	}
}

// MulConj multiplies a by b, or by conj(b) when conjugateSecond is true.
// This is the one primitive both directions of every butterfly kernel
// route through, so the forward/inverse distinction never needs a branch
// inside the hot inner loops beyond this single call.
func MulConj[T Complex](conjugateSecond bool, a, b T) T {
	if !conjugateSecond {
		return a * b
	}

	return a * Conj(b)
}

// Twiddle returns exp(-2*pi*i*num/den), the forward-convention root of
// unity used by both the twiddle table and the generic kernel's per-factor
// rotation.
func Twiddle[T Complex](num, den float64) T {
	phase := -TwoPi * num / den
	return FromPolar[T](math.Cos(phase), math.Sin(phase))
}
