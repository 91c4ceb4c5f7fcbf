// Package kernel applies a built plan to a buffer: the permutation that
// reorders input into processing order, followed by the ordered sequence
// of radix-2/3/4 and generic butterfly passes, run in place on the output
// buffer with a direction flag that conjugates twiddles instead of
// building a second, mirrored plan.
package kernel

import (
	"math"

	"github.com/Signalsmith-Audio/fft/internal/numeric"
	"github.com/Signalsmith-Audio/fft/internal/permute"
	"github.com/Signalsmith-Audio/fft/internal/plan"
)

// Complex is a type alias for the complex number constraint.
type Complex = numeric.Complex

// Run permutes input into output and then executes every step of p in
// place on output. scratch must have length >= p.Size; it is only touched
// by generic (non-radix-2/3/4) steps. inverse conjugates every twiddle
// multiplication; it does not rescale the result (callers apply the
// 1/N normalisation, N = p.Size, themselves).
func Run[T Complex](p *plan.Plan[T], input, output, scratch []T, inverse bool) {
	permuteInto(output, input, p.Permutation)

	for _, step := range p.Steps {
		data := output[step.Start:]
		tw := p.Twiddles[step.TwiddleOffset:]

		switch step.Kind {
		case plan.Radix2:
			stepRadix2(data, tw, step, inverse)
		case plan.Radix3:
			stepRadix3(data, tw, step, inverse)
		case plan.Radix4:
			stepRadix4(data, tw, step, inverse)
		default:
			stepGeneric(data, tw, step, inverse, scratch)
		}
	}
}

func permuteInto[T Complex](dst, src []T, pairs []permute.Pair) {
	for _, pair := range pairs {
		dst[pair.From] = src[pair.To]
	}
}

// mulI returns i*v.
func mulI[T Complex](v T) T {
	switch c := any(v).(type) {
	case complex64:
		result, _ := any(complex(-imag(c), real(c))).(T)
		return result
	case complex128:
		result, _ := any(complex(-imag(c), real(c))).(T)
		return result
	default:
		panic("kernel: unsupported complex type")
	}
}

// addI returns a+i*b, or a-i*b when flipped.
func addI[T Complex](flipped bool, a, b T) T {
	if flipped {
		return a - mulI(b)
	}

	return a + mulI(b)
}

// scale returns v*r, where r is a real scalar.
func scale[T Complex](v T, r float64) T {
	switch c := any(v).(type) {
	case complex64:
		result, _ := any(complex64(complex(real(c)*float32(r), imag(c)*float32(r)))).(T)
		return result
	case complex128:
		result, _ := any(complex(real(c)*r, imag(c)*r)).(T)
		return result
	default:
		panic("kernel: unsupported complex type")
	}
}

func stepRadix2[T Complex](data, tw []T, step plan.Step, inverse bool) {
	stride := step.InnerRepeats

	for outer := 0; outer < step.OuterRepeats; outer++ {
		base := outer * 2 * stride
		twIdx := 0

		for i := 0; i < stride; i++ {
			a := data[base+i]
			b := numeric.MulConj(inverse, data[base+i+stride], tw[twIdx+1])

			data[base+i] = a + b
			data[base+i+stride] = a - b
			twIdx += 2
		}
	}
}

func stepRadix3[T Complex](data, tw []T, step plan.Step, inverse bool) {
	const sqrt3Over2 = 0.8660254037844386

	imagSign := -sqrt3Over2
	if inverse {
		imagSign = sqrt3Over2
	}

	stride := step.InnerRepeats

	for outer := 0; outer < step.OuterRepeats; outer++ {
		base := outer * 3 * stride
		twIdx := 0

		for i := 0; i < stride; i++ {
			a := data[base+i]
			b := numeric.MulConj(inverse, data[base+i+stride], tw[twIdx+1])
			c := numeric.MulConj(inverse, data[base+i+2*stride], tw[twIdx+2])

			realSum := a + scale(b+c, -0.5)
			imagSum := scale(b-c, imagSign)

			data[base+i] = a + b + c
			data[base+i+stride] = addI(false, realSum, imagSum)
			data[base+i+2*stride] = addI(true, realSum, imagSum)
			twIdx += 3
		}
	}
}

func stepRadix4[T Complex](data, tw []T, step plan.Step, inverse bool) {
	stride := step.InnerRepeats

	for outer := 0; outer < step.OuterRepeats; outer++ {
		base := outer * 4 * stride
		twIdx := 0

		for i := 0; i < stride; i++ {
			a := data[base+i]
			c := numeric.MulConj(inverse, data[base+i+stride], tw[twIdx+2])
			b := numeric.MulConj(inverse, data[base+i+2*stride], tw[twIdx+1])
			d := numeric.MulConj(inverse, data[base+i+3*stride], tw[twIdx+3])

			sumAC, sumBD := a+c, b+d
			diffAC, diffBD := a-c, b-d

			data[base+i] = sumAC + sumBD
			data[base+i+stride] = addI(!inverse, diffAC, diffBD)
			data[base+i+2*stride] = sumAC - sumBD
			data[base+i+3*stride] = addI(inverse, diffAC, diffBD)
			twIdx += 4
		}
	}
}

func stepGeneric[T Complex](data, tw []T, step plan.Step, inverse bool, scratch []T) {
	stride := step.InnerRepeats
	factor := step.Factor
	working := scratch[:factor]

	for outer := 0; outer < step.OuterRepeats; outer++ {
		base := outer * factor * stride
		twIdx := 0

		for repeat := 0; repeat < step.InnerRepeats; repeat++ {
			cursor := base + repeat

			for i := 0; i < factor; i++ {
				working[i] = numeric.MulConj(inverse, data[cursor+i*stride], tw[twIdx+i])
			}

			for f := 0; f < factor; f++ {
				sum := working[0]

				for i := 1; i < factor; i++ {
					phase := -numeric.TwoPi * float64(f*i) / float64(factor)
					rotation := numeric.FromPolar[T](math.Cos(phase), math.Sin(phase))
					sum += numeric.MulConj(inverse, working[i], rotation)
				}

				data[cursor+f*stride] = sum
			}

			twIdx += factor
		}
	}
}
