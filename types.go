package fft

import "github.com/Signalsmith-Audio/fft/internal/fftypes"

// Complex is a type constraint for the complex number types supported by
// the FFT: complex64 and complex128. The canonical definition is in
// internal/fftypes.
type Complex = fftypes.Complex

// Float is the real-valued counterpart of Complex, used by RealFFT's
// input/output buffers.
type Float = fftypes.Float
