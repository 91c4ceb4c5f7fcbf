//go:build amd64

package cpu

import "golang.org/x/sys/cpu"

// detect reports SSE2/AVX2 support on amd64. SSE2 is part of the amd64
// baseline and is always true here; it's reported anyway so Features stays
// uniform across architectures.
func detect() Features {
	return Features{
		HasSSE2: cpu.X86.HasSSE2,
		HasAVX2: cpu.X86.HasAVX2,
	}
}
