//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

// detect reports NEON support on arm64. NEON is mandatory on arm64, so
// this is always true, but is still detected through x/sys/cpu rather than
// hardcoded, matching how the amd64 build queries its baseline feature.
func detect() Features {
	return Features{
		HasNEON: cpu.ARM64.HasASIMD,
	}
}
