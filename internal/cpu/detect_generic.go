//go:build !amd64 && !arm64

package cpu

// detect returns the zero Features value on architectures the engine has
// no vectorised codelets for; every transform runs the portable kernels.
func detect() Features {
	return Features{}
}
