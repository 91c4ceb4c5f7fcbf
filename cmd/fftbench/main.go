// Command fftbench benchmarks Forward/Inverse across a list of transform
// sizes, reporting the detected CPU features alongside timings.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Signalsmith-Audio/fft"
)

func main() {
	var (
		sizeList = flag.String("sizes", "1024,4096,16384,65536", "comma-separated transform sizes")
		iters    = flag.Int("iters", 50, "benchmark iterations")
		warmup   = flag.Int("warmup", 5, "warmup iterations")
		mode     = flag.String("mode", "forward", "benchmark mode: forward, inverse, roundtrip, all")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes, err := parseSizes(*sizeList)
	if err != nil {
		fmt.Println(err)
		return
	}

	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("cpu features: %s\n", fft.Features())
	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%10s  %10s  %12s\n", "size", "mode", "ns/op")

	for _, n := range sizes {
		for _, runMode := range resolveModes(*mode) {
			nsPerOp, err := benchmarkSize(rnd, n, *iters, *warmup, runMode)
			if err != nil {
				fmt.Printf("%10d  %10s  error: %v\n", n, runMode, err)
				continue
			}

			fmt.Printf("%10d  %10s  %12.1f\n", n, runMode, nsPerOp)
		}
	}
}

func benchmarkSize(rnd *rand.Rand, n, iters, warmup int, mode string) (float64, error) {
	transform, err := fft.New[complex128](n, 0)
	if err != nil {
		return 0, err
	}

	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}

	dst := make([]complex128, n)

	run := func() error {
		switch mode {
		case "forward":
			return transform.Forward(src, dst)
		case "inverse":
			return transform.Inverse(src, dst)
		case "roundtrip":
			if err := transform.Forward(src, dst); err != nil {
				return err
			}

			return transform.Inverse(dst, src)
		default:
			return fmt.Errorf("unknown mode %q", mode)
		}
	}

	for i := 0; i < warmup; i++ {
		if err := run(); err != nil {
			return 0, err
		}
	}

	start := time.Now()

	for i := 0; i < iters; i++ {
		if err := run(); err != nil {
			return 0, err
		}
	}

	elapsed := time.Since(start)

	return float64(elapsed.Nanoseconds()) / float64(iters), nil
}

func resolveModes(mode string) []string {
	if mode == "all" {
		return []string{"forward", "inverse", "roundtrip"}
	}

	return []string{mode}
}

func parseSizes(list string) ([]int, error) {
	var sizes []int

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}

		sizes = append(sizes, n)
	}

	sort.Ints(sizes)

	return sizes, nil
}
