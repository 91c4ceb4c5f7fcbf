package primes

import (
	"errors"
	"reflect"
	"testing"
)

func TestFactorize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		want []int
	}{
		{1, []int{}},
		{2, []int{2}},
		{4, []int{2, 2}},
		{6, []int{2, 3}},
		{8, []int{2, 2, 2}},
		{12, []int{2, 2, 3}},
		{13, []int{13}},
		{40, []int{2, 2, 2, 5}},
		{1000, []int{2, 2, 2, 5, 5, 5}},
		{1024, []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}},
	}

	for _, c := range cases {
		got, err := Factorize(c.n)
		if err != nil {
			t.Fatalf("Factorize(%d) returned error: %v", c.n, err)
		}

		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Factorize(%d) = %v, want %v", c.n, got, c.want)
		}

		product := 1
		for _, f := range got {
			product *= f
		}

		if product != c.n {
			t.Errorf("Factorize(%d): factors %v multiply to %d", c.n, got, product)
		}
	}
}

func TestFactorizeInvalidSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, -100} {
		if _, err := Factorize(n); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Factorize(%d) error = %v, want ErrInvalidSize", n, err)
		}
	}
}
