package primes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hashkit/rhmap/internal/primes"
)

func TestNextPrime(t *testing.T) {
	cases := map[int]int{
		0:    primes.MinCapacity,
		1:    primes.MinCapacity,
		2:    2,
		5:    5,
		11:   11,
		12:   13,
		13:   13,
		31:   31,
		100:  101,
		1000: 1009,
	}
	for in, want := range cases {
		assert.Equal(t, want, primes.NextPrime(in), "NextPrime(%d)", in)
	}
}

func TestNextPrimeIsAlwaysPrime(t *testing.T) {
	for n := 0; n < 2000; n++ {
		p := primes.NextPrime(n)
		for d := 2; d*d <= p; d++ {
			assert.NotZero(t, p%d, "NextPrime(%d)=%d divisible by %d", n, p, d)
		}
	}
}
