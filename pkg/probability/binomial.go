package probability

import (
	"math"
	"math/bits"
)

// BinomialCoefficient returns C(n, k), the number of ways to choose k
// successes among n trials. It returns 0 when k is outside [0, n].
//
// The multiplicative formula keeps every intermediate value an exact integer:
// after step i the running value equals C(n, i+1), so the division by i+1
// never leaves a remainder. Products are formed in 128 bits, which keeps the
// result exact for every n whose C(n, k) fits in a uint64. It panics when the
// result itself does not fit.
func BinomialCoefficient(n, k int) uint64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	// C(n, k) == C(n, n-k); the shorter loop has the smaller intermediates.
	if n-k < k {
		k = n - k
	}

	result := uint64(1)
	for i := 0; i < k; i++ {
		hi, lo := bits.Mul64(result, uint64(n-i))
		d := uint64(i + 1)
		if hi >= d {
			panic("probability: binomial coefficient overflows uint64")
		}
		result, _ = bits.Div64(hi, lo, d)
	}

	return result
}

// BinomialProbability returns the probability of exactly k successes in n
// trials with per-trial success probability p: C(n,k) * p^k * (1-p)^(n-k).
// A factor whose exponent is zero is exactly 1, even for p of 0 or 1.
func BinomialProbability(n, k int, p float64) float64 {
	coefficient := BinomialCoefficient(n, k)
	if coefficient == 0 {
		return 0
	}

	successes := 1.0
	if k > 0 {
		successes = math.Pow(p, float64(k))
	}
	failures := 1.0
	if n-k > 0 {
		failures = math.Pow(1-p, float64(n-k))
	}

	return float64(coefficient) * successes * failures
}
