package probability

import "math"

// Decimals is the number of decimal places every returned probability keeps.
const Decimals = 4

const roundingScale = 10000 // 10^Decimals

// Threshold returns the smallest number of successes that is strictly more
// than half of n trials.
func Threshold(n int) int {
	return n/2 + 1
}

// Round rounds v to Decimals places, resolving exact halves to the even
// neighbour.
func Round(v float64) float64 {
	return math.RoundToEven(v*roundingScale) / roundingScale
}

// Calculate returns the probability that more than half of n trials succeed
// when each succeeds with pPercent percent probability, rounded to Decimals
// places. Inputs are not validated; use Evaluate for untrusted text.
func Calculate(n int, pPercent float64) float64 {
	p := pPercent / 100

	var sum float64
	for k := Threshold(n); k <= n; k++ {
		sum += BinomialProbability(n, k, p)
	}

	return Round(sum)
}

// Input is a validated pair of calculation inputs.
type Input struct {
	Trials      int
	SuccessRate float64 // percent
}

// Parse validates raw user input. The trial count is checked first and the
// first invalid value short-circuits with an error whose kind is
// ErrInvalidTrialCount or ErrInvalidSuccessRate.
func Parse(rawTrialCount, rawSuccessRate string) (Input, error) {
	n, err := ParseTrialCount(rawTrialCount)
	if err != nil {
		return Input{}, err
	}

	p, err := ParseSuccessRate(rawSuccessRate)
	if err != nil {
		return Input{}, err
	}

	return Input{Trials: n, SuccessRate: p}, nil
}

// Evaluate validates raw user input and computes the probability. Invalid
// input is reported as in Parse and no computation is attempted.
func Evaluate(rawTrialCount, rawSuccessRate string) (float64, error) {
	in, err := Parse(rawTrialCount, rawSuccessRate)
	if err != nil {
		return 0, err
	}

	return Calculate(in.Trials, in.SuccessRate), nil
}
