package domain

// Calculation is the outcome of one successful probability request.
type Calculation struct {
	// Trials is the validated number of independent trials.
	Trials int `json:"trials"`
	// SuccessRate is the validated per-trial success rate, in percent.
	SuccessRate float64 `json:"successRate"`
	// Threshold is the smallest number of successes that is more than half of Trials.
	Threshold int `json:"threshold"`
	// Probability is the chance of reaching Threshold or more successes,
	// rounded to four decimal places.
	Probability float64 `json:"probability"`
}
