package probability

import (
	"regexp"
	"strconv"

	"passrate/pkg/serrors"
)

const (
	// MinTrials is the smallest accepted trial count.
	MinTrials = 2
	// MaxTrials is the largest accepted trial count.
	MaxTrials = 9

	// MinSuccessRate and MaxSuccessRate bound the success rate percentage.
	// Both bounds are exclusive.
	MinSuccessRate = 0.0
	MaxSuccessRate = 100.0
)

var (
	// ErrInvalidTrialCount is returned when the trial count is empty, not an
	// integer or outside [MinTrials, MaxTrials].
	ErrInvalidTrialCount = serrors.NewKind("INVALID_TRIAL_COUNT")
	// ErrInvalidSuccessRate is returned when the success rate is empty, not a
	// decimal number or outside (MinSuccessRate, MaxSuccessRate).
	ErrInvalidSuccessRate = serrors.NewKind("INVALID_SUCCESS_RATE")
)

// decimalPattern accepts plain decimal notation with an optional exponent.
// strconv.ParseFloat alone would also take "NaN", "Inf" and hex floats.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`) //nolint: gochecknoglobals

// ParseTrialCount parses and validates raw trial count text.
func ParseTrialCount(raw string) (int, error) {
	if raw == "" {
		return 0, serrors.With(ErrInvalidTrialCount, "trial count is required")
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serrors.Wrap(ErrInvalidTrialCount, err, "trial count must be a whole number")
	}
	if n < MinTrials || n > MaxTrials {
		return 0, serrors.With(ErrInvalidTrialCount,
			"trial count must be between %d and %d, got %d", MinTrials, MaxTrials, n)
	}

	return n, nil
}

// ParseSuccessRate parses and validates raw success rate text. The returned
// value is still a percentage.
func ParseSuccessRate(raw string) (float64, error) {
	if raw == "" {
		return 0, serrors.With(ErrInvalidSuccessRate, "success rate is required")
	}
	if !decimalPattern.MatchString(raw) {
		return 0, serrors.With(ErrInvalidSuccessRate, "success rate must be a decimal number")
	}

	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, serrors.Wrap(ErrInvalidSuccessRate, err, "success rate must be a decimal number")
	}
	if p <= MinSuccessRate || p >= MaxSuccessRate {
		return 0, serrors.With(ErrInvalidSuccessRate,
			"success rate must be greater than %g and less than %g, got %s", MinSuccessRate, MaxSuccessRate, raw)
	}

	return p, nil
}

// ValidateTrialCount reports whether raw is an acceptable trial count.
func ValidateTrialCount(raw string) bool {
	_, err := ParseTrialCount(raw)

	return err == nil
}

// ValidateSuccessRate reports whether raw is an acceptable success rate.
func ValidateSuccessRate(raw string) bool {
	_, err := ParseSuccessRate(raw)

	return err == nil
}
