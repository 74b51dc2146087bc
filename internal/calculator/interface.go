package calculator

import (
	"context"
	"passrate/pkg/domain"
)

// Calculator computes pass probabilities from raw user input. It is the single
// entry point used by the CLI and the HTTP API.
//
//go:generate mockgen -package mockcalculator -source=interface.go -destination=mock/mockcalculator.go *
type Calculator interface {
	// Calculate validates both raw values and returns the calculation. Invalid
	// input yields an error matching serrors.ErrBadRequest and the specific
	// probability.ErrInvalidTrialCount or probability.ErrInvalidSuccessRate kind.
	Calculate(ctx context.Context, rawTrialCount, rawSuccessRate string) (*domain.Calculation, error)
}
