// Package probability computes the chance that strictly more than half of n
// independent trials succeed, each with the same success rate.
//
// Inputs arrive as raw text exactly as a user typed them. Evaluate parses and
// validates both values before any math runs, and reports invalid input as a
// classified error value (ErrInvalidTrialCount or ErrInvalidSuccessRate)
// instead of a partial result. Every function in this package is pure and
// safe for concurrent use.
package probability
