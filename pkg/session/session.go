// Package session holds the caller-side state of an interactive probability
// calculator: the raw text of both inputs and the last result or error.
//
// State never changes in place. Callers feed discrete events to Reduce and
// keep the returned value, which makes every transition a pure function that
// is trivial to replay and test.
package session

import (
	"errors"

	"passrate/pkg/probability"
	"passrate/pkg/serrors"
)

const (
	// DefaultTrialCount is the trial count text a new session starts with.
	DefaultTrialCount = "5"
	// DefaultSuccessRate is the success rate text a new session starts with.
	DefaultSuccessRate = "70.0"
)

// State is a snapshot of the calculator as presented to the user.
type State struct {
	// TrialCount is the trial count text as entered.
	TrialCount string
	// SuccessRate is the success rate percentage text as entered.
	SuccessRate string
	// Probability is the last successfully calculated value, nil if none yet.
	Probability *float64
	// Err is the validation error of the last calculate request, nil when it
	// succeeded.
	Err error
}

// Event is an intent sent by the presentation layer.
type Event interface {
	isEvent()
}

// TrialCountChanged replaces the trial count text.
type TrialCountChanged struct{ Value string }

// SuccessRateChanged replaces the success rate text.
type SuccessRateChanged struct{ Value string }

// CalculateRequested asks for a calculation from the current text.
type CalculateRequested struct{}

func (TrialCountChanged) isEvent()  {}
func (SuccessRateChanged) isEvent() {}
func (CalculateRequested) isEvent() {}

// New returns a session seeded with the given input text, already calculated.
func New(trialCount, successRate string) State {
	return Reduce(State{TrialCount: trialCount, SuccessRate: successRate}, CalculateRequested{})
}

// Default returns a session seeded with DefaultTrialCount and
// DefaultSuccessRate.
func Default() State {
	return New(DefaultTrialCount, DefaultSuccessRate)
}

// Reduce applies e to s and returns the next state.
//
// Text changes only replace their field; the previous result stays visible
// until the next calculation. A failed calculation records the error and keeps
// the previous probability. A successful one replaces the probability and
// clears the error.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case TrialCountChanged:
		s.TrialCount = e.Value
	case SuccessRateChanged:
		s.SuccessRate = e.Value
	case CalculateRequested:
		p, err := probability.Evaluate(s.TrialCount, s.SuccessRate)
		if err != nil {
			s.Err = err

			return s
		}
		s.Probability = &p
		s.Err = nil
	}

	return s
}

// Message maps a calculation error to the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, probability.ErrInvalidTrialCount):
		return "Number of subjects must be a whole number from 2 to 9."
	case errors.Is(err, probability.ErrInvalidSuccessRate):
		return "Pass rate must be a number greater than 0 and less than 100."
	default:
		return serrors.MessageOf(err)
	}
}
