package sentiment

//go:generate mockgen -source=scorer.go -destination=../mocks/mock_scorer.go -package=mocks

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrScorerPanic        = errors.New("scorer panicked")
	ErrPolarityOutOfRange = errors.New("polarity out of range")
)

// Scorer computes an aggregate polarity in [-1, 1] for a text.
type Scorer interface {
	Polarity(text string) (float64, error)
}

type ScorerFunc func(text string) (float64, error)

func (f ScorerFunc) Polarity(text string) (float64, error) {
	return f(text)
}

// SafePolarity calls scorer once and reports every kind of scorer fault as an
// error: returned errors, panics, and values outside [-1, 1] (NaN included).
func SafePolarity(scorer Scorer, text string) (polarity float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			polarity, err = 0, fmt.Errorf("%w: %v", ErrScorerPanic, r)
		}
	}()

	polarity, err = scorer.Polarity(text)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(polarity) || polarity < -1 || polarity > 1 {
		return 0, fmt.Errorf("%w: %v", ErrPolarityOutOfRange, polarity)
	}
	return polarity, nil
}
