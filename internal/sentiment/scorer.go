package sentiment

import (
	"errors"
	"strings"
)

// ErrEmptyReview is returned when review text is empty after trimming.
var ErrEmptyReview = errors.New("empty review")

// Scorer produces a compound polarity score in [-1, 1] for text.
type Scorer interface {
	Polarity(text string) float64
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(text string) float64

// Polarity calls f.
func (f ScorerFunc) Polarity(text string) float64 {
	return f(text)
}

// Classify scores text with scorer and returns its label along with the raw
// score. Text that is blank after trimming is rejected with ErrEmptyReview.
func Classify(scorer Scorer, text string) (Label, float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Neutral, 0, ErrEmptyReview
	}
	if scorer == nil {
		return Neutral, 0, errors.New("sentiment: no scorer configured")
	}
	score := scorer.Polarity(text)
	return LabelFor(score), score, nil
}
