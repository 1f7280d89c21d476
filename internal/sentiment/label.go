package sentiment

import "strings"

// Label is the closed set of classifier outcomes.
type Label string

const (
	Positive       Label = "Positive"
	Negative       Label = "Negative"
	Neutral        Label = "Neutral"
	InvalidInput   Label = "Invalid Input"
	ErrorAnalyzing Label = "Error Analyzing"
)

// Polarity thresholds. Both bounds belong to the Neutral band.
const (
	POSITIVE_THRESHOLD = 0.05
	NEGATIVE_THRESHOLD = -0.05
)

func Labels() []Label {
	return []Label{Positive, Negative, Neutral, InvalidInput, ErrorAnalyzing}
}

// LabelForPolarity applies the threshold policy to a polarity in [-1, 1].
func LabelForPolarity(polarity float64) Label {
	switch {
	case polarity > POSITIVE_THRESHOLD:
		return Positive
	case polarity < NEGATIVE_THRESHOLD:
		return Negative
	default:
		return Neutral
	}
}

func (l Label) String() string {
	return string(l)
}

// Slug is a lowercase, dash separated form of the label, e.g. "invalid-input".
func (l Label) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(l)), " ", "-")
}
