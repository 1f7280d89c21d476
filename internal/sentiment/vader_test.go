package sentiment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaderScorer_Range(t *testing.T) {
	scorer := NewVaderScorer()

	for _, text := range []string{"I love this product", "I hate this service", "It is a table", "Not bad at all"} {
		p, err := scorer.Polarity(text)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p, -1.0, text)
		assert.LessOrEqual(t, p, 1.0, text)
	}
}

func TestVaderScorer_CaseIsNotNormalized(t *testing.T) {
	scorer := NewVaderScorer()

	lower, err := scorer.Polarity("this is good")
	require.NoError(t, err)
	shouted, err := scorer.Polarity("this is GOOD")
	require.NoError(t, err)

	assert.Greater(t, shouted, lower)
}

func TestConvertMarkdownToText(t *testing.T) {
	tests := []struct {
		description string
		input       string
		want        string
	}{
		{"Should strip emphasis", "**great** work", "great work"},
		{"Should keep link text and drop the url", "read the [docs](https://example.com/docs) now", "read the docs now"},
		{"Should drop bare urls", "see https://example.com and www.example.org today", "see and today"},
		{"Should unescape entities", "fish & chips", "fish & chips"},
		{"Should collapse whitespace", "a\n\n   b", "a b"},
		{"Should keep angle brackets from the input", "I <3 this > that", "I <3 this > that"},
		{"Should keep literal markup from the input", "<b>so good</b>", "<b>so good</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertMarkdownToText(tt.input))
		})
	}
}

func TestPlainTextScorer_Delegates(t *testing.T) {
	var seen string
	scorer := NewPlainTextScorer(ScorerFunc(func(text string) (float64, error) {
		seen = text
		return 0.4, nil
	}))

	p, err := scorer.Polarity("*nice* https://example.com")
	require.NoError(t, err)
	assert.Equal(t, 0.4, p)
	assert.Equal(t, "nice", seen)
}

func TestSafePolarity(t *testing.T) {
	_, err := SafePolarity(ScorerFunc(func(string) (float64, error) { panic("boom") }), "x")
	assert.ErrorIs(t, err, ErrScorerPanic)

	_, err = SafePolarity(ScorerFunc(func(string) (float64, error) { return 2, nil }), "x")
	assert.ErrorIs(t, err, ErrPolarityOutOfRange)

	cause := errors.New("down")
	_, err = SafePolarity(ScorerFunc(func(string) (float64, error) { return 0, cause }), "x")
	assert.ErrorIs(t, err, cause)

	p, err := SafePolarity(ScorerFunc(func(string) (float64, error) { return -0.5, nil }), "x")
	require.NoError(t, err)
	assert.Equal(t, -0.5, p)
}
