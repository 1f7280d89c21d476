package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// VaderScorer scores text with the VADER lexicon and returns the compound
// score. The analyzer is read-only after construction and safe to share.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Polarity(text string) (float64, error) {
	return v.analyzer.PolarityScores(text).Compound, nil
}

// PlainTextScorer renders markdown to plain text and drops links before
// handing the text to the next scorer.
type PlainTextScorer struct {
	next Scorer
}

func NewPlainTextScorer(next Scorer) *PlainTextScorer {
	return &PlainTextScorer{next: next}
}

func (p *PlainTextScorer) Polarity(text string) (float64, error) {
	return p.next.Polarity(ConvertMarkdownToText(text))
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	// Escape first so the only tags left after rendering are blackfriday's own.
	rendered := blackfriday.Run([]byte(html.EscapeString(input)), blackfriday.WithNoExtensions())
	plainText := html.UnescapeString(tagPattern.ReplaceAllString(string(rendered), ""))

	return strings.Join(strings.Fields(RemoveLinks(plainText)), " ")
}
