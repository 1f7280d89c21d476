package models

import (
	"bytes"
	"encoding/json"

	"github.com/spacesedan/sentilabel/internal/sentiment"
)

// TextValue is the raw JSON value found under "text" in an analyze request.
// It may be any JSON type and is echoed back unchanged in the response.
type TextValue json.RawMessage

// Text narrows the value for the classifier: JSON strings become string
// text, every other JSON type (null included) becomes non-string text.
func (v TextValue) Text() sentiment.Text {
	raw := bytes.TrimSpace(v)
	if len(raw) == 0 || raw[0] != '"' {
		return sentiment.NonStringText()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return sentiment.NonStringText()
	}
	return sentiment.StringText(s)
}

func (v TextValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

type AnalyzeResponse struct {
	Text      TextValue       `json:"text"`
	Sentiment sentiment.Label `json:"sentiment"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Scorer string `json:"scorer"`
}
