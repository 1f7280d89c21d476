package models

import (
	"encoding/json"
	"testing"

	"github.com/spacesedan/sentilabel/internal/sentiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextValue_Text(t *testing.T) {
	tests := []struct {
		description string
		raw         string
		wantString  bool
		want        string
	}{
		{"Should narrow a string", `"I love this product"`, true, "I love this product"},
		{"Should narrow an empty string", `""`, true, ""},
		{"Should decode escapes", `"café \"ok\""`, true, `café "ok"`},
		{"Should tolerate surrounding whitespace", `  "hi" `, true, "hi"},
		{"Should reject a number", `42`, false, ""},
		{"Should reject a boolean", `true`, false, ""},
		{"Should reject null", `null`, false, ""},
		{"Should reject an object", `{"a":1}`, false, ""},
		{"Should reject an array", `["text"]`, false, ""},
		{"Should reject an empty value", ``, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			s, ok := TextValue(tt.raw).Text().AsString()
			assert.Equal(t, tt.wantString, ok)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestAnalyzeResponse_EchoesOriginalValue(t *testing.T) {
	body, err := json.Marshal(AnalyzeResponse{
		Text:      TextValue(`[1,2]`),
		Sentiment: sentiment.InvalidInput,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":[1,2],"sentiment":"Invalid Input"}`, string(body))

	body, err = json.Marshal(AnalyzeResponse{Sentiment: sentiment.InvalidInput})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":null,"sentiment":"Invalid Input"}`, string(body))
}
