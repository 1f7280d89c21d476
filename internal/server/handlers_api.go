package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentilabel/internal/models"
)

const JSON_FIELD_TEXT = "text"

// HandleAnalyze classifies the "text" field of a JSON object body. Only
// request-shape problems are reported as HTTP errors; every classifier
// outcome, Error Analyzing included, is a 200.
func (s *Server) HandleAnalyze(c *gin.Context) {
	ctx := c.Request.Context()
	slog.InfoContext(ctx, "[APIHandler] Received request for /analyze API")

	fields, err := decodeJSONObject(c, s.maxBodyBytes)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrBodyTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		slog.InfoContext(ctx, "[APIHandler] Rejected request", slog.String("error", err.Error()))
		c.JSON(status, errorBody(err))
		return
	}

	raw, ok := fields[JSON_FIELD_TEXT]
	if !ok {
		slog.InfoContext(ctx, "[APIHandler] Rejected request", slog.String("error", ErrMissingText.Error()))
		c.JSON(http.StatusBadRequest, errorBody(ErrMissingText))
		return
	}

	text := models.TextValue(raw)
	label := s.classifier.Classify(ctx, text.Text())

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Text:      text,
		Sentiment: label,
	})
}

// decodeJSONObject reads the body as a single UTF-8 JSON object. Anything
// else, including a body not declared as JSON, is ErrNotJSON.
func decodeJSONObject(c *gin.Context, maxBodyBytes int64) (map[string]json.RawMessage, error) {
	if !isJSONContentType(c.GetHeader("Content-Type")) {
		return nil, ErrNotJSON
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, ErrBodyTooLarge
		}
		return nil, ErrNotJSON
	}

	if !utf8.Valid(body) {
		return nil, ErrNotJSON
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, ErrNotJSON
	}
	return fields, nil
}

// isJSONContentType accepts application/json and application/*+json.
func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}
