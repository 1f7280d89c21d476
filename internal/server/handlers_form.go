package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentilabel/internal/sentiment"
)

const (
	FORM_FIELD_TEXT   = "text_input"
	LOG_PREVIEW_RUNES = 50
)

// HandleIndex serves the form page. GET and HEAD render the empty form. POST
// echoes the submitted text and classifies it unless it is empty.
func (s *Server) HandleIndex(c *gin.Context) {
	ctx := c.Request.Context()
	var view IndexView

	if c.Request.Method == http.MethodPost {
		if err := s.parseForm(c); err != nil {
			status := http.StatusBadRequest
			public := ErrInvalidForm
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				status, public = http.StatusRequestEntityTooLarge, ErrBodyTooLarge
			}
			slog.ErrorContext(ctx, "[FormHandler] Failed to parse form",
				slog.String("error", err.Error()))
			c.String(status, public.Error())
			return
		}

		text := c.PostForm(FORM_FIELD_TEXT)
		view.TextInput = &text

		slog.InfoContext(ctx, "[FormHandler] Received text for analysis",
			slog.String("preview", preview(text)))

		if text != "" {
			label := s.classifier.Classify(ctx, sentiment.StringText(text))
			view.Sentiment = &label
			slog.InfoContext(ctx, "[FormHandler] Analysis result",
				slog.String("sentiment", label.String()))
		} else {
			slog.WarnContext(ctx, "[FormHandler] Received empty text input")
		}
	}

	var page bytes.Buffer
	if err := s.renderer.Render(&page, view); err != nil {
		slog.ErrorContext(ctx, "[FormHandler] Failed to render page",
			slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page.Bytes())
}

// parseForm reads the body under the size cap so an oversized or broken
// submission is reported instead of looking like an empty field.
func (s *Server) parseForm(c *gin.Context) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBodyBytes)
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		return c.Request.ParseMultipartForm(s.maxBodyBytes)
	}
	return c.Request.ParseForm()
}

func preview(text string) string {
	if runes := []rune(text); len(runes) > LOG_PREVIEW_RUNES {
		return string(runes[:LOG_PREVIEW_RUNES]) + "..."
	}
	return text
}
