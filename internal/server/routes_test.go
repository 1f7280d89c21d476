package server

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRoutes_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var healthy atomic.Bool
	s := New(Config{CORSAllowedOrigins: []string{"https://app.test"}}, &fakeClassifier{}, &fakeRenderer{}, &healthy)

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	req.Header.Set("Origin", "https://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(s, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.test", w.Header().Get("Access-Control-Allow-Origin"))

	req = postJSON(`{"text":"hi"}`)
	req.Header.Set("Origin", "https://app.test")
	w = serve(s, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.test", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_NoCORSByDefault(t *testing.T) {
	s := newTestServer(t, &fakeClassifier{}, &fakeRenderer{})

	req := postJSON(`{"text":"hi"}`)
	req.Header.Set("Origin", "https://app.test")
	w := serve(s, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
