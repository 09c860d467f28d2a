package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlerLogger(t *testing.T) {
	var buf bytes.Buffer
	NewHandlerLogger(&buf, "production", slog.LevelInfo).Info("hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "v", line["k"])

	buf.Reset()
	NewHandlerLogger(&buf, "development", slog.LevelWarn).Info("dropped")
	assert.Empty(t, buf.String())
}

func TestFromContext_Fallback(t *testing.T) {
	fallback := NewSlogLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	assert.Same(t, fallback, FromContext(context.Background(), fallback))
}

func TestContextLogger_CarriesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := NewSlogLogger(NewHandlerLogger(&buf, "production", slog.LevelInfo))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("request_id", "req-1")
		c.Next()
	})
	router.Use(ContextLogger(logger), LoggerMiddleware(logger))
	router.GET("/ping", func(c *gin.Context) {
		FromContext(c.Request.Context(), nil).Info("inside")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, raw := range lines {
		var line map[string]any
		require.NoError(t, json.Unmarshal(raw, &line))
		assert.Equal(t, "req-1", line["request_id"])
	}

	var access map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &access))
	assert.Equal(t, "Request completed", access["msg"])
	assert.EqualValues(t, http.StatusNoContent, access["status"])
}
