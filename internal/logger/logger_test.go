package logger

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelDebug, ParseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_ProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, "production", "info").Info("server listening", "port", "5000")

	assert.Contains(t, buf.String(), `"msg":"server listening"`)
	assert.Contains(t, buf.String(), `"port":"5000"`)
}

func TestNew_DevelopmentUsesText(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, "development", "info").Info("server listening", "port", "5000")

	assert.Contains(t, buf.String(), `msg="server listening"`)
	assert.Contains(t, buf.String(), "port=5000")
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, "", "info").Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestNewStartup_IgnoresLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	var buf bytes.Buffer
	NewStartup(&buf, "").Info("server listening", "port", 5000)

	assert.Contains(t, buf.String(), "port=5000")
}

func TestFromContext(t *testing.T) {
	assert.Same(t, Default(), FromContext(context.Background()))

	scoped := With("request_id", "abc")
	ctx := WithContext(context.Background(), scoped)

	assert.Same(t, scoped, FromContext(ctx))
}

func TestMiddleware_LogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	previous := Default()
	SetDefault(New(&buf, "", "debug"))
	defer SetDefault(previous)

	router := gin.New()
	router.Use(Middleware())
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Contains(t, buf.String(), `msg="request handled"`)
	assert.Contains(t, buf.String(), "path=/health")
	assert.Contains(t, buf.String(), "status=200")
}
