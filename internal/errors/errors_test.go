package errors

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestBadRequest_DefaultMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequest(c, "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeBadRequest, resp.Error)
	assert.Equal(t, "invalid request", resp.Message)
	assert.Empty(t, resp.Details)
}

func TestBadRequest_DetailsInDevelopment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequest(c, "malformed JSON body", stderrors.New("invalid character 'x'"))

	resp := decode(t, w)
	assert.Equal(t, "malformed JSON body", resp.Message)
	assert.Equal(t, "invalid character 'x'", resp.Details)
}

func TestSanitizeError_Production(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	assert.Equal(t, "malformed request body", sanitizeError(stderrors.New("json: syntax error at offset 3")))
	assert.Equal(t, "request timed out", sanitizeError(stderrors.New("i/o timeout")))
	assert.Equal(t, "an error occurred", sanitizeError(stderrors.New("boom")))
	assert.Empty(t, sanitizeError(nil))
}

func TestPayloadTooLarge(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	PayloadTooLarge(c, 1024)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodePayloadTooLarge, resp.Error)
	assert.Equal(t, "limit is 1024 bytes", resp.Details)
}

func TestUnsupportedMediaType(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	UnsupportedMediaType(c, "")

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Equal(t, CodeUnsupportedMediaType, decode(t, w).Error)
}

func TestRecovery_RespondsWithServerError(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/panic", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeServerError, resp.Error)
	assert.Equal(t, "internal server error", resp.Message)
}
