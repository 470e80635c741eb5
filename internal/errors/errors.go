package errors

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"codeberg.org/awibi/medtech-api/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP handlers and middleware:
//   - Use errors.BadRequest(), errors.PayloadTooLarge(), etc. to respond
//     These functions write the JSON response; the caller aborts the chain
//   - errors.InternalError() also logs the full error server-side
//
// For internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller decide how to log and respond

// standard error codes
const (
	CodeBadRequest           = "bad_request"
	CodePayloadTooLarge      = "payload_too_large"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeServerError          = "server_error"
)

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 413 payload too large error
func PayloadTooLarge(c *gin.Context, limit int64) {
	c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
		Error:   CodePayloadTooLarge,
		Message: "request entity too large",
		Details: fmt.Sprintf("limit is %d bytes", limit),
	})
}

// returns a 415 unsupported media type error
func UnsupportedMediaType(c *gin.Context, message string) {
	if message == "" {
		message = "unsupported media type"
	}

	c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{
		Error:   CodeUnsupportedMediaType,
		Message: message,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a gin middleware that turns handler panics into a 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", recovered)
		}

		InternalError(c, "internal server error", err)
		c.Abort()
	})
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	if os.Getenv("ENVIRONMENT") != "production" {
		return errMsg
	}

	lower := strings.ToLower(errMsg)

	if strings.Contains(lower, "json") || strings.Contains(lower, "syntax") {
		return "malformed request body"
	}

	if strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline") {
		return "request timed out"
	}

	if strings.Contains(lower, "connection") || strings.Contains(lower, "network") {
		return "connection error occurred"
	}

	return "an error occurred"
}
