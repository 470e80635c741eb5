// Package bodyparser decodes JSON request bodies before routing so that a
// malformed payload is rejected with a client error on any path, matched or not.
package bodyparser

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"strings"

	apierrors "codeberg.org/awibi/medtech-api/internal/errors"
	"github.com/gin-gonic/gin"
)

// gin context key holding the decoded body
const ContextKey = "body"

// returns a gin middleware decoding application/json bodies up to limit bytes
func JSON(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaType, params, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
		if err != nil || mediaType != gin.MIMEJSON {
			c.Next()
			return
		}

		dec, err := charsetDecoder(params["charset"])
		if err != nil {
			apierrors.UnsupportedMediaType(c, err.Error())
			c.Abort()
			return
		}

		contentEncoding := c.GetHeader("Content-Encoding")

		// compressed bodies are measured after inflating
		if c.Request.ContentLength > limit && isIdentity(contentEncoding) {
			apierrors.PayloadTooLarge(c, limit)
			c.Abort()
			return
		}

		raw, err := readBody(c.Request.Body, contentEncoding, limit)
		if err != nil {
			switch {
			case errors.Is(err, errUnsupportedEncoding):
				apierrors.UnsupportedMediaType(c, err.Error())
			case errors.Is(err, errTooLarge):
				apierrors.PayloadTooLarge(c, limit)
			default:
				apierrors.BadRequest(c, "failed to read request body", err)
			}

			c.Abort()
			return
		}

		raw, err = toUTF8(raw, dec)
		if err != nil {
			apierrors.BadRequest(c, "failed to decode request body", err)
			c.Abort()
			return
		}

		body, err := Decode(raw)
		if err != nil {
			apierrors.BadRequest(c, "malformed JSON body", err)
			c.Abort()
			return
		}

		// later handlers see the plain UTF-8 bytes
		c.Set(ContextKey, body)
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		c.Request.ContentLength = int64(len(raw))
		c.Request.Header.Del("Content-Encoding")

		c.Next()
	}
}

// returns the decoded body stored by the middleware
func Body(c *gin.Context) (any, bool) {
	return c.Get(ContextKey)
}

// inflates the body per contentEncoding and reads at most limit bytes of the result
func readBody(body io.Reader, contentEncoding string, limit int64) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	r, err := decompress(body, contentEncoding)
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck // read-only

	return read(r, limit)
}

func isIdentity(contentEncoding string) bool {
	switch strings.ToLower(strings.TrimSpace(contentEncoding)) {
	case "", "identity":
		return true
	default:
		return false
	}
}
