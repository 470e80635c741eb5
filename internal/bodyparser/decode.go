package bodyparser

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

var (
	errTooLarge = errors.New("request body exceeds limit")
	errStrict   = errors.New("JSON body must be an object or an array")
)

// decodes a raw body; an empty body yields an empty object and
// anything but an object or array at the top level is rejected
func Decode(raw []byte) (any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	if first := firstChar(raw); first != '{' && first != '[' {
		return nil, errStrict
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	return body, nil
}

// reads at most limit bytes, failing with errTooLarge when more remain
func read(r io.Reader, limit int64) ([]byte, error) {
	if r == nil {
		return nil, nil
	}

	raw, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	if int64(len(raw)) > limit {
		return nil, errTooLarge
	}

	return raw, nil
}

// first byte that is not JSON whitespace, or 0
func firstChar(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b
		}
	}

	return 0
}
