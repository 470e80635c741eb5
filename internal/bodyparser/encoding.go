package bodyparser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	errUnsupportedEncoding = errors.New("unsupported content encoding")
	errUnsupportedCharset  = errors.New("unsupported charset")
)

// wraps body in a decompressor matching the Content-Encoding header
func decompress(body io.Reader, contentEncoding string) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(contentEncoding)) {
	case "", "identity":
		return io.NopCloser(body), nil
	case "gzip":
		zr, err := gzip.NewReader(body)
		if errors.Is(err, io.EOF) {
			return io.NopCloser(bytes.NewReader(nil)), nil
		}

		if err != nil {
			return nil, fmt.Errorf("invalid gzip body: %w", err)
		}

		return zr, nil
	case "deflate":
		zr, err := zlib.NewReader(body)
		if errors.Is(err, io.EOF) {
			return io.NopCloser(bytes.NewReader(nil)), nil
		}

		if err != nil {
			return nil, fmt.Errorf("invalid deflate body: %w", err)
		}

		return zr, nil
	default:
		return nil, fmt.Errorf("%w %q", errUnsupportedEncoding, contentEncoding)
	}
}

// returns the decoder for a charset parameter; nil means the bytes are already UTF-8
func charsetDecoder(charset string) (transform.Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "utf-16":
		// little endian unless a byte order mark says otherwise
		return unicode.BOMOverride(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()), nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder(), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w %q", errUnsupportedCharset, strings.ToUpper(charset))
	}
}

// converts raw to UTF-8 and drops a leading byte order mark
func toUTF8(raw []byte, dec transform.Transformer) ([]byte, error) {
	if dec != nil {
		converted, _, err := transform.Bytes(dec, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode charset: %w", err)
		}

		raw = converted
	}

	return bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf")), nil
}
