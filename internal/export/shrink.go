package export

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// Shrinker compresses a JSON document into a URL path segment. An empty
// result is treated as a failure.
type Shrinker func(data string) (string, error)

// FlateShrinker compresses with raw DEFLATE at the best compression level and
// encodes the result as unpadded URL-safe base64.
func FlateShrinker(data string) (string, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := io.WriteString(w, data); err != nil {
		return "", fmt.Errorf("failed to compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to compress: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Expand reverses FlateShrinker.
func Expand(payload string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("invalid payload encoding: %w", err)
	}

	r := flate.NewReader(bytes.NewReader(raw))
	defer r.Close()

	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return "", fmt.Errorf("failed to decompress payload: %w", err)
	}
	return sb.String(), nil
}
