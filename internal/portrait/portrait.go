// Package portrait turns uploaded suspect photos into data URLs that can be set on a dossier card.
package portrait

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/myrjola/icaro/internal/errors"
)

// DefaultMaxBytes bounds the size of a portrait.
const DefaultMaxBytes = 2 << 20

var (
	ErrEmpty    = errors.NewSentinel("empty portrait")
	ErrNotImage = errors.NewSentinel("portrait is not an image")
	ErrTooLarge = errors.NewSentinel("portrait is too large")
)

// Encode reads an image of at most maxBytes from r and returns it as a data URL.
func Encode(r io.Reader, maxBytes int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "read portrait")
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if int64(len(data)) > maxBytes {
		return "", errors.Wrap(ErrTooLarge, "check size", slog.Int64("max_bytes", maxBytes))
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", errors.Wrap(ErrNotImage, "sniff content type", slog.String("content_type", contentType))
	}

	var sb strings.Builder
	sb.Grow(len("data:;base64,") + len(contentType) + base64.StdEncoding.EncodedLen(len(data)))
	sb.WriteString("data:")
	sb.WriteString(contentType)
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(data))
	return sb.String(), nil
}

// Decoder defers [Encode] so that it can run when the caller is ready, e.g. outside a lock.
func Decoder(r io.Reader, maxBytes int64) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", errors.Wrap(err, "decode portrait")
		}
		return Encode(r, maxBytes)
	}
}
