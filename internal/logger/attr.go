// Package logger holds slog attribute helpers shared by the jar and its
// stores. Helpers return an empty slog.Attr for empty input so callers can
// pass them unconditionally.
package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Cookie creates an attribute for a decoded cookie name.
func Cookie(name string) slog.Attr {
	return slog.String("cookie", name)
}

// Bytes creates an attribute for the length of a serialized cookie.
func Bytes(n int) slog.Attr {
	return slog.Int("bytes", n)
}

// Store names the concrete store type behind a jar.
func Store(s any) slog.Attr {
	if s == nil {
		return slog.Attr{}
	}
	return slog.String("store", fmt.Sprintf("%T", s))
}

// Codec names the concrete codec type used for typed values.
func Codec(c any) slog.Attr {
	if c == nil {
		return slog.Attr{}
	}
	return slog.String("codec", fmt.Sprintf("%T", c))
}
