package jscookie

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Converter encodes cookie values for the store and decodes them back.
// name is the encoded cookie name on Write and the decoded name on Read.
type Converter interface {
	Read(value, name string) string
	Write(value, name string) string
}

// ConverterFuncs adapts plain functions to a Converter. A nil field falls
// back to DefaultConverter; passed to Jar.WithConverter, it falls back to
// the jar's current converter instead.
type ConverterFuncs struct {
	ReadFunc  func(value, name string) string
	WriteFunc func(value, name string) string
}

// Read implements Converter.
func (c ConverterFuncs) Read(value, name string) string {
	if c.ReadFunc == nil {
		return DefaultConverter.Read(value, name)
	}
	return c.ReadFunc(value, name)
}

// Write implements Converter.
func (c ConverterFuncs) Write(value, name string) string {
	if c.WriteFunc == nil {
		return DefaultConverter.Write(value, name)
	}
	return c.WriteFunc(value, name)
}

// PercentConverter is the default converter. Write percent-encodes like
// encodeURIComponent but leaves the symbols # $ & + / : < = > ? @ [ ] ^ `
// { | } as they are. Whitespace, '%', ';', ',', '"', '\' and control
// bytes are always escaped.
//
// Read strips one pair of surrounding double quotes and decodes percent
// escapes. Input that does not decode to valid UTF-8 is returned as given.
type PercentConverter struct{}

// DefaultConverter is used by new jars and always for cookie names.
var DefaultConverter = PercentConverter{}

// IdentityConverter stores values exactly as given.
var IdentityConverter = ConverterFuncs{
	ReadFunc:  func(value, _ string) string { return value },
	WriteFunc: func(value, _ string) string { return value },
}

const upperhex = "0123456789ABCDEF"

var escapeRun = regexp.MustCompile(`(?:%[0-9A-Fa-f]{2})+`)

// Write implements Converter.
func (PercentConverter) Write(value, _ string) string {
	n := 0
	for i := 0; i < len(value); i++ {
		if !keepByte(value[i]) {
			n++
		}
	}
	if n == 0 {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) + 2*n)
	for i := 0; i < len(value); i++ {
		c := value[i]
		if keepByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

// Read implements Converter.
func (PercentConverter) Read(value, _ string) string {
	if decoded, ok := unescape(unquote(value), true); ok {
		return decoded
	}
	return value
}

func unquote(value string) string {
	if !strings.HasPrefix(value, `"`) {
		return value
	}
	if len(value) < 2 {
		return ""
	}
	return value[1 : len(value)-1]
}

// unescape decodes every run of %XX escapes. With utf8Only set, a run that
// does not decode to valid UTF-8 fails the whole value.
func unescape(value string, utf8Only bool) (string, bool) {
	ok := true
	decoded := escapeRun.ReplaceAllStringFunc(value, func(run string) string {
		s, err := url.PathUnescape(run)
		if err != nil || (utf8Only && !utf8.ValidString(s)) {
			ok = false
			return run
		}
		return s
	})
	return decoded, ok
}

// keepByte reports whether c passes through Write unescaped.
func keepByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	// encodeURIComponent's unreserved marks
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	case '#', '$', '&', '+', '/', ':', '<', '=', '>', '?', '@', '[', ']', '^', '`', '{', '|', '}':
		return true
	}
	return false
}

// encodeKey encodes a cookie name. Names always go through the default
// converter, and '=' is escaped so it cannot end the name early.
func encodeKey(key string) string {
	return strings.ReplaceAll(DefaultConverter.Write(key, ""), "=", "%3D")
}

// decodeKey reverses encodeKey. Escapes are decoded byte by byte so a
// name that is not valid UTF-8 still matches the key it was set with.
func decodeKey(name string) string {
	decoded, ok := unescape(unquote(name), false)
	if !ok {
		return name
	}
	return decoded
}
