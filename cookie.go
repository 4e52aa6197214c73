package jscookie

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	sameSiteNone   = "none"
	sameSiteLax    = "lax"
	sameSiteStrict = "strict"
)

// Cookie is a handle on a single cookie name in a Jar, typically used for
// an authentication or session cookie.
type Cookie struct {
	jar  *Jar
	name string
}

// Named returns a handle bound to name.
//
// Parameters:
//   - name: The name of the cookie.
//
// Returns:
//   - *Cookie: The new handle.
func (j *Jar) Named(name string) *Cookie {
	return &Cookie{jar: j, name: name}
}

// Name returns the cookie name.
func (c *Cookie) Name() string {
	return c.name
}

// Set writes the cookie with the jar's defaults merged with attrs.
//
// Parameters:
//   - value: The value of the cookie.
//   - attrs: Per-call attributes.
//
// Returns:
//   - string: The string handed to the store.
//   - bool: False when the jar has no store.
func (c *Cookie) Set(value string, attrs ...Attributes) (string, bool) {
	return c.jar.Set(c.name, value, attrs...)
}

// Get returns the decoded value of the cookie.
//
// Returns:
//   - string: The value.
//   - bool: False when the cookie is missing.
func (c *Cookie) Get() (string, bool) {
	return c.jar.Get(c.name)
}

// Remove expires the cookie.
//
// Parameters:
//   - attrs: Path and domain the cookie was set with, if not the defaults.
func (c *Cookie) Remove(attrs ...Attributes) {
	c.jar.Remove(c.name, attrs...)
}

// StringToSameSite converts a string to http.SameSite. It returns an error
// if the provided string is invalid.
//
// Parameters:
//   - s: The string to convert.
//
// Returns:
//   - http.SameSite: The http.SameSite value.
//   - error: The error if any.
func StringToSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case sameSiteNone:
		return http.SameSiteNoneMode, nil
	case sameSiteLax:
		return http.SameSiteLaxMode, nil
	case sameSiteStrict:
		return http.SameSiteStrictMode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}

// MustStringToSameSite converts a string to http.SameSite and panics
// if the string is invalid.
//
// Parameters:
//   - s: The string to convert.
//
// Returns:
//   - http.SameSite: The http.SameSite value.
func MustStringToSameSite(s string) http.SameSite {
	ss, err := StringToSameSite(s)
	if err != nil {
		panic(err)
	}
	return ss
}

// SameSiteToString converts an http.SameSite value to the lowercase form
// used as a sameSite attribute value. Returns an error if the value is not
// recognized.
//
// Parameters:
//   - s: The http.SameSite value.
//
// Returns:
//   - string: The string representation of the http.SameSite value.
//   - error: The error if any.
func SameSiteToString(s http.SameSite) (string, error) {
	switch s {
	case http.SameSiteNoneMode:
		return sameSiteNone, nil
	case http.SameSiteLaxMode:
		return sameSiteLax, nil
	case http.SameSiteStrictMode:
		return sameSiteStrict, nil
	default:
		return "", fmt.Errorf("%w: %v", ErrInvalidSameSite, s)
	}
}

// MustSameSiteToString converts an http.SameSite value to its string
// representation and panics if the value is invalid.
//
// Parameters:
//   - s: The http.SameSite value.
//
// Returns:
//   - string: The string representation of the http.SameSite value.
func MustSameSiteToString(s http.SameSite) string {
	str, err := SameSiteToString(s)
	if err != nil {
		panic(err)
	}
	return str
}
