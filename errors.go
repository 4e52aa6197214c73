package jscookie

import "errors"

// Set, Get, All and Remove never fail; these errors come from the typed
// value helpers, the presets and configuration.
var (
	// ErrStoreUnavailable is returned when the jar has no cookie store,
	// for example outside a browser host.
	ErrStoreUnavailable = errors.New("cookie: store unavailable")

	// ErrNotFound is returned when the requested cookie is not set.
	ErrNotFound = errors.New("cookie: not found")

	// ErrConsentNotGranted indicates the consent gate prevented setting.
	ErrConsentNotGranted = errors.New("cookie: consent not granted")

	// ErrSameSiteNoneNeedsSecure is returned for SameSite=None without
	// the secure flag; browsers reject such cookies.
	ErrSameSiteNoneNeedsSecure = errors.New("cookie: SameSite=None cookies must be secure")

	// ErrPrefixRules is returned when a "__Secure-" or "__Host-" cookie
	// does not meet the attribute rules of its prefix.
	ErrPrefixRules = errors.New("cookie: name prefix rules violated")

	// ErrInvalidSameSite is returned for unrecognized SameSite values.
	ErrInvalidSameSite = errors.New("cookie: invalid SameSite value")
)
