package jscookie

import (
	"net/http"
	"strings"
	"time"
)

const (
	securePrefix = "__Secure-"
	hostPrefix   = "__Host-"
)

// ConsentChecker returns true if a non-essential cookie may be set.
type ConsentChecker func() bool

// preset is the part shared by the builders below.
type preset struct {
	jar        *Jar
	name       string
	ttl        time.Duration
	hostPrefix bool
}

func (p *preset) setHostPrefix(enable bool) {
	p.hostPrefix = enable
	if enable {
		p.jar = p.jar.WithAttributes(NewAttributes().WithPath("/").WithDomain(""))
	}
}

// setSameSite overrides the preset's sameSite. A mode without a string
// form is stored as "" so the merged value is dropped when serialized.
func (p *preset) setSameSite(mode http.SameSite) {
	attrs := NewAttributes().WithSameSite(mode)
	if _, ok := attrs.Get(AttrSameSite); !ok {
		attrs = attrs.Set(AttrSameSite, "")
	}
	p.jar = p.jar.WithAttributes(attrs)
}

func (p *preset) cookieName() string {
	if p.hostPrefix && !strings.HasPrefix(p.name, hostPrefix) {
		return hostPrefix + p.name
	}
	return p.name
}

func (p *preset) set(value string) error {
	name := p.cookieName()
	var attrs Attributes
	if p.ttl > 0 {
		attrs = attrs.WithExpiresIn(p.ttl)
	}
	if err := validateAttributes(name, Merge(p.jar.Attributes(), attrs)); err != nil {
		return err
	}
	if _, ok := p.jar.Set(name, value, attrs); !ok {
		return ErrStoreUnavailable
	}
	return nil
}

func (p *preset) get() (string, bool) {
	return p.jar.Get(p.cookieName())
}

func (p *preset) remove() {
	p.jar.Remove(p.cookieName())
}

// EssentialBuilder sets a first-party, secure cookie with Lax SameSite by
// default. Great for session identifiers and UI state the site cannot
// work without.
type EssentialBuilder struct {
	p preset
}

// NewEssential creates a builder with safe defaults:
//
//	secure, path="/", sameSite=lax, session lifetime.
//
// Parameters:
//   - jar: The jar to write through.
//   - name: The name of the cookie.
//
// Returns:
//   - *EssentialBuilder: The new builder.
func NewEssential(jar *Jar, name string) *EssentialBuilder {
	return &EssentialBuilder{p: preset{
		jar:  presetDefaults(jar).WithAttributes(NewAttributes().WithSameSite(http.SameSiteLaxMode)),
		name: name,
	}}
}

// WithTTL sets the cookie lifetime. Zero means a session cookie.
func (b *EssentialBuilder) WithTTL(ttl time.Duration) *EssentialBuilder {
	b.p.ttl = ttl
	return b
}

// WithPath sets the path attribute (defaults to "/").
func (b *EssentialBuilder) WithPath(path string) *EssentialBuilder {
	b.p.jar = b.p.jar.WithAttributes(NewAttributes().WithPath(path))
	return b
}

// WithDomain sets the domain attribute. Not allowed with the host prefix.
func (b *EssentialBuilder) WithDomain(domain string) *EssentialBuilder {
	b.p.jar = b.p.jar.WithAttributes(NewAttributes().WithDomain(domain))
	return b
}

// WithHostPrefix enforces the "__Host-" prefix (path="/" and no domain).
func (b *EssentialBuilder) WithHostPrefix(enable bool) *EssentialBuilder {
	b.p.setHostPrefix(enable)
	return b
}

// WithSameSite sets sameSite (lax by default). None requires secure.
// http.SameSiteDefaultMode leaves the attribute out.
func (b *EssentialBuilder) WithSameSite(s http.SameSite) *EssentialBuilder {
	b.p.setSameSite(s)
	return b
}

// WithPartitioned toggles the partitioned attribute.
func (b *EssentialBuilder) WithPartitioned(v bool) *EssentialBuilder {
	b.p.jar = b.p.jar.WithAttributes(NewAttributes().WithPartitioned(v))
	return b
}

// Set writes the value with the configured attributes.
//
// Parameters:
//   - value: The value to set.
//
// Returns:
//   - error: The error if the cookie cannot be set.
func (b *EssentialBuilder) Set(value string) error {
	return b.p.set(value)
}

// Get reads the cookie back.
func (b *EssentialBuilder) Get() (string, bool) {
	return b.p.get()
}

// Delete removes the cookie.
func (b *EssentialBuilder) Delete() {
	b.p.remove()
}

// AnalyticsBuilder sets a client-readable cookie intended for analytics.
// Defaults: secure, sameSite=none, 180 days. Optionally gated by a
// consent checker.
type AnalyticsBuilder struct {
	p       preset
	consent ConsentChecker
}

// NewAnalytics creates a builder with defaults suitable for analytics:
//
//	secure, path="/", sameSite=none, expires in 180 days.
//
// Parameters:
//   - jar: The jar to write through.
//   - name: The name of the cookie.
//
// Returns:
//   - *AnalyticsBuilder: The new builder.
func NewAnalytics(jar *Jar, name string) *AnalyticsBuilder {
	return &AnalyticsBuilder{p: preset{
		jar:  presetDefaults(jar).WithAttributes(NewAttributes().WithSameSite(http.SameSiteNoneMode)),
		name: name,
		ttl:  180 * 24 * time.Hour,
	}}
}

// WithTTL sets the cookie lifetime.
func (b *AnalyticsBuilder) WithTTL(ttl time.Duration) *AnalyticsBuilder {
	b.p.ttl = ttl
	return b
}

// WithDomain sets domain for wider scoping (e.g., "example.com").
func (b *AnalyticsBuilder) WithDomain(domain string) *AnalyticsBuilder {
	b.p.jar = b.p.jar.WithAttributes(NewAttributes().WithDomain(domain))
	return b
}

// WithPath sets the path attribute (defaults to "/").
func (b *AnalyticsBuilder) WithPath(path string) *AnalyticsBuilder {
	b.p.jar = b.p.jar.WithAttributes(NewAttributes().WithPath(path))
	return b
}

// WithPartitioned toggles the partitioned attribute.
func (b *AnalyticsBuilder) WithPartitioned(v bool) *AnalyticsBuilder {
	b.p.jar = b.p.jar.WithAttributes(NewAttributes().WithPartitioned(v))
	return b
}

// WithConsentChecker sets an optional gate; if it returns false, Set
// returns ErrConsentNotGranted and does not write a cookie.
func (b *AnalyticsBuilder) WithConsentChecker(fn ConsentChecker) *AnalyticsBuilder {
	b.consent = fn
	return b
}

// WithHostPrefix enforces the "__Host-" prefix (path="/" and no domain).
func (b *AnalyticsBuilder) WithHostPrefix(enable bool) *AnalyticsBuilder {
	b.p.setHostPrefix(enable)
	return b
}

// Set writes a client-readable value. Honors the consent gate.
//
// Parameters:
//   - value: The value to set.
//
// Returns:
//   - error: The error if the cookie cannot be set.
func (b *AnalyticsBuilder) Set(value string) error {
	if b.consent != nil && !b.consent() {
		return ErrConsentNotGranted
	}
	return b.p.set(value)
}

// SetID is a convenience for ID-like values.
func (b *AnalyticsBuilder) SetID(id string) error {
	return b.Set(id)
}

// Get reads the cookie back.
func (b *AnalyticsBuilder) Get() (string, bool) {
	return b.p.get()
}

// Delete removes the analytics cookie. Deleting ignores the consent gate.
func (b *AnalyticsBuilder) Delete() {
	b.p.remove()
}

// ThirdPartyBuilder targets cross-site contexts, typically for marketing
// or federated flows. Defaults: secure, sameSite=none, 90 days,
// partitioned off (opt in via WithPartitioned).
type ThirdPartyBuilder struct {
	p preset
}

// NewThirdParty creates a builder geared for cross-site usage:
//
//	secure, path="/", sameSite=none, expires in 90 days.
//
// Parameters:
//   - jar: The jar to write through.
//   - name: The name of the cookie.
//
// Returns:
//   - *ThirdPartyBuilder: The new builder.
func NewThirdParty(jar *Jar, name string) *ThirdPartyBuilder {
	return &ThirdPartyBuilder{p: preset{
		jar:  presetDefaults(jar).WithAttributes(NewAttributes().WithSameSite(http.SameSiteNoneMode)),
		name: name,
		ttl:  90 * 24 * time.Hour,
	}}
}

// WithTTL sets the cookie lifetime.
func (b *ThirdPartyBuilder) WithTTL(ttl time.Duration) *ThirdPartyBuilder {
	b.p.ttl = ttl
	return b
}

// WithDomain sets domain (e.g., "example.com").
func (b *ThirdPartyBuilder) WithDomain(domain string) *ThirdPartyBuilder {
	b.p.jar = b.p.jar.WithAttributes(NewAttributes().WithDomain(domain))
	return b
}

// WithPath sets path.
func (b *ThirdPartyBuilder) WithPath(path string) *ThirdPartyBuilder {
	b.p.jar = b.p.jar.WithAttributes(NewAttributes().WithPath(path))
	return b
}

// WithPartitioned toggles the partitioned attribute.
func (b *ThirdPartyBuilder) WithPartitioned(v bool) *ThirdPartyBuilder {
	b.p.jar = b.p.jar.WithAttributes(NewAttributes().WithPartitioned(v))
	return b
}

// WithHostPrefix enforces the "__Host-" prefix (path="/" and no domain).
func (b *ThirdPartyBuilder) WithHostPrefix(enable bool) *ThirdPartyBuilder {
	b.p.setHostPrefix(enable)
	return b
}

// Set writes the value with the configured attributes.
func (b *ThirdPartyBuilder) Set(value string) error {
	return b.p.set(value)
}

// Get reads the cookie back.
func (b *ThirdPartyBuilder) Get() (string, bool) {
	return b.p.get()
}

// Delete removes the cookie.
func (b *ThirdPartyBuilder) Delete() {
	b.p.remove()
}

// presetDefaults sets the values every preset starts from.
func presetDefaults(jar *Jar) *Jar {
	// Secure by default to avoid anti-patterns with SameSite=None.
	return jar.WithAttributes(NewAttributes().WithPath("/").WithSecure(true))
}

// validateAttributes applies the rules browsers enforce silently, so that
// a rejected cookie surfaces as an error instead of going missing.
func validateAttributes(name string, attrs Attributes) error {
	secure, _ := attrs.Get(AttrSecure)
	isSecure := truthy(secure)

	if ss, ok := attrs.Get(AttrSameSite); ok && truthy(ss) &&
		strings.EqualFold(formatValue(ss), sameSiteNone) && !isSecure {
		return ErrSameSiteNoneNeedsSecure
	}
	if strings.HasPrefix(name, securePrefix) && !isSecure {
		return ErrPrefixRules
	}
	if strings.HasPrefix(name, hostPrefix) {
		path, _ := attrs.Get(AttrPath)
		domain, _ := attrs.Get(AttrDomain)
		if !isSecure || formatValue(path) != "/" || truthy(domain) {
			return ErrPrefixRules
		}
	}
	return nil
}
