package jscookie

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Store is the host's cookie register: one string read and one string
// written per call, like document.cookie. A jar without a store does
// nothing.
type Store interface {
	// ReadCookie returns every visible cookie as "name=value; name2=value2".
	ReadCookie() string
	// WriteCookie applies one "name=value; attr=..." directive.
	WriteCookie(raw string)
}

// StoreOption configures a MemoryStore.
type StoreOption func(*MemoryStore)

// WithStoreClock sets the clock used to decide expiry.
func WithStoreClock(now func() time.Time) StoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// MemoryStore is an in-process Store with browser semantics. Cookies are
// keyed by name, domain and path; a write whose expires lies in the past
// or whose max-age is not positive deletes the matching cookie. Reads
// return live cookies in the order they were first written.
//
// MemoryStore is safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	entries []storedCookie
	now     func() time.Time
}

type storedCookie struct {
	name    string
	value   string
	domain  string
	path    string
	expires time.Time // zero for session cookies
	deleted bool      // max-age <= 0 or expires in the past
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore(opts ...StoreOption) *MemoryStore {
	s := &MemoryStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadCookie implements Store.
func (s *MemoryStore) ReadCookie() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune(s.now())
	pairs := make([]string, 0, len(s.entries))
	for _, c := range s.entries {
		if c.name == "" {
			pairs = append(pairs, c.value)
			continue
		}
		pairs = append(pairs, c.name+"="+c.value)
	}
	return strings.Join(pairs, "; ")
}

// WriteCookie implements Store.
func (s *MemoryStore) WriteCookie(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c := parseDirective(raw, now)
	idx := s.index(c.name, c.domain, c.path)
	if c.expired(now) {
		if idx >= 0 {
			s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
		}
		return
	}
	if idx >= 0 {
		s.entries[idx] = c
		return
	}
	s.entries = append(s.entries, c)
}

// Load seeds the store from a Cookie request header. Loaded cookies are
// session cookies scoped to path "/".
func (s *MemoryStore) Load(header string) {
	if header == "" {
		return
	}
	for _, pair := range strings.Split(header, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		s.WriteCookie(pair)
	}
}

// Len returns the number of live cookies.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune(s.now())
	return len(s.entries)
}

// Clear drops every cookie.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
}

func (s *MemoryStore) index(name, domain, path string) int {
	for i, c := range s.entries {
		if c.name == name && c.domain == domain && c.path == path {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) prune(now time.Time) {
	live := s.entries[:0]
	for _, c := range s.entries {
		if !c.expired(now) {
			live = append(live, c)
		}
	}
	s.entries = live
}

func (c storedCookie) expired(now time.Time) bool {
	return c.deleted || (!c.expires.IsZero() && !c.expires.After(now))
}

// parseDirective parses a document.cookie write. Unknown attributes are
// ignored, as a browser does. now anchors max-age.
func parseDirective(raw string, now time.Time) storedCookie {
	pair, rest, _ := strings.Cut(raw, ";")
	c := storedCookie{path: "/"}
	if name, value, ok := strings.Cut(pair, "="); ok {
		c.name = strings.TrimSpace(name)
		c.value = strings.TrimSpace(value)
	} else {
		c.value = strings.TrimSpace(pair)
	}

	maxAgeSet := false
	for _, attr := range strings.Split(rest, ";") {
		key, val, _ := strings.Cut(strings.TrimSpace(attr), "=")
		val = strings.TrimSpace(val)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "expires":
			if maxAgeSet {
				continue
			}
			if t, err := http.ParseTime(val); err == nil {
				c.expires = t
			}
		case "max-age":
			n, err := strconv.Atoi(val)
			if err != nil {
				continue
			}
			maxAgeSet = true
			c.expires = time.Time{}
			c.deleted = n <= 0
			if n > 0 {
				c.expires = now.Add(time.Duration(n) * time.Second)
			}
		case "path":
			if strings.HasPrefix(val, "/") {
				c.path = val
			}
		case "domain":
			c.domain = strings.ToLower(strings.TrimPrefix(val, "."))
		}
	}
	return c
}
