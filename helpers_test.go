package jscookie_test

import (
	"testing"
	"time"

	"github.com/aatuh/jscookie"
)

var testNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// newTestJar returns a jar and its store, both on the fixed clock.
func newTestJar(t *testing.T, opts ...jscookie.Option) (*jscookie.Jar, *jscookie.MemoryStore) {
	t.Helper()
	store := jscookie.NewMemoryStore(jscookie.WithStoreClock(fixedClock))
	opts = append([]jscookie.Option{jscookie.WithClock(fixedClock)}, opts...)
	return jscookie.New(store, opts...), store
}

// rawStore serves a fixed cookie string and records writes.
type rawStore struct {
	raw    string
	writes []string
}

func (s *rawStore) ReadCookie() string { return s.raw }

func (s *rawStore) WriteCookie(raw string) { s.writes = append(s.writes, raw) }
