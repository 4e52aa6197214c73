package jscookie

import (
	"iter"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/aatuh/jscookie/internal/logger"
)

// Jar reads and writes cookies through a Store using one converter and one
// set of default attributes.
//
// A Jar never changes after New returns. WithAttributes, WithConverter and
// WithStore return a new Jar and leave the receiver untouched, so a Jar
// can be shared freely.
type Jar struct {
	store      Store
	converter  Converter
	attributes Attributes
	codec      Codec
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Jar at construction.
type Option func(*Jar)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(j *Jar) {
		if l != nil {
			j.logger = l
		}
	}
}

// WithClock sets the clock used to resolve relative expiry.
func WithClock(now func() time.Time) Option {
	return func(j *Jar) {
		if now != nil {
			j.now = now
		}
	}
}

// WithCodec sets the codec used by SetValue and GetValue.
func WithCodec(c Codec) Option {
	return func(j *Jar) {
		if c != nil {
			j.codec = c
		}
	}
}

// New creates a Jar over store with the default converter and the default
// attributes {path: "/"}. A nil store makes every operation a no-op.
func New(store Store, opts ...Option) *Jar {
	j := &Jar{
		store:      usableStore(store),
		converter:  DefaultConverter,
		attributes: NewAttributes(Attribute{Name: AttrPath, Value: "/"}),
		codec:      NewJSONCodec(),
		logger:     slog.New(slog.DiscardHandler),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Default returns a Jar over DocumentStore. Outside a js/wasm build it has
// no store and does nothing.
func Default() *Jar {
	return New(DocumentStore())
}

// Available reports whether the jar has a cookie store.
func (j *Jar) Available() bool {
	return j.store != nil
}

// Attributes returns the jar's default attributes.
func (j *Jar) Attributes() Attributes {
	return j.attributes
}

// Converter returns the jar's value converter.
func (j *Jar) Converter() Converter {
	return j.converter
}

// WithAttributes returns a Jar whose defaults are the receiver's defaults
// merged with attrs.
func (j *Jar) WithAttributes(attrs Attributes) *Jar {
	next := *j
	next.attributes = Merge(j.attributes, attrs)
	return &next
}

// WithConverter returns a Jar that uses c for values. A ConverterFuncs
// with a nil field keeps the receiver's function for that direction; a nil
// c keeps the receiver's converter.
func (j *Jar) WithConverter(c Converter) *Jar {
	next := *j
	next.converter = mergeConverter(j.converter, c)
	return &next
}

// WithStore returns a Jar bound to another store.
func (j *Jar) WithStore(store Store) *Jar {
	next := *j
	next.store = usableStore(store)
	return &next
}

// Set writes key=value with the jar's defaults merged with attrs, later
// attrs winning. It returns the string handed to the store, or false when
// the jar has no store.
//
// The key is always encoded with DefaultConverter and '=' in it becomes
// "%3D". The value is encoded with the jar's converter.
func (j *Jar) Set(key, value string, attrs ...Attributes) (string, bool) {
	if j.store == nil {
		j.logger.Debug("cookie store unavailable, set skipped", logger.Cookie(key))
		return "", false
	}

	effective := Merge(append([]Attributes{j.attributes}, attrs...)...)
	name := encodeKey(key)
	raw := name + "=" + j.converter.Write(value, name) + serializeAttributes(effective, j.now())

	j.store.WriteCookie(raw)
	j.logger.Debug("cookie written",
		logger.Cookie(key),
		logger.Bytes(len(raw)),
		logger.Store(j.store),
	)
	return raw, true
}

// Get returns the decoded value of key. It reports false when the cookie
// is missing, key is empty or the jar has no store. When several cookies
// share the name, the first one the store returns wins.
func (j *Jar) Get(key string) (string, bool) {
	if j.store == nil || key == "" {
		return "", false
	}
	for name, value := range j.entries() {
		if name == key {
			return value, true
		}
	}
	return "", false
}

// All returns every cookie the store exposes, decoded. When several
// cookies share a name the last one wins. All returns nil when the jar has
// no store.
func (j *Jar) All() map[string]string {
	if j.store == nil {
		return nil
	}
	out := make(map[string]string)
	for name, value := range j.entries() {
		out[name] = value
	}
	return out
}

// Remove expires key immediately. attrs must match the path and domain the
// cookie was set with, or the host keeps it.
func (j *Jar) Remove(key string, attrs ...Attributes) {
	expire := NewAttributes(Attribute{Name: AttrExpires, Value: -1})
	if _, ok := j.Set(key, "", append(slices.Clone(attrs), expire)...); ok {
		j.logger.Debug("cookie removed", logger.Cookie(key))
	}
}

// entries yields decoded name/value pairs in store order. Everything after
// the first '=' of an entry is its value, so values may contain '='.
func (j *Jar) entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		raw := j.store.ReadCookie()
		if raw == "" {
			return
		}
		for _, entry := range strings.Split(raw, "; ") {
			name, value, _ := strings.Cut(entry, "=")
			name = decodeKey(name)
			if !yield(name, j.converter.Read(value, name)) {
				return
			}
		}
	}
}

// usableStore maps typed nil pointers to a nil Store.
func usableStore(s Store) Store {
	if s == nil {
		return nil
	}
	if rv := reflect.ValueOf(s); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}
	return s
}
