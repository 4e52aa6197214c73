package jscookie

import (
	"math"
	"net/http"
	"strings"
	"time"
)

const (
	msPerDay = 864e5
	// maxDateMs is the largest millisecond offset from the epoch a browser
	// Date can represent.
	maxDateMs = 8.64e15
)

// httpDate formats t the way the expires directive expects it.
func httpDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// normalizeExpires turns an expires attribute into the value that gets
// serialized. Numbers are days from now, durations are offsets from now,
// time values are used as is. Strings pass through untouched. Booleans are
// not dates and are dropped. The second result is false when the attribute
// must be left out.
func normalizeExpires(v any, now time.Time) (any, bool) {
	switch x := v.(type) {
	case bool:
		return nil, false
	case time.Duration:
		return httpDate(now.Add(x)), true
	}
	if days, ok := number(v); ok {
		if math.IsNaN(days) || math.IsInf(days, 0) {
			return nil, false
		}
		ms := float64(now.UnixMilli()) + days*msPerDay
		if math.Abs(ms) > maxDateMs {
			return nil, false
		}
		return httpDate(time.UnixMilli(int64(ms))), true
	}
	if !truthy(v) {
		return nil, false
	}
	if t, ok := v.(interface{ UTC() time.Time }); ok {
		u := t.UTC()
		if u.IsZero() {
			return nil, false
		}
		return httpDate(u), true
	}
	return v, true
}

// serializeAttributes renders attrs as "; name[=value]" pairs. expires is
// normalized first. Values are cut at the first ';' so an attribute value
// cannot smuggle in another directive.
func serializeAttributes(attrs Attributes, now time.Time) string {
	var b strings.Builder
	for name, value := range attrs.All() {
		if name == AttrExpires {
			var ok bool
			if value, ok = normalizeExpires(value, now); !ok {
				continue
			}
		}
		if !truthy(value) {
			continue
		}
		b.WriteString("; ")
		b.WriteString(name)
		if v, ok := value.(bool); ok && v {
			continue
		}
		s, _, _ := strings.Cut(formatValue(value), ";")
		b.WriteByte('=')
		b.WriteString(s)
	}
	return b.String()
}
