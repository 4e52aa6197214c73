package jscookie

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"time"
)

// Attribute names understood by the typed helpers on Attributes.
const (
	AttrPath        = "path"
	AttrDomain      = "domain"
	AttrExpires     = "expires"
	AttrSecure      = "secure"
	AttrSameSite    = "sameSite"
	AttrPartitioned = "partitioned"
)

// Attribute is a single cookie directive such as path or secure.
type Attribute struct {
	Name  string
	Value any
}

// Attributes is an ordered set of cookie directives.
//
// Attributes is immutable: every method that changes it returns a new
// value and leaves the receiver as it was. The zero value is empty and
// ready to use.
//
// Values may be strings, booleans, numbers, time.Time, time.Duration or
// anything with a UTC() time.Time method. Only truthy values are
// serialized; nil, false, "", zero numbers, NaN and the zero time are
// skipped.
type Attributes struct {
	names  []string
	values map[string]any
}

// NewAttributes builds Attributes from attrs in order. A repeated name
// keeps its first position and takes the last value.
func NewAttributes(attrs ...Attribute) Attributes {
	var a Attributes
	for _, attr := range attrs {
		a.put(attr.Name, attr.Value)
	}
	return a
}

// Len returns the number of attributes, truthy or not.
func (a Attributes) Len() int {
	return len(a.names)
}

// Get returns the value stored under name.
func (a Attributes) Get(name string) (any, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Names returns the attribute names in serialization order.
func (a Attributes) Names() []string {
	return slices.Clone(a.names)
}

// All iterates the attributes in serialization order.
func (a Attributes) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, name := range a.names {
			if !yield(name, a.values[name]) {
				return
			}
		}
	}
}

// Set returns a copy of a with name set to value.
func (a Attributes) Set(name string, value any) Attributes {
	out := a.clone()
	out.put(name, value)
	return out
}

// Delete returns a copy of a without name.
func (a Attributes) Delete(name string) Attributes {
	if _, ok := a.values[name]; !ok {
		return a
	}
	out := Attributes{
		names:  make([]string, 0, len(a.names)-1),
		values: make(map[string]any, len(a.values)-1),
	}
	for _, n := range a.names {
		if n != name {
			out.put(n, a.values[n])
		}
	}
	return out
}

// WithPath sets the path attribute.
func (a Attributes) WithPath(path string) Attributes {
	return a.Set(AttrPath, path)
}

// WithDomain sets the domain attribute.
func (a Attributes) WithDomain(domain string) Attributes {
	return a.Set(AttrDomain, domain)
}

// WithExpires sets expires to a number of days from the time of writing.
// Fractions are allowed; negative values expire the cookie immediately.
func (a Attributes) WithExpires(days float64) Attributes {
	return a.Set(AttrExpires, days)
}

// WithExpiresAt sets expires to an absolute point in time.
func (a Attributes) WithExpiresAt(t time.Time) Attributes {
	return a.Set(AttrExpires, t)
}

// WithExpiresIn sets expires to d after the time of writing.
func (a Attributes) WithExpiresIn(d time.Duration) Attributes {
	return a.Set(AttrExpires, d)
}

// WithSecure sets the secure flag.
func (a Attributes) WithSecure(secure bool) Attributes {
	return a.Set(AttrSecure, secure)
}

// WithSameSite sets the sameSite attribute from an http.SameSite mode.
// http.SameSiteDefaultMode and unknown modes remove the attribute.
func (a Attributes) WithSameSite(mode http.SameSite) Attributes {
	s, err := SameSiteToString(mode)
	if err != nil {
		return a.Delete(AttrSameSite)
	}
	return a.Set(AttrSameSite, s)
}

// WithPartitioned sets the partitioned (CHIPS) flag.
func (a Attributes) WithPartitioned(partitioned bool) Attributes {
	return a.Set(AttrPartitioned, partitioned)
}

func (a Attributes) clone() Attributes {
	out := Attributes{
		names:  slices.Clone(a.names),
		values: make(map[string]any, len(a.values)+1),
	}
	maps.Copy(out.values, a.values)
	return out
}

// put mutates a in place. Only use it on values not yet shared.
func (a *Attributes) put(name string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
}

// truthy reports whether v would be serialized.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case time.Time:
		return !x.IsZero()
	case time.Duration:
		return x != 0
	}
	if f, ok := number(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// number converts any Go numeric kind to float64.
func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// formatValue renders an attribute value the way it appears after "=".
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return httpDate(x)
	case interface{ String() string }:
		return x.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
