package jscookie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aatuh/jscookie"
)

func TestPercentConverter_Write(t *testing.T) {
	c := jscookie.DefaultConverter

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "value", "value"},
		{"whitespace", "a b\tc", "a%20b%09c"},
		{"cookie grammar", "a;b,c", "a%3Bb%2Cc"},
		{"percent", "100%", "100%25"},
		{"quotes and backslash", `"\`, "%22%5C"},
		{"kept symbols", "#$&+/:<=>?@[]^`{|}", "#$&+/:<=>?@[]^`{|}"},
		{"unreserved marks", "-_.!~*'()", "-_.!~*'()"},
		{"utf-8", "ü€", "%C3%BC%E2%82%AC"},
		{"control", "a\x00\x7f", "a%00%7F"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Write(tt.in, "k"))
		})
	}
}

func TestPercentConverter_Read(t *testing.T) {
	c := jscookie.DefaultConverter

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "value", "value"},
		{"escapes", "a%20b%3Bc", "a b;c"},
		{"lowercase hex", "%c3%bc", "ü"},
		{"plus is literal", "a+b", "a+b"},
		{"quoted", `"quoted"`, "quoted"},
		{"quoted escapes", `"a%20b"`, "a b"},
		{"lone quote", `"`, ""},
		{"invalid utf-8 falls back", "%E0%A4%A", "%E0%A4%A"},
		{"invalid byte falls back", "x%FFy", "x%FFy"},
		{"fallback keeps quotes", `"%FF"`, `"%FF"`},
		{"dangling percent", "50%", "50%"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Read(tt.in, "k"))
		})
	}
}

func TestPercentConverter_RoundTrip(t *testing.T) {
	c := jscookie.DefaultConverter
	for _, v := range []string{"", "simple", "ü€😀", "a b;c,d%e", `{"json":[1,2]}`, "(){}[]<>"} {
		assert.Equal(t, v, c.Read(c.Write(v, "k"), "k"), "value %q", v)
	}
}

func TestConverterFuncs_NilFieldsUseDefault(t *testing.T) {
	var c jscookie.ConverterFuncs
	assert.Equal(t, "a%20b", c.Write("a b", "k"))
	assert.Equal(t, "a b", c.Read("a%20b", "k"))
}

func TestIdentityConverter(t *testing.T) {
	assert.Equal(t, "a%20b c", jscookie.IdentityConverter.Read("a%20b c", "k"))
	assert.Equal(t, "a b", jscookie.IdentityConverter.Write("a b", "k"))
}
