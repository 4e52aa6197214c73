package jscookie_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatuh/jscookie"
)

func TestNamed(t *testing.T) {
	jar, store := newTestJar(t)
	session := jar.Named("session id")
	assert.Equal(t, "session id", session.Name())

	raw, ok := session.Set("a b", jscookie.NewAttributes().WithSecure(true))
	require.True(t, ok)
	assert.Equal(t, "session%20id=a%20b; path=/; secure", raw)

	got, ok := session.Get()
	assert.True(t, ok)
	assert.Equal(t, "a b", got)

	session.Remove()
	_, ok = session.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestNamed_FollowsJar(t *testing.T) {
	rs := &rawStore{}
	jar := jscookie.New(rs).WithAttributes(jscookie.NewAttributes().WithDomain("example.com"))

	jar.Named("k").Set("v")
	require.Len(t, rs.writes, 1)
	assert.Equal(t, "k=v; path=/; domain=example.com", rs.writes[0])

	_, ok := jscookie.New(nil).Named("k").Set("v")
	assert.False(t, ok)
}

func TestStringToSameSite(t *testing.T) {
	tests := []struct {
		in   string
		want http.SameSite
	}{
		{"none", http.SameSiteNoneMode},
		{"Lax", http.SameSiteLaxMode},
		{" STRICT ", http.SameSiteStrictMode},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := jscookie.StringToSameSite(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := jscookie.StringToSameSite("sometimes")
	assert.ErrorIs(t, err, jscookie.ErrInvalidSameSite)

	assert.Panics(t, func() { jscookie.MustStringToSameSite("") })
	assert.Equal(t, http.SameSiteLaxMode, jscookie.MustStringToSameSite("lax"))
}

func TestSameSiteToString(t *testing.T) {
	for mode, want := range map[http.SameSite]string{
		http.SameSiteNoneMode:   "none",
		http.SameSiteLaxMode:    "lax",
		http.SameSiteStrictMode: "strict",
	} {
		got, err := jscookie.SameSiteToString(mode)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, want, jscookie.MustSameSiteToString(mode))
	}

	_, err := jscookie.SameSiteToString(http.SameSiteDefaultMode)
	assert.ErrorIs(t, err, jscookie.ErrInvalidSameSite)
	assert.Panics(t, func() { jscookie.MustSameSiteToString(http.SameSite(42)) })
}

func TestAttributes_WithSameSiteDefaultClears(t *testing.T) {
	attrs := jscookie.NewAttributes().
		WithSameSite(http.SameSiteStrictMode).
		WithSameSite(http.SameSiteDefaultMode)

	_, ok := attrs.Get(jscookie.AttrSameSite)
	assert.False(t, ok)
}
