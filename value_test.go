package jscookie_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatuh/jscookie"
)

type prefs struct {
	Theme string   `json:"theme" msgpack:"theme"`
	Size  int      `json:"size" msgpack:"size"`
	Tags  []string `json:"tags" msgpack:"tags"`
}

func TestJar_TypedValues(t *testing.T) {
	want := prefs{Theme: "dark mode", Size: 3, Tags: []string{"a", "b;c"}}

	for name, codec := range map[string]jscookie.Codec{
		"json":    jscookie.NewJSONCodec(),
		"msgpack": jscookie.NewMsgpackCodec(),
	} {
		t.Run(name, func(t *testing.T) {
			jar, _ := newTestJar(t, jscookie.WithCodec(codec))

			raw, err := jar.SetValue("prefs", want, jscookie.NewAttributes().WithExpires(30))
			require.NoError(t, err)
			assert.Contains(t, raw, "; expires=")

			var got prefs
			require.NoError(t, jar.GetValue("prefs", &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestJar_SetValueJSONText(t *testing.T) {
	jar, store := newTestJar(t)

	_, err := jar.SetValue("p", map[string]int{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, "p={%22a%22:1%2C%22b%22:2}", store.ReadCookie())
}

func TestJar_TypedValueErrors(t *testing.T) {
	t.Run("unavailable", func(t *testing.T) {
		jar := jscookie.New(nil)
		_, err := jar.SetValue("k", 1)
		assert.ErrorIs(t, err, jscookie.ErrStoreUnavailable)
		assert.ErrorIs(t, jar.GetValue("k", new(int)), jscookie.ErrStoreUnavailable)
	})

	t.Run("not found", func(t *testing.T) {
		jar, _ := newTestJar(t)
		assert.ErrorIs(t, jar.GetValue("missing", new(int)), jscookie.ErrNotFound)
	})

	t.Run("undecodable value", func(t *testing.T) {
		jar, _ := newTestJar(t)
		jar.Set("k", "not json")

		var dst prefs
		err := jar.GetValue("k", &dst)
		require.Error(t, err)
		assert.False(t, errors.Is(err, jscookie.ErrNotFound))
		assert.Contains(t, err.Error(), `decode cookie "k"`)
	})

	t.Run("unmarshalable value", func(t *testing.T) {
		jar, _ := newTestJar(t)
		_, err := jar.SetValue("k", make(chan int))
		assert.Error(t, err)
	})

	t.Run("msgpack rejects bad base64", func(t *testing.T) {
		jar, _ := newTestJar(t, jscookie.WithCodec(jscookie.NewMsgpackCodec()))
		jar.Set("k", "***")
		assert.Error(t, jar.GetValue("k", new(int)))
	})
}
