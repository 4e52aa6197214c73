package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatuh/jscookie"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out, zerolog.Nop())
	return out.String(), err
}

func TestRunSet(t *testing.T) {
	out, err := runCmd(t, "", "set", "-secure", "-samesite", "lax", "user name", "a;b")
	require.NoError(t, err)
	assert.Equal(t, "user%20name=a%3Bb; path=/; secure; sameSite=lax\n", out)

	out, err = runCmd(t, "", "set", "-identity", "k", "a b")
	require.NoError(t, err)
	assert.Equal(t, "k=a b; path=/\n", out)
}

func TestRunSetWithConfig(t *testing.T) {
	out, err := runCmd(t, "", "set", "-config", "ex.config.toml", "-path", "/override", "k", "v")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "k=v; path=/override; domain=example.com; expires="), out)
	assert.True(t, strings.HasSuffix(out, " GMT; secure; sameSite=strict\n"), out)

	out, err = runCmd(t, "", "set", "-config", "ex.config.toml", "-expires", "0", "-secure=false", "k", "v")
	require.NoError(t, err)
	assert.NotContains(t, out, "secure")
	assert.True(t, strings.HasPrefix(out, "k=v; path=/app; domain=example.com; sameSite=strict"), out)
}

func TestRunRemove(t *testing.T) {
	out, err := runCmd(t, "", "remove", "-domain", "example.com", "k")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "k=; path=/; domain=example.com; expires="), out)
}

func TestRunGet(t *testing.T) {
	t.Run("all as json", func(t *testing.T) {
		out, err := runCmd(t, "", "get", "-raw", "a=1=2=3; b=001")
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":"1=2=3","b":"001"}`, out)
	})

	t.Run("one from stdin", func(t *testing.T) {
		out, err := runCmd(t, "x=1; greeting=hello%20world\n", "get", "greeting")
		require.NoError(t, err)
		assert.Equal(t, "hello world\n", out)
	})

	t.Run("identity", func(t *testing.T) {
		out, err := runCmd(t, "", "get", "-raw", "k=a%20b", "-identity", "k")
		require.NoError(t, err)
		assert.Equal(t, "a%20b\n", out)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := runCmd(t, "", "get", "-raw", "a=1", "b")
		assert.ErrorIs(t, err, jscookie.ErrNotFound)
	})
}

func TestRunUsage(t *testing.T) {
	_, err := runCmd(t, "")
	assert.Error(t, err)

	_, err = runCmd(t, "", "bake")
	assert.ErrorContains(t, err, `unknown command "bake"`)

	_, err = runCmd(t, "", "set", "only-name")
	assert.Error(t, err)

	_, err = runCmd(t, "", "remove")
	assert.Error(t, err)

	_, err = runCmd(t, "", "set", "-samesite", "sometimes", "k", "v")
	assert.ErrorIs(t, err, jscookie.ErrInvalidSameSite)
}
