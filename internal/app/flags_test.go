package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	f := formatValue("text")
	assert.Equal(t, "text", f.String())
	assert.Equal(t, "<format>", f.Type())

	t.Run("valid values", func(t *testing.T) {
		t.Parallel()
		v := formatValue("text")
		require.NoError(t, v.Set("json"))
		assert.Equal(t, "json", v.String())

		require.NoError(t, v.Set("text"))
		assert.Equal(t, "text", v.String())
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		v := formatValue("text")
		err := v.Set("invalid")
		require.Error(t, err)
		assert.EqualError(t, err, "must be 'text' or 'json'")
		assert.Equal(t, "text", v.String())
	})
}

func TestPlaceholderValue(t *testing.T) {
	t.Parallel()

	p := newPlaceholderValue("FILE")
	assert.Empty(t, p.String())
	assert.Equal(t, "<FILE>", p.Type())

	require.NoError(t, p.Set("/some/path"))
	assert.Equal(t, "/some/path", p.String())

	require.NoError(t, p.Set(""))
	assert.Empty(t, p.String())
}
