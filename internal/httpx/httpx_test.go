package httpx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, DecodeJSON(strings.NewReader(`{"name":"Acme"}`), &out))
	assert.Equal(t, "Acme", out.Name)

	require.NoError(t, DecodeJSON(strings.NewReader(`{"id":7,"name":"Beta","extra":{"a":1}}`), &out))
	assert.Equal(t, "Beta", out.Name)

	assert.Error(t, DecodeJSON(strings.NewReader(`{"name":"a"}{"name":"b"}`), &out))
	assert.Error(t, DecodeJSON(strings.NewReader(`{`), &out))
}

func TestTypeError(t *testing.T) {
	var out struct {
		Name   string `json:"name"`
		Active *bool  `json:"isActive"`
	}

	err := DecodeJSON(strings.NewReader(`{"name":123}`), &out)
	field, want, ok := TypeError(err)
	require.True(t, ok)
	assert.Equal(t, "name", field)
	assert.Equal(t, "string", want)

	err = DecodeJSON(strings.NewReader(`{"isActive":"yes"}`), &out)
	field, want, ok = TypeError(err)
	require.True(t, ok)
	assert.Equal(t, "isActive", field)
	assert.Equal(t, "bool", want)

	_, _, ok = TypeError(DecodeJSON(strings.NewReader(`[1]`), &out))
	assert.False(t, ok)
	_, _, ok = TypeError(DecodeJSON(strings.NewReader(`{`), &out))
	assert.False(t, ok)
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "abc", "1.5"} {
		_, ok := ParseID(raw)
		assert.False(t, ok, raw)
	}
}
