package helpers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrPanic(t *testing.T) {
	t.Run("empty_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "baseURL is required", func() {
			StrPanic("", "baseURL is required")
		})
	})
	t.Run("whitespace_is_not_empty", func(t *testing.T) {
		assert.Equal(t, " ", StrPanic(" ", "baseURL is required"))
	})
	t.Run("non_empty_returns_value", func(t *testing.T) {
		got := StrPanic("http://localhost:8080", "baseURL is required")
		require.Equal(t, "http://localhost:8080", got)
	})
}

func TestNilPanic(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "nil_interface", value: nil},
		{name: "nil_slice", value: []byte(nil)},
		{name: "nil_map", value: map[string]int(nil)},
		{name: "nil_pointer", value: (*http.Client)(nil)},
		{name: "nil_func", value: (func())(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name+"_panics", func(t *testing.T) {
			assert.PanicsWithValue(t, "dependency is required", func() {
				NilPanic(tt.value, "dependency is required")
			})
		})
	}

	t.Run("non_nil_pointer_returns_value", func(t *testing.T) {
		client := &http.Client{}
		got := NilPanic(client, "http client is required")
		assert.Same(t, client, got)
	})
	t.Run("non_nil_string_returns_value", func(t *testing.T) {
		got := NilPanic("placeholder", "id is required")
		require.Equal(t, "placeholder", got)
	})
}
