package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListUnmarshal(t *testing.T) {
	t.Run("accepts a JSON array", func(t *testing.T) {
		var tags TagList
		require.NoError(t, json.Unmarshal([]byte(`["go","backend"]`), &tags))
		assert.Equal(t, TagList{"go", "backend"}, tags)
	})

	t.Run("accepts a comma-separated string", func(t *testing.T) {
		var tags TagList
		require.NoError(t, json.Unmarshal([]byte(`"go, backend, , api"`), &tags))
		assert.Equal(t, TagList{"go", "backend", "api"}, tags)
	})

	t.Run("empty string yields no tags", func(t *testing.T) {
		var tags TagList
		require.NoError(t, json.Unmarshal([]byte(`""`), &tags))
		assert.Empty(t, tags)
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		var tags TagList
		assert.Error(t, json.Unmarshal([]byte(`42`), &tags))
	})
}
