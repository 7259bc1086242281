package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		name, err := ValidateName("  Alpha Launch  ")
		require.NoError(t, err)
		assert.Equal(t, "Alpha Launch", name)
	})

	t.Run("rejects blank names", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t\n"} {
			_, err := ValidateName(raw)
			assert.Error(t, err)
		}
	})

	t.Run("rejects names shorter than two characters", func(t *testing.T) {
		_, err := ValidateName("a")
		require.Error(t, err)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "name", vErr.Field)
	})

	t.Run("accepts names at the bounds", func(t *testing.T) {
		_, err := ValidateName("ab")
		assert.NoError(t, err)

		_, err = ValidateName(strings.Repeat("x", MaxNameLen))
		assert.NoError(t, err)
	})

	t.Run("rejects names over the maximum", func(t *testing.T) {
		_, err := ValidateName(strings.Repeat("x", MaxNameLen+1))
		assert.Error(t, err)
	})
}

func TestValidateDescription(t *testing.T) {
	t.Run("empty is fine", func(t *testing.T) {
		desc, err := ValidateDescription("")
		require.NoError(t, err)
		assert.Empty(t, desc)
	})

	t.Run("rejects over the maximum", func(t *testing.T) {
		_, err := ValidateDescription(strings.Repeat("d", MaxDescLen+1))
		assert.Error(t, err)
	})

	t.Run("trims before checking", func(t *testing.T) {
		desc, err := ValidateDescription("  " + strings.Repeat("d", MaxDescLen) + "  ")
		require.NoError(t, err)
		assert.Len(t, desc, MaxDescLen)
	})
}

func TestValidateEnums(t *testing.T) {
	t.Run("status is case-insensitive", func(t *testing.T) {
		status, err := ValidateStatus("In_Progress")
		require.NoError(t, err)
		assert.Equal(t, StatusInProgress, status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := ValidateStatus("bogus")
		assert.Error(t, err)
	})

	t.Run("priority is case-insensitive", func(t *testing.T) {
		priority, err := ValidatePriority("CRITICAL")
		require.NoError(t, err)
		assert.Equal(t, PriorityCritical, priority)
	})

	t.Run("unknown priority is rejected", func(t *testing.T) {
		_, err := ValidatePriority("urgent")
		assert.Error(t, err)
	})
}

func TestValidateTags(t *testing.T) {
	t.Run("trims each tag", func(t *testing.T) {
		tags, err := ValidateTags([]string{" go ", "backend"})
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "backend"}, tags)
	})

	t.Run("rejects more than the maximum count", func(t *testing.T) {
		many := make([]string, MaxTags+1)
		for i := range many {
			many[i] = "t"
		}
		_, err := ValidateTags(many)
		assert.Error(t, err)
	})

	t.Run("rejects an over-long tag", func(t *testing.T) {
		_, err := ValidateTags([]string{strings.Repeat("t", MaxTagLen+1)})
		assert.Error(t, err)
	})

	t.Run("length is checked after trimming", func(t *testing.T) {
		_, err := ValidateTags([]string{"  " + strings.Repeat("t", MaxTagLen) + "  "})
		assert.NoError(t, err)
	})
}

func TestValidateProgress(t *testing.T) {
	assert.NoError(t, ValidateProgress(0))
	assert.NoError(t, ValidateProgress(100))
	assert.Error(t, ValidateProgress(-1))
	assert.Error(t, ValidateProgress(101))
}
