package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectpulse/project-pulse-backend/internal/auth/domain"
)

func TestParseAccounts(t *testing.T) {
	t.Run("parses the seed format", func(t *testing.T) {
		accounts, err := ParseAccounts("admin:admin123:Admin, user:user123:User")
		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, Account{Username: "admin", Password: "admin123", Name: "Admin"}, accounts[0])
		assert.Equal(t, "user", accounts[1].Username)
	})

	t.Run("rejects malformed entries", func(t *testing.T) {
		_, err := ParseAccounts("admin:admin123")
		assert.Error(t, err)

		_, err = ParseAccounts(":pw:Name")
		assert.Error(t, err)
	})

	t.Run("rejects an empty seed", func(t *testing.T) {
		_, err := ParseAccounts(" , ")
		assert.Error(t, err)
	})
}

func TestRegistryAuthenticate(t *testing.T) {
	registry, err := NewRegistry([]Account{
		{Username: "admin", Password: "admin123", Name: "Admin"},
		{Username: "user", Password: "user123", Name: "User"},
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		identity, err := registry.Authenticate("admin", "admin123")
		require.NoError(t, err)
		assert.Equal(t, &domain.Identity{Username: "admin", Name: "Admin"}, identity)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		_, errWrongPw := registry.Authenticate("admin", "nope")
		_, errUnknown := registry.Authenticate("ghost", "nope")

		assert.ErrorIs(t, errWrongPw, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
		assert.Equal(t, errWrongPw, errUnknown)
	})

	t.Run("count", func(t *testing.T) {
		assert.Equal(t, 2, registry.Count())
	})

	t.Run("duplicate usernames are rejected", func(t *testing.T) {
		_, err := NewRegistry([]Account{
			{Username: "admin", Password: "a", Name: "A"},
			{Username: "admin", Password: "b", Name: "B"},
		})
		assert.Error(t, err)
	})
}
