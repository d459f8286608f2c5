package user_test

import (
	"testing"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/user"
	"deliverya/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registeredAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewUser(t *testing.T) {
	t.Run("should register user with default rating", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Maria Lopez",
			"maria@example.com", "+54 9 11 5555-0001", user.Client, registeredAt)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "Maria Lopez", u.Name())
		assert.Equal(t, user.Client, u.Role())
		assert.InDelta(t, user.DefaultRating, u.Rating(), 1e-9)
		assert.Equal(t, registeredAt, u.CreatedAt())
	})

	t.Run("should allow empty phone", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Juan Perez",
			"juan@example.com", "", user.Courier, registeredAt)

		require.NoError(t, err)
		assert.Empty(t, u.Phone())
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		testCases := []struct {
			name string
			fn   func() (*user.User, error)
		}{
			{"empty name", func() (*user.User, error) {
				return user.NewUser(kernel.NewUUID(), "", "a@b.c", "", user.Client, registeredAt)
			}},
			{"empty email", func() (*user.User, error) {
				return user.NewUser(kernel.NewUUID(), "Maria", "", "", user.Client, registeredAt)
			}},
			{"email without at sign", func() (*user.User, error) {
				return user.NewUser(kernel.NewUUID(), "Maria", "maria.example.com", "", user.Client, registeredAt)
			}},
			{"unknown role", func() (*user.User, error) {
				return user.NewUser(kernel.NewUUID(), "Maria", "a@b.c", "", user.RoleUnknown, registeredAt)
			}},
			{"zero registration time", func() (*user.User, error) {
				return user.NewUser(kernel.NewUUID(), "Maria", "a@b.c", "", user.Client, time.Time{})
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.fn()
				require.Error(t, err)
			})
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var u user.User
		require.Error(t, u.Validate())
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("should restore user with persisted rating", func(t *testing.T) {
		u, err := user.RestoreUser(kernel.NewUUID(), "Juan Perez",
			"juan@example.com", "+54 9 11 5555-0002", user.Courier, 4.3, registeredAt)

		require.NoError(t, err)
		assert.InDelta(t, 4.3, u.Rating(), 1e-9)
	})

	t.Run("should reject out-of-range rating", func(t *testing.T) {
		for _, rating := range []float64{-0.1, 5.1} {
			_, err := user.RestoreUser(kernel.NewUUID(), "Juan Perez",
				"juan@example.com", "", user.Courier, rating, registeredAt)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestRole(t *testing.T) {
	t.Run("should round-trip through wire names", func(t *testing.T) {
		for _, role := range []user.Role{user.Client, user.Courier} {
			parsed, err := user.RoleFromString(role.String())

			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := user.RoleFromString("admin")
		require.Error(t, err)
	})
}
