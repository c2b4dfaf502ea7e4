package user_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u, err := user.NewUser(100, "jdoe", "John Doe")
		require.NoError(t, err)

		assert.EqualValues(t, 100, u.ID())
		assert.Equal(t, "jdoe", u.Handle())
		assert.Equal(t, "John Doe", u.Name())
		assert.False(t, u.AgreementAccepted())
		assert.WithinDuration(t, time.Now().UTC(), u.RegisteredAt(), time.Minute)
		require.NoError(t, u.Validate())
	})

	t.Run("handle is optional", func(t *testing.T) {
		u, err := user.NewUser(100, "", "John Doe")
		require.NoError(t, err)
		assert.Empty(t, u.Handle())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := user.NewUser(0, "jdoe", "John Doe")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUser_AcceptAgreement(t *testing.T) {
	u, err := user.NewUser(100, "jdoe", "John Doe")
	require.NoError(t, err)

	u.AcceptAgreement()
	assert.True(t, u.AgreementAccepted())

	// monotonic: accepting again changes nothing
	u.AcceptAgreement()
	assert.True(t, u.AgreementAccepted())
}

func TestRestoreUser(t *testing.T) {
	registeredAt := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	u, err := user.RestoreUser(100, "jdoe", "John Doe", true, registeredAt)
	require.NoError(t, err)
	assert.True(t, u.AgreementAccepted())
	assert.Equal(t, registeredAt, u.RegisteredAt())
}

func TestUser_Validate(t *testing.T) {
	t.Run("zero value user is invalid", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})

	t.Run("nil user is invalid", func(t *testing.T) {
		var u *user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}
