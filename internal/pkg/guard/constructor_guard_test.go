package guard_test

import (
	"errors"
	"testing"

	"orderdesk/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type draft struct {
		description string
		guard       guard.ConstructorGuard
	}

	var errDraftNotConstructed = errors.New("draft must be created via newDraft")

	newDraft := func(description string) (draft, error) {
		if description == "" {
			return draft{}, errors.New("description is required")
		}
		return draft{
			description: description,
			guard:       guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		d, err := newDraft("an online store for selling shoes")

		require.NoError(t, err)
		require.NoError(t, d.guard.Validate(errDraftNotConstructed))
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var d draft // zero value

		err := d.guard.Validate(errDraftNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errDraftNotConstructed, err)
	})
}
