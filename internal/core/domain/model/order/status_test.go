package order_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.StatusUnknown, "unknown"},
		{order.StatusNew, "new"},
		{order.StatusInReview, "in_review"},
		{order.StatusDone, "done"},
		{order.StatusNotCompleted, "not_completed"},
		{order.StatusRejected, "rejected"},
		{order.Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusNew,
			order.StatusInReview,
			order.StatusDone,
			order.StatusNotCompleted,
			order.StatusRejected,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("invalid statuses", func(t *testing.T) {
		require.ErrorIs(t, order.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusNew,
			order.StatusInReview,
			order.StatusDone,
			order.StatusNotCompleted,
			order.StatusRejected,
		} {
			parsed, err := order.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("unknown value", func(t *testing.T) {
		_, err := order.ParseStatus("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Accept(t *testing.T) {
	t.Run("new order can be accepted", func(t *testing.T) {
		newStatus, err := order.StatusNew.Accept()
		require.NoError(t, err)
		assert.Equal(t, order.StatusInReview, newStatus)
	})

	t.Run("any other status cannot be accepted", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusInReview,
			order.StatusDone,
			order.StatusNotCompleted,
			order.StatusRejected,
			order.StatusUnknown,
		} {
			_, err := status.Accept()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "status %s", status)
		}
	})
}

func TestStatus_Reject(t *testing.T) {
	t.Run("new order can be rejected", func(t *testing.T) {
		newStatus, err := order.StatusNew.Reject()
		require.NoError(t, err)
		assert.Equal(t, order.StatusRejected, newStatus)
	})

	t.Run("any other status cannot be rejected", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusInReview,
			order.StatusDone,
			order.StatusNotCompleted,
			order.StatusRejected,
			order.StatusUnknown,
		} {
			_, err := status.Reject()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "status %s", status)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("in-review order can be completed", func(t *testing.T) {
		newStatus, err := order.StatusInReview.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.StatusDone, newStatus)
	})

	t.Run("new order cannot be completed directly", func(t *testing.T) {
		_, err := order.StatusNew.Complete()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Fail(t *testing.T) {
	t.Run("in-review order can fail", func(t *testing.T) {
		newStatus, err := order.StatusInReview.Fail()
		require.NoError(t, err)
		assert.Equal(t, order.StatusNotCompleted, newStatus)
	})

	t.Run("new order cannot fail directly", func(t *testing.T) {
		_, err := order.StatusNew.Fail()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_TerminalStatesAllowNoTransition(t *testing.T) {
	terminals := []order.Status{order.StatusDone, order.StatusNotCompleted, order.StatusRejected}

	for _, status := range terminals {
		t.Run(status.String(), func(t *testing.T) {
			assert.True(t, status.IsTerminal())

			_, err := status.Accept()
			require.Error(t, err)
			_, err = status.Reject()
			require.Error(t, err)
			_, err = status.Complete()
			require.Error(t, err)
			_, err = status.Fail()
			require.Error(t, err)
		})
	}

	t.Run("non-terminal states", func(t *testing.T) {
		assert.False(t, order.StatusNew.IsTerminal())
		assert.False(t, order.StatusInReview.IsTerminal())
	})
}
