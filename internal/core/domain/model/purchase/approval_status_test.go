package purchase_test

import (
	"testing"

	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalStatus_String(t *testing.T) {
	cases := map[purchase.ApprovalStatus]string{
		purchase.ApprovalUnknown:          "Unknown",
		purchase.ApprovalPendingSublead:   "Pending Sublead Approval",
		purchase.ApprovalPendingExecutive: "Pending Executive Approval",
		purchase.ApprovalFullyApproved:    "Fully Approved",
		purchase.ApprovalRejected:         "Rejected",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestApprovalStatusFromString(t *testing.T) {
	valid := []purchase.ApprovalStatus{
		purchase.ApprovalPendingSublead,
		purchase.ApprovalPendingExecutive,
		purchase.ApprovalFullyApproved,
		purchase.ApprovalRejected,
	}

	for _, status := range valid {
		parsed, err := purchase.ApprovalStatusFromString(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := purchase.ApprovalStatusFromString("Approved")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestApprovalStatus_ApproveBySublead(t *testing.T) {
	t.Run("advances to executive stage when executive approval needed", func(t *testing.T) {
		next, err := purchase.ApprovalPendingSublead.ApproveBySublead(true)

		require.NoError(t, err)
		assert.Equal(t, purchase.ApprovalPendingExecutive, next)
	})

	t.Run("skips executive stage when not needed", func(t *testing.T) {
		next, err := purchase.ApprovalPendingSublead.ApproveBySublead(false)

		require.NoError(t, err)
		assert.Equal(t, purchase.ApprovalFullyApproved, next)
	})

	t.Run("rejected from every other stage", func(t *testing.T) {
		others := []purchase.ApprovalStatus{
			purchase.ApprovalPendingExecutive,
			purchase.ApprovalFullyApproved,
			purchase.ApprovalRejected,
		}

		for _, status := range others {
			_, err := status.ApproveBySublead(false)
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

func TestApprovalStatus_ApproveByExecutive(t *testing.T) {
	t.Run("completes approval from executive stage", func(t *testing.T) {
		next, err := purchase.ApprovalPendingExecutive.ApproveByExecutive()

		require.NoError(t, err)
		assert.Equal(t, purchase.ApprovalFullyApproved, next)
	})

	t.Run("rejected from every other stage", func(t *testing.T) {
		others := []purchase.ApprovalStatus{
			purchase.ApprovalPendingSublead,
			purchase.ApprovalFullyApproved,
			purchase.ApprovalRejected,
		}

		for _, status := range others {
			_, err := status.ApproveByExecutive()
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

func TestApprovalStatus_Reject(t *testing.T) {
	t.Run("reachable from either pending stage", func(t *testing.T) {
		for _, status := range []purchase.ApprovalStatus{
			purchase.ApprovalPendingSublead,
			purchase.ApprovalPendingExecutive,
		} {
			next, err := status.Reject()
			require.NoError(t, err)
			assert.Equal(t, purchase.ApprovalRejected, next)
		}
	})

	t.Run("terminal stages accept no rejection", func(t *testing.T) {
		for _, status := range []purchase.ApprovalStatus{
			purchase.ApprovalFullyApproved,
			purchase.ApprovalRejected,
		} {
			_, err := status.Reject()
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

func TestApprovalStatus_Predicates(t *testing.T) {
	assert.True(t, purchase.ApprovalPendingSublead.IsPending())
	assert.True(t, purchase.ApprovalPendingExecutive.IsPending())
	assert.False(t, purchase.ApprovalFullyApproved.IsPending())
	assert.False(t, purchase.ApprovalRejected.IsPending())

	assert.True(t, purchase.ApprovalFullyApproved.IsTerminal())
	assert.True(t, purchase.ApprovalRejected.IsTerminal())
	assert.False(t, purchase.ApprovalPendingSublead.IsTerminal())
	assert.False(t, purchase.ApprovalPendingExecutive.IsTerminal())
}
