package errs_test

import (
	"errors"
	"testing"

	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("purchaseId", "123")

		assert.Equal(t, "purchaseId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("purchaseId", "123", cause)

		assert.Equal(t, "purchaseId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: purchaseId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("subteam")

		assert.Equal(t, "subteam", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: subteam", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("subteam", cause)

		assert.Equal(t, "subteam", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: subteam (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("item_name")

		assert.Equal(t, "item_name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: item_name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("item_name", cause)

		assert.Equal(t, "item_name", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: item_name (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestAuthorizationDeniedError(t *testing.T) {
	err := errs.NewAuthorizationDeniedError("requester", "approve")

	assert.Equal(t, "requester", err.Role)
	assert.Equal(t, "approve", err.Action)
	assert.Equal(t, "authorization denied: role requester may not approve", err.Error())
	assert.Equal(t, errs.ErrAuthorizationDenied, err.Unwrap())
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("Not Yet Purchased", "Shipped")

	assert.Equal(t, "Not Yet Purchased", err.From)
	assert.Equal(t, "Shipped", err.To)
	assert.Equal(t, "invalid transition: from Not Yet Purchased to Shipped", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestMissingArtifactError(t *testing.T) {
	err := errs.NewMissingArtifactError("arrival_photo")

	assert.Equal(t, "arrival_photo", err.ParamName)
	assert.Equal(t, "missing artifact: arrival_photo", err.Error())
	assert.Equal(t, errs.ErrMissingArtifact, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("purchase", 42)

	assert.Equal(t, "purchase", err.ParamName)
	assert.Equal(t, 42, err.ID)
	assert.Equal(t, "conflict: purchase 42 was modified concurrently", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrAuthorizationDenied)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrMissingArtifact)
		require.Error(t, errs.ErrConflict)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "authorization denied", errs.ErrAuthorizationDenied.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "missing artifact", errs.ErrMissingArtifact.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("purchaseId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("subteam"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("item_name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewAuthorizationDeniedError("requester", "approve"), errs.ErrAuthorizationDenied)
		require.ErrorIs(t, errs.NewInvalidTransitionError("Shipped", "Purchased"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewMissingArtifactError("arrival_photo"), errs.ErrMissingArtifact)
		require.ErrorIs(t, errs.NewConflictError("purchase", 1), errs.ErrConflict)
	})
}
