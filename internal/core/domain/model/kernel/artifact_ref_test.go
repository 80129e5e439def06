package kernel_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArtifactRef(t *testing.T) {
	ref := kernel.NewArtifactRef()

	require.NoError(t, ref.Validate())
	assert.NotEmpty(t, ref.String())
}

func TestArtifactRefFromString(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := kernel.NewArtifactRef()

		parsed, err := kernel.ArtifactRefFromString(original.String())
		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(original))
	})

	t.Run("malformed reference", func(t *testing.T) {
		_, err := kernel.ArtifactRefFromString("not-a-reference")
		require.Error(t, err)
	})

	t.Run("nil reference is rejected", func(t *testing.T) {
		_, err := kernel.ArtifactRefFromString("00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
	})
}

func TestArtifactRef_Validate(t *testing.T) {
	var zero kernel.ArtifactRef
	require.Error(t, zero.Validate())
}
