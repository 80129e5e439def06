package kernel

import (
	"fmt"

	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrArtifactRefIsNotConstructed indicates that an ArtifactRef was not properly
// initialized through one of the constructor functions. This error is returned
// when validating a zero-value ArtifactRef.
var ErrArtifactRefIsNotConstructed = errs.NewValueIsRequiredError(
	"ArtifactRef must be created via NewArtifactRef or ArtifactRefFromString",
)

// ArtifactRef is a value object referencing a file held by an external
// artifact store, such as the photo attached when an order arrives. The
// engine resolves and carries references; it never performs uploads or
// stores file content.
//
// The reference is an opaque identifier backed by a UUID. The zero value is
// invalid and must be constructed through NewArtifactRef or
// ArtifactRefFromString.
//
// ArtifactRef is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Reference a freshly uploaded artifact
//	ref := kernel.NewArtifactRef()
//
//	// Reconstruct from its string form
//	ref, err := kernel.ArtifactRefFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle malformed reference
//	}
type ArtifactRef struct {
	id uuid.UUID
}

// NewArtifactRef generates a new random artifact reference. Used by the
// upload boundary when registering a stored file.
func NewArtifactRef() ArtifactRef {
	return ArtifactRef{id: uuid.New()}
}

// ArtifactRefFromString parses an artifact reference from its string
// representation. Returns an error if the string is not a valid reference.
// This is typically used when reconstructing orders from persistence or when
// a reference arrives over the API boundary.
func ArtifactRefFromString(s string) (ArtifactRef, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ArtifactRef{}, fmt.Errorf("invalid artifact reference: %w", err)
	}
	ref := ArtifactRef{id: id}
	if err = ref.Validate(); err != nil {
		return ArtifactRef{}, err
	}
	return ref, nil
}

// String returns the canonical string representation of the reference.
func (r ArtifactRef) String() string {
	return r.id.String()
}

// Validate checks that the reference was constructed and is not the zero value.
func (r ArtifactRef) Validate() error {
	if r.id == uuid.Nil {
		return ErrArtifactRefIsNotConstructed
	}
	return nil
}

// IsEqual compares two references for equality.
func (r ArtifactRef) IsEqual(other ArtifactRef) bool {
	return r.id == other.id
}
