package ports

import (
	"context"

	"procurement/internal/core/domain/model/user"
)

// UserRepository defines the read contract for user accounts. Accounts are
// provisioned out of band; the service only resolves actors.
type UserRepository interface {
	// Get retrieves a user by identifier.
	// Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns errs.ErrObjectNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
