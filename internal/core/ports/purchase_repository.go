package ports

import (
	"context"

	"procurement/internal/core/domain/model/purchase"
)

// PurchaseRepository defines the persistence contract for purchase order
// aggregates. Implementations enforce optimistic concurrency: Update compares
// the aggregate's loaded version with the stored one and fails with a
// conflict when another writer got there first.
type PurchaseRepository interface {
	// Add persists a new order and assigns its identifier and initial
	// version back to the aggregate.
	Add(ctx context.Context, aggregate *purchase.Purchase) error

	// Update persists changes to an existing order. Fails with
	// errs.ErrConflict when the stored version no longer matches the
	// aggregate's loaded version, and errs.ErrObjectNotFound when the
	// order does not exist.
	Update(ctx context.Context, aggregate *purchase.Purchase) error

	// Get retrieves an order by identifier, soft-deleted ones included.
	// Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id int64) (*purchase.Purchase, error)

	// GetAllActive retrieves every order that is not soft-deleted.
	GetAllActive(ctx context.Context) ([]*purchase.Purchase, error)

	// GetAllActiveByRequester retrieves the non-deleted orders owned by
	// the given requester.
	GetAllActiveByRequester(ctx context.Context, requesterID int64) ([]*purchase.Purchase, error)
}
