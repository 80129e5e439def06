package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrGetStatisticsQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrGetStatisticsQueryIsNotConstructed = errors.New(
	"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
)

// GetStatisticsQuery retrieves aggregate statistics over purchase orders.
// The figures cover the orders the actor is allowed to see: requesters their
// own, subleads their own plus orders awaiting the sublead decision, and
// view-all roles the whole team.
type GetStatisticsQuery struct {
	actorID int64

	guard guard.ConstructorGuard
}

// NewGetStatisticsQuery creates a statistics query for the given actor.
func NewGetStatisticsQuery(actorID int64) (GetStatisticsQuery, error) {
	if actorID <= 0 {
		return GetStatisticsQuery{}, errs.NewValueIsRequiredError("actor_id")
	}

	return GetStatisticsQuery{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}

// ActorID returns the identifier of the acting user.
func (q GetStatisticsQuery) ActorID() int64 {
	return q.actorID
}

// GetStatisticsResponse is the aggregate summary of the visible orders.
// Soft-deleted orders are excluded from every figure.
type GetStatisticsResponse struct {
	TotalOrders     int
	PendingApproval int
	ApprovedOrders  int
	PurchasedOrders int
	ShippedOrders   int
	ArrivedOrders   int
	TotalValue      kernel.Money
}
