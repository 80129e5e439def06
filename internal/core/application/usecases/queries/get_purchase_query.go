package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrGetPurchaseQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrGetPurchaseQueryIsNotConstructed = errors.New(
	"GetPurchaseQuery must be created via NewGetPurchaseQuery constructor",
)

// GetPurchaseQuery retrieves the full detail of a single order. Requesters
// may only fetch their own orders.
type GetPurchaseQuery struct {
	actorID    int64
	purchaseID int64

	guard guard.ConstructorGuard
}

// NewGetPurchaseQuery creates a detail query for the given actor and order.
func NewGetPurchaseQuery(actorID, purchaseID int64) (GetPurchaseQuery, error) {
	if actorID <= 0 {
		return GetPurchaseQuery{}, errs.NewValueIsRequiredError("actor_id")
	}
	if purchaseID <= 0 {
		return GetPurchaseQuery{}, errs.NewValueIsRequiredError("purchase_id")
	}

	return GetPurchaseQuery{
		actorID:    actorID,
		purchaseID: purchaseID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPurchaseQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseQueryIsNotConstructed)
}

// ActorID returns the identifier of the acting user.
func (q GetPurchaseQuery) ActorID() int64 {
	return q.actorID
}

// PurchaseID returns the identifier of the requested order.
func (q GetPurchaseQuery) PurchaseID() int64 {
	return q.purchaseID
}

// GetPurchaseResponse is the full detail of a single order, including the
// derived fields clients need for display.
type GetPurchaseResponse struct {
	ID                     int64
	RequesterID            int64
	ItemName               string
	VendorName             string
	ItemLink               string
	Purpose                string
	Notes                  string
	Quantity               int
	Price                  kernel.Money
	ShippingCost           kernel.Money
	TotalCost              kernel.Money
	Subteam                string
	Subproject             string
	Urgency                string
	IsUrgent               bool
	IsSpecialLarge         bool
	ApprovalStatus         string
	Status                 string
	CanBePurchased         bool
	NeedsExecutiveApproval bool
	SubleadEmail           string
	ExecEmail              string
	ArrivalPhotoID         string
	IsDeleted              bool
	PurchaseDate           *time.Time
	ShippedAt              *time.Time
	ArrivedAt              *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
