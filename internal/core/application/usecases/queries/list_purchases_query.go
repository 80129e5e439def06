package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrListPurchasesQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrListPurchasesQueryIsNotConstructed = errors.New(
	"ListPurchasesQuery must be created via NewListPurchasesQuery constructor",
)

// DefaultPerPage is the page size used when the caller does not ask for one.
const DefaultPerPage = 20

// MaxPerPage caps the page size a caller may request.
const MaxPerPage = 100

// ListPurchasesFilter carries the optional filters of a listing request.
// Zero values mean "no filter". Status names use their stored display form,
// for example "Not Yet Purchased" or "Pending Sublead Approval".
type ListPurchasesFilter struct {
	Status         string
	ApprovalStatus string
	Subteam        string
	Search         string
	IncludeDeleted bool
	Page           int
	PerPage        int
}

// ListPurchasesQuery retrieves a filtered, paginated page of purchase orders.
// What the actor sees depends on their role: requesters are scoped to their
// own orders, and only roles with the view-all capability may include
// soft-deleted ones.
type ListPurchasesQuery struct {
	actorID int64
	filter  ListPurchasesFilter

	guard guard.ConstructorGuard
}

// NewListPurchasesQuery creates a listing query for the given actor.
// Status filters are validated against the domain vocabulary; page defaults
// to 1 and per-page to DefaultPerPage, capped at MaxPerPage.
func NewListPurchasesQuery(actorID int64, filter ListPurchasesFilter) (ListPurchasesQuery, error) {
	if actorID <= 0 {
		return ListPurchasesQuery{}, errs.NewValueIsRequiredError("actor_id")
	}

	if filter.Status != "" {
		if _, err := purchase.StatusFromString(filter.Status); err != nil {
			return ListPurchasesQuery{}, err
		}
	}
	if filter.ApprovalStatus != "" {
		if _, err := purchase.ApprovalStatusFromString(filter.ApprovalStatus); err != nil {
			return ListPurchasesQuery{}, err
		}
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = DefaultPerPage
	}
	if filter.PerPage > MaxPerPage {
		filter.PerPage = MaxPerPage
	}

	return ListPurchasesQuery{
		actorID: actorID,
		filter:  filter,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPurchasesQuery) Validate() error {
	return q.guard.Validate(ErrListPurchasesQueryIsNotConstructed)
}

// ActorID returns the identifier of the acting user.
func (q ListPurchasesQuery) ActorID() int64 {
	return q.actorID
}

// Filter returns the normalized filters.
func (q ListPurchasesQuery) Filter() ListPurchasesFilter {
	return q.filter
}

// PurchaseSummary is a single row of a listing response.
type PurchaseSummary struct {
	ID             int64
	RequesterID    int64
	ItemName       string
	VendorName     string
	Quantity       int
	Price          kernel.Money
	ShippingCost   kernel.Money
	TotalCost      kernel.Money
	Subteam        string
	Subproject     string
	Urgency        string
	ApprovalStatus string
	Status         string
	IsDeleted      bool
	CreatedAt      time.Time
}

// ListPurchasesResponse is a page of orders together with paging metadata.
type ListPurchasesResponse struct {
	Items      []PurchaseSummary
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}
