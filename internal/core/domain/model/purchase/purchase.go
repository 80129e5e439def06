package purchase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var (
	// ErrPurchaseIsNotConstructed is returned when a Purchase instance was not
	// created through NewPurchase or RestorePurchase. This ensures all orders
	// are properly validated.
	ErrPurchaseIsNotConstructed = errors.New("Purchase must be created via NewPurchase or RestorePurchase")

	// ErrIDAlreadyAssigned is returned when MarkPersisted is asked to change
	// the identifier of an order that already has one.
	ErrIDAlreadyAssigned = errors.New("purchase ID is immutable once assigned")
)

// Draft carries the requester-supplied fields of a new purchase order.
// It is plain input data; NewPurchase validates it.
type Draft struct {
	RequesterID  int64
	ItemName     string
	VendorName   string
	ItemLink     string
	Purpose      string
	Notes        string
	Quantity     int
	Price        kernel.Money
	ShippingCost kernel.Money
	Subteam      string
	Subproject   string
	Urgency      Urgency
}

// Snapshot is the full persisted state of an order, used to rehydrate the
// aggregate from storage and to map it back. Field semantics match the
// aggregate exactly; derived values are never part of a snapshot.
type Snapshot struct {
	ID             int64
	Version        int64
	RequesterID    int64
	ItemName       string
	VendorName     string
	ItemLink       string
	Purpose        string
	Notes          string
	Quantity       int
	Price          kernel.Money
	ShippingCost   kernel.Money
	Subteam        string
	Subproject     string
	Urgency        Urgency
	ApprovalStatus ApprovalStatus
	Status         Status
	SubleadEmail   string
	ExecEmail      string
	ArrivalPhoto   *kernel.ArtifactRef
	IsDeleted      bool
	PurchaseDate   *time.Time
	ShippedAt      *time.Time
	ArrivedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Purchase is the aggregate root for a procurement request. It owns the
// coupled approval and fulfillment state machines and every invariant that
// spans them.
//
// Invariants:
//   - item name, vendor name, and subteam are always present; a subproject,
//     when set, belongs to the subteam's allowed set
//   - quantity is positive; price and shipping cost are non-negative
//   - fulfillment status never regresses and follows the transition table;
//     approval follows its own table
//   - an order is never Arrived without an arrival photo reference
//   - a Rejected order can never be purchased
//   - soft delete is orthogonal to both machines and fully reversible
//
// All fields are private; state changes only through validated methods.
// Derived values (total cost, urgency flags, purchasability) are computed
// on read and never stored.
type Purchase struct {
	id          int64
	version     int64
	requesterID int64

	itemName   string
	vendorName string
	itemLink   string
	purpose    string
	notes      string
	quantity   int

	price        kernel.Money
	shippingCost kernel.Money

	subteam    string
	subproject string
	urgency    Urgency

	approvalStatus ApprovalStatus
	status         Status

	subleadEmail string
	execEmail    string

	arrivalPhoto *kernel.ArtifactRef
	isDeleted    bool

	purchaseDate *time.Time
	shippedAt    *time.Time
	arrivedAt    *time.Time
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewPurchase creates a new order from a requester's draft. The order starts
// at Not Yet Purchased / Pending Sublead Approval with server-set timestamps.
//
// Validation failures are joined, so a caller sees every invalid field at
// once rather than the first.
func NewPurchase(draft Draft, now time.Time) (*Purchase, error) {
	p := &Purchase{
		approvalStatus: ApprovalPendingSublead,
		status:         StatusNotPurchased,
		createdAt:      now,
		updatedAt:      now,
		isConstructed:  true,
	}

	if draft.Quantity == 0 {
		draft.Quantity = 1
	}
	if draft.Urgency == UrgencyUnknown {
		draft.Urgency = UrgencyNeither
	}

	if err := errors.Join(
		p.setRequesterID(draft.RequesterID),
		p.setItemName(draft.ItemName),
		p.setVendorName(draft.VendorName),
		p.setQuantity(draft.Quantity),
		p.setSubteam(draft.Subteam, draft.Subproject),
		p.setUrgency(draft.Urgency),
	); err != nil {
		return nil, err
	}

	p.itemLink = draft.ItemLink
	p.purpose = draft.Purpose
	p.notes = draft.Notes
	p.price = draft.Price
	p.shippingCost = draft.ShippingCost

	return p, nil
}

// RestorePurchase rehydrates an order from its persisted snapshot. The
// snapshot's enum fields are validated; an Arrived snapshot must carry its
// arrival photo reference.
func RestorePurchase(s Snapshot) (*Purchase, error) {
	if err := errors.Join(
		s.Status.Validate(),
		s.ApprovalStatus.Validate(),
		s.Urgency.Validate(),
	); err != nil {
		return nil, err
	}
	if s.Status == StatusArrived && s.ArrivalPhoto == nil {
		return nil, errs.NewMissingArtifactError("arrival_photo")
	}

	p := &Purchase{
		id:             s.ID,
		version:        s.Version,
		requesterID:    s.RequesterID,
		itemName:       s.ItemName,
		vendorName:     s.VendorName,
		itemLink:       s.ItemLink,
		purpose:        s.Purpose,
		notes:          s.Notes,
		quantity:       s.Quantity,
		price:          s.Price,
		shippingCost:   s.ShippingCost,
		subteam:        s.Subteam,
		subproject:     s.Subproject,
		urgency:        s.Urgency,
		approvalStatus: s.ApprovalStatus,
		status:         s.Status,
		subleadEmail:   s.SubleadEmail,
		execEmail:      s.ExecEmail,
		arrivalPhoto:   s.ArrivalPhoto,
		isDeleted:      s.IsDeleted,
		purchaseDate:   s.PurchaseDate,
		shippedAt:      s.ShippedAt,
		arrivedAt:      s.ArrivedAt,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		isConstructed:  true,
	}
	return p, nil
}

// Validate ensures the Purchase instance was properly constructed through
// NewPurchase or RestorePurchase, preventing use of zero-value structs.
func (p *Purchase) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPurchaseIsNotConstructed
	}
	return nil
}

// Snapshot returns the full persisted state of the order for mapping to
// storage. The snapshot is a copy; mutating it does not affect the aggregate.
func (p *Purchase) Snapshot() Snapshot {
	return Snapshot{
		ID:             p.id,
		Version:        p.version,
		RequesterID:    p.requesterID,
		ItemName:       p.itemName,
		VendorName:     p.vendorName,
		ItemLink:       p.itemLink,
		Purpose:        p.purpose,
		Notes:          p.notes,
		Quantity:       p.quantity,
		Price:          p.price,
		ShippingCost:   p.shippingCost,
		Subteam:        p.subteam,
		Subproject:     p.subproject,
		Urgency:        p.urgency,
		ApprovalStatus: p.approvalStatus,
		Status:         p.status,
		SubleadEmail:   p.subleadEmail,
		ExecEmail:      p.execEmail,
		ArrivalPhoto:   p.arrivalPhoto,
		IsDeleted:      p.isDeleted,
		PurchaseDate:   p.purchaseDate,
		ShippedAt:      p.shippedAt,
		ArrivedAt:      p.arrivedAt,
		CreatedAt:      p.createdAt,
		UpdatedAt:      p.updatedAt,
	}
}

// ID returns the order's identifier, or 0 before first persistence.
func (p *Purchase) ID() int64 { return p.id }

// Version returns the optimistic-concurrency counter of the loaded state.
func (p *Purchase) Version() int64 { return p.version }

// RequesterID returns the owning requester's user ID.
func (p *Purchase) RequesterID() int64 { return p.requesterID }

// ItemName returns the requested item's name.
func (p *Purchase) ItemName() string { return p.itemName }

// VendorName returns the vendor the item is ordered from.
func (p *Purchase) VendorName() string { return p.vendorName }

// ItemLink returns the optional link to the item.
func (p *Purchase) ItemLink() string { return p.itemLink }

// Purpose returns the optional free-form purpose text.
func (p *Purchase) Purpose() string { return p.purpose }

// Notes returns the free-form notes, including any appended rejection reason.
func (p *Purchase) Notes() string { return p.notes }

// Quantity returns the ordered quantity.
func (p *Purchase) Quantity() int { return p.quantity }

// Price returns the unit price.
func (p *Purchase) Price() kernel.Money { return p.price }

// ShippingCost returns the shipping cost.
func (p *Purchase) ShippingCost() kernel.Money { return p.shippingCost }

// Subteam returns the subteam the order is filed under.
func (p *Purchase) Subteam() string { return p.subteam }

// Subproject returns the subproject within the subteam, if any.
func (p *Purchase) Subproject() string { return p.subproject }

// Urgency returns the urgency flag set at submission.
func (p *Purchase) Urgency() Urgency { return p.urgency }

// ApprovalStatus returns the current approval stage.
func (p *Purchase) ApprovalStatus() ApprovalStatus { return p.approvalStatus }

// Status returns the current fulfillment status.
func (p *Purchase) Status() Status { return p.status }

// SubleadEmail returns the email of the sublead who approved, if any.
func (p *Purchase) SubleadEmail() string { return p.subleadEmail }

// ExecEmail returns the email of the executive who approved, if any.
func (p *Purchase) ExecEmail() string { return p.execEmail }

// ArrivalPhoto returns the arrival photo reference, or nil before arrival.
func (p *Purchase) ArrivalPhoto() *kernel.ArtifactRef { return p.arrivalPhoto }

// IsDeleted reports whether the order is soft-deleted.
func (p *Purchase) IsDeleted() bool { return p.isDeleted }

// PurchaseDate returns when the order was marked purchased, if it was.
func (p *Purchase) PurchaseDate() *time.Time { return p.purchaseDate }

// ShippedAt returns when the order was marked shipped, if it was.
func (p *Purchase) ShippedAt() *time.Time { return p.shippedAt }

// ArrivedAt returns when the order was marked arrived, if it was.
func (p *Purchase) ArrivedAt() *time.Time { return p.arrivedAt }

// CreatedAt returns the server-set creation time.
func (p *Purchase) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the time of the last successful mutation.
func (p *Purchase) UpdatedAt() time.Time { return p.updatedAt }

// TotalCost returns price plus shipping cost. Computed on read, never stored.
func (p *Purchase) TotalCost() kernel.Money {
	return p.price.Add(p.shippingCost)
}

// IsUrgent reports whether the order was flagged urgent.
func (p *Purchase) IsUrgent() bool {
	return p.urgency.IsUrgent()
}

// IsSpecialLarge reports whether the order was flagged special/large.
func (p *Purchase) IsSpecialLarge() bool {
	return p.urgency.IsSpecialLarge()
}

// NeedsExecutiveApproval reports whether the order must pass the executive
// stage: special/large orders always do, as does any order whose price
// exceeds the configured threshold.
func (p *Purchase) NeedsExecutiveApproval(threshold kernel.Money) bool {
	return p.IsSpecialLarge() || p.price.GreaterThan(threshold)
}

// CanBePurchased reports whether the business team may place the order:
// fully approved and not yet purchased. Permanently false once rejected.
func (p *Purchase) CanBePurchased() bool {
	return p.approvalStatus == ApprovalFullyApproved && p.status == StatusNotPurchased
}

// IsPendingApproval reports whether the order still awaits an approval decision.
func (p *Purchase) IsPendingApproval() bool {
	return p.approvalStatus.IsPending()
}

// ApproveBySublead applies a sublead approval. When the order needs
// executive approval under the given threshold it advances to the executive
// stage; otherwise it skips straight to Fully Approved. Records the
// approver's email.
func (p *Purchase) ApproveBySublead(approverEmail string, threshold kernel.Money, now time.Time) error {
	next, err := p.approvalStatus.ApproveBySublead(p.NeedsExecutiveApproval(threshold))
	if err != nil {
		return err
	}

	p.approvalStatus = next
	p.subleadEmail = approverEmail
	p.touch(now)
	return nil
}

// ApproveByExecutive applies the executive approval, completing the approval
// workflow. Records the approver's email.
func (p *Purchase) ApproveByExecutive(approverEmail string, now time.Time) error {
	next, err := p.approvalStatus.ApproveByExecutive()
	if err != nil {
		return err
	}

	p.approvalStatus = next
	p.execEmail = approverEmail
	p.touch(now)
	return nil
}

// Reject declines the order from either pending stage. A non-empty reason is
// appended to the order's notes. Rejection is terminal: the order can never
// be purchased afterwards.
func (p *Purchase) Reject(reason string, now time.Time) error {
	next, err := p.approvalStatus.Reject()
	if err != nil {
		return err
	}

	p.approvalStatus = next
	if reason != "" {
		p.notes = strings.TrimSpace(fmt.Sprintf("%s\n\nRejection reason: %s", p.notes, reason))
	}
	p.touch(now)
	return nil
}

// MarkPurchased records that the business team placed the order. Requires
// the order to be purchasable: fully approved and not yet purchased.
func (p *Purchase) MarkPurchased(now time.Time) error {
	if p.approvalStatus != ApprovalFullyApproved {
		return errs.NewInvalidTransitionError(p.status.String(), StatusPurchased.String())
	}

	next, err := p.status.TransitionTo(StatusPurchased)
	if err != nil {
		return err
	}

	p.status = next
	p.purchaseDate = &now
	p.touch(now)
	return nil
}

// MarkShipped records that the vendor shipped the order.
func (p *Purchase) MarkShipped(now time.Time) error {
	next, err := p.status.TransitionTo(StatusShipped)
	if err != nil {
		return err
	}

	p.status = next
	p.shippedAt = &now
	p.touch(now)
	return nil
}

// MarkArrived records physical arrival. The arrival photo reference is
// mandatory; without a valid one the call fails with MissingArtifact and the
// status is left unchanged.
func (p *Purchase) MarkArrived(photo *kernel.ArtifactRef, now time.Time) error {
	if photo == nil || photo.Validate() != nil {
		return errs.NewMissingArtifactError("arrival_photo")
	}

	next, err := p.status.TransitionTo(StatusArrived)
	if err != nil {
		return err
	}

	p.status = next
	p.arrivalPhoto = photo
	p.arrivedAt = &now
	p.touch(now)
	return nil
}

// Cancel withdraws the order. Only legal before shipping, and never for a
// rejected order, whose state is frozen entirely.
func (p *Purchase) Cancel(now time.Time) error {
	if p.approvalStatus == ApprovalRejected {
		return errs.NewInvalidTransitionError(p.status.String(), StatusCancelled.String())
	}

	next, err := p.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	p.status = next
	p.touch(now)
	return nil
}

// SoftDelete hides the order from default listings and aggregations without
// touching either state machine. Idempotent.
func (p *Purchase) SoftDelete(now time.Time) {
	if p.isDeleted {
		return
	}
	p.isDeleted = true
	p.touch(now)
}

// RestoreFromDelete clears the soft-delete flag, leaving status and approval
// state untouched. A no-op on a live order.
func (p *Purchase) RestoreFromDelete(now time.Time) {
	if !p.isDeleted {
		return
	}
	p.isDeleted = false
	p.touch(now)
}

// MarkPersisted records the identifier and version assigned by storage.
// Called by the repository after inserts and successful version bumps; the
// identifier, once set, cannot change.
func (p *Purchase) MarkPersisted(id, version int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if p.id != 0 && p.id != id {
		return ErrIDAlreadyAssigned
	}
	p.id = id
	p.version = version
	return nil
}

func (p *Purchase) touch(now time.Time) {
	p.updatedAt = now
}

func (p *Purchase) setRequesterID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("requester_id")
	}
	p.requesterID = id
	return nil
}

func (p *Purchase) setItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("item_name")
	}
	p.itemName = name
	return nil
}

func (p *Purchase) setVendorName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("vendor_name")
	}
	p.vendorName = name
	return nil
}

func (p *Purchase) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, nil)
	}
	p.quantity = quantity
	return nil
}

func (p *Purchase) setSubteam(subteam, subproject string) error {
	if err := ValidateSubteam(subteam, subproject); err != nil {
		return err
	}
	p.subteam = subteam
	p.subproject = subproject
	return nil
}

func (p *Purchase) setUrgency(urgency Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}
	p.urgency = urgency
	return nil
}
