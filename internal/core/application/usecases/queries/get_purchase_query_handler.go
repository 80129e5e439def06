package queries

import (
	"context"
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPurchaseQueryHandler retrieves a single order with its derived fields.
// The row is rehydrated into the domain aggregate so derived values come from
// one place.
type GetPurchaseQueryHandler struct {
	db        *gorm.DB
	policy    services.AuthorizationPolicy
	threshold kernel.Money
}

// NewGetPurchaseQueryHandler creates a handler for detail queries. The
// threshold is needed to derive the executive-approval flag.
func NewGetPurchaseQueryHandler(db *gorm.DB, threshold kernel.Money) GetPurchaseQueryHandler {
	return GetPurchaseQueryHandler{
		db:        db,
		policy:    services.NewAuthorizationPolicy(),
		threshold: threshold,
	}
}

type purchaseDetailRow struct {
	ID             int64
	Version        int64
	RequesterID    int64
	ItemName       string
	VendorName     string
	ItemLink       string
	Purpose        string
	Notes          string
	Quantity       int
	PriceCents     int64
	ShippingCents  int64
	Subteam        string
	Subproject     string
	Urgency        string
	ApprovalStatus string
	Status         string
	SubleadEmail   string
	ExecEmail      string
	ArrivalPhotoID *string
	IsDeleted      bool
	PurchaseDate   *time.Time
	ShippedAt      *time.Time
	ArrivedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Handle executes the detail query. Soft-deleted orders remain addressable by
// identifier for roles allowed to see them.
func (h GetPurchaseQueryHandler) Handle(ctx context.Context, query GetPurchaseQuery) (GetPurchaseResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPurchaseResponse{}, err
	}

	listHandler := ListPurchasesQueryHandler{db: h.db, policy: h.policy}
	role, active, err := listHandler.actorRole(ctx, query.ActorID())
	if err != nil {
		return GetPurchaseResponse{}, err
	}

	var row purchaseDetailRow
	err = h.db.WithContext(ctx).
		Table("purchases").
		Where("id = ?", query.PurchaseID()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GetPurchaseResponse{}, errs.NewObjectNotFoundError("purchase_id", query.PurchaseID())
	}
	if err != nil {
		return GetPurchaseResponse{}, err
	}

	viewAll := active && h.policy.Allows(role, services.ActionViewAll)
	viewOwn := active && h.policy.Allows(role, services.ActionViewOwn)
	decidesSubleadStage := active && h.policy.Allows(role, services.ActionApprove) &&
		row.ApprovalStatus == purchase.ApprovalPendingSublead.String()
	if !viewAll && !(viewOwn && row.RequesterID == query.ActorID()) && !decidesSubleadStage {
		return GetPurchaseResponse{}, errs.NewAuthorizationDeniedError(role.String(), services.ActionViewAll.String())
	}

	order, err := row.toDomain()
	if err != nil {
		return GetPurchaseResponse{}, err
	}

	return h.toResponse(order), nil
}

func (r purchaseDetailRow) toDomain() (*purchase.Purchase, error) {
	price, err := kernel.NewMoney(r.PriceCents)
	if err != nil {
		return nil, err
	}
	shipping, err := kernel.NewMoney(r.ShippingCents)
	if err != nil {
		return nil, err
	}
	status, err := purchase.StatusFromString(r.Status)
	if err != nil {
		return nil, err
	}
	approval, err := purchase.ApprovalStatusFromString(r.ApprovalStatus)
	if err != nil {
		return nil, err
	}
	urgency, err := purchase.UrgencyFromString(r.Urgency)
	if err != nil {
		return nil, err
	}

	var photo *kernel.ArtifactRef
	if r.ArrivalPhotoID != nil && *r.ArrivalPhotoID != "" {
		ref, refErr := kernel.ArtifactRefFromString(*r.ArrivalPhotoID)
		if refErr != nil {
			return nil, refErr
		}
		photo = &ref
	}

	return purchase.RestorePurchase(purchase.Snapshot{
		ID:             r.ID,
		Version:        r.Version,
		RequesterID:    r.RequesterID,
		ItemName:       r.ItemName,
		VendorName:     r.VendorName,
		ItemLink:       r.ItemLink,
		Purpose:        r.Purpose,
		Notes:          r.Notes,
		Quantity:       r.Quantity,
		Price:          price,
		ShippingCost:   shipping,
		Subteam:        r.Subteam,
		Subproject:     r.Subproject,
		Urgency:        urgency,
		ApprovalStatus: approval,
		Status:         status,
		SubleadEmail:   r.SubleadEmail,
		ExecEmail:      r.ExecEmail,
		ArrivalPhoto:   photo,
		IsDeleted:      r.IsDeleted,
		PurchaseDate:   r.PurchaseDate,
		ShippedAt:      r.ShippedAt,
		ArrivedAt:      r.ArrivedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	})
}

func (h GetPurchaseQueryHandler) toResponse(order *purchase.Purchase) GetPurchaseResponse {
	var photoID string
	if order.ArrivalPhoto() != nil {
		photoID = order.ArrivalPhoto().String()
	}

	return GetPurchaseResponse{
		ID:                     order.ID(),
		RequesterID:            order.RequesterID(),
		ItemName:               order.ItemName(),
		VendorName:             order.VendorName(),
		ItemLink:               order.ItemLink(),
		Purpose:                order.Purpose(),
		Notes:                  order.Notes(),
		Quantity:               order.Quantity(),
		Price:                  order.Price(),
		ShippingCost:           order.ShippingCost(),
		TotalCost:              order.TotalCost(),
		Subteam:                order.Subteam(),
		Subproject:             order.Subproject(),
		Urgency:                order.Urgency().String(),
		IsUrgent:               order.IsUrgent(),
		IsSpecialLarge:         order.IsSpecialLarge(),
		ApprovalStatus:         order.ApprovalStatus().String(),
		Status:                 order.Status().String(),
		CanBePurchased:         order.CanBePurchased(),
		NeedsExecutiveApproval: order.NeedsExecutiveApproval(h.threshold),
		SubleadEmail:           order.SubleadEmail(),
		ExecEmail:              order.ExecEmail(),
		ArrivalPhotoID:         photoID,
		IsDeleted:              order.IsDeleted(),
		PurchaseDate:           order.PurchaseDate(),
		ShippedAt:              order.ShippedAt(),
		ArrivedAt:              order.ArrivedAt(),
		CreatedAt:              order.CreatedAt(),
		UpdatedAt:              order.UpdatedAt(),
	}
}
