package queries

import (
	"context"
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListPurchasesQueryHandler retrieves pages of purchase orders from the
// database with role-based scoping and optional filters.
type ListPurchasesQueryHandler struct {
	db     *gorm.DB
	policy services.AuthorizationPolicy
}

// NewListPurchasesQueryHandler creates a handler for listing queries.
// Requires a GORM database connection for query execution.
func NewListPurchasesQueryHandler(db *gorm.DB) ListPurchasesQueryHandler {
	return ListPurchasesQueryHandler{
		db:     db,
		policy: services.NewAuthorizationPolicy(),
	}
}

type purchaseRow struct {
	ID             int64
	RequesterID    int64
	ItemName       string
	VendorName     string
	Quantity       int
	PriceCents     int64
	ShippingCents  int64
	Subteam        string
	Subproject     string
	Urgency        string
	ApprovalStatus string
	Status         string
	IsDeleted      bool
	CreatedAt      time.Time
}

// Handle executes the listing query. Requesters are scoped to their own
// orders, subleads see their own plus orders awaiting the sublead decision,
// and including soft-deleted orders requires the view-all capability.
// Results are newest first.
func (h ListPurchasesQueryHandler) Handle(ctx context.Context, query ListPurchasesQuery) (ListPurchasesResponse, error) {
	if err := query.Validate(); err != nil {
		return ListPurchasesResponse{}, err
	}

	role, active, err := h.actorRole(ctx, query.ActorID())
	if err != nil {
		return ListPurchasesResponse{}, err
	}

	viewAll := active && h.policy.Allows(role, services.ActionViewAll)
	viewOwn := active && h.policy.Allows(role, services.ActionViewOwn)
	if !viewAll && !viewOwn {
		return ListPurchasesResponse{}, errs.NewAuthorizationDeniedError(role.String(), services.ActionViewOwn.String())
	}

	filter := query.Filter()
	if filter.IncludeDeleted && !viewAll {
		return ListPurchasesResponse{}, errs.NewAuthorizationDeniedError(role.String(), services.ActionViewAll.String())
	}

	tx := h.db.WithContext(ctx).Table("purchases")
	if !viewAll {
		if active && h.policy.Allows(role, services.ActionApprove) {
			tx = tx.Where("requester_id = ? OR approval_status = ?",
				query.ActorID(), purchase.ApprovalPendingSublead.String())
		} else {
			tx = tx.Where("requester_id = ?", query.ActorID())
		}
	}
	if !filter.IncludeDeleted {
		tx = tx.Where("is_deleted = ?", false)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.ApprovalStatus != "" {
		tx = tx.Where("approval_status = ?", filter.ApprovalStatus)
	}
	if filter.Subteam != "" {
		tx = tx.Where("subteam = ?", filter.Subteam)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("item_name ILIKE ? OR vendor_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err = tx.Count(&total).Error; err != nil {
		return ListPurchasesResponse{}, err
	}

	rows := make([]purchaseRow, 0, filter.PerPage)
	err = tx.
		Select("id", "requester_id", "item_name", "vendor_name", "quantity",
			"price_cents", "shipping_cents", "subteam", "subproject", "urgency",
			"approval_status", "status", "is_deleted", "created_at").
		Order("created_at DESC, id DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&rows).Error
	if err != nil {
		return ListPurchasesResponse{}, err
	}

	items := make([]PurchaseSummary, 0, len(rows))
	for _, row := range rows {
		summary, rowErr := row.toSummary()
		if rowErr != nil {
			return ListPurchasesResponse{}, rowErr
		}
		items = append(items, summary)
	}

	totalPages := int((total + int64(filter.PerPage) - 1) / int64(filter.PerPage))
	return ListPurchasesResponse{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (h ListPurchasesQueryHandler) actorRole(ctx context.Context, actorID int64) (user.Role, bool, error) {
	var row struct {
		Role     string
		IsActive bool
	}

	err := h.db.WithContext(ctx).
		Table("users").
		Select("role", "is_active").
		Where("id = ?", actorID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.RoleUnknown, false, errs.NewObjectNotFoundError("user_id", actorID)
	}
	if err != nil {
		return user.RoleUnknown, false, err
	}

	role, err := user.RoleFromString(row.Role)
	if err != nil {
		return user.RoleUnknown, false, err
	}
	return role, row.IsActive, nil
}

func (r purchaseRow) toSummary() (PurchaseSummary, error) {
	price, err := kernel.NewMoney(r.PriceCents)
	if err != nil {
		return PurchaseSummary{}, err
	}
	shipping, err := kernel.NewMoney(r.ShippingCents)
	if err != nil {
		return PurchaseSummary{}, err
	}

	return PurchaseSummary{
		ID:             r.ID,
		RequesterID:    r.RequesterID,
		ItemName:       r.ItemName,
		VendorName:     r.VendorName,
		Quantity:       r.Quantity,
		Price:          price,
		ShippingCost:   shipping,
		TotalCost:      price.Add(shipping),
		Subteam:        r.Subteam,
		Subproject:     r.Subproject,
		Urgency:        r.Urgency,
		ApprovalStatus: r.ApprovalStatus,
		Status:         r.Status,
		IsDeleted:      r.IsDeleted,
		CreatedAt:      r.CreatedAt,
	}, nil
}
