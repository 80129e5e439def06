package queries

import (
	"context"

	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStatisticsQueryHandler computes aggregate statistics. Rows are
// rehydrated into domain aggregates and summarized by the domain aggregator,
// so counting rules live in one place.
type GetStatisticsQueryHandler struct {
	db         *gorm.DB
	policy     services.AuthorizationPolicy
	aggregator services.StatisticsAggregator
}

// NewGetStatisticsQueryHandler creates a handler for statistics queries.
func NewGetStatisticsQueryHandler(db *gorm.DB) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{
		db:         db,
		policy:     services.NewAuthorizationPolicy(),
		aggregator: services.NewStatisticsAggregator(),
	}
}

// Handle executes the statistics query over the actor's visible orders.
func (h GetStatisticsQueryHandler) Handle(ctx context.Context, query GetStatisticsQuery) (GetStatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatisticsResponse{}, err
	}

	listHandler := ListPurchasesQueryHandler{db: h.db, policy: h.policy}
	role, active, err := listHandler.actorRole(ctx, query.ActorID())
	if err != nil {
		return GetStatisticsResponse{}, err
	}

	viewAll := active && h.policy.Allows(role, services.ActionViewAll)
	viewOwn := active && h.policy.Allows(role, services.ActionViewOwn)
	if !viewAll && !viewOwn {
		return GetStatisticsResponse{}, errs.NewAuthorizationDeniedError(role.String(), services.ActionViewOwn.String())
	}

	tx := h.db.WithContext(ctx).Table("purchases").Where("is_deleted = ?", false)
	if !viewAll {
		if active && h.policy.Allows(role, services.ActionApprove) {
			tx = tx.Where("requester_id = ? OR approval_status = ?",
				query.ActorID(), purchase.ApprovalPendingSublead.String())
		} else {
			tx = tx.Where("requester_id = ?", query.ActorID())
		}
	}

	var rows []purchaseDetailRow
	if err = tx.Find(&rows).Error; err != nil {
		return GetStatisticsResponse{}, err
	}

	orders := make([]*purchase.Purchase, 0, len(rows))
	for _, row := range rows {
		order, rowErr := row.toDomain()
		if rowErr != nil {
			return GetStatisticsResponse{}, rowErr
		}
		orders = append(orders, order)
	}

	stats := h.aggregator.Aggregate(orders)
	return GetStatisticsResponse{
		TotalOrders:     stats.TotalOrders,
		PendingApproval: stats.PendingApproval,
		ApprovedOrders:  stats.ApprovedOrders,
		PurchasedOrders: stats.PurchasedOrders,
		ShippedOrders:   stats.ShippedOrders,
		ArrivedOrders:   stats.ArrivedOrders,
		TotalValue:      stats.TotalValue,
	}, nil
}
