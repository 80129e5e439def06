package services

import (
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchase"
)

// Statistics is an aggregate summary over a set of purchase orders.
// TotalValue sums the total cost of every counted order, regardless of
// status; cancelled and rejected orders still contribute.
type Statistics struct {
	TotalOrders     int
	PendingApproval int
	ApprovedOrders  int
	PurchasedOrders int
	ShippedOrders   int
	ArrivedOrders   int
	TotalValue      kernel.Money
}

// StatisticsAggregator is a domain service computing summary counts over
// orders. Soft-deleted orders never contribute to any figure.
type StatisticsAggregator struct{}

// NewStatisticsAggregator creates a new StatisticsAggregator instance.
func NewStatisticsAggregator() StatisticsAggregator {
	return StatisticsAggregator{}
}

// Aggregate computes the summary for the given orders. Invalid (not
// constructed) and soft-deleted entries are skipped.
func (a StatisticsAggregator) Aggregate(orders []*purchase.Purchase) Statistics {
	var stats Statistics

	for _, p := range orders {
		if p.Validate() != nil || p.IsDeleted() {
			continue
		}

		stats.TotalOrders++
		stats.TotalValue = stats.TotalValue.Add(p.TotalCost())

		if p.IsPendingApproval() {
			stats.PendingApproval++
		}
		if p.ApprovalStatus() == purchase.ApprovalFullyApproved {
			stats.ApprovedOrders++
		}

		switch p.Status() {
		case purchase.StatusPurchased:
			stats.PurchasedOrders++
		case purchase.StatusShipped:
			stats.ShippedOrders++
		case purchase.StatusArrived:
			stats.ArrivedOrders++
		}
	}

	return stats
}
