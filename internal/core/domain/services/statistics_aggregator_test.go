package services_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderWith(t *testing.T, price float64, mutate func(p *purchase.Purchase)) *purchase.Purchase {
	t.Helper()
	p, err := purchase.NewPurchase(purchase.Draft{
		RequesterID: 1,
		ItemName:    "Stock aluminum",
		VendorName:  "OnlineMetals",
		Quantity:    1,
		Price:       mustMoney(t, price),
		Subteam:     "MechE Structures",
	}, time.Now())
	require.NoError(t, err)
	if mutate != nil {
		mutate(p)
	}
	return p
}

func TestStatisticsAggregator_Aggregate(t *testing.T) {
	aggregator := services.NewStatisticsAggregator()
	threshold := mustMoney(t, 3000)

	approve := func(p *purchase.Purchase) {
		require.NoError(t, p.ApproveBySublead("lead@team.org", threshold, time.Now()))
	}

	t.Run("empty input yields zero statistics", func(t *testing.T) {
		stats := aggregator.Aggregate(nil)
		assert.Equal(t, services.Statistics{}, stats)
	})

	t.Run("counts every bucket", func(t *testing.T) {
		pending := orderWith(t, 100, nil)
		approved := orderWith(t, 200, approve)
		purchased := orderWith(t, 300, func(p *purchase.Purchase) {
			approve(p)
			require.NoError(t, p.MarkPurchased(time.Now()))
		})
		shipped := orderWith(t, 400, func(p *purchase.Purchase) {
			approve(p)
			require.NoError(t, p.MarkPurchased(time.Now()))
			require.NoError(t, p.MarkShipped(time.Now()))
		})
		arrived := orderWith(t, 500, func(p *purchase.Purchase) {
			approve(p)
			require.NoError(t, p.MarkPurchased(time.Now()))
			require.NoError(t, p.MarkShipped(time.Now()))
			photo := kernel.NewArtifactRef()
			require.NoError(t, p.MarkArrived(&photo, time.Now()))
		})

		stats := aggregator.Aggregate([]*purchase.Purchase{pending, approved, purchased, shipped, arrived})

		assert.Equal(t, 5, stats.TotalOrders)
		assert.Equal(t, 1, stats.PendingApproval)
		assert.Equal(t, 4, stats.ApprovedOrders)
		assert.Equal(t, 1, stats.PurchasedOrders)
		assert.Equal(t, 1, stats.ShippedOrders)
		assert.Equal(t, 1, stats.ArrivedOrders)
		assert.Equal(t, int64(150000), stats.TotalValue.Cents())
	})

	t.Run("soft-deleted orders are excluded everywhere", func(t *testing.T) {
		live := orderWith(t, 100, nil)
		deleted := orderWith(t, 900, func(p *purchase.Purchase) {
			p.SoftDelete(time.Now())
		})

		stats := aggregator.Aggregate([]*purchase.Purchase{live, deleted})

		assert.Equal(t, 1, stats.TotalOrders)
		assert.Equal(t, int64(10000), stats.TotalValue.Cents())
	})

	t.Run("cancelled and rejected orders still count toward total value", func(t *testing.T) {
		cancelled := orderWith(t, 100, func(p *purchase.Purchase) {
			require.NoError(t, p.Cancel(time.Now()))
		})
		rejected := orderWith(t, 200, func(p *purchase.Purchase) {
			require.NoError(t, p.Reject("too expensive", time.Now()))
		})

		stats := aggregator.Aggregate([]*purchase.Purchase{cancelled, rejected})

		assert.Equal(t, 2, stats.TotalOrders)
		// the cancelled order never received an approval decision
		assert.Equal(t, 1, stats.PendingApproval)
		assert.Equal(t, 0, stats.ApprovedOrders)
		assert.Equal(t, int64(30000), stats.TotalValue.Cents())
	})

	t.Run("shipping cost contributes to total value", func(t *testing.T) {
		p, err := purchase.NewPurchase(purchase.Draft{
			RequesterID:  1,
			ItemName:     "Connectors",
			VendorName:   "DigiKey",
			Quantity:     1,
			Price:        mustMoney(t, 50),
			ShippingCost: mustMoney(t, 12.50),
			Subteam:      "Electrical",
		}, time.Now())
		require.NoError(t, err)

		stats := aggregator.Aggregate([]*purchase.Purchase{p})
		assert.Equal(t, int64(6250), stats.TotalValue.Cents())
	})
}
