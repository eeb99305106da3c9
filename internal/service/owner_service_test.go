package service

import (
	"testing"

	"smartmess-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestComputeDashboardStats(t *testing.T) {
	messA := &entity.Mess{Id: uuid.New(), PricingMonthly: 3000, PricingWeekly: 800, Rating: 4.0}
	messB := &entity.Mess{Id: uuid.New(), PricingMonthly: 2500, PricingWeekly: 700, Rating: 3.0}

	t.Run("no messes yields zeros", func(t *testing.T) {
		stats := computeDashboardStats(nil, nil)
		assert.Equal(t, 0, stats.TotalMesses)
		assert.Equal(t, 0, stats.ActiveSubscriptions)
		assert.Equal(t, 0.0, stats.TotalRevenue)
		assert.Equal(t, 0.0, stats.AverageRating)
	})

	t.Run("messes without subscriptions", func(t *testing.T) {
		stats := computeDashboardStats([]*entity.Mess{messA, messB}, nil)
		assert.Equal(t, 2, stats.TotalMesses)
		assert.Equal(t, 0, stats.ActiveSubscriptions)
		assert.Equal(t, 0.0, stats.TotalRevenue)
		assert.Equal(t, 3.5, stats.AverageRating)
	})

	t.Run("revenue uses plan price from the mess row", func(t *testing.T) {
		subs := []*entity.Subscription{
			{MessId: messA.Id, PlanType: entity.PlanTypeMonthly},
			{MessId: messA.Id, PlanType: entity.PlanTypeWeekly},
			{MessId: messB.Id, PlanType: entity.PlanTypeMonthly},
		}
		stats := computeDashboardStats([]*entity.Mess{messA, messB}, subs)
		assert.Equal(t, 3, stats.ActiveSubscriptions)
		assert.Equal(t, 3000.0+800.0+2500.0, stats.TotalRevenue)
	})

	t.Run("subscription to unknown mess is skipped", func(t *testing.T) {
		subs := []*entity.Subscription{
			{MessId: uuid.New(), PlanType: entity.PlanTypeMonthly},
		}
		stats := computeDashboardStats([]*entity.Mess{messA}, subs)
		assert.Equal(t, 1, stats.ActiveSubscriptions)
		assert.Equal(t, 0.0, stats.TotalRevenue)
	})
}
