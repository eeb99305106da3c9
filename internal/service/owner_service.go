package service

import (
	"context"

	"smartmess-be/internal/dto"
	"smartmess-be/internal/entity"
	"smartmess-be/internal/pkg/serverutils"
	"smartmess-be/internal/repository/specification"
	"smartmess-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IOwnerService interface {
	DashboardStats(ctx context.Context, caller *entity.User) (*dto.DashboardStatsDTO, error)
}

type ownerService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewOwnerService(uowFactory unitofwork.RepositoryFactory) IOwnerService {
	return &ownerService{
		uowFactory: uowFactory,
	}
}

// DashboardStats aggregates live over the owner's messes on every call.
// Revenue counts each active subscription once at the current plan price.
func (s *ownerService) DashboardStats(ctx context.Context, caller *entity.User) (*dto.DashboardStatsDTO, error) {
	if caller.Role != entity.UserRoleOwner {
		return nil, serverutils.NewForbidden("Not authorized")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	messes, err := uow.MessRepository().FindAll(ctx, specification.OwnedBy{OwnerID: caller.Id})
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	var subs []*entity.Subscription
	if len(messes) > 0 {
		messIds := make([]uuid.UUID, len(messes))
		for i, m := range messes {
			messIds[i] = m.Id
		}
		subs, err = uow.SubscriptionRepository().FindAll(ctx,
			specification.MessIn{MessIDs: messIds},
			specification.StatusIs{Status: string(entity.SubscriptionStatusActive)},
		)
		if err != nil {
			return nil, serverutils.NewInternal(err.Error())
		}
	}

	stats := computeDashboardStats(messes, subs)
	return &stats, nil
}

func computeDashboardStats(messes []*entity.Mess, activeSubs []*entity.Subscription) dto.DashboardStatsDTO {
	stats := dto.DashboardStatsDTO{
		TotalMesses:         len(messes),
		ActiveSubscriptions: len(activeSubs),
	}
	if len(messes) == 0 {
		return stats
	}

	priceByMess := make(map[uuid.UUID]*entity.Mess, len(messes))
	var ratingSum float64
	for _, m := range messes {
		priceByMess[m.Id] = m
		ratingSum += m.Rating
	}
	stats.AverageRating = ratingSum / float64(len(messes))

	for _, sub := range activeSubs {
		mess, ok := priceByMess[sub.MessId]
		if !ok {
			continue
		}
		if sub.PlanType == entity.PlanTypeMonthly {
			stats.TotalRevenue += mess.PricingMonthly
		} else {
			stats.TotalRevenue += mess.PricingWeekly
		}
	}
	return stats
}
