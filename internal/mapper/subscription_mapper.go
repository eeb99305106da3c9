package mapper

import (
	"smartmess-be/internal/entity"
	"smartmess-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:        s.Id,
		StudentId: s.StudentId,
		MessId:    s.MessId,
		PlanType:  entity.PlanType(s.PlanType),
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Status:    entity.SubscriptionStatus(s.Status),
		PaymentId: s.PaymentId,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:        s.Id,
		StudentId: s.StudentId,
		MessId:    s.MessId,
		PlanType:  string(s.PlanType),
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Status:    string(s.Status),
		PaymentId: s.PaymentId,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SubscriptionMapper) ToEntities(subs []*model.Subscription) []*entity.Subscription {
	entities := make([]*entity.Subscription, len(subs))
	for i, s := range subs {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *SubscriptionMapper) MealSkipToEntity(s *model.MealSkip) *entity.MealSkip {
	if s == nil {
		return nil
	}
	return &entity.MealSkip{
		Id:             s.Id,
		SubscriptionId: s.SubscriptionId,
		StudentId:      s.StudentId,
		SkipDate:       s.SkipDate,
		MealType:       entity.MealType(s.MealType),
		CreatedAt:      s.CreatedAt,
	}
}

func (m *SubscriptionMapper) MealSkipToModel(s *entity.MealSkip) *model.MealSkip {
	if s == nil {
		return nil
	}
	return &model.MealSkip{
		Id:             s.Id,
		SubscriptionId: s.SubscriptionId,
		StudentId:      s.StudentId,
		SkipDate:       s.SkipDate,
		MealType:       string(s.MealType),
		CreatedAt:      s.CreatedAt,
	}
}
