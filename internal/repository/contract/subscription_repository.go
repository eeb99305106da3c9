package contract

import (
	"context"

	"smartmess-be/internal/entity"
	"smartmess-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error

	// Meal skips live with subscriptions; they are append-only.
	CreateMealSkip(ctx context.Context, skip *entity.MealSkip) error
}
