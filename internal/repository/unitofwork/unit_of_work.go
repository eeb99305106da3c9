package unitofwork

import (
	"context"

	"smartmess-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MessRepository() contract.MessRepository
	SubscriptionRepository() contract.SubscriptionRepository
	RatingRepository() contract.RatingRepository
	ComplaintRepository() contract.ComplaintRepository
}
