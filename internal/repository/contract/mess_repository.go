package contract

import (
	"context"

	"smartmess-be/internal/entity"
	"smartmess-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessRepository interface {
	Create(ctx context.Context, mess *entity.Mess) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Mess, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Mess, error)

	// ReplaceMenu swaps the whole menu document, never merges.
	ReplaceMenu(ctx context.Context, messId uuid.UUID, menu []entity.MenuDay) error
	// UpdateRatingAggregate overwrites the derived mean and count.
	UpdateRatingAggregate(ctx context.Context, messId uuid.UUID, rating float64, totalRatings int) error
	MarkVerified(ctx context.Context, messId uuid.UUID) error
}
