package contract

import (
	"context"

	"smartmess-be/internal/entity"
	"smartmess-be/internal/repository/specification"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Rating, error)
}
