package implementation

import (
	"context"

	"smartmess-be/internal/entity"
	"smartmess-be/internal/mapper"
	"smartmess-be/internal/model"
	"smartmess-be/internal/repository/contract"
	"smartmess-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RatingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeedbackMapper
}

func NewRatingRepository(db *gorm.DB) contract.RatingRepository {
	return &RatingRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeedbackMapper(),
	}
}

func (r *RatingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RatingRepositoryImpl) Create(ctx context.Context, rating *entity.Rating) error {
	modelRating := r.mapper.RatingToModel(rating)
	if err := r.db.WithContext(ctx).Create(modelRating).Error; err != nil {
		return err
	}
	*rating = *r.mapper.RatingToEntity(modelRating)
	return nil
}

func (r *RatingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Rating, error) {
	var modelRatings []*model.Rating
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelRatings).Error; err != nil {
		return nil, err
	}

	return r.mapper.RatingsToEntities(modelRatings), nil
}
