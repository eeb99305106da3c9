package service

import (
	"context"
	"time"

	"smartmess-be/internal/dto"
	"smartmess-be/internal/entity"
	"smartmess-be/internal/pkg/serverutils"
	"smartmess-be/internal/repository/specification"
	"smartmess-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IRatingService interface {
	Rate(ctx context.Context, caller *entity.User, req *dto.RatingCreateRequest) (*dto.RatingDTO, error)
	MessRatings(ctx context.Context, messId uuid.UUID) ([]dto.RatingDTO, error)
}

type ratingService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRatingService(uowFactory unitofwork.RepositoryFactory) IRatingService {
	return &ratingService{
		uowFactory: uowFactory,
	}
}

func (s *ratingService) Rate(ctx context.Context, caller *entity.User, req *dto.RatingCreateRequest) (*dto.RatingDTO, error) {
	if caller.Role != entity.UserRoleStudent {
		return nil, serverutils.NewForbidden("Only students can rate")
	}

	messId, err := uuid.Parse(req.MessId)
	if err != nil {
		return nil, serverutils.NewBadRequest("Invalid mess id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	mess, err := uow.MessRepository().FindOne(ctx, specification.ByID{ID: messId})
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}
	if mess == nil {
		return nil, serverutils.NewNotFound("Mess not found")
	}

	rating := &entity.Rating{
		Id:          uuid.New(),
		MessId:      messId,
		StudentId:   caller.Id,
		StudentName: caller.Name,
		Rating:      req.Rating,
		Review:      req.Review,
		CreatedAt:   time.Now(),
	}

	if err := uow.RatingRepository().Create(ctx, rating); err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	// Recompute the aggregate from the full set. Concurrent raters may race
	// and the last writer wins; the mean self-corrects on the next insert.
	all, err := uow.RatingRepository().FindAll(ctx, specification.MessIs{MessID: messId})
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}
	if err := uow.MessRepository().UpdateRatingAggregate(ctx, messId, meanRating(all), len(all)); err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	res := dto.RatingFromEntity(rating)
	return &res, nil
}

func (s *ratingService) MessRatings(ctx context.Context, messId uuid.UUID) ([]dto.RatingDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ratings, err := uow.RatingRepository().FindAll(ctx,
		specification.MessIs{MessID: messId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: searchResultCap},
	)
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	return dto.RatingsFromEntities(ratings), nil
}

func meanRating(ratings []*entity.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r.Rating
	}
	return sum / float64(len(ratings))
}
