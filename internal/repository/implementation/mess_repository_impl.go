package implementation

import (
	"context"
	"errors"

	"smartmess-be/internal/entity"
	"smartmess-be/internal/mapper"
	"smartmess-be/internal/model"
	"smartmess-be/internal/repository/contract"
	"smartmess-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MessMapper
}

func NewMessRepository(db *gorm.DB) contract.MessRepository {
	return &MessRepositoryImpl{
		db:     db,
		mapper: mapper.NewMessMapper(),
	}
}

func (r *MessRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MessRepositoryImpl) Create(ctx context.Context, mess *entity.Mess) error {
	modelMess := r.mapper.ToModel(mess)
	if err := r.db.WithContext(ctx).Create(modelMess).Error; err != nil {
		return err
	}
	*mess = *r.mapper.ToEntity(modelMess)
	return nil
}

func (r *MessRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Mess, error) {
	var modelMess model.Mess
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelMess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelMess), nil
}

func (r *MessRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Mess, error) {
	var modelMesses []*model.Mess
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelMesses).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelMesses), nil
}

func (r *MessRepositoryImpl) ReplaceMenu(ctx context.Context, messId uuid.UUID, menu []entity.MenuDay) error {
	return r.db.WithContext(ctx).Model(&model.Mess{}).
		Where("id = ?", messId).
		Update("menu", mapper.MenuToJSON(menu)).Error
}

func (r *MessRepositoryImpl) UpdateRatingAggregate(ctx context.Context, messId uuid.UUID, rating float64, totalRatings int) error {
	return r.db.WithContext(ctx).Model(&model.Mess{}).
		Where("id = ?", messId).
		Updates(map[string]interface{}{
			"rating":        rating,
			"total_ratings": totalRatings,
		}).Error
}

func (r *MessRepositoryImpl) MarkVerified(ctx context.Context, messId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Mess{}).
		Where("id = ?", messId).
		Update("is_verified", true).Error
}
