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

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *entity.Subscription) error {
	modelSub := r.mapper.ToModel(sub)
	if err := r.db.WithContext(ctx).Create(modelSub).Error; err != nil {
		return err
	}
	*sub = *r.mapper.ToEntity(modelSub)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	var modelSub model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelSub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelSub), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var modelSubs []*model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelSubs).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelSubs), nil
}

func (r *SubscriptionRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error {
	return r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *SubscriptionRepositoryImpl) CreateMealSkip(ctx context.Context, skip *entity.MealSkip) error {
	modelSkip := r.mapper.MealSkipToModel(skip)
	if err := r.db.WithContext(ctx).Create(modelSkip).Error; err != nil {
		return err
	}
	*skip = *r.mapper.MealSkipToEntity(modelSkip)
	return nil
}
