package implementation

import (
	"context"
	"errors"
	"time"

	"smartmess-be/internal/entity"
	"smartmess-be/internal/mapper"
	"smartmess-be/internal/model"
	"smartmess-be/internal/repository/contract"
	"smartmess-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplaintRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeedbackMapper
}

func NewComplaintRepository(db *gorm.DB) contract.ComplaintRepository {
	return &ComplaintRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeedbackMapper(),
	}
}

func (r *ComplaintRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ComplaintRepositoryImpl) Create(ctx context.Context, complaint *entity.Complaint) error {
	modelComplaint := r.mapper.ComplaintToModel(complaint)
	if err := r.db.WithContext(ctx).Create(modelComplaint).Error; err != nil {
		return err
	}
	*complaint = *r.mapper.ComplaintToEntity(modelComplaint)
	return nil
}

func (r *ComplaintRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Complaint, error) {
	var modelComplaint model.Complaint
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelComplaint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ComplaintToEntity(&modelComplaint), nil
}

func (r *ComplaintRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Complaint, error) {
	var modelComplaints []*model.Complaint
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelComplaints).Error; err != nil {
		return nil, err
	}

	return r.mapper.ComplaintsToEntities(modelComplaints), nil
}

func (r *ComplaintRepositoryImpl) Resolve(ctx context.Context, id uuid.UUID, resolvedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Complaint{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      string(entity.ComplaintStatusResolved),
			"resolved_at": resolvedAt,
		}).Error
}
