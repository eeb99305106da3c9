package contract

import (
	"context"
	"time"

	"smartmess-be/internal/entity"
	"smartmess-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Complaint, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Complaint, error)
	Resolve(ctx context.Context, id uuid.UUID, resolvedAt time.Time) error
}
