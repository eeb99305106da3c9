package service

import (
	"context"
	"fmt"
	"time"

	"smartmess-be/internal/dto"
	"smartmess-be/internal/entity"
	"smartmess-be/internal/pkg/serverutils"
	"smartmess-be/internal/repository/specification"
	"smartmess-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IComplaintService interface {
	File(ctx context.Context, caller *entity.User, req *dto.ComplaintCreateRequest) (*dto.ComplaintDTO, error)
	MyComplaints(ctx context.Context, caller *entity.User) ([]dto.ComplaintDTO, error)
	MessComplaints(ctx context.Context, caller *entity.User, messId uuid.UUID) ([]dto.ComplaintDTO, error)
}

type complaintService struct {
	uowFactory   unitofwork.RepositoryFactory
	notification INotificationService
	adminEmail   string
}

func NewComplaintService(uowFactory unitofwork.RepositoryFactory, notification INotificationService, adminEmail string) IComplaintService {
	return &complaintService{
		uowFactory:   uowFactory,
		notification: notification,
		adminEmail:   adminEmail,
	}
}

func (s *complaintService) File(ctx context.Context, caller *entity.User, req *dto.ComplaintCreateRequest) (*dto.ComplaintDTO, error) {
	if caller.Role != entity.UserRoleStudent {
		return nil, serverutils.NewForbidden("Only students can file complaints")
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

	complaint := &entity.Complaint{
		Id:          uuid.New(),
		MessId:      messId,
		StudentId:   caller.Id,
		StudentName: caller.Name,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      entity.ComplaintStatusPending,
		CreatedAt:   time.Now(),
	}

	if err := uow.ComplaintRepository().Create(ctx, complaint); err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	s.notification.EnqueueEmail(ctx, s.adminEmail, "New Complaint Filed", fmt.Sprintf(
		"<h2>New Complaint</h2>"+
			"<p>Student <strong>%s</strong> filed a complaint against <strong>%s</strong>.</p>"+
			"<p>Subject: %s</p>"+
			"<p>%s</p>",
		caller.Name, mess.Name, req.Subject, req.Description,
	))

	res := dto.ComplaintFromEntity(complaint)
	return &res, nil
}

func (s *complaintService) MyComplaints(ctx context.Context, caller *entity.User) ([]dto.ComplaintDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaints, err := uow.ComplaintRepository().FindAll(ctx,
		specification.StudentOwnedBy{StudentID: caller.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: searchResultCap},
	)
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	return dto.ComplaintsFromEntities(complaints), nil
}

func (s *complaintService) MessComplaints(ctx context.Context, caller *entity.User, messId uuid.UUID) ([]dto.ComplaintDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Admins see any mess's complaints, owners only their own.
	if caller.Role != entity.UserRoleAdmin {
		mess, err := uow.MessRepository().FindOne(ctx, specification.ByID{ID: messId})
		if err != nil {
			return nil, serverutils.NewInternal(err.Error())
		}
		if mess == nil || mess.OwnerId != caller.Id {
			return nil, serverutils.NewForbidden("Not authorized")
		}
	}

	complaints, err := uow.ComplaintRepository().FindAll(ctx,
		specification.MessIs{MessID: messId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: searchResultCap},
	)
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	return dto.ComplaintsFromEntities(complaints), nil
}
