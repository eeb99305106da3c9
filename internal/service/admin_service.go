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

const adminListCap = 1000

type IAdminService interface {
	ListUsers(ctx context.Context, caller *entity.User) ([]dto.UserDTO, error)
	ListMesses(ctx context.Context, caller *entity.User) ([]dto.MessDTO, error)
	ListComplaints(ctx context.Context, caller *entity.User) ([]dto.ComplaintDTO, error)
	VerifyMess(ctx context.Context, caller *entity.User, messId uuid.UUID) error
	ResolveComplaint(ctx context.Context, caller *entity.User, complaintId uuid.UUID) error
	SendWarning(ctx context.Context, caller *entity.User, ownerId uuid.UUID, req *dto.WarningRequest) error
}

type adminService struct {
	uowFactory   unitofwork.RepositoryFactory
	notification INotificationService
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, notification INotificationService) IAdminService {
	return &adminService{
		uowFactory:   uowFactory,
		notification: notification,
	}
}

func requireAdmin(caller *entity.User) error {
	if caller.Role != entity.UserRoleAdmin {
		return serverutils.NewForbidden("Admin access required")
	}
	return nil
}

func (s *adminService) ListUsers(ctx context.Context, caller *entity.User) ([]dto.UserDTO, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx, specification.Limit{N: adminListCap})
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	return dto.UsersFromEntities(users), nil
}

func (s *adminService) ListMesses(ctx context.Context, caller *entity.User) ([]dto.MessDTO, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Unlike public search this view includes unverified messes, that is
	// the whole point of the admin console.
	messes, err := uow.MessRepository().FindAll(ctx, specification.Limit{N: adminListCap})
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	return dto.MessesFromEntities(messes), nil
}

func (s *adminService) ListComplaints(ctx context.Context, caller *entity.User) ([]dto.ComplaintDTO, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaints, err := uow.ComplaintRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: adminListCap},
	)
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	return dto.ComplaintsFromEntities(complaints), nil
}

func (s *adminService) VerifyMess(ctx context.Context, caller *entity.User, messId uuid.UUID) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	mess, err := uow.MessRepository().FindOne(ctx, specification.ByID{ID: messId})
	if err != nil {
		return serverutils.NewInternal(err.Error())
	}
	if mess == nil {
		return serverutils.NewNotFound("Mess not found")
	}

	if err := uow.MessRepository().MarkVerified(ctx, messId); err != nil {
		return serverutils.NewInternal(err.Error())
	}

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: mess.OwnerId})
	if err != nil {
		return serverutils.NewInternal(err.Error())
	}
	if owner != nil {
		s.notification.EnqueueEmail(ctx, owner.Email, "Mess Verified", fmt.Sprintf(
			"<h2>Congratulations!</h2>"+
				"<p>Your mess <strong>%s</strong> has been verified and is now visible to students.</p>",
			mess.Name,
		))
	}
	return nil
}

func (s *adminService) ResolveComplaint(ctx context.Context, caller *entity.User, complaintId uuid.UUID) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Resolving an unknown complaint is a silent no-op.
	if err := uow.ComplaintRepository().Resolve(ctx, complaintId, time.Now()); err != nil {
		return serverutils.NewInternal(err.Error())
	}
	return nil
}

func (s *adminService) SendWarning(ctx context.Context, caller *entity.User, ownerId uuid.UUID, req *dto.WarningRequest) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	owner, err := uow.UserRepository().FindOne(ctx,
		specification.ByID{ID: ownerId},
		specification.RoleIs{Role: string(entity.UserRoleOwner)},
	)
	if err != nil {
		return serverutils.NewInternal(err.Error())
	}
	if owner == nil {
		return serverutils.NewNotFound("Owner not found")
	}

	s.notification.EnqueueEmail(ctx, owner.Email, "Warning from Smart Mess System", fmt.Sprintf(
		"<h2>Warning</h2>"+
			"<p>Hi %s,</p>"+
			"<p>%s</p>"+
			"<p>Please address this promptly to keep your mess in good standing.</p>",
		owner.Name, req.Message,
	))
	return nil
}
