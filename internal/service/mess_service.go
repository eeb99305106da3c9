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

// searchResultCap bounds public listings; admin listings use adminListCap.
const searchResultCap = 100

type IMessService interface {
	Create(ctx context.Context, caller *entity.User, req *dto.CreateMessRequest) (*dto.MessDTO, error)
	Search(ctx context.Context, city, state string) ([]dto.MessDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.MessDTO, error)
	MyMesses(ctx context.Context, caller *entity.User) ([]dto.MessDTO, error)
	UpdateMenu(ctx context.Context, caller *entity.User, messId uuid.UUID, menu []entity.MenuDay) error
}

type messService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMessService(uowFactory unitofwork.RepositoryFactory) IMessService {
	return &messService{
		uowFactory: uowFactory,
	}
}

func (s *messService) Create(ctx context.Context, caller *entity.User, req *dto.CreateMessRequest) (*dto.MessDTO, error) {
	if caller.Role != entity.UserRoleOwner {
		return nil, serverutils.NewForbidden("Only mess owners can create messes")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	mess := &entity.Mess{
		Id:             uuid.New(),
		OwnerId:        caller.Id,
		Name:           req.Name,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		MessType:       entity.MessType(req.MessType),
		Description:    req.Description,
		ContactNumber:  req.ContactNumber,
		PricingMonthly: req.PricingMonthly,
		PricingWeekly:  req.PricingWeekly,
		Menu:           []entity.MenuDay{},
		IsVerified:     false,
		CreatedAt:      time.Now(),
	}

	if err := uow.MessRepository().Create(ctx, mess); err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	res := dto.MessFromEntity(mess)
	return &res, nil
}

func (s *messService) Search(ctx context.Context, city, state string) ([]dto.MessDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.VerifiedOnly{}}
	if city != "" {
		specs = append(specs, specification.CityContains{City: city})
	}
	if state != "" {
		specs = append(specs, specification.StateContains{State: state})
	}
	specs = append(specs, specification.Limit{N: searchResultCap})

	messes, err := uow.MessRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	return dto.MessesFromEntities(messes), nil
}

func (s *messService) Get(ctx context.Context, id uuid.UUID) (*dto.MessDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	mess, err := uow.MessRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}
	if mess == nil {
		return nil, serverutils.NewNotFound("Mess not found")
	}

	res := dto.MessFromEntity(mess)
	return &res, nil
}

func (s *messService) MyMesses(ctx context.Context, caller *entity.User) ([]dto.MessDTO, error) {
	if caller.Role != entity.UserRoleOwner {
		return nil, serverutils.NewForbidden("Not authorized")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	messes, err := uow.MessRepository().FindAll(ctx,
		specification.OwnedBy{OwnerID: caller.Id},
		specification.Limit{N: searchResultCap},
	)
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	return dto.MessesFromEntities(messes), nil
}

func (s *messService) UpdateMenu(ctx context.Context, caller *entity.User, messId uuid.UUID, menu []entity.MenuDay) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	mess, err := uow.MessRepository().FindOne(ctx, specification.ByID{ID: messId})
	if err != nil {
		return serverutils.NewInternal(err.Error())
	}
	// A missing mess and a foreign mess answer identically.
	if mess == nil || mess.OwnerId != caller.Id {
		return serverutils.NewForbidden("Not authorized")
	}

	if err := uow.MessRepository().ReplaceMenu(ctx, messId, menu); err != nil {
		return serverutils.NewInternal(err.Error())
	}
	return nil
}
