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
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  string
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  jwtSecret,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}
	if existing != nil {
		return nil, serverutils.NewConflict("Email already registered")
	}

	role := entity.UserRole(req.Role)
	if !role.Valid() {
		return nil, serverutils.NewBadRequest("Invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	user := &entity.User{
		Id:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        req.Phone,
		// Students are trusted at signup; owner/admin verification has no
		// exposed flow and stays false.
		IsVerified: role == entity.UserRoleStudent,
		CreatedAt:  time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	token, err := serverutils.CreateToken(user.Id, user.Role, s.jwtSecret)
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.UserFromEntity(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}
	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil {
		return nil, serverutils.NewUnauthorized("Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, serverutils.NewUnauthorized("Invalid credentials")
	}

	token, err := serverutils.CreateToken(user.Id, user.Role, s.jwtSecret)
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.UserFromEntity(user),
	}, nil
}
