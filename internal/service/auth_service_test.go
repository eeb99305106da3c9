package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"smartmess-be/internal/dto"
	"smartmess-be/internal/entity"
	"smartmess-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newAuthServiceForTest() (IAuthService, *stubUnitOfWork) {
	uow := newStubUnitOfWork()
	return NewAuthService(&stubRepositoryFactory{uow: uow}, "test-secret"), uow
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, uow := newAuthServiceForTest()
	uow.users.users = append(uow.users.users, &entity.User{
		Id:    uuid.New(),
		Email: "taken@example.com",
		Role:  entity.UserRoleStudent,
	})

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Second Comer",
		Email:    "taken@example.com",
		Password: "secret123",
		Role:     "student",
	})

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, "Email already registered", appErr.Message)
	assert.Len(t, uow.users.users, 1)
}

func TestSignupResponseOmitsPassword(t *testing.T) {
	svc, uow := newAuthServiceForTest()

	res, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     "student",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.True(t, res.User.IsVerified)

	raw, err := json.Marshal(res)
	assert.NoError(t, err)
	assert.NotContains(t, strings.ToLower(string(raw)), "password")

	// The stored credential is a hash, never the plaintext.
	assert.Len(t, uow.users.users, 1)
	assert.NotEqual(t, "secret123", uow.users.users[0].PasswordHash)
	assert.NotEmpty(t, uow.users.users[0].PasswordHash)
}

func TestSignupOwnerStartsUnverified(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	res, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: "secret123",
		Role:     "owner",
	})
	assert.NoError(t, err)
	assert.False(t, res.User.IsVerified)
}

func TestSignupInvalidRole(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Nobody",
		Email:    "nobody@example.com",
		Password: "secret123",
		Role:     "superuser",
	})

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     "student",
	})
	assert.NoError(t, err)

	tests := []struct {
		name  string
		email string
		pass  string
	}{
		{name: "unknown email", email: "ghost@example.com", pass: "secret123"},
		{name: "wrong password", email: "asha@example.com", pass: "wrong-pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: tt.email, Password: tt.pass})
			var appErr *serverutils.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, 401, appErr.Code)
			assert.Equal(t, "Invalid credentials", appErr.Message)
		})
	}
}

func TestLoginReturnsToken(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     "student",
	})
	assert.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "asha@example.com", res.User.Email)
}
