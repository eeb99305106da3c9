package service

import (
	"context"
	"testing"

	"smartmess-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMyComplaintsAppliesListingCap(t *testing.T) {
	student := &entity.User{Id: uuid.New(), Role: entity.UserRoleStudent}
	uow := newStubUnitOfWork()
	svc := NewComplaintService(&stubRepositoryFactory{uow: uow}, nil, "admin@smartmess.com")

	_, err := svc.MyComplaints(context.Background(), student)
	assert.NoError(t, err)
	assert.True(t, hasLimit(uow.complaints.findAllSpecs, searchResultCap))
}

func TestMessComplaintsAppliesListingCap(t *testing.T) {
	owner := &entity.User{Id: uuid.New(), Role: entity.UserRoleOwner}
	mess := &entity.Mess{Id: uuid.New(), OwnerId: owner.Id}

	uow := newStubUnitOfWork()
	uow.messes.messes = append(uow.messes.messes, mess)
	svc := NewComplaintService(&stubRepositoryFactory{uow: uow}, nil, "admin@smartmess.com")

	_, err := svc.MessComplaints(context.Background(), owner, mess.Id)
	assert.NoError(t, err)
	assert.True(t, hasLimit(uow.complaints.findAllSpecs, searchResultCap))
}

func TestMessComplaintsForeignMess(t *testing.T) {
	owner := &entity.User{Id: uuid.New(), Role: entity.UserRoleOwner}
	mess := &entity.Mess{Id: uuid.New(), OwnerId: uuid.New()}

	uow := newStubUnitOfWork()
	uow.messes.messes = append(uow.messes.messes, mess)
	svc := NewComplaintService(&stubRepositoryFactory{uow: uow}, nil, "admin@smartmess.com")

	_, err := svc.MessComplaints(context.Background(), owner, mess.Id)
	assert.EqualError(t, err, "Not authorized")
}
