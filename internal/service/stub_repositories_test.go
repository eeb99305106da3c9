package service

import (
	"context"
	"time"

	"smartmess-be/internal/entity"
	"smartmess-be/internal/repository/contract"
	"smartmess-be/internal/repository/specification"
	"smartmess-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// stubUnitOfWork backs the service tests with in-memory repositories. Each
// repository records the specifications of its last FindAll so tests can
// assert on query shape.
type stubUnitOfWork struct {
	users         *stubUserRepository
	messes        *stubMessRepository
	subscriptions *stubSubscriptionRepository
	ratings       *stubRatingRepository
	complaints    *stubComplaintRepository
}

func newStubUnitOfWork() *stubUnitOfWork {
	return &stubUnitOfWork{
		users:         &stubUserRepository{},
		messes:        &stubMessRepository{},
		subscriptions: &stubSubscriptionRepository{},
		ratings:       &stubRatingRepository{},
		complaints:    &stubComplaintRepository{},
	}
}

func (u *stubUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *stubUnitOfWork) Commit() error                   { return nil }
func (u *stubUnitOfWork) Rollback() error                 { return nil }

func (u *stubUnitOfWork) UserRepository() contract.UserRepository { return u.users }
func (u *stubUnitOfWork) MessRepository() contract.MessRepository { return u.messes }
func (u *stubUnitOfWork) SubscriptionRepository() contract.SubscriptionRepository {
	return u.subscriptions
}
func (u *stubUnitOfWork) RatingRepository() contract.RatingRepository       { return u.ratings }
func (u *stubUnitOfWork) ComplaintRepository() contract.ComplaintRepository { return u.complaints }

type stubRepositoryFactory struct {
	uow *stubUnitOfWork
}

func (f *stubRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func hasLimit(specs []specification.Specification, n int) bool {
	for _, s := range specs {
		if l, ok := s.(specification.Limit); ok && l.N == n {
			return true
		}
	}
	return false
}

type stubUserRepository struct {
	users []*entity.User
}

func (r *stubUserRepository) Create(_ context.Context, user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *stubUserRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		if userMatches(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return r.users, nil
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if u.Id != sp.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != sp.Email {
				return false
			}
		case specification.RoleIs:
			if string(u.Role) != sp.Role {
				return false
			}
		}
	}
	return true
}

type stubMessRepository struct {
	messes       []*entity.Mess
	findAllSpecs []specification.Specification
	aggRating    float64
	aggCount     int
}

func (r *stubMessRepository) Create(_ context.Context, mess *entity.Mess) error {
	r.messes = append(r.messes, mess)
	return nil
}

func (r *stubMessRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Mess, error) {
	for _, m := range r.messes {
		if messMatches(m, specs) {
			return m, nil
		}
	}
	return nil, nil
}

func (r *stubMessRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Mess, error) {
	r.findAllSpecs = specs
	return r.messes, nil
}

func (r *stubMessRepository) ReplaceMenu(_ context.Context, messId uuid.UUID, menu []entity.MenuDay) error {
	for _, m := range r.messes {
		if m.Id == messId {
			m.Menu = menu
		}
	}
	return nil
}

func (r *stubMessRepository) UpdateRatingAggregate(_ context.Context, messId uuid.UUID, rating float64, totalRatings int) error {
	r.aggRating = rating
	r.aggCount = totalRatings
	return nil
}

func (r *stubMessRepository) MarkVerified(_ context.Context, messId uuid.UUID) error {
	for _, m := range r.messes {
		if m.Id == messId {
			m.IsVerified = true
		}
	}
	return nil
}

func messMatches(m *entity.Mess, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if m.Id != sp.ID {
				return false
			}
		case specification.OwnedBy:
			if m.OwnerId != sp.OwnerID {
				return false
			}
		case specification.VerifiedOnly:
			if !m.IsVerified {
				return false
			}
		}
	}
	return true
}

type stubSubscriptionRepository struct {
	subs         []*entity.Subscription
	skips        []*entity.MealSkip
	findAllSpecs []specification.Specification
}

func (r *stubSubscriptionRepository) Create(_ context.Context, sub *entity.Subscription) error {
	r.subs = append(r.subs, sub)
	return nil
}

func (r *stubSubscriptionRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	for _, sub := range r.subs {
		if subMatches(sub, specs) {
			return sub, nil
		}
	}
	return nil, nil
}

func (r *stubSubscriptionRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	r.findAllSpecs = specs
	return r.subs, nil
}

func (r *stubSubscriptionRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entity.SubscriptionStatus) error {
	for _, sub := range r.subs {
		if sub.Id == id {
			sub.Status = status
		}
	}
	return nil
}

func (r *stubSubscriptionRepository) CreateMealSkip(_ context.Context, skip *entity.MealSkip) error {
	r.skips = append(r.skips, skip)
	return nil
}

func subMatches(sub *entity.Subscription, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if sub.Id != sp.ID {
				return false
			}
		case specification.StudentOwnedBy:
			if sub.StudentId != sp.StudentID {
				return false
			}
		case specification.MessIs:
			if sub.MessId != sp.MessID {
				return false
			}
		}
	}
	return true
}

type stubRatingRepository struct {
	ratings      []*entity.Rating
	findAllSpecs []specification.Specification
}

func (r *stubRatingRepository) Create(_ context.Context, rating *entity.Rating) error {
	r.ratings = append(r.ratings, rating)
	return nil
}

func (r *stubRatingRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Rating, error) {
	r.findAllSpecs = specs
	return r.ratings, nil
}

type stubComplaintRepository struct {
	complaints   []*entity.Complaint
	findAllSpecs []specification.Specification
}

func (r *stubComplaintRepository) Create(_ context.Context, complaint *entity.Complaint) error {
	r.complaints = append(r.complaints, complaint)
	return nil
}

func (r *stubComplaintRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Complaint, error) {
	for _, c := range r.complaints {
		if complaintMatches(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubComplaintRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Complaint, error) {
	r.findAllSpecs = specs
	return r.complaints, nil
}

func (r *stubComplaintRepository) Resolve(_ context.Context, id uuid.UUID, resolvedAt time.Time) error {
	for _, c := range r.complaints {
		if c.Id == id {
			c.Status = entity.ComplaintStatusResolved
			at := resolvedAt
			c.ResolvedAt = &at
		}
	}
	return nil
}

func complaintMatches(c *entity.Complaint, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if c.Id != sp.ID {
				return false
			}
		case specification.StudentOwnedBy:
			if c.StudentId != sp.StudentID {
				return false
			}
		case specification.MessIs:
			if c.MessId != sp.MessID {
				return false
			}
		}
	}
	return true
}
