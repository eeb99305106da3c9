package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"smartmess-be/internal/dto"
	"smartmess-be/internal/entity"
	"smartmess-be/internal/pkg/serverutils"
	"smartmess-be/internal/repository/specification"
	"smartmess-be/internal/repository/unitofwork"
	"smartmess-be/pkg/payment"

	"github.com/google/uuid"
)

// mealSkipNotice is the minimum lead time before a skipped meal's date.
const mealSkipNotice = 2 * time.Hour

type ISubscriptionService interface {
	CreateOrder(ctx context.Context, caller *entity.User, req *dto.CreateOrderRequest) (map[string]interface{}, error)
	VerifyPaymentAndSubscribe(ctx context.Context, caller *entity.User, req *dto.VerifyPaymentRequest) (*dto.SubscriptionDTO, error)
	MySubscriptions(ctx context.Context, caller *entity.User) ([]dto.SubscriptionDTO, error)
	Pause(ctx context.Context, caller *entity.User, id uuid.UUID) error
	Cancel(ctx context.Context, caller *entity.User, id uuid.UUID) error
	SkipMeal(ctx context.Context, caller *entity.User, req *dto.MealSkipRequest) error
}

type subscriptionService struct {
	uowFactory   unitofwork.RepositoryFactory
	gateway      payment.IGateway
	notification INotificationService
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory, gateway payment.IGateway, notification INotificationService) ISubscriptionService {
	return &subscriptionService{
		uowFactory:   uowFactory,
		gateway:      gateway,
		notification: notification,
	}
}

func (s *subscriptionService) CreateOrder(ctx context.Context, caller *entity.User, req *dto.CreateOrderRequest) (map[string]interface{}, error) {
	if caller.Role != entity.UserRoleStudent {
		return nil, serverutils.NewForbidden("Only students can subscribe")
	}

	order, err := s.gateway.CreateOrder(toPaise(req.Amount))
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}
	return order, nil
}

func (s *subscriptionService) VerifyPaymentAndSubscribe(ctx context.Context, caller *entity.User, req *dto.VerifyPaymentRequest) (*dto.SubscriptionDTO, error) {
	if caller.Role != entity.UserRoleStudent {
		return nil, serverutils.NewForbidden("Only students can subscribe")
	}

	if !s.gateway.VerifyPaymentSignature(req.OrderId, req.PaymentId, req.Signature) {
		return nil, serverutils.NewBadRequest("Payment verification failed")
	}

	messId, err := uuid.Parse(req.Subscription.MessId)
	if err != nil {
		return nil, serverutils.NewBadRequest("Invalid mess id")
	}

	startDate, err := parseDateTime(req.Subscription.StartDate)
	if err != nil {
		return nil, serverutils.NewBadRequest("Invalid start date")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	mess, err := uow.MessRepository().FindOne(ctx, specification.ByID{ID: messId})
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}
	if mess == nil {
		return nil, serverutils.NewNotFound("Mess not found")
	}

	plan := entity.PlanType(req.Subscription.PlanType)
	sub := &entity.Subscription{
		Id:        uuid.New(),
		StudentId: caller.Id,
		MessId:    messId,
		PlanType:  plan,
		StartDate: startDate,
		EndDate:   computeEndDate(startDate, plan),
		Status:    entity.SubscriptionStatusActive,
		PaymentId: req.PaymentId,
		CreatedAt: time.Now(),
	}

	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	s.notification.EnqueueEmail(ctx, caller.Email, "Subscription Confirmed", fmt.Sprintf(
		"<h2>Subscription Confirmed!</h2>"+
			"<p>Hi %s,</p>"+
			"<p>Your %s subscription to <strong>%s</strong> is now active.</p>"+
			"<p>Start date: %s</p>"+
			"<p>Enjoy your meals!</p>",
		caller.Name, plan, mess.Name, startDate.Format("2006-01-02"),
	))

	res := dto.SubscriptionFromEntity(sub)
	messDTO := dto.MessFromEntity(mess)
	res.MessDetails = &messDTO
	return &res, nil
}

func (s *subscriptionService) MySubscriptions(ctx context.Context, caller *entity.User) ([]dto.SubscriptionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.StudentOwnedBy{StudentID: caller.Id},
		specification.Limit{N: searchResultCap},
	)
	if err != nil {
		return nil, serverutils.NewInternal(err.Error())
	}

	out := make([]dto.SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		item := dto.SubscriptionFromEntity(sub)
		mess, err := uow.MessRepository().FindOne(ctx, specification.ByID{ID: sub.MessId})
		if err != nil {
			return nil, serverutils.NewInternal(err.Error())
		}
		if mess != nil {
			messDTO := dto.MessFromEntity(mess)
			item.MessDetails = &messDTO
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *subscriptionService) Pause(ctx context.Context, caller *entity.User, id uuid.UUID) error {
	return s.updateStatus(ctx, caller, id, entity.SubscriptionStatusPaused)
}

func (s *subscriptionService) Cancel(ctx context.Context, caller *entity.User, id uuid.UUID) error {
	return s.updateStatus(ctx, caller, id, entity.SubscriptionStatusCancelled)
}

func (s *subscriptionService) updateStatus(ctx context.Context, caller *entity.User, id uuid.UUID, status entity.SubscriptionStatus) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return serverutils.NewInternal(err.Error())
	}
	if sub == nil || sub.StudentId != caller.Id {
		return serverutils.NewForbidden("Not authorized")
	}

	if err := uow.SubscriptionRepository().UpdateStatus(ctx, id, status); err != nil {
		return serverutils.NewInternal(err.Error())
	}
	return nil
}

func (s *subscriptionService) SkipMeal(ctx context.Context, caller *entity.User, req *dto.MealSkipRequest) error {
	subId, err := uuid.Parse(req.SubscriptionId)
	if err != nil {
		return serverutils.NewBadRequest("Invalid subscription id")
	}

	skipDate, err := parseDateTime(req.SkipDate)
	if err != nil {
		return serverutils.NewBadRequest("Invalid skip date")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Ownership first: a foreign subscription is 403 even when the notice
	// window would also fail.
	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: subId})
	if err != nil {
		return serverutils.NewInternal(err.Error())
	}
	if sub == nil || sub.StudentId != caller.Id {
		return serverutils.NewForbidden("Not authorized")
	}

	if err := checkSkipNotice(skipDate, time.Now()); err != nil {
		return err
	}

	skip := &entity.MealSkip{
		Id:             uuid.New(),
		SubscriptionId: subId,
		StudentId:      caller.Id,
		SkipDate:       skipDate,
		MealType:       entity.MealType(req.MealType),
		CreatedAt:      time.Now(),
	}

	if err := uow.SubscriptionRepository().CreateMealSkip(ctx, skip); err != nil {
		return serverutils.NewInternal(err.Error())
	}
	return nil
}

// checkSkipNotice rejects skips announced less than the required notice
// ahead of the meal date. Exactly the notice window still passes.
func checkSkipNotice(skipDate, now time.Time) error {
	if skipDate.Sub(now) < mealSkipNotice {
		return serverutils.NewBadRequest("Meal skip requires at least 2 hours notice")
	}
	return nil
}

// computeEndDate fixes the subscription end at creation time; it is never
// recomputed by later pauses.
func computeEndDate(start time.Time, plan entity.PlanType) time.Time {
	return start.AddDate(0, 0, plan.Days())
}

// toPaise converts a rupee amount to integral paise, rounding half away
// from zero so 99.995 does not truncate to 9999.
func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// parseDateTime accepts RFC3339 timestamps as well as the bare date and
// datetime shapes clients commonly send.
func parseDateTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
