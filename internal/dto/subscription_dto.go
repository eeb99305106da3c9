package dto

import (
	"time"

	"smartmess-be/internal/entity"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type SubscriptionCreateRequest struct {
	MessId    string `json:"mess_id" validate:"required,uuid"`
	PlanType  string `json:"plan_type" validate:"required,oneof=monthly weekly"`
	StartDate string `json:"start_date" validate:"required"`
}

type VerifyPaymentRequest struct {
	PaymentId    string                    `json:"payment_id" validate:"required"`
	OrderId      string                    `json:"order_id" validate:"required"`
	Signature    string                    `json:"signature" validate:"required"`
	Subscription SubscriptionCreateRequest `json:"subscription_data" validate:"required"`
}

type MealSkipRequest struct {
	SubscriptionId string `json:"subscription_id" validate:"required,uuid"`
	SkipDate       string `json:"skip_date" validate:"required"`
	MealType       string `json:"meal_type" validate:"required,oneof=breakfast lunch dinner"`
}

type SubscriptionDTO struct {
	Id        uuid.UUID `json:"id"`
	StudentId uuid.UUID `json:"student_id"`
	MessId    uuid.UUID `json:"mess_id"`
	PlanType  string    `json:"plan_type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
	PaymentId string    `json:"payment_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	// MessDetails is a fresh snapshot looked up at read time, not the state
	// at subscription time.
	MessDetails *MessDTO `json:"mess_details,omitempty"`
}

func SubscriptionFromEntity(s *entity.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		Id:        s.Id,
		StudentId: s.StudentId,
		MessId:    s.MessId,
		PlanType:  string(s.PlanType),
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Status:    string(s.Status),
		PaymentId: s.PaymentId,
		CreatedAt: s.CreatedAt,
	}
}
