package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlanType string
type SubscriptionStatus string
type MealType string

const (
	PlanTypeMonthly PlanType = "monthly"
	PlanTypeWeekly  PlanType = "weekly"

	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"

	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// Days returns the plan duration. Anything that is not monthly is the
// weekly 7-day plan.
func (p PlanType) Days() int {
	if p == PlanTypeMonthly {
		return 30
	}
	return 7
}

type Subscription struct {
	Id        uuid.UUID
	StudentId uuid.UUID
	MessId    uuid.UUID
	PlanType  PlanType
	StartDate time.Time
	// EndDate is fixed at creation (start + plan duration) and never recomputed.
	EndDate   time.Time
	Status    SubscriptionStatus
	PaymentId string
	CreatedAt time.Time
}

type MealSkip struct {
	Id             uuid.UUID
	SubscriptionId uuid.UUID
	StudentId      uuid.UUID
	SkipDate       time.Time
	MealType       MealType
	CreatedAt      time.Time
}
