package model

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StudentId uuid.UUID `gorm:"type:uuid;not null;index"`
	MessId    uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanType  string    `gorm:"type:varchar(50);not null"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	Status    string    `gorm:"type:varchar(50);not null;default:'active';index"`
	PaymentId string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

type MealSkip struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubscriptionId uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentId      uuid.UUID `gorm:"type:uuid;not null;index"`
	SkipDate       time.Time `gorm:"not null"`
	MealType       string    `gorm:"type:varchar(50);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (MealSkip) TableName() string {
	return "meal_skips"
}
