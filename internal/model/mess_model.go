package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Mess struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Address        string    `gorm:"type:text;not null"`
	City           string    `gorm:"type:varchar(255);not null;index"`
	State          string    `gorm:"type:varchar(255);not null;index"`
	MessType       string    `gorm:"type:varchar(50);not null"`
	Description    *string   `gorm:"type:text"`
	ContactNumber  string    `gorm:"type:varchar(50);not null"`
	PricingMonthly float64   `gorm:"not null"`
	PricingWeekly  float64   `gorm:"not null"`
	// Weekly menu kept as a single JSON document, replaced wholesale on update.
	Menu         datatypes.JSON `gorm:"type:jsonb"`
	Rating       float64        `gorm:"default:0"`
	TotalRatings int            `gorm:"default:0"`
	IsVerified   bool           `gorm:"default:false;index"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (Mess) TableName() string {
	return "messes"
}
