package model

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MessId      uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentId   uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentName string    `gorm:"type:varchar(255);not null"`
	Rating      float64   `gorm:"not null"`
	Review      *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Rating) TableName() string {
	return "ratings"
}

type Complaint struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MessId      uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentId   uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentName string    `gorm:"type:varchar(255);not null"`
	Subject     string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	ResolvedAt  *time.Time
}

func (Complaint) TableName() string {
	return "complaints"
}
