package entity

import (
	"time"

	"github.com/google/uuid"
)

type ComplaintStatus string

const (
	ComplaintStatusPending   ComplaintStatus = "pending"
	ComplaintStatusResolved  ComplaintStatus = "resolved"
	ComplaintStatusDismissed ComplaintStatus = "dismissed"
)

type Rating struct {
	Id          uuid.UUID
	MessId      uuid.UUID
	StudentId   uuid.UUID
	StudentName string
	Rating      float64
	Review      *string
	CreatedAt   time.Time
}

type Complaint struct {
	Id          uuid.UUID
	MessId      uuid.UUID
	StudentId   uuid.UUID
	StudentName string
	Subject     string
	Description string
	Status      ComplaintStatus
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}
