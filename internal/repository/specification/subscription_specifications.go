package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentOwnedBy filters rows by the subscribing student
type StudentOwnedBy struct {
	StudentID uuid.UUID
}

func (s StudentOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("student_id = ?", s.StudentID)
}

// MessIs filters rows referencing one mess
type MessIs struct {
	MessID uuid.UUID
}

func (s MessIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("mess_id = ?", s.MessID)
}

// MessIn filters rows referencing any of the given messes
type MessIn struct {
	MessIDs []uuid.UUID
}

func (s MessIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("mess_id IN ?", s.MessIDs)
}

// StatusIs filters by status column
type StatusIs struct {
	Status string
}

func (s StatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
