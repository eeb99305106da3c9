package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerifiedOnly keeps only admin-verified messes. Public search must never
// surface an unverified mess, even on an exact city/state match.
type VerifiedOnly struct{}

func (s VerifiedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_verified = ?", true)
}

// OwnedBy filters messes by their owning user
type OwnedBy struct {
	OwnerID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}

// CityContains is a case-insensitive substring match on city
type CityContains struct {
	City string
}

func (s CityContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("city ILIKE ?", "%"+s.City+"%")
}

// StateContains is a case-insensitive substring match on state
type StateContains struct {
	State string
}

func (s StateContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("state ILIKE ?", "%"+s.State+"%")
}
