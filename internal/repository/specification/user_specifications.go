package specification

import "gorm.io/gorm"

// ByEmail filters users by exact email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// RoleIs filters users by role
type RoleIs struct {
	Role string
}

func (s RoleIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}
