package dto

import (
	"time"

	"smartmess-be/internal/entity"

	"github.com/google/uuid"
)

type CreateMessRequest struct {
	Name           string  `json:"name" validate:"required"`
	Address        string  `json:"address" validate:"required"`
	City           string  `json:"city" validate:"required"`
	State          string  `json:"state" validate:"required"`
	MessType       string  `json:"mess_type" validate:"required,oneof=dine-in delivery both"`
	Description    *string `json:"description"`
	ContactNumber  string  `json:"contact_number" validate:"required"`
	PricingMonthly float64 `json:"pricing_monthly" validate:"required,gt=0"`
	PricingWeekly  float64 `json:"pricing_weekly" validate:"required,gt=0"`
}

type MenuUpdateRequest struct {
	Menu []entity.MenuDay `json:"menu" validate:"required"`
}

type MessDTO struct {
	Id             uuid.UUID        `json:"id"`
	OwnerId        uuid.UUID        `json:"owner_id"`
	Name           string           `json:"name"`
	Address        string           `json:"address"`
	City           string           `json:"city"`
	State          string           `json:"state"`
	MessType       string           `json:"mess_type"`
	Description    *string          `json:"description,omitempty"`
	ContactNumber  string           `json:"contact_number"`
	PricingMonthly float64          `json:"pricing_monthly"`
	PricingWeekly  float64          `json:"pricing_weekly"`
	Menu           []entity.MenuDay `json:"menu"`
	Rating         float64          `json:"rating"`
	TotalRatings   int              `json:"total_ratings"`
	IsVerified     bool             `json:"is_verified"`
	CreatedAt      time.Time        `json:"created_at"`
}

func MessFromEntity(m *entity.Mess) MessDTO {
	return MessDTO{
		Id:             m.Id,
		OwnerId:        m.OwnerId,
		Name:           m.Name,
		Address:        m.Address,
		City:           m.City,
		State:          m.State,
		MessType:       string(m.MessType),
		Description:    m.Description,
		ContactNumber:  m.ContactNumber,
		PricingMonthly: m.PricingMonthly,
		PricingWeekly:  m.PricingWeekly,
		Menu:           m.Menu,
		Rating:         m.Rating,
		TotalRatings:   m.TotalRatings,
		IsVerified:     m.IsVerified,
		CreatedAt:      m.CreatedAt,
	}
}

func MessesFromEntities(messes []*entity.Mess) []MessDTO {
	out := make([]MessDTO, len(messes))
	for i, m := range messes {
		out[i] = MessFromEntity(m)
	}
	return out
}
