package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessType string

const (
	MessTypeDineIn   MessType = "dine-in"
	MessTypeDelivery MessType = "delivery"
	MessTypeBoth     MessType = "both"
)

// MenuDay is one entry of a mess's weekly menu. The menu is an ordered list
// and is always replaced wholesale, never merged.
type MenuDay struct {
	Day       string `json:"day"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

type Mess struct {
	Id             uuid.UUID
	OwnerId        uuid.UUID
	Name           string
	Address        string
	City           string
	State          string
	MessType       MessType
	Description    *string
	ContactNumber  string
	PricingMonthly float64
	PricingWeekly  float64
	Menu           []MenuDay
	// Rating and TotalRatings are a derived aggregate, recomputed from the
	// full rating set on every insert.
	Rating       float64
	TotalRatings int
	IsVerified   bool
	CreatedAt    time.Time
}
