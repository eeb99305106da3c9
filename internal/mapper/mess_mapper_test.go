package mapper

import (
	"testing"
	"time"

	"smartmess-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMenuJSONRoundTrip(t *testing.T) {
	menu := []entity.MenuDay{
		{Day: "Monday", Breakfast: "Poha", Lunch: "Dal Rice", Dinner: "Roti Sabzi"},
		{Day: "Tuesday", Breakfast: "Idli", Lunch: "Rajma Chawal", Dinner: "Paneer"},
	}

	raw := MenuToJSON(menu)
	got := MenuFromJSON(raw)

	assert.Equal(t, menu, got)
}

func TestMenuToJSONNilMenu(t *testing.T) {
	raw := MenuToJSON(nil)
	assert.Equal(t, "[]", string(raw))
	assert.Empty(t, MenuFromJSON(raw))
}

func TestMenuFromJSONEmptyColumn(t *testing.T) {
	got := MenuFromJSON(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMessMapperRoundTrip(t *testing.T) {
	desc := "Home style meals"
	mess := &entity.Mess{
		Id:             uuid.New(),
		OwnerId:        uuid.New(),
		Name:           "Annapurna Mess",
		Address:        "12 College Road",
		City:           "Pune",
		State:          "Maharashtra",
		MessType:       entity.MessTypeBoth,
		Description:    &desc,
		ContactNumber:  "9876543210",
		PricingMonthly: 3200,
		PricingWeekly:  900,
		Menu: []entity.MenuDay{
			{Day: "Monday", Breakfast: "Upma", Lunch: "Thali", Dinner: "Khichdi"},
		},
		Rating:       4.2,
		TotalRatings: 17,
		IsVerified:   true,
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	m := NewMessMapper()
	got := m.ToEntity(m.ToModel(mess))

	assert.Equal(t, mess, got)
}

func TestMessMapperNil(t *testing.T) {
	m := NewMessMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}
