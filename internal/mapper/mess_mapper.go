package mapper

import (
	"encoding/json"

	"smartmess-be/internal/entity"
	"smartmess-be/internal/model"

	"gorm.io/datatypes"
)

type MessMapper struct{}

func NewMessMapper() *MessMapper {
	return &MessMapper{}
}

// MenuToJSON serializes a weekly menu for the jsonb column. An empty menu is
// stored as an empty array, not NULL, so reads always decode cleanly.
func MenuToJSON(menu []entity.MenuDay) datatypes.JSON {
	if menu == nil {
		menu = []entity.MenuDay{}
	}
	raw, err := json.Marshal(menu)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

func MenuFromJSON(raw datatypes.JSON) []entity.MenuDay {
	menu := []entity.MenuDay{}
	if len(raw) == 0 {
		return menu
	}
	if err := json.Unmarshal(raw, &menu); err != nil {
		return []entity.MenuDay{}
	}
	return menu
}

func (m *MessMapper) ToEntity(ms *model.Mess) *entity.Mess {
	if ms == nil {
		return nil
	}
	return &entity.Mess{
		Id:             ms.Id,
		OwnerId:        ms.OwnerId,
		Name:           ms.Name,
		Address:        ms.Address,
		City:           ms.City,
		State:          ms.State,
		MessType:       entity.MessType(ms.MessType),
		Description:    ms.Description,
		ContactNumber:  ms.ContactNumber,
		PricingMonthly: ms.PricingMonthly,
		PricingWeekly:  ms.PricingWeekly,
		Menu:           MenuFromJSON(ms.Menu),
		Rating:         ms.Rating,
		TotalRatings:   ms.TotalRatings,
		IsVerified:     ms.IsVerified,
		CreatedAt:      ms.CreatedAt,
	}
}

func (m *MessMapper) ToModel(ms *entity.Mess) *model.Mess {
	if ms == nil {
		return nil
	}
	return &model.Mess{
		Id:             ms.Id,
		OwnerId:        ms.OwnerId,
		Name:           ms.Name,
		Address:        ms.Address,
		City:           ms.City,
		State:          ms.State,
		MessType:       string(ms.MessType),
		Description:    ms.Description,
		ContactNumber:  ms.ContactNumber,
		PricingMonthly: ms.PricingMonthly,
		PricingWeekly:  ms.PricingWeekly,
		Menu:           MenuToJSON(ms.Menu),
		Rating:         ms.Rating,
		TotalRatings:   ms.TotalRatings,
		IsVerified:     ms.IsVerified,
		CreatedAt:      ms.CreatedAt,
	}
}

func (m *MessMapper) ToEntities(messes []*model.Mess) []*entity.Mess {
	entities := make([]*entity.Mess, len(messes))
	for i, ms := range messes {
		entities[i] = m.ToEntity(ms)
	}
	return entities
}
