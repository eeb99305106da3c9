package mapper

import (
	"smartmess-be/internal/entity"
	"smartmess-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) RatingToEntity(r *model.Rating) *entity.Rating {
	if r == nil {
		return nil
	}
	return &entity.Rating{
		Id:          r.Id,
		MessId:      r.MessId,
		StudentId:   r.StudentId,
		StudentName: r.StudentName,
		Rating:      r.Rating,
		Review:      r.Review,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *FeedbackMapper) RatingToModel(r *entity.Rating) *model.Rating {
	if r == nil {
		return nil
	}
	return &model.Rating{
		Id:          r.Id,
		MessId:      r.MessId,
		StudentId:   r.StudentId,
		StudentName: r.StudentName,
		Rating:      r.Rating,
		Review:      r.Review,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *FeedbackMapper) RatingsToEntities(ratings []*model.Rating) []*entity.Rating {
	entities := make([]*entity.Rating, len(ratings))
	for i, r := range ratings {
		entities[i] = m.RatingToEntity(r)
	}
	return entities
}

func (m *FeedbackMapper) ComplaintToEntity(c *model.Complaint) *entity.Complaint {
	if c == nil {
		return nil
	}
	return &entity.Complaint{
		Id:          c.Id,
		MessId:      c.MessId,
		StudentId:   c.StudentId,
		StudentName: c.StudentName,
		Subject:     c.Subject,
		Description: c.Description,
		Status:      entity.ComplaintStatus(c.Status),
		CreatedAt:   c.CreatedAt,
		ResolvedAt:  c.ResolvedAt,
	}
}

func (m *FeedbackMapper) ComplaintToModel(c *entity.Complaint) *model.Complaint {
	if c == nil {
		return nil
	}
	return &model.Complaint{
		Id:          c.Id,
		MessId:      c.MessId,
		StudentId:   c.StudentId,
		StudentName: c.StudentName,
		Subject:     c.Subject,
		Description: c.Description,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		ResolvedAt:  c.ResolvedAt,
	}
}

func (m *FeedbackMapper) ComplaintsToEntities(complaints []*model.Complaint) []*entity.Complaint {
	entities := make([]*entity.Complaint, len(complaints))
	for i, c := range complaints {
		entities[i] = m.ComplaintToEntity(c)
	}
	return entities
}
