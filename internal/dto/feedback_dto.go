package dto

import (
	"time"

	"smartmess-be/internal/entity"

	"github.com/google/uuid"
)

type RatingCreateRequest struct {
	MessId string  `json:"mess_id" validate:"required,uuid"`
	Rating float64 `json:"rating" validate:"required,min=1,max=5"`
	Review *string `json:"review"`
}

type ComplaintCreateRequest struct {
	MessId      string `json:"mess_id" validate:"required,uuid"`
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type RatingDTO struct {
	Id          uuid.UUID `json:"id"`
	MessId      uuid.UUID `json:"mess_id"`
	StudentId   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Rating      float64   `json:"rating"`
	Review      *string   `json:"review,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ComplaintDTO struct {
	Id          uuid.UUID  `json:"id"`
	MessId      uuid.UUID  `json:"mess_id"`
	StudentId   uuid.UUID  `json:"student_id"`
	StudentName string     `json:"student_name"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

func RatingFromEntity(r *entity.Rating) RatingDTO {
	return RatingDTO{
		Id:          r.Id,
		MessId:      r.MessId,
		StudentId:   r.StudentId,
		StudentName: r.StudentName,
		Rating:      r.Rating,
		Review:      r.Review,
		CreatedAt:   r.CreatedAt,
	}
}

func RatingsFromEntities(ratings []*entity.Rating) []RatingDTO {
	out := make([]RatingDTO, len(ratings))
	for i, r := range ratings {
		out[i] = RatingFromEntity(r)
	}
	return out
}

func ComplaintFromEntity(c *entity.Complaint) ComplaintDTO {
	return ComplaintDTO{
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

func ComplaintsFromEntities(complaints []*entity.Complaint) []ComplaintDTO {
	out := make([]ComplaintDTO, len(complaints))
	for i, c := range complaints {
		out[i] = ComplaintFromEntity(c)
	}
	return out
}
