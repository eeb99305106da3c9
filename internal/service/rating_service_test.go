package service

import (
	"context"
	"testing"

	"smartmess-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMeanRating(t *testing.T) {
	build := func(values ...float64) []*entity.Rating {
		out := make([]*entity.Rating, len(values))
		for i, v := range values {
			out[i] = &entity.Rating{Rating: v}
		}
		return out
	}

	tests := []struct {
		name    string
		ratings []*entity.Rating
		want    float64
	}{
		{
			name:    "empty set is zero",
			ratings: nil,
			want:    0,
		},
		{
			name:    "single rating",
			ratings: build(4),
			want:    4,
		},
		{
			name:    "whole mean",
			ratings: build(5, 3, 4),
			want:    4,
		},
		{
			name:    "fractional mean",
			ratings: build(5, 4),
			want:    4.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := meanRating(tt.ratings); got != tt.want {
				t.Errorf("meanRating() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessRatingsAppliesListingCap(t *testing.T) {
	uow := newStubUnitOfWork()
	svc := NewRatingService(&stubRepositoryFactory{uow: uow})

	_, err := svc.MessRatings(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.True(t, hasLimit(uow.ratings.findAllSpecs, searchResultCap))
}
