package service

import (
	"context"
	"testing"
	"time"

	"smartmess-be/internal/dto"
	"smartmess-be/internal/entity"
	"smartmess-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestComputeEndDate(t *testing.T) {
	tests := []struct {
		name  string
		start string
		plan  entity.PlanType
		want  string
	}{
		{
			name:  "monthly adds 30 days",
			start: "2024-01-01",
			plan:  entity.PlanTypeMonthly,
			want:  "2024-01-31",
		},
		{
			name:  "weekly adds 7 days",
			start: "2024-01-01",
			plan:  entity.PlanTypeWeekly,
			want:  "2024-01-08",
		},
		{
			name:  "monthly crosses month boundary",
			start: "2024-02-15",
			plan:  entity.PlanTypeMonthly,
			want:  "2024-03-16",
		},
		{
			name:  "weekly crosses year boundary",
			start: "2024-12-28",
			plan:  entity.PlanTypeWeekly,
			want:  "2025-01-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := time.Parse("2006-01-02", tt.start)
			if err != nil {
				t.Fatalf("bad start date: %v", err)
			}
			got := computeEndDate(start, tt.plan)
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("computeEndDate(%s, %s) = %s, want %s", tt.start, tt.plan, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestCheckSkipNotice(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		skipDate time.Time
		wantErr  bool
	}{
		{
			name:     "well ahead passes",
			skipDate: now.Add(24 * time.Hour),
			wantErr:  false,
		},
		{
			name:     "exactly two hours passes",
			skipDate: now.Add(2 * time.Hour),
			wantErr:  false,
		},
		{
			name:     "just under two hours fails",
			skipDate: now.Add(2*time.Hour - time.Second),
			wantErr:  true,
		},
		{
			name:     "past date fails",
			skipDate: now.Add(-time.Hour),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSkipNotice(tt.skipDate, now)
			if tt.wantErr {
				var appErr *serverutils.AppError
				assert.ErrorAs(t, err, &appErr)
				assert.Equal(t, 400, appErr.Code)
				assert.Equal(t, "Meal skip requires at least 2 hours notice", appErr.Message)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToPaise(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{amount: 100, want: 10000},
		{amount: 99.99, want: 9999},
		{amount: 99.995, want: 10000},
		{amount: 0.01, want: 1},
		{amount: 1499.50, want: 149950},
	}

	for _, tt := range tests {
		if got := toPaise(tt.amount); got != tt.want {
			t.Errorf("toPaise(%v) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}

func TestSkipMealChecksOwnershipBeforeNotice(t *testing.T) {
	owner := &entity.User{Id: uuid.New(), Role: entity.UserRoleStudent}
	stranger := &entity.User{Id: uuid.New(), Role: entity.UserRoleStudent}
	sub := &entity.Subscription{Id: uuid.New(), StudentId: owner.Id}

	uow := newStubUnitOfWork()
	uow.subscriptions.subs = append(uow.subscriptions.subs, sub)
	svc := NewSubscriptionService(&stubRepositoryFactory{uow: uow}, nil, nil)

	// Short notice either way; only the owner sees the notice error.
	req := &dto.MealSkipRequest{
		SubscriptionId: sub.Id.String(),
		SkipDate:       time.Now().Add(30 * time.Minute).UTC().Format(time.RFC3339),
		MealType:       "lunch",
	}

	var appErr *serverutils.AppError
	err := svc.SkipMeal(context.Background(), stranger, req)
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	assert.Equal(t, "Not authorized", appErr.Message)

	err = svc.SkipMeal(context.Background(), owner, req)
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Meal skip requires at least 2 hours notice", appErr.Message)
	assert.Empty(t, uow.subscriptions.skips)
}

func TestMySubscriptionsAppliesListingCap(t *testing.T) {
	student := &entity.User{Id: uuid.New(), Role: entity.UserRoleStudent}
	uow := newStubUnitOfWork()
	svc := NewSubscriptionService(&stubRepositoryFactory{uow: uow}, nil, nil)

	_, err := svc.MySubscriptions(context.Background(), student)
	assert.NoError(t, err)
	assert.True(t, hasLimit(uow.subscriptions.findAllSpecs, searchResultCap))
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{
			name:  "RFC3339",
			value: "2024-06-01T10:30:00Z",
			want:  "2024-06-01T10:30:00Z",
		},
		{
			name:  "datetime without zone",
			value: "2024-06-01T10:30:00",
			want:  "2024-06-01T10:30:00Z",
		},
		{
			name:  "bare date",
			value: "2024-06-01",
			want:  "2024-06-01T00:00:00Z",
		},
		{
			name:    "garbage",
			value:   "next tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDateTime(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.UTC().Format(time.RFC3339))
		})
	}
}
