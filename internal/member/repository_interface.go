package member

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, firstName, lastName, email string, dateOfBirth *time.Time, gender, phone *string) (*Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	Search(ctx context.Context, name string) ([]Member, error)
	UpdateProfile(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error)
	Delete(ctx context.Context, id int) error

	ListGoals(ctx context.Context, memberID int, activeOnly bool) ([]FitnessGoal, error)
	AddGoal(ctx context.Context, memberID int, goalType string, targetValue float64) (*FitnessGoal, error)
	DeleteGoal(ctx context.Context, memberID, goalID int) error

	ListMetrics(ctx context.Context, memberID int) ([]HealthMetric, error)
	AddMetric(ctx context.Context, memberID int, weight *float64, heartRate *int, bodyFat *float64) (*HealthMetric, error)
}
