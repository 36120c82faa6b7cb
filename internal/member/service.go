package member

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/GurjasChalana/fitness-club/internal/apperr"
)

var (
	ErrMemberNotFound = apperr.NotFound("member not found")
	ErrGoalNotFound   = apperr.NotFound("goal not found")
)

type Service interface {
	Register(ctx context.Context, req CreateMemberRequest) (*Member, error)
	GetMember(ctx context.Context, id int) (*Member, error)
	Search(ctx context.Context, name string) ([]Member, error)
	UpdateProfile(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error)
	DeleteMember(ctx context.Context, id int) error

	ListGoals(ctx context.Context, memberID int) ([]FitnessGoal, error)
	AddGoal(ctx context.Context, memberID int, req AddGoalRequest) (*FitnessGoal, error)
	DeleteGoal(ctx context.Context, memberID, goalID int) error

	ListMetrics(ctx context.Context, memberID int) ([]HealthMetric, error)
	AddMetric(ctx context.Context, memberID int, req AddMetricRequest) (*HealthMetric, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, req CreateMemberRequest) (*Member, error) {
	var dob *time.Time
	if req.DateOfBirth != nil {
		parsed, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, apperr.Validation("date_of_birth must be YYYY-MM-DD")
		}
		dob = &parsed
	}

	return s.repo.Create(ctx, req.FirstName, req.LastName, req.Email, dob, req.Gender, req.Phone)
}

func (s *service) GetMember(ctx context.Context, id int) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *service) Search(ctx context.Context, name string) ([]Member, error) {
	if name == "" {
		return nil, apperr.Validation("name query required")
	}
	return s.repo.Search(ctx, name)
}

func (s *service) UpdateProfile(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error) {
	m, err := s.repo.UpdateProfile(ctx, id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *service) DeleteMember(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListGoals(ctx context.Context, memberID int) ([]FitnessGoal, error) {
	return s.repo.ListGoals(ctx, memberID, true)
}

func (s *service) AddGoal(ctx context.Context, memberID int, req AddGoalRequest) (*FitnessGoal, error) {
	if _, err := s.GetMember(ctx, memberID); err != nil {
		return nil, err
	}
	return s.repo.AddGoal(ctx, memberID, req.GoalType, req.TargetValue)
}

func (s *service) DeleteGoal(ctx context.Context, memberID, goalID int) error {
	return s.repo.DeleteGoal(ctx, memberID, goalID)
}

func (s *service) ListMetrics(ctx context.Context, memberID int) ([]HealthMetric, error) {
	return s.repo.ListMetrics(ctx, memberID)
}

func (s *service) AddMetric(ctx context.Context, memberID int, req AddMetricRequest) (*HealthMetric, error) {
	if _, err := s.GetMember(ctx, memberID); err != nil {
		return nil, err
	}
	if req.Weight == nil && req.HeartRate == nil && req.BodyFat == nil {
		return nil, apperr.Validation("at least one metric value is required")
	}
	return s.repo.AddMetric(ctx, memberID, req.Weight, req.HeartRate, req.BodyFat)
}
