package member

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/GurjasChalana/fitness-club/internal/apperr"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) Create(ctx context.Context, firstName, lastName, email string, dateOfBirth *time.Time, gender, phone *string) (*Member, error) {
	args := m.Called(ctx, firstName, lastName, email, dateOfBirth, gender, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepo) GetByID(ctx context.Context, id int) (*Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepo) Search(ctx context.Context, name string) ([]Member, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Member), args.Error(1)
}

func (m *MockRepo) UpdateProfile(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepo) ListGoals(ctx context.Context, memberID int, activeOnly bool) ([]FitnessGoal, error) {
	args := m.Called(ctx, memberID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FitnessGoal), args.Error(1)
}

func (m *MockRepo) AddGoal(ctx context.Context, memberID int, goalType string, targetValue float64) (*FitnessGoal, error) {
	args := m.Called(ctx, memberID, goalType, targetValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FitnessGoal), args.Error(1)
}

func (m *MockRepo) DeleteGoal(ctx context.Context, memberID, goalID int) error {
	return m.Called(ctx, memberID, goalID).Error(0)
}

func (m *MockRepo) ListMetrics(ctx context.Context, memberID int) ([]HealthMetric, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]HealthMetric), args.Error(1)
}

func (m *MockRepo) AddMetric(ctx context.Context, memberID int, weight *float64, heartRate *int, bodyFat *float64) (*HealthMetric, error) {
	args := m.Called(ctx, memberID, weight, heartRate, bodyFat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*HealthMetric), args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Run("rejects malformed date of birth", func(t *testing.T) {
		repo := new(MockRepo)
		svc := NewService(repo)

		bad := "31-12-1990"
		_, err := svc.Register(context.Background(), CreateMemberRequest{
			FirstName:   "Jane",
			LastName:    "Doe",
			Email:       "jane@example.com",
			DateOfBirth: &bad,
		})

		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("creates member", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("Create", mock.Anything, "Jane", "Doe", "jane@example.com", mock.Anything, mock.Anything, mock.Anything).
			Return(&Member{ID: 1, FirstName: "Jane"}, nil)

		svc := NewService(repo)
		m, err := svc.Register(context.Background(), CreateMemberRequest{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, m.ID)
	})
}

func TestService_GetMember(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

	svc := NewService(repo)
	_, err := svc.GetMember(context.Background(), 99)

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestService_Search(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo)

	_, err := svc.Search(context.Background(), "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestService_AddMetric(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 1).Return(&Member{ID: 1}, nil)

	svc := NewService(repo)
	_, err := svc.AddMetric(context.Background(), 1, AddMetricRequest{})

	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	repo.AssertNotCalled(t, "AddMetric")
}
