package registration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GurjasChalana/fitness-club/internal/clock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Register(ctx context.Context, memberID, classID int, at time.Time) (*Registration, error) {
	args := m.Called(ctx, memberID, classID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Registration), args.Error(1)
}

func (m *mockRepository) Unregister(ctx context.Context, memberID, classID int) error {
	args := m.Called(ctx, memberID, classID)
	return args.Error(0)
}

func (m *mockRepository) ListSchedule(ctx context.Context, memberID int) ([]ScheduleEntry, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ScheduleEntry), args.Error(1)
}

func (m *mockRepository) RegistrationContact(ctx context.Context, memberID, classID int) (string, string, string, time.Time, error) {
	args := m.Called(ctx, memberID, classID)
	return args.String(0), args.String(1), args.String(2), args.Get(3).(time.Time), args.Error(4)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendClassRegistration(ctx context.Context, to, name, className string, at time.Time) error {
	args := m.Called(ctx, to, name, className, at)
	return args.Error(0)
}

func TestRegisterSendsConfirmation(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo, clock.Fixed(now), notifier, repo)

	repo.On("Register", mock.Anything, 1, 2, now).Return(&Registration{MemberID: 1, ClassID: 2}, nil)
	repo.On("RegistrationContact", mock.Anything, 1, 2).Return("ana@example.com", "Ana Ruiz", "Yoga", classTime, nil)
	notifier.On("SendClassRegistration", mock.Anything, "ana@example.com", "Ana Ruiz", "Yoga", classTime).Return(nil)

	reg, err := svc.Register(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, reg.ClassID)
	notifier.AssertExpectations(t)
}

func TestRegisterRejectionSkipsEmail(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)
	svc := NewService(repo, clock.Fixed(now), notifier, repo)

	repo.On("Register", mock.Anything, 1, 3, now).Return(nil, ErrClassFull)

	_, err := svc.Register(context.Background(), 1, 3)
	require.Equal(t, ErrClassFull, err)
	notifier.AssertNotCalled(t, "SendClassRegistration")
}

func TestUnregisterPassesThrough(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, clock.Fixed(now), nil, nil)

	repo.On("Unregister", mock.Anything, 1, 2).Return(nil)

	require.NoError(t, svc.Unregister(context.Background(), 1, 2))
	repo.AssertExpectations(t)
}
