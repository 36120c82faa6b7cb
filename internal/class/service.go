package class

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/GurjasChalana/fitness-club/internal/apperr"
	"github.com/GurjasChalana/fitness-club/internal/clock"
)

var (
	ErrClassNotFound      = apperr.NotFound("class not found")
	ErrTrainerNotFound    = apperr.NotFound("trainer not found")
	ErrClassInPast        = apperr.Validation("class_time must be in the future")
	ErrTrainerUnavailable = apperr.Conflict("Trainer is not available at that time")
	ErrRoomHasSession     = apperr.Conflict("Room is occupied by a personal training session")
	ErrRoomHasClass       = apperr.Conflict("Room already has a class at that time")
)

type Service interface {
	CreateClass(ctx context.Context, req CreateClassRequest) (*Class, error)
	UpdateClass(ctx context.Context, classID int, req UpdateClassRequest) (*Class, error)
	CancelClass(ctx context.Context, classID int) error
	GetClass(ctx context.Context, classID int) (*Class, error)
	ListAvailable(ctx context.Context) ([]AvailableClass, error)
	ListByTrainer(ctx context.Context, trainerID int) ([]Class, error)
}

type service struct {
	repo  Repository
	clock clock.Clock
}

func NewService(repo Repository, clk clock.Clock) Service {
	return &service{repo: repo, clock: clk}
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*Class, error) {
	classTime, err := s.parseFutureTime(req.ClassTime)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.Name, req.TrainerID, req.RoomID, classTime, req.Capacity)
}

func (s *service) UpdateClass(ctx context.Context, classID int, req UpdateClassRequest) (*Class, error) {
	patch := Patch{
		Name:      req.Name,
		TrainerID: req.TrainerID,
		RoomID:    req.RoomID,
		Capacity:  req.Capacity,
	}
	if req.ClassTime != nil {
		classTime, err := s.parseFutureTime(*req.ClassTime)
		if err != nil {
			return nil, err
		}
		patch.ClassTime = &classTime
	}
	return s.repo.Update(ctx, classID, patch, s.clock.Now())
}

func (s *service) CancelClass(ctx context.Context, classID int) error {
	return s.repo.Cancel(ctx, classID)
}

func (s *service) GetClass(ctx context.Context, classID int) (*Class, error) {
	cl, err := s.repo.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return cl, nil
}

func (s *service) ListAvailable(ctx context.Context) ([]AvailableClass, error) {
	return s.repo.ListAvailable(ctx, s.clock.Now())
}

func (s *service) ListByTrainer(ctx context.Context, trainerID int) ([]Class, error) {
	return s.repo.ListByTrainer(ctx, trainerID)
}

func (s *service) parseFutureTime(raw string) (time.Time, error) {
	classTime, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperr.Validation("class_time must be RFC3339")
	}
	if !classTime.After(s.clock.Now()) {
		return time.Time{}, ErrClassInPast
	}
	return classTime, nil
}
