package trainer

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/GurjasChalana/fitness-club/internal/apperr"
)

var (
	ErrTrainerNotFound = apperr.NotFound("trainer not found")
	ErrSlotNotFound    = apperr.NotFound("availability slot not found")
	ErrSlotOverlap     = apperr.Conflict("availability slot overlaps an existing slot")
	ErrSlotInvalid     = apperr.Validation("start_time must be before end_time")
)

type Service interface {
	CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*Trainer, error)
	GetTrainer(ctx context.Context, id int) (*Trainer, error)
	ListTrainers(ctx context.Context) ([]TrainerSummary, error)
	DeleteTrainer(ctx context.Context, id int) error

	ListSlots(ctx context.Context, trainerID int) ([]AvailabilitySlot, error)
	CreateSlot(ctx context.Context, trainerID int, req SlotRequest) (*AvailabilitySlot, error)
	UpdateSlot(ctx context.Context, trainerID, slotID int, req SlotRequest) (*AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, trainerID, slotID int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*Trainer, error) {
	return s.repo.Create(ctx, req.FirstName, req.LastName, req.Email, req.Certification)
}

func (s *service) GetTrainer(ctx context.Context, id int) (*Trainer, error) {
	tr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return tr, nil
}

func (s *service) ListTrainers(ctx context.Context) ([]TrainerSummary, error) {
	return s.repo.List(ctx)
}

func (s *service) DeleteTrainer(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListSlots(ctx context.Context, trainerID int) ([]AvailabilitySlot, error) {
	if _, err := s.GetTrainer(ctx, trainerID); err != nil {
		return nil, err
	}
	return s.repo.ListSlots(ctx, trainerID)
}

func (s *service) CreateSlot(ctx context.Context, trainerID int, req SlotRequest) (*AvailabilitySlot, error) {
	start, end, err := parseSlotTimes(req)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateSlot(ctx, trainerID, start, end, req.Notes)
}

func (s *service) UpdateSlot(ctx context.Context, trainerID, slotID int, req SlotRequest) (*AvailabilitySlot, error) {
	start, end, err := parseSlotTimes(req)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateSlot(ctx, trainerID, slotID, start, end, req.Notes)
}

func (s *service) DeleteSlot(ctx context.Context, trainerID, slotID int) error {
	return s.repo.DeleteSlot(ctx, trainerID, slotID)
}

func parseSlotTimes(req SlotRequest) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("start_time must be RFC3339")
	}

	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("end_time must be RFC3339")
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, ErrSlotInvalid
	}

	return start, end, nil
}
