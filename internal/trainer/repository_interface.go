package trainer

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, firstName, lastName, email string, certification *string) (*Trainer, error)
	GetByID(ctx context.Context, id int) (*Trainer, error)
	List(ctx context.Context) ([]TrainerSummary, error)
	Delete(ctx context.Context, id int) error

	ListSlots(ctx context.Context, trainerID int) ([]AvailabilitySlot, error)
	CreateSlot(ctx context.Context, trainerID int, start, end time.Time, notes *string) (*AvailabilitySlot, error)
	UpdateSlot(ctx context.Context, trainerID, slotID int, start, end time.Time, notes *string) (*AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, trainerID, slotID int) error
}
