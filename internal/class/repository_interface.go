package class

import (
	"context"
	"time"
)

// Patch is the typed set of field overrides applied by Update after the
// merged values pass the scheduling checks.
type Patch struct {
	Name      *string
	TrainerID *int
	RoomID    *int
	ClassTime *time.Time
	Capacity  *int
}

type Repository interface {
	Create(ctx context.Context, name string, trainerID, roomID *int, classTime time.Time, capacity int) (*Class, error)
	Update(ctx context.Context, classID int, patch Patch, now time.Time) (*Class, error)
	Cancel(ctx context.Context, classID int) error
	GetByID(ctx context.Context, classID int) (*Class, error)
	ListAvailable(ctx context.Context, now time.Time) ([]AvailableClass, error)
	ListByTrainer(ctx context.Context, trainerID int) ([]Class, error)
}
