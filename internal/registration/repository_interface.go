package registration

import (
	"context"
	"time"
)

type Repository interface {
	Register(ctx context.Context, memberID, classID int, now time.Time) (*Registration, error)
	Unregister(ctx context.Context, memberID, classID int) error
	ListSchedule(ctx context.Context, memberID int) ([]ScheduleEntry, error)
	RegistrationContact(ctx context.Context, memberID, classID int) (email, name, className string, classTime time.Time, err error)
}
