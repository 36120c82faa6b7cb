package pt

import (
	"context"
	"time"
)

type Repository interface {
	Book(ctx context.Context, memberID, trainerID int, roomID *int, start, end time.Time, sessionType, notes *string) (*Session, error)
	Reschedule(ctx context.Context, sessionID int, roomID *int, start, end time.Time, sessionType, notes *string) (*Session, error)
	Cancel(ctx context.Context, sessionID int) error
	GetByID(ctx context.Context, sessionID int) (*Session, error)
	ListByMember(ctx context.Context, memberID int) ([]Session, error)
	ListByTrainer(ctx context.Context, trainerID int) ([]Session, error)
	Contacts(ctx context.Context, memberID, trainerID int) (*ContactInfo, error)
}

// ContactInfo is what the notifier needs after a booking commits.
type ContactInfo struct {
	MemberEmail string `db:"member_email"`
	MemberName  string `db:"member_name"`
	TrainerName string `db:"trainer_name"`
}
