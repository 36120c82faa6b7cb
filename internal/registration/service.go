package registration

import (
	"context"
	"errors"
	"time"

	"github.com/GurjasChalana/fitness-club/internal/apperr"
	"github.com/GurjasChalana/fitness-club/internal/clock"
	"github.com/GurjasChalana/fitness-club/internal/logger"
	"github.com/GurjasChalana/fitness-club/internal/metrics"
)

const StatusScheduled = "SCHEDULED"

// Rejection messages, in check order. Stable: clients match on them.
var (
	ErrClassNotAvailable = apperr.Conflict("Class not available")
	ErrClassInPast       = apperr.Conflict("Class is in the past")
	ErrAlreadyRegistered = apperr.Conflict("Already registered")
	ErrClassFull         = apperr.Conflict("Class is full")
	ErrScheduleConflict  = apperr.Conflict("Schedule conflict with another class or PT session")
)

// Notifier is the slice of the mail service registration uses.
type Notifier interface {
	SendClassRegistration(ctx context.Context, to, name, className string, classTime time.Time) error
}

// ContactLookup resolves the member contact and class name for the
// confirmation email after a registration commits.
type ContactLookup interface {
	RegistrationContact(ctx context.Context, memberID, classID int) (email, name, className string, classTime time.Time, err error)
}

type Service interface {
	Register(ctx context.Context, memberID, classID int) (*Registration, error)
	Unregister(ctx context.Context, memberID, classID int) error
	ListSchedule(ctx context.Context, memberID int) ([]ScheduleEntry, error)
}

type service struct {
	repo     Repository
	clock    clock.Clock
	notifier Notifier
	contacts ContactLookup
}

func NewService(repo Repository, clk clock.Clock, notifier Notifier, contacts ContactLookup) Service {
	return &service{repo: repo, clock: clk, notifier: notifier, contacts: contacts}
}

func (s *service) Register(ctx context.Context, memberID, classID int) (*Registration, error) {
	reg, err := s.repo.Register(ctx, memberID, classID, s.clock.Now())
	if err != nil {
		var e *apperr.Error
		if errors.As(err, &e) && e.Kind == apperr.KindConflict {
			metrics.RecordClassRegistration("rejected")
		}
		return nil, err
	}

	metrics.RecordClassRegistration("registered")
	s.confirm(ctx, memberID, classID)
	return reg, nil
}

func (s *service) Unregister(ctx context.Context, memberID, classID int) error {
	return s.repo.Unregister(ctx, memberID, classID)
}

func (s *service) ListSchedule(ctx context.Context, memberID int) ([]ScheduleEntry, error) {
	return s.repo.ListSchedule(ctx, memberID)
}

func (s *service) confirm(ctx context.Context, memberID, classID int) {
	if s.notifier == nil || s.contacts == nil {
		return
	}
	email, name, className, classTime, err := s.contacts.RegistrationContact(ctx, memberID, classID)
	if err != nil {
		logger.Errorf("registration (%d,%d): contact lookup failed: %v", memberID, classID, err)
		return
	}
	if err := s.notifier.SendClassRegistration(ctx, email, name, className, classTime); err != nil {
		logger.Errorf("registration (%d,%d): confirmation email failed: %v", memberID, classID, err)
	}
}
