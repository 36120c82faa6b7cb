package pt

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/GurjasChalana/fitness-club/internal/apperr"
	"github.com/GurjasChalana/fitness-club/internal/clock"
	"github.com/GurjasChalana/fitness-club/internal/logger"
	"github.com/GurjasChalana/fitness-club/internal/metrics"
)

var (
	ErrSessionNotFound  = apperr.NotFound("session not found")
	ErrTrainerNotFound  = apperr.NotFound("trainer not found")
	ErrSessionCancelled = apperr.Conflict("session is cancelled")
	ErrSessionInvalid   = apperr.Validation("start_time must be before end_time")
	ErrSessionInPast    = apperr.Validation("session must end in the future")
)

// Notifier is the slice of the mail service the booking flow uses.
type Notifier interface {
	SendSessionConfirmation(ctx context.Context, to, name, trainerName string, start, end time.Time) error
	SendCancellationNotice(ctx context.Context, to, name, what string, when time.Time) error
}

type Service interface {
	Book(ctx context.Context, memberID int, req BookRequest) (*Session, error)
	Reschedule(ctx context.Context, memberID, sessionID int, req RescheduleRequest) (*Session, error)
	Cancel(ctx context.Context, memberID, sessionID int) error
	GetSession(ctx context.Context, sessionID int) (*Session, error)
	ListByMember(ctx context.Context, memberID int) ([]Session, error)
	ListByTrainer(ctx context.Context, trainerID int) ([]Session, error)
}

type service struct {
	repo     Repository
	clock    clock.Clock
	notifier Notifier
}

func NewService(repo Repository, clk clock.Clock, notifier Notifier) Service {
	return &service{repo: repo, clock: clk, notifier: notifier}
}

func (s *service) Book(ctx context.Context, memberID int, req BookRequest) (*Session, error) {
	start, end, err := s.parseInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.Book(ctx, memberID, req.TrainerID, req.RoomID, start, end, req.SessionType, req.Notes)
	if err != nil {
		recordConflict(err)
		return nil, err
	}

	metrics.RecordSessionBooked()
	s.confirm(ctx, session)
	return session, nil
}

func (s *service) Reschedule(ctx context.Context, memberID, sessionID int, req RescheduleRequest) (*Session, error) {
	if _, err := s.ownSession(ctx, memberID, sessionID); err != nil {
		return nil, err
	}

	start, end, err := s.parseInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.Reschedule(ctx, sessionID, req.RoomID, start, end, req.SessionType, req.Notes)
	if err != nil {
		recordConflict(err)
		return nil, err
	}

	s.confirm(ctx, session)
	return session, nil
}

func (s *service) Cancel(ctx context.Context, memberID, sessionID int) error {
	session, err := s.ownSession(ctx, memberID, sessionID)
	if err != nil {
		return err
	}

	if err := s.repo.Cancel(ctx, sessionID); err != nil {
		return err
	}

	metrics.RecordSessionCancelled()
	if s.notifier != nil && session.Status == StatusScheduled {
		info, err := s.repo.Contacts(ctx, session.MemberID, session.TrainerID)
		if err != nil {
			logger.Errorf("session %d: contact lookup failed: %v", sessionID, err)
			return nil
		}
		if err := s.notifier.SendCancellationNotice(ctx, info.MemberEmail, info.MemberName, "personal training session", session.StartTime); err != nil {
			logger.Errorf("session %d: cancellation notice failed: %v", sessionID, err)
		}
	}
	return nil
}

func (s *service) GetSession(ctx context.Context, sessionID int) (*Session, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *service) ListByMember(ctx context.Context, memberID int) ([]Session, error) {
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) ListByTrainer(ctx context.Context, trainerID int) ([]Session, error) {
	return s.repo.ListByTrainer(ctx, trainerID)
}

// ownSession loads the session and checks member ownership. Ownership is
// part of the lifecycle contract here, not just request-layer policy.
func (s *service) ownSession(ctx context.Context, memberID, sessionID int) (*Session, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.MemberID != memberID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *service) parseInterval(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("start_time must be RFC3339")
	}

	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("end_time must be RFC3339")
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, ErrSessionInvalid
	}
	if !end.After(s.clock.Now()) {
		return time.Time{}, time.Time{}, ErrSessionInPast
	}

	return start, end, nil
}

func (s *service) confirm(ctx context.Context, session *Session) {
	if s.notifier == nil {
		return
	}
	info, err := s.repo.Contacts(ctx, session.MemberID, session.TrainerID)
	if err != nil {
		logger.Errorf("session %d: contact lookup failed: %v", session.ID, err)
		return
	}
	if err := s.notifier.SendSessionConfirmation(ctx, info.MemberEmail, info.MemberName, info.TrainerName, session.StartTime, session.EndTime); err != nil {
		logger.Errorf("session %d: confirmation email failed: %v", session.ID, err)
	}
}

func recordConflict(err error) {
	var e *apperr.Error
	if errors.As(err, &e) && e.Kind == apperr.KindConflict {
		metrics.RecordBookingConflict(e.Message)
	}
}
