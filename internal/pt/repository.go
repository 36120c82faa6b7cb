package pt

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/GurjasChalana/fitness-club/internal/apperr"
)

const sessionColumns = `session_id, member_id, trainer_id, room_id, start_time, end_time, session_type, notes, status, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Book runs the full conflict check and the insert in one transaction.
// The trainer row is locked first so two concurrent bookings against the
// same trainer serialize instead of both passing the overlap check.
func (r *repository) Book(ctx context.Context, memberID, trainerID int, roomID *int, start, end time.Time, sessionType, notes *string) (*Session, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := lockTrainer(ctx, tx, trainerID); err != nil {
		return nil, err
	}

	if roomID != nil {
		occupied, err := RoomHasClassConflict(ctx, tx, *roomID, start, end, 0)
		if err != nil {
			return nil, err
		}
		if occupied {
			return nil, apperr.Conflict(ReasonRoomHasClass)
		}
	}

	reason, err := checkConflict(ctx, tx, memberID, trainerID, roomID, start, end, 0)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return nil, apperr.Conflict(reason)
	}

	var s Session
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO personal_training_sessions (member_id, trainer_id, room_id, start_time, end_time, session_type, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+sessionColumns+`
	`, memberID, trainerID, roomID, start, end, sessionType, notes, StatusScheduled).StructScan(&s)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Reschedule re-runs the checks against the new interval, excluding the
// session itself, then overwrites the interval and details in place.
func (r *repository) Reschedule(ctx context.Context, sessionID int, roomID *int, start, end time.Time, sessionType, notes *string) (*Session, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var current Session
	err = tx.GetContext(ctx, &current, `
		SELECT `+sessionColumns+`
		FROM personal_training_sessions
		WHERE session_id = $1
		FOR UPDATE
	`, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if current.Status != StatusScheduled {
		return nil, ErrSessionCancelled
	}

	if err := lockTrainer(ctx, tx, current.TrainerID); err != nil {
		return nil, err
	}

	if roomID != nil {
		occupied, err := RoomHasClassConflict(ctx, tx, *roomID, start, end, 0)
		if err != nil {
			return nil, err
		}
		if occupied {
			return nil, apperr.Conflict(ReasonRoomHasClass)
		}
	}

	reason, err := checkConflict(ctx, tx, current.MemberID, current.TrainerID, roomID, start, end, sessionID)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return nil, apperr.Conflict(reason)
	}

	var s Session
	err = tx.QueryRowxContext(ctx, `
		UPDATE personal_training_sessions
		SET room_id = $2, start_time = $3, end_time = $4, session_type = $5, notes = $6
		WHERE session_id = $1
		RETURNING `+sessionColumns+`
	`, sessionID, roomID, start, end, sessionType, notes).StructScan(&s)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Cancel flips the status. Cancelling an already cancelled session is a
// no-op that still succeeds.
func (r *repository) Cancel(ctx context.Context, sessionID int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE personal_training_sessions
		SET status = $2
		WHERE session_id = $1
	`, sessionID, StatusCancelled)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, sessionID int) (*Session, error) {
	var s Session
	err := r.db.GetContext(ctx, &s, `
		SELECT `+sessionColumns+`
		FROM personal_training_sessions
		WHERE session_id = $1
	`, sessionID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Session, error) {
	var sessions []Session
	err := r.db.SelectContext(ctx, &sessions, `
		SELECT `+sessionColumns+`
		FROM personal_training_sessions
		WHERE member_id = $1
		ORDER BY start_time
	`, memberID)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *repository) ListByTrainer(ctx context.Context, trainerID int) ([]Session, error) {
	var sessions []Session
	err := r.db.SelectContext(ctx, &sessions, `
		SELECT `+sessionColumns+`
		FROM personal_training_sessions
		WHERE trainer_id = $1
		ORDER BY start_time
	`, trainerID)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *repository) Contacts(ctx context.Context, memberID, trainerID int) (*ContactInfo, error) {
	var info ContactInfo
	err := r.db.GetContext(ctx, &info, `
		SELECT m.email AS member_email,
		       CONCAT(m.first_name, ' ', m.last_name) AS member_name,
		       CONCAT(t.first_name, ' ', t.last_name) AS trainer_name
		FROM members m, trainers t
		WHERE m.member_id = $1 AND t.trainer_id = $2
	`, memberID, trainerID)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func lockTrainer(ctx context.Context, tx *sqlx.Tx, trainerID int) error {
	var id int
	err := tx.GetContext(ctx, &id, `SELECT trainer_id FROM trainers WHERE trainer_id = $1 FOR UPDATE`, trainerID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTrainerNotFound
	}
	return err
}
