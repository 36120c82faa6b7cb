package registration

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/GurjasChalana/fitness-club/internal/pt"
	"github.com/GurjasChalana/fitness-club/internal/schedule"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Register runs the capacity and conflict checks and the insert in one
// transaction. The class row is locked first so two concurrent
// registrations for the last spot serialize: the loser re-runs the count
// against the committed row and fails the capacity check.
func (r *repository) Register(ctx context.Context, memberID, classID int, now time.Time) (*Registration, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var cl struct {
		ClassTime time.Time `db:"class_time"`
		Capacity  int       `db:"capacity"`
		Status    string    `db:"status"`
	}
	err = tx.GetContext(ctx, &cl, `
		SELECT class_time, capacity, status
		FROM group_classes
		WHERE class_id = $1
		FOR UPDATE
	`, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotAvailable
		}
		return nil, err
	}
	if cl.Status != StatusScheduled {
		return nil, ErrClassNotAvailable
	}
	if !cl.ClassTime.After(now) {
		return nil, ErrClassInPast
	}

	var already bool
	err = tx.GetContext(ctx, &already, `
		SELECT EXISTS(
			SELECT 1 FROM class_registrations
			WHERE member_id = $1 AND class_id = $2
		)
	`, memberID, classID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, ErrAlreadyRegistered
	}

	var enrolled int
	err = tx.GetContext(ctx, &enrolled, `
		SELECT COUNT(*) FROM class_registrations WHERE class_id = $1
	`, classID)
	if err != nil {
		return nil, err
	}
	if enrolled >= cl.Capacity {
		return nil, ErrClassFull
	}

	conflicting, err := hasRegistrationInWindow(ctx, tx, memberID, cl.ClassTime)
	if err != nil {
		return nil, err
	}
	if !conflicting {
		conflicting, err = pt.HasSessionInWindow(ctx, tx, memberID, cl.ClassTime)
		if err != nil {
			return nil, err
		}
	}
	if conflicting {
		return nil, ErrScheduleConflict
	}

	var reg Registration
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO class_registrations (member_id, class_id)
		VALUES ($1, $2)
		RETURNING member_id, class_id, registered_at
	`, memberID, classID).StructScan(&reg)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &reg, nil
}

// hasRegistrationInWindow looks for another SCHEDULED class the member is
// registered for whose class_time falls strictly inside the soft window
// around classTime.
func hasRegistrationInWindow(ctx context.Context, tx *sqlx.Tx, memberID int, classTime time.Time) (bool, error) {
	from, to := schedule.ConflictBounds(classTime)

	var exists bool
	err := tx.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM class_registrations r
			JOIN group_classes c ON c.class_id = r.class_id
			WHERE r.member_id = $1 AND c.status = $2
			  AND c.class_time > $3 AND c.class_time < $4
		)
	`, memberID, StatusScheduled, from, to)
	return exists, err
}

// Unregister deletes the row if present. Absence is not an error.
func (r *repository) Unregister(ctx context.Context, memberID, classID int) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM class_registrations
		WHERE member_id = $1 AND class_id = $2
	`, memberID, classID)
	return err
}

// RegistrationContact resolves the member contact and class details for
// the confirmation email.
func (r *repository) RegistrationContact(ctx context.Context, memberID, classID int) (string, string, string, time.Time, error) {
	var row struct {
		Email     string    `db:"email"`
		Name      string    `db:"name"`
		ClassName string    `db:"class_name"`
		ClassTime time.Time `db:"class_time"`
	}
	err := r.db.GetContext(ctx, &row, `
		SELECT m.email, CONCAT(m.first_name, ' ', m.last_name) AS name,
		       c.class_name, c.class_time
		FROM members m, group_classes c
		WHERE m.member_id = $1 AND c.class_id = $2
	`, memberID, classID)
	if err != nil {
		return "", "", "", time.Time{}, err
	}
	return row.Email, row.Name, row.ClassName, row.ClassTime, nil
}

func (r *repository) ListSchedule(ctx context.Context, memberID int) ([]ScheduleEntry, error) {
	query := `
		SELECT c.class_id, c.class_name, c.class_time, c.status, c.room_id, c.trainer_id, r.registered_at
		FROM class_registrations r
		JOIN group_classes c ON c.class_id = r.class_id
		WHERE r.member_id = $1
		ORDER BY c.class_time
	`

	var entries []ScheduleEntry
	if err := r.db.SelectContext(ctx, &entries, query, memberID); err != nil {
		return nil, err
	}
	return entries, nil
}
