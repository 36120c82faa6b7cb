package class

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/GurjasChalana/fitness-club/internal/pt"
	"github.com/GurjasChalana/fitness-club/internal/schedule"
)

const classColumns = `class_id, class_name, trainer_id, room_id, class_time, capacity, status, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name string, trainerID, roomID *int, classTime time.Time, capacity int) (*Class, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := checkSchedule(ctx, tx, trainerID, roomID, classTime, 0); err != nil {
		return nil, err
	}

	var cl Class
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO group_classes (class_name, trainer_id, room_id, class_time, capacity, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+classColumns+`
	`, name, trainerID, roomID, classTime, capacity, StatusScheduled).StructScan(&cl)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &cl, nil
}

// Update merges the patch over the current row, re-runs the scheduling
// checks against the merged values, then applies the patch.
func (r *repository) Update(ctx context.Context, classID int, patch Patch, now time.Time) (*Class, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var current Class
	err = tx.GetContext(ctx, &current, `
		SELECT `+classColumns+`
		FROM group_classes
		WHERE class_id = $1
		FOR UPDATE
	`, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	merged := current
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.TrainerID != nil {
		merged.TrainerID = patch.TrainerID
	}
	if patch.RoomID != nil {
		merged.RoomID = patch.RoomID
	}
	if patch.ClassTime != nil {
		merged.ClassTime = *patch.ClassTime
	}
	if patch.Capacity != nil {
		merged.Capacity = *patch.Capacity
	}

	// The merged class_time must be in the future even when the patch
	// only touches other fields: a past class cannot be edited back
	// into scope.
	if !merged.ClassTime.After(now) {
		return nil, ErrClassInPast
	}

	if err := checkSchedule(ctx, tx, merged.TrainerID, merged.RoomID, merged.ClassTime, classID); err != nil {
		return nil, err
	}

	var cl Class
	err = tx.QueryRowxContext(ctx, `
		UPDATE group_classes
		SET class_name = $2, trainer_id = $3, room_id = $4, class_time = $5, capacity = $6
		WHERE class_id = $1
		RETURNING `+classColumns+`
	`, classID, merged.Name, merged.TrainerID, merged.RoomID, merged.ClassTime, merged.Capacity).StructScan(&cl)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &cl, nil
}

// checkSchedule enforces the class-side booking rules: the trainer must
// have an availability slot containing the class instant, and the room
// must be free of both PT sessions and other classes for the implicit
// hour.
func checkSchedule(ctx context.Context, tx *sqlx.Tx, trainerID, roomID *int, classTime time.Time, excludeClassID int) error {
	if trainerID != nil {
		if err := lockTrainer(ctx, tx, *trainerID); err != nil {
			return err
		}
		available, err := pt.TrainerCoversInstant(ctx, tx, *trainerID, classTime)
		if err != nil {
			return err
		}
		if !available {
			return ErrTrainerUnavailable
		}
	}

	if roomID != nil {
		end := schedule.ClassEnd(classTime)
		occupied, err := pt.RoomHasSessionConflict(ctx, tx, *roomID, classTime, end)
		if err != nil {
			return err
		}
		if occupied {
			return ErrRoomHasSession
		}

		clash, err := pt.RoomHasClassConflict(ctx, tx, *roomID, classTime, end, excludeClassID)
		if err != nil {
			return err
		}
		if clash {
			return ErrRoomHasClass
		}
	}

	return nil
}

// Cancel flips the status and leaves registrations in place for the
// historical record.
func (r *repository) Cancel(ctx context.Context, classID int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE group_classes
		SET status = $2
		WHERE class_id = $1
	`, classID, StatusCancelled)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrClassNotFound
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, classID int) (*Class, error) {
	var cl Class
	err := r.db.GetContext(ctx, &cl, `
		SELECT `+classColumns+`
		FROM group_classes
		WHERE class_id = $1
	`, classID)
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *repository) ListAvailable(ctx context.Context, now time.Time) ([]AvailableClass, error) {
	query := `
		SELECT c.class_id, c.class_name, c.trainer_id, c.room_id, c.class_time, c.capacity, c.status, c.created_at,
		       COUNT(r.member_id) AS enrolled
		FROM group_classes c
		LEFT JOIN class_registrations r ON r.class_id = c.class_id
		WHERE c.class_time > $1 AND c.status = $2
		GROUP BY c.class_id
		HAVING COUNT(r.member_id) < c.capacity
		ORDER BY c.class_time
	`

	var classes []AvailableClass
	err := r.db.SelectContext(ctx, &classes, query, now, StatusScheduled)
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *repository) ListByTrainer(ctx context.Context, trainerID int) ([]Class, error) {
	var classes []Class
	err := r.db.SelectContext(ctx, &classes, `
		SELECT `+classColumns+`
		FROM group_classes
		WHERE trainer_id = $1
		ORDER BY class_time
	`, trainerID)
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func lockTrainer(ctx context.Context, tx *sqlx.Tx, trainerID int) error {
	var id int
	err := tx.GetContext(ctx, &id, `SELECT trainer_id FROM trainers WHERE trainer_id = $1 FOR UPDATE`, trainerID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTrainerNotFound
	}
	return err
}
