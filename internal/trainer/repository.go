package trainer

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, firstName, lastName, email string, certification *string) (*Trainer, error) {
	query := `
		INSERT INTO trainers (first_name, last_name, email, certification)
		VALUES ($1, $2, $3, $4)
		RETURNING trainer_id, first_name, last_name, email, certification, created_at
	`

	var tr Trainer
	err := r.db.GetContext(ctx, &tr, query, firstName, lastName, email, certification)
	if err != nil {
		return nil, err
	}

	return &tr, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT trainer_id, first_name, last_name, email, certification, created_at
		FROM trainers
		WHERE trainer_id = $1
	`

	var tr Trainer
	err := r.db.GetContext(ctx, &tr, query, id)
	if err != nil {
		return nil, err
	}

	return &tr, nil
}

func (r *repository) List(ctx context.Context) ([]TrainerSummary, error) {
	query := `
		SELECT trainer_id, CONCAT(first_name, ' ', last_name) AS full_name, certification
		FROM trainers
		ORDER BY trainer_id
	`

	var trainers []TrainerSummary
	err := r.db.SelectContext(ctx, &trainers, query)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	// availability, sessions and classes cascade with the trainer
	result, err := r.db.ExecContext(ctx, `DELETE FROM trainers WHERE trainer_id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTrainerNotFound
	}

	return nil
}

func (r *repository) ListSlots(ctx context.Context, trainerID int) ([]AvailabilitySlot, error) {
	query := `
		SELECT availability_id, trainer_id, start_time, end_time, notes
		FROM trainer_availability
		WHERE trainer_id = $1
		ORDER BY start_time
	`

	var slots []AvailabilitySlot
	err := r.db.SelectContext(ctx, &slots, query, trainerID)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

// CreateSlot inserts a new availability slot. The trainer row is locked
// for the duration of the transaction so two concurrent inserts cannot
// both pass the overlap check.
func (r *repository) CreateSlot(ctx context.Context, trainerID int, start, end time.Time, notes *string) (*AvailabilitySlot, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := lockTrainer(ctx, tx, trainerID); err != nil {
		return nil, err
	}

	overlap, err := hasOverlappingSlot(ctx, tx, trainerID, start, end, 0)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrSlotOverlap
	}

	var slot AvailabilitySlot
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO trainer_availability (trainer_id, start_time, end_time, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING availability_id, trainer_id, start_time, end_time, notes
	`, trainerID, start, end, notes).StructScan(&slot)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) UpdateSlot(ctx context.Context, trainerID, slotID int, start, end time.Time, notes *string) (*AvailabilitySlot, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := lockTrainer(ctx, tx, trainerID); err != nil {
		return nil, err
	}

	// Existence and ownership come first: updating someone else's slot
	// is a not-found, never an overlap rejection.
	if err := lockSlot(ctx, tx, trainerID, slotID); err != nil {
		return nil, err
	}

	overlap, err := hasOverlappingSlot(ctx, tx, trainerID, start, end, slotID)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrSlotOverlap
	}

	var slot AvailabilitySlot
	err = tx.QueryRowxContext(ctx, `
		UPDATE trainer_availability
		SET start_time = $3, end_time = $4, notes = $5
		WHERE availability_id = $2 AND trainer_id = $1
		RETURNING availability_id, trainer_id, start_time, end_time, notes
	`, trainerID, slotID, start, end, notes).StructScan(&slot)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) DeleteSlot(ctx context.Context, trainerID, slotID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM trainer_availability WHERE availability_id = $1 AND trainer_id = $2`,
		slotID, trainerID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

func lockSlot(ctx context.Context, tx *sqlx.Tx, trainerID, slotID int) error {
	var id int
	err := tx.GetContext(ctx, &id, `
		SELECT availability_id FROM trainer_availability
		WHERE availability_id = $1 AND trainer_id = $2
		FOR UPDATE
	`, slotID, trainerID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSlotNotFound
	}
	return err
}

func lockTrainer(ctx context.Context, tx *sqlx.Tx, trainerID int) error {
	var id int
	err := tx.GetContext(ctx, &id, `SELECT trainer_id FROM trainers WHERE trainer_id = $1 FOR UPDATE`, trainerID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTrainerNotFound
	}
	return err
}

// hasOverlappingSlot checks the half-open overlap invariant. excludeID is
// the slot being updated, or 0 on insert.
func hasOverlappingSlot(ctx context.Context, tx *sqlx.Tx, trainerID int, start, end time.Time, excludeID int) (bool, error) {
	var exists bool
	err := tx.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM trainer_availability
			WHERE trainer_id = $1 AND availability_id <> $4
			  AND start_time < $3 AND end_time > $2
		)
	`, trainerID, start, end, excludeID)
	return exists, err
}
