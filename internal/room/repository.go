package room

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name string, capacity int) (*Room, error) {
	var taken bool
	err := r.db.GetContext(ctx, &taken,
		`SELECT EXISTS(SELECT 1 FROM rooms WHERE room_name = $1)`, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrRoomNameTaken
	}

	query := `
		INSERT INTO rooms (room_name, capacity)
		VALUES ($1, $2)
		RETURNING room_id, room_name, capacity, created_at
	`

	var rm Room
	if err := r.db.GetContext(ctx, &rm, query, name, capacity); err != nil {
		return nil, err
	}

	return &rm, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Room, error) {
	query := `
		SELECT room_id, room_name, capacity, created_at
		FROM rooms
		WHERE room_id = $1
	`

	var rm Room
	if err := r.db.GetContext(ctx, &rm, query, id); err != nil {
		return nil, err
	}

	return &rm, nil
}

func (r *repository) List(ctx context.Context) ([]Room, error) {
	query := `
		SELECT room_id, room_name, capacity, created_at
		FROM rooms
		ORDER BY room_id
	`

	var rooms []Room
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	// classes, sessions and equipment in the room cascade
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE room_id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

func (r *repository) AddEquipment(ctx context.Context, roomID int, name string) (*Equipment, error) {
	query := `
		INSERT INTO equipment (room_id, equipment_name, status)
		VALUES ($1, $2, $3)
		RETURNING equipment_id, room_id, equipment_name, status
	`

	var eq Equipment
	if err := r.db.GetContext(ctx, &eq, query, roomID, name, EquipmentOperational); err != nil {
		return nil, err
	}

	return &eq, nil
}

func (r *repository) ListEquipment(ctx context.Context, roomID int) ([]Equipment, error) {
	query := `
		SELECT equipment_id, room_id, equipment_name, status
		FROM equipment
		WHERE room_id = $1
		ORDER BY equipment_id
	`

	var items []Equipment
	if err := r.db.SelectContext(ctx, &items, query, roomID); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) DeleteEquipment(ctx context.Context, roomID, equipmentID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM equipment WHERE equipment_id = $1 AND room_id = $2`,
		equipmentID, roomID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}

// ReportIssue opens a maintenance log and takes the equipment out of
// service in the same transaction.
func (r *repository) ReportIssue(ctx context.Context, equipmentID int, description string) (*MaintenanceLog, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var log MaintenanceLog
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO maintenance_logs (equipment_id, issue_description, status)
		VALUES ($1, $2, $3)
		RETURNING log_id, equipment_id, issue_description, status, created_at, resolved_at, resolution_notes
	`, equipmentID, description, MaintenanceOpen).StructScan(&log)
	if err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE equipment SET status = $1 WHERE equipment_id = $2`,
		EquipmentUnderRepair, equipmentID,
	)
	if err != nil {
		return nil, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrEquipmentNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &log, nil
}

// ResolveIssue closes the log and, if no other log for the same equipment
// remains open, puts the equipment back in service.
func (r *repository) ResolveIssue(ctx context.Context, logID int, notes *string) (*MaintenanceLog, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var log MaintenanceLog
	err = tx.QueryRowxContext(ctx, `
		UPDATE maintenance_logs
		SET status = $2, resolved_at = NOW(), resolution_notes = $3
		WHERE log_id = $1 AND status = $4
		RETURNING log_id, equipment_id, issue_description, status, created_at, resolved_at, resolution_notes
	`, logID, MaintenanceResolved, notes, MaintenanceOpen).StructScan(&log)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIssueNotFound
		}
		return nil, err
	}

	var stillOpen bool
	err = tx.GetContext(ctx, &stillOpen, `
		SELECT EXISTS(
			SELECT 1 FROM maintenance_logs
			WHERE equipment_id = $1 AND status = $2
		)
	`, log.EquipmentID, MaintenanceOpen)
	if err != nil {
		return nil, err
	}

	if !stillOpen {
		_, err = tx.ExecContext(ctx,
			`UPDATE equipment SET status = $1 WHERE equipment_id = $2`,
			EquipmentOperational, log.EquipmentID,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &log, nil
}

func (r *repository) ListOpenIssues(ctx context.Context) ([]MaintenanceLog, error) {
	query := `
		SELECT log_id, equipment_id, issue_description, status, created_at, resolved_at, resolution_notes
		FROM maintenance_logs
		WHERE status = $1
		ORDER BY created_at
	`

	var logs []MaintenanceLog
	if err := r.db.SelectContext(ctx, &logs, query, MaintenanceOpen); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *repository) ListEquipmentIssues(ctx context.Context, equipmentID int) ([]MaintenanceLog, error) {
	query := `
		SELECT log_id, equipment_id, issue_description, status, created_at, resolved_at, resolution_notes
		FROM maintenance_logs
		WHERE equipment_id = $1
		ORDER BY created_at
	`

	var logs []MaintenanceLog
	if err := r.db.SelectContext(ctx, &logs, query, equipmentID); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *repository) DeleteIssue(ctx context.Context, logID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_logs WHERE log_id = $1`, logID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrIssueNotFound
	}

	return nil
}
