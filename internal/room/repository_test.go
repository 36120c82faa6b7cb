package room

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func TestCreateRoom(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM rooms WHERE room_name = $1)")).
		WithArgs("Studio A").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rooms (room_name, capacity) VALUES ($1, $2) RETURNING room_id, room_name, capacity, created_at")).
		WithArgs("Studio A", 20).
		WillReturnRows(sqlmock.NewRows([]string{"room_id", "room_name", "capacity", "created_at"}).
			AddRow(1, "Studio A", 20, time.Now()))

	rm, err := repo.Create(context.Background(), "Studio A", 20)
	require.NoError(t, err)
	require.Equal(t, "Studio A", rm.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRoomNameTaken(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM rooms WHERE room_name = $1)")).
		WithArgs("Studio A").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := repo.Create(context.Background(), "Studio A", 20)
	require.Equal(t, ErrRoomNameTaken, err)
}

func TestReportIssueFlipsEquipmentStatus(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO maintenance_logs (equipment_id, issue_description, status) VALUES ($1, $2, $3) RETURNING log_id, equipment_id, issue_description, status, created_at, resolved_at, resolution_notes")).
		WithArgs(5, "belt slipping", MaintenanceOpen).
		WillReturnRows(sqlmock.NewRows([]string{"log_id", "equipment_id", "issue_description", "status", "created_at", "resolved_at", "resolution_notes"}).
			AddRow(1, 5, "belt slipping", MaintenanceOpen, time.Now(), nil, nil))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipment SET status = $1 WHERE equipment_id = $2")).
		WithArgs(EquipmentUnderRepair, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	log, err := repo.ReportIssue(context.Background(), 5, "belt slipping")
	require.NoError(t, err)
	require.Equal(t, MaintenanceOpen, log.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportIssueUnknownEquipment(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO maintenance_logs")).
		WithArgs(99, "broken", MaintenanceOpen).
		WillReturnRows(sqlmock.NewRows([]string{"log_id", "equipment_id", "issue_description", "status", "created_at", "resolved_at", "resolution_notes"}).
			AddRow(1, 99, "broken", MaintenanceOpen, time.Now(), nil, nil))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipment SET status = $1 WHERE equipment_id = $2")).
		WithArgs(EquipmentUnderRepair, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.ReportIssue(context.Background(), 99, "broken")
	require.Equal(t, ErrEquipmentNotFound, err)
}

func TestResolveIssueRestoresEquipment(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	notes := "belt replaced"
	resolvedAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE maintenance_logs SET status = $2, resolved_at = NOW(), resolution_notes = $3 WHERE log_id = $1 AND status = $4 RETURNING log_id, equipment_id, issue_description, status, created_at, resolved_at, resolution_notes")).
		WithArgs(1, MaintenanceResolved, &notes, MaintenanceOpen).
		WillReturnRows(sqlmock.NewRows([]string{"log_id", "equipment_id", "issue_description", "status", "created_at", "resolved_at", "resolution_notes"}).
			AddRow(1, 5, "belt slipping", MaintenanceResolved, time.Now(), resolvedAt, notes))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM maintenance_logs WHERE equipment_id = $1 AND status = $2 )")).
		WithArgs(5, MaintenanceOpen).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipment SET status = $1 WHERE equipment_id = $2")).
		WithArgs(EquipmentOperational, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	log, err := repo.ResolveIssue(context.Background(), 1, &notes)
	require.NoError(t, err)
	require.Equal(t, MaintenanceResolved, log.Status)
	require.NotNil(t, log.ResolvedAt)
}

func TestResolveIssueLeavesEquipmentUnderRepairWhileOthersOpen(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE maintenance_logs")).
		WithArgs(1, MaintenanceResolved, (*string)(nil), MaintenanceOpen).
		WillReturnRows(sqlmock.NewRows([]string{"log_id", "equipment_id", "issue_description", "status", "created_at", "resolved_at", "resolution_notes"}).
			AddRow(1, 5, "belt slipping", MaintenanceResolved, time.Now(), time.Now(), nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM maintenance_logs WHERE equipment_id = $1 AND status = $2 )")).
		WithArgs(5, MaintenanceOpen).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectCommit()

	_, err := repo.ResolveIssue(context.Background(), 1, nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveIssueAlreadyResolved(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE maintenance_logs")).
		WithArgs(1, MaintenanceResolved, (*string)(nil), MaintenanceOpen).
		WillReturnRows(sqlmock.NewRows([]string{"log_id", "equipment_id", "issue_description", "status", "created_at", "resolved_at", "resolution_notes"}))
	mock.ExpectRollback()

	_, err := repo.ResolveIssue(context.Background(), 1, nil)
	require.Equal(t, ErrIssueNotFound, err)
}

func TestDeleteEquipmentOwnership(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM equipment WHERE equipment_id = $1 AND room_id = $2")).
		WithArgs(5, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteEquipment(context.Background(), 2, 5)
	require.Equal(t, ErrEquipmentNotFound, err)
}
