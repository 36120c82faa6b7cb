package pt

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/GurjasChalana/fitness-club/internal/apperr"
)

func setupRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewRepository(db), mock
}

func expectTrainerLock(mock sqlmock.Sqlmock, trainerID int) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT trainer_id FROM trainers WHERE trainer_id = $1 FOR UPDATE")).
		WithArgs(trainerID).
		WillReturnRows(sqlmock.NewRows([]string{"trainer_id"}).AddRow(trainerID))
}

func sessionRows(id, memberID, trainerID int, roomID *int, start, end time.Time, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"session_id", "member_id", "trainer_id", "room_id", "start_time", "end_time", "session_type", "notes", "status", "created_at"}).
		AddRow(id, memberID, trainerID, roomID, start, end, nil, nil, status, time.Now())
}

// Trainer availability [09:00,12:00): booking [09:30,10:30) succeeds, a
// second booking [10:00,11:00) for the same trainer is rejected with the
// trainer-conflict reason.
func TestBookThenOverlapRejected(t *testing.T) {
	repo, mock := setupRepo(t)
	roomID := 1

	mock.ExpectBegin()
	expectTrainerLock(mock, 1)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM group_classes")).
		WithArgs(1, StatusScheduled, sessStart, sessEnd, float64(3600), 0).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	expectSessionOverlap(mock, "trainer_id", 1, sessStart, sessEnd, 0, false)
	expectSessionOverlap(mock, "member_id", 1, sessStart, sessEnd, 0, false)
	expectSessionOverlap(mock, "room_id", 1, sessStart, sessEnd, 0, false)
	expectCoverage(mock, 1, sessStart, sessEnd, true)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO personal_training_sessions")).
		WithArgs(1, 1, &roomID, sessStart, sessEnd, nil, nil, StatusScheduled).
		WillReturnRows(sessionRows(1, 1, 1, &roomID, sessStart, sessEnd, StatusScheduled))
	mock.ExpectCommit()

	session, err := repo.Book(context.Background(), 1, 1, &roomID, sessStart, sessEnd, nil, nil)
	require.NoError(t, err)
	require.Equal(t, StatusScheduled, session.Status)

	secondStart := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	secondEnd := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	expectTrainerLock(mock, 1)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM group_classes")).
		WithArgs(1, StatusScheduled, secondStart, secondEnd, float64(3600), 0).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	expectSessionOverlap(mock, "trainer_id", 1, secondStart, secondEnd, 0, true)
	mock.ExpectRollback()

	_, err = repo.Book(context.Background(), 2, 1, &roomID, secondStart, secondEnd, nil, nil)
	require.EqualError(t, err, ReasonTrainerBusy)
	require.True(t, apperr.IsKind(err, apperr.KindConflict))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRejectedWhenRoomHasClass(t *testing.T) {
	repo, mock := setupRepo(t)
	roomID := 2

	mock.ExpectBegin()
	expectTrainerLock(mock, 1)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM group_classes")).
		WithArgs(2, StatusScheduled, sessStart, sessEnd, float64(3600), 0).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), 1, 1, &roomID, sessStart, sessEnd, nil, nil)
	require.EqualError(t, err, ReasonRoomHasClass)
}

func TestBookUnknownTrainer(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT trainer_id FROM trainers WHERE trainer_id = $1 FOR UPDATE")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"trainer_id"}))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), 1, 99, nil, sessStart, sessEnd, nil, nil)
	require.Equal(t, ErrTrainerNotFound, err)
}

func TestRescheduleExcludesItself(t *testing.T) {
	repo, mock := setupRepo(t)

	newStart := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)
	newEnd := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM personal_training_sessions WHERE session_id = $1 FOR UPDATE")).
		WithArgs(7).
		WillReturnRows(sessionRows(7, 1, 1, nil, sessStart, sessEnd, StatusScheduled))
	expectTrainerLock(mock, 1)
	expectSessionOverlap(mock, "trainer_id", 1, newStart, newEnd, 7, false)
	expectSessionOverlap(mock, "member_id", 1, newStart, newEnd, 7, false)
	expectCoverage(mock, 1, newStart, newEnd, true)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE personal_training_sessions SET room_id = $2, start_time = $3, end_time = $4, session_type = $5, notes = $6 WHERE session_id = $1")).
		WithArgs(7, nil, newStart, newEnd, nil, nil).
		WillReturnRows(sessionRows(7, 1, 1, nil, newStart, newEnd, StatusScheduled))
	mock.ExpectCommit()

	session, err := repo.Reschedule(context.Background(), 7, nil, newStart, newEnd, nil, nil)
	require.NoError(t, err)
	require.Equal(t, newStart, session.StartTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRescheduleCancelledSession(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM personal_training_sessions WHERE session_id = $1 FOR UPDATE")).
		WithArgs(7).
		WillReturnRows(sessionRows(7, 1, 1, nil, sessStart, sessEnd, StatusCancelled))
	mock.ExpectRollback()

	_, err := repo.Reschedule(context.Background(), 7, nil, sessStart, sessEnd, nil, nil)
	require.Equal(t, ErrSessionCancelled, err)
}

func TestCancelIsHarmlessWhenRepeated(t *testing.T) {
	repo, mock := setupRepo(t)

	// both calls update the row; the second is a no-op state-wise but
	// still succeeds
	for i := 0; i < 2; i++ {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE personal_training_sessions SET status = $2 WHERE session_id = $1")).
			WithArgs(7, StatusCancelled).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, repo.Cancel(context.Background(), 7))
	require.NoError(t, repo.Cancel(context.Background(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelUnknownSession(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE personal_training_sessions SET status = $2 WHERE session_id = $1")).
		WithArgs(404, StatusCancelled).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 404)
	require.Equal(t, ErrSessionNotFound, err)
}
