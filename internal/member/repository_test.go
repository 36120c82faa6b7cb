package member

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

func memberColumns() []string {
	return []string{"member_id", "first_name", "last_name", "email", "date_of_birth", "gender", "phone", "created_at"}
}

func TestCreateAndGetMember(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO members (first_name, last_name, email, date_of_birth, gender, phone) VALUES ($1, $2, $3, $4, $5, $6) RETURNING member_id, first_name, last_name, email, date_of_birth, gender, phone, created_at")).
		WithArgs("Jane", "Doe", "jane@example.com", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(memberColumns()).AddRow(5, "Jane", "Doe", "jane@example.com", nil, nil, nil, now))

	m, err := repo.Create(context.Background(), "Jane", "Doe", "jane@example.com", nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 5, m.ID)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT member_id, first_name, last_name, email, date_of_birth, gender, phone, created_at FROM members WHERE member_id = $1")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(memberColumns()).AddRow(5, "Jane", "Doe", "jane@example.com", nil, nil, nil, now))

	got, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, "Doe", got.LastName)
}

func TestSearchMembers(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	now := time.Now()
	rows := sqlmock.NewRows(memberColumns()).
		AddRow(1, "Ann", "Adams", "ann@example.com", nil, nil, nil, now).
		AddRow(2, "Dan", "Annett", "dan@example.com", nil, nil, nil, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT member_id, first_name, last_name, email, date_of_birth, gender, phone, created_at FROM members WHERE first_name ILIKE $1 OR last_name ILIKE $1 ORDER BY last_name")).
		WithArgs("%ann%").
		WillReturnRows(rows)

	members, err := repo.Search(context.Background(), "ann")
	require.NoError(t, err)
	require.Len(t, members, 2)
}

func TestDeleteMember(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM members WHERE member_id = $1")).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 8))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM members WHERE member_id = $1")).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 9)
	require.Equal(t, ErrMemberNotFound, err)
}

func TestGoals(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	now := time.Now()
	goalCols := []string{"goal_id", "member_id", "goal_type", "target_value", "is_active", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO fitness_goals (member_id, goal_type, target_value) VALUES ($1, $2, $3) RETURNING goal_id, member_id, goal_type, target_value, is_active, created_at")).
		WithArgs(1, "weight_loss", 75.5).
		WillReturnRows(sqlmock.NewRows(goalCols).AddRow(3, 1, "weight_loss", 75.5, true, now))

	g, err := repo.AddGoal(context.Background(), 1, "weight_loss", 75.5)
	require.NoError(t, err)
	require.True(t, g.IsActive)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT goal_id, member_id, goal_type, target_value, is_active, created_at FROM fitness_goals WHERE member_id = $1 AND is_active = TRUE ORDER BY goal_id")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(goalCols).AddRow(3, 1, "weight_loss", 75.5, true, now))

	goals, err := repo.ListGoals(context.Background(), 1, true)
	require.NoError(t, err)
	require.Len(t, goals, 1)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM fitness_goals WHERE goal_id = $1 AND member_id = $2")).
		WithArgs(3, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteGoal(context.Background(), 2, 3)
	require.Equal(t, ErrGoalNotFound, err)
}

func TestMetrics(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	now := time.Now()
	cols := []string{"metric_id", "member_id", "weight", "heart_rate", "body_fat", "recorded_at"}
	weight := 82.5

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO health_metrics (member_id, weight, heart_rate, body_fat) VALUES ($1, $2, $3, $4) RETURNING metric_id, member_id, weight, heart_rate, body_fat, recorded_at")).
		WithArgs(1, &weight, nil, nil).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(4, 1, 82.5, nil, nil, now))

	m, err := repo.AddMetric(context.Background(), 1, &weight, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 4, m.ID)
}
