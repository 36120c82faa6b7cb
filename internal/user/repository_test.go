package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/GurjasChalana/fitness-club/internal/auth"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestCreateWithMember(t *testing.T) {
	repo, mock := setupMock(t)
	memberID := 10

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO members (first_name, last_name, email) VALUES ($1, $2, $3) RETURNING member_id")).
		WithArgs("Ana", "Ruiz", "ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"member_id"}).AddRow(memberID))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name, email, password_hash, role, member_id) VALUES ($1, $2, $3, $4, $5)")).
		WithArgs("Ana Ruiz", "ana@example.com", "hash", auth.RoleMember, memberID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "member_id", "trainer_id", "created_at"}).
			AddRow(1, "Ana Ruiz", "ana@example.com", "hash", auth.RoleMember, memberID, nil, time.Now()))
	mock.ExpectCommit()

	u, err := repo.CreateWithMember(context.Background(), "Ana", "Ruiz", "ana@example.com", "hash")
	require.NoError(t, err)
	require.Equal(t, auth.RoleMember, u.Role)
	require.NotNil(t, u.MemberID)
	require.Equal(t, memberID, *u.MemberID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailExists(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)")).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.True(t, exists)
}
