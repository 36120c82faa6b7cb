package user

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/GurjasChalana/fitness-club/internal/auth"
)

const userColumns = `id, name, email, password_hash, role, member_id, trainer_id, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithMember(ctx context.Context, firstName, lastName, email, passwordHash string) (*User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var memberID int
	err = tx.GetContext(ctx, &memberID, `
		INSERT INTO members (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING member_id
	`, firstName, lastName, email)
	if err != nil {
		return nil, err
	}

	var u User
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO users (name, email, password_hash, role, member_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns+`
	`, firstName+" "+lastName, email, passwordHash, auth.RoleMember, memberID).StructScan(&u)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err != nil {
		return false, err
	}
	return exists, nil
}
