package member

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, firstName, lastName, email string, dateOfBirth *time.Time, gender, phone *string) (*Member, error) {
	query := `
		INSERT INTO members (first_name, last_name, email, date_of_birth, gender, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING member_id, first_name, last_name, email, date_of_birth, gender, phone, created_at
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, firstName, lastName, email, dateOfBirth, gender, phone)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Member, error) {
	query := `
		SELECT member_id, first_name, last_name, email, date_of_birth, gender, phone, created_at
		FROM members
		WHERE member_id = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) Search(ctx context.Context, name string) ([]Member, error) {
	query := `
		SELECT member_id, first_name, last_name, email, date_of_birth, gender, phone, created_at
		FROM members
		WHERE first_name ILIKE $1 OR last_name ILIKE $1
		ORDER BY last_name
	`

	var members []Member
	err := r.db.SelectContext(ctx, &members, query, "%"+name+"%")
	if err != nil {
		return nil, err
	}

	return members, nil
}

// UpdateProfile applies the closed set of updatable fields. COALESCE keeps
// columns whose request field was omitted.
func (r *repository) UpdateProfile(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error) {
	query := `
		UPDATE members
		SET first_name = COALESCE($2, first_name),
		    last_name  = COALESCE($3, last_name),
		    email      = COALESCE($4, email),
		    gender     = COALESCE($5, gender),
		    phone      = COALESCE($6, phone)
		WHERE member_id = $1
		RETURNING member_id, first_name, last_name, email, date_of_birth, gender, phone, created_at
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id, req.FirstName, req.LastName, req.Email, req.Gender, req.Phone)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	// child rows (goals, metrics, registrations, sessions, invoices) go
	// with the member via ON DELETE CASCADE
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE member_id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

func (r *repository) ListGoals(ctx context.Context, memberID int, activeOnly bool) ([]FitnessGoal, error) {
	query := `
		SELECT goal_id, member_id, goal_type, target_value, is_active, created_at
		FROM fitness_goals
		WHERE member_id = $1
	`
	if activeOnly {
		query += " AND is_active = TRUE"
	}
	query += " ORDER BY goal_id"

	var goals []FitnessGoal
	err := r.db.SelectContext(ctx, &goals, query, memberID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *repository) AddGoal(ctx context.Context, memberID int, goalType string, targetValue float64) (*FitnessGoal, error) {
	query := `
		INSERT INTO fitness_goals (member_id, goal_type, target_value)
		VALUES ($1, $2, $3)
		RETURNING goal_id, member_id, goal_type, target_value, is_active, created_at
	`

	var g FitnessGoal
	err := r.db.GetContext(ctx, &g, query, memberID, goalType, targetValue)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) DeleteGoal(ctx context.Context, memberID, goalID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM fitness_goals WHERE goal_id = $1 AND member_id = $2`,
		goalID, memberID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *repository) ListMetrics(ctx context.Context, memberID int) ([]HealthMetric, error) {
	query := `
		SELECT metric_id, member_id, weight, heart_rate, body_fat, recorded_at
		FROM health_metrics
		WHERE member_id = $1
		ORDER BY recorded_at DESC
	`

	var metrics []HealthMetric
	err := r.db.SelectContext(ctx, &metrics, query, memberID)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

func (r *repository) AddMetric(ctx context.Context, memberID int, weight *float64, heartRate *int, bodyFat *float64) (*HealthMetric, error) {
	query := `
		INSERT INTO health_metrics (member_id, weight, heart_rate, body_fat)
		VALUES ($1, $2, $3, $4)
		RETURNING metric_id, member_id, weight, heart_rate, body_fat, recorded_at
	`

	var m HealthMetric
	err := r.db.GetContext(ctx, &m, query, memberID, weight, heartRate, bodyFat)
	if err != nil {
		return nil, err
	}

	return &m, nil
}
