package member

import "time"

type Member struct {
	ID          int        `db:"member_id" json:"member_id"`
	FirstName   string     `db:"first_name" json:"first_name"`
	LastName    string     `db:"last_name" json:"last_name"`
	Email       string     `db:"email" json:"email"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender      *string    `db:"gender" json:"gender,omitempty"`
	Phone       *string    `db:"phone" json:"phone,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

type FitnessGoal struct {
	ID          int       `db:"goal_id" json:"goal_id"`
	MemberID    int       `db:"member_id" json:"member_id"`
	GoalType    string    `db:"goal_type" json:"goal_type"`
	TargetValue float64   `db:"target_value" json:"target_value"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type HealthMetric struct {
	ID         int       `db:"metric_id" json:"metric_id"`
	MemberID   int       `db:"member_id" json:"member_id"`
	Weight     *float64  `db:"weight" json:"weight,omitempty"`
	HeartRate  *int      `db:"heart_rate" json:"heart_rate,omitempty"`
	BodyFat    *float64  `db:"body_fat" json:"body_fat,omitempty"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
}

type CreateMemberRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

// UpdateMemberRequest is the closed set of updatable profile fields. Only
// fields present in the request are applied.
type UpdateMemberRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Gender    *string `json:"gender,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type AddGoalRequest struct {
	GoalType    string  `json:"goal_type" binding:"required"`
	TargetValue float64 `json:"target_value" binding:"required,gt=0"`
}

type AddMetricRequest struct {
	Weight    *float64 `json:"weight,omitempty"`
	HeartRate *int     `json:"heart_rate,omitempty"`
	BodyFat   *float64 `json:"body_fat,omitempty"`
}
