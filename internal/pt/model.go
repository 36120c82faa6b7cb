package pt

import "time"

const (
	StatusScheduled = "SCHEDULED"
	StatusCancelled = "CANCELLED"
)

type Session struct {
	ID          int       `db:"session_id" json:"session_id"`
	MemberID    int       `db:"member_id" json:"member_id"`
	TrainerID   int       `db:"trainer_id" json:"trainer_id"`
	RoomID      *int      `db:"room_id" json:"room_id,omitempty"`
	StartTime   time.Time `db:"start_time" json:"start_time"`
	EndTime     time.Time `db:"end_time" json:"end_time"`
	SessionType *string   `db:"session_type" json:"session_type,omitempty"`
	Notes       *string   `db:"notes" json:"notes,omitempty"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type BookRequest struct {
	TrainerID   int     `json:"trainer_id" binding:"required"`
	RoomID      *int    `json:"room_id,omitempty"`
	StartTime   string  `json:"start_time" binding:"required,rfc3339"`
	EndTime     string  `json:"end_time" binding:"required,rfc3339"`
	SessionType *string `json:"session_type,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// RescheduleRequest overwrites the session interval and details in place.
// Member and trainer identity are preserved.
type RescheduleRequest struct {
	RoomID      *int    `json:"room_id,omitempty"`
	StartTime   string  `json:"start_time" binding:"required,rfc3339"`
	EndTime     string  `json:"end_time" binding:"required,rfc3339"`
	SessionType *string `json:"session_type,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}
