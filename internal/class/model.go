package class

import "time"

const (
	StatusScheduled = "SCHEDULED"
	StatusCancelled = "CANCELLED"
)

type Class struct {
	ID        int       `db:"class_id" json:"class_id"`
	Name      string    `db:"class_name" json:"class_name"`
	TrainerID *int      `db:"trainer_id" json:"trainer_id,omitempty"`
	RoomID    *int      `db:"room_id" json:"room_id,omitempty"`
	ClassTime time.Time `db:"class_time" json:"class_time"`
	Capacity  int       `db:"capacity" json:"capacity"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AvailableClass is a listing row with the current enrollment count.
type AvailableClass struct {
	Class
	Enrolled int `db:"enrolled" json:"enrolled"`
}

type CreateClassRequest struct {
	Name      string `json:"class_name" binding:"required"`
	TrainerID *int   `json:"trainer_id,omitempty"`
	RoomID    *int   `json:"room_id,omitempty"`
	ClassTime string `json:"class_time" binding:"required,rfc3339"`
	Capacity  int    `json:"capacity" binding:"required,gt=0"`
}

// UpdateClassRequest carries field overrides. Checks run against the
// merged existing-or-overridden values before anything is applied.
type UpdateClassRequest struct {
	Name      *string `json:"class_name,omitempty"`
	TrainerID *int    `json:"trainer_id,omitempty"`
	RoomID    *int    `json:"room_id,omitempty"`
	ClassTime *string `json:"class_time,omitempty" binding:"omitempty,rfc3339"`
	Capacity  *int    `json:"capacity,omitempty" binding:"omitempty,gt=0"`
}
