package trainer

import "time"

type Trainer struct {
	ID            int       `db:"trainer_id" json:"trainer_id"`
	FirstName     string    `db:"first_name" json:"first_name"`
	LastName      string    `db:"last_name" json:"last_name"`
	Email         string    `db:"email" json:"email"`
	Certification *string   `db:"certification" json:"certification,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type TrainerSummary struct {
	ID            int     `db:"trainer_id" json:"trainer_id"`
	FullName      string  `db:"full_name" json:"full_name"`
	Certification *string `db:"certification" json:"certification,omitempty"`
}

// AvailabilitySlot is an open-time interval a trainer may be booked in.
// Slots for one trainer never overlap; the repository enforces this on
// insert and update.
type AvailabilitySlot struct {
	ID        int       `db:"availability_id" json:"availability_id"`
	TrainerID int       `db:"trainer_id" json:"trainer_id"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
}

type CreateTrainerRequest struct {
	FirstName     string  `json:"first_name" binding:"required"`
	LastName      string  `json:"last_name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Certification *string `json:"certification,omitempty"`
}

type SlotRequest struct {
	StartTime string  `json:"start_time" binding:"required,rfc3339"`
	EndTime   string  `json:"end_time" binding:"required,rfc3339"`
	Notes     *string `json:"notes,omitempty"`
}
