package registration

import "time"

type Registration struct {
	MemberID     int       `db:"member_id" json:"member_id"`
	ClassID      int       `db:"class_id" json:"class_id"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
}

// ScheduleEntry is a class on a member's schedule.
type ScheduleEntry struct {
	ClassID      int       `db:"class_id" json:"class_id"`
	ClassName    string    `db:"class_name" json:"class_name"`
	ClassTime    time.Time `db:"class_time" json:"class_time"`
	Status       string    `db:"status" json:"status"`
	RoomID       *int      `db:"room_id" json:"room_id,omitempty"`
	TrainerID    *int      `db:"trainer_id" json:"trainer_id,omitempty"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
}
