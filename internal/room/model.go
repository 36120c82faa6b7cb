package room

import "time"

const (
	EquipmentOperational = "OPERATIONAL"
	EquipmentUnderRepair = "UNDER_REPAIR"

	MaintenanceOpen     = "OPEN"
	MaintenanceResolved = "RESOLVED"
)

type Room struct {
	ID        int       `db:"room_id" json:"room_id"`
	Name      string    `db:"room_name" json:"room_name"`
	Capacity  int       `db:"capacity" json:"capacity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Equipment struct {
	ID     int    `db:"equipment_id" json:"equipment_id"`
	RoomID int    `db:"room_id" json:"room_id"`
	Name   string `db:"equipment_name" json:"equipment_name"`
	Status string `db:"status" json:"status"`
}

type MaintenanceLog struct {
	ID               int        `db:"log_id" json:"log_id"`
	EquipmentID      int        `db:"equipment_id" json:"equipment_id"`
	IssueDescription *string    `db:"issue_description" json:"issue_description,omitempty"`
	Status           string     `db:"status" json:"status"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	ResolvedAt       *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
	ResolutionNotes  *string    `db:"resolution_notes" json:"resolution_notes,omitempty"`
}

type CreateRoomRequest struct {
	Name     string `json:"room_name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

type AddEquipmentRequest struct {
	Name string `json:"equipment_name" binding:"required"`
}

type ReportIssueRequest struct {
	IssueDescription string `json:"issue_description" binding:"required"`
}

type ResolveIssueRequest struct {
	ResolutionNotes *string `json:"resolution_notes,omitempty"`
}
