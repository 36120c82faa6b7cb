package room

import "context"

type Repository interface {
	Create(ctx context.Context, name string, capacity int) (*Room, error)
	GetByID(ctx context.Context, id int) (*Room, error)
	List(ctx context.Context) ([]Room, error)
	Delete(ctx context.Context, id int) error

	AddEquipment(ctx context.Context, roomID int, name string) (*Equipment, error)
	ListEquipment(ctx context.Context, roomID int) ([]Equipment, error)
	DeleteEquipment(ctx context.Context, roomID, equipmentID int) error

	ReportIssue(ctx context.Context, equipmentID int, description string) (*MaintenanceLog, error)
	ResolveIssue(ctx context.Context, logID int, notes *string) (*MaintenanceLog, error)
	ListOpenIssues(ctx context.Context) ([]MaintenanceLog, error)
	ListEquipmentIssues(ctx context.Context, equipmentID int) ([]MaintenanceLog, error)
	DeleteIssue(ctx context.Context, logID int) error
}
