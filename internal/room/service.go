package room

import (
	"context"
	"database/sql"
	"errors"

	"github.com/GurjasChalana/fitness-club/internal/apperr"
)

var (
	ErrRoomNotFound      = apperr.NotFound("room not found")
	ErrRoomNameTaken     = apperr.Conflict("a room with that name already exists")
	ErrEquipmentNotFound = apperr.NotFound("equipment not found")
	ErrIssueNotFound     = apperr.NotFound("maintenance log not found or already resolved")
)

type Service interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error)
	GetRoom(ctx context.Context, id int) (*Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	DeleteRoom(ctx context.Context, id int) error

	AddEquipment(ctx context.Context, roomID int, req AddEquipmentRequest) (*Equipment, error)
	ListEquipment(ctx context.Context, roomID int) ([]Equipment, error)
	DeleteEquipment(ctx context.Context, roomID, equipmentID int) error

	ReportIssue(ctx context.Context, equipmentID int, req ReportIssueRequest) (*MaintenanceLog, error)
	ResolveIssue(ctx context.Context, logID int, req ResolveIssueRequest) (*MaintenanceLog, error)
	ListOpenIssues(ctx context.Context) ([]MaintenanceLog, error)
	ListEquipmentIssues(ctx context.Context, equipmentID int) ([]MaintenanceLog, error)
	DeleteIssue(ctx context.Context, logID int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	return s.repo.Create(ctx, req.Name, req.Capacity)
}

func (s *service) GetRoom(ctx context.Context, id int) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (s *service) ListRooms(ctx context.Context) ([]Room, error) {
	return s.repo.List(ctx)
}

func (s *service) DeleteRoom(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) AddEquipment(ctx context.Context, roomID int, req AddEquipmentRequest) (*Equipment, error) {
	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return s.repo.AddEquipment(ctx, roomID, req.Name)
}

func (s *service) ListEquipment(ctx context.Context, roomID int) ([]Equipment, error) {
	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return s.repo.ListEquipment(ctx, roomID)
}

func (s *service) DeleteEquipment(ctx context.Context, roomID, equipmentID int) error {
	return s.repo.DeleteEquipment(ctx, roomID, equipmentID)
}

func (s *service) ReportIssue(ctx context.Context, equipmentID int, req ReportIssueRequest) (*MaintenanceLog, error) {
	return s.repo.ReportIssue(ctx, equipmentID, req.IssueDescription)
}

func (s *service) ResolveIssue(ctx context.Context, logID int, req ResolveIssueRequest) (*MaintenanceLog, error) {
	return s.repo.ResolveIssue(ctx, logID, req.ResolutionNotes)
}

func (s *service) ListOpenIssues(ctx context.Context) ([]MaintenanceLog, error) {
	return s.repo.ListOpenIssues(ctx)
}

func (s *service) ListEquipmentIssues(ctx context.Context, equipmentID int) ([]MaintenanceLog, error) {
	return s.repo.ListEquipmentIssues(ctx, equipmentID)
}

func (s *service) DeleteIssue(ctx context.Context, logID int) error {
	return s.repo.DeleteIssue(ctx, logID)
}
