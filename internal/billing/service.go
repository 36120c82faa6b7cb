package billing

import (
	"context"
	"time"

	"github.com/GurjasChalana/fitness-club/internal/apperr"
	"github.com/GurjasChalana/fitness-club/internal/metrics"
)

var (
	ErrInvoiceNotFound = apperr.NotFound("invoice not found")
	ErrOverpayment     = apperr.LimitExceeded("payment exceeds remaining invoice balance")
)

type Service interface {
	CreateInvoice(ctx context.Context, memberID int, req CreateInvoiceRequest) (*Invoice, error)
	GetInvoice(ctx context.Context, invoiceID int) (*InvoiceDetail, error)
	ListByMember(ctx context.Context, memberID int) ([]Invoice, error)
	AddPayment(ctx context.Context, invoiceID int, req PaymentRequest) (*Payment, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateInvoice(ctx context.Context, memberID int, req CreateInvoiceRequest) (*Invoice, error) {
	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, apperr.Validation("due_date must be YYYY-MM-DD")
		}
		dueDate = &parsed
	}
	return s.repo.CreateInvoice(ctx, memberID, dueDate, req.Notes, req.Items)
}

func (s *service) GetInvoice(ctx context.Context, invoiceID int) (*InvoiceDetail, error) {
	return s.repo.GetInvoice(ctx, invoiceID)
}

func (s *service) ListByMember(ctx context.Context, memberID int) ([]Invoice, error) {
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) AddPayment(ctx context.Context, invoiceID int, req PaymentRequest) (*Payment, error) {
	payment, err := s.repo.AddPayment(ctx, invoiceID, req.AmountCents, req.PaymentMethod, req.Reference)
	if err != nil {
		return nil, err
	}
	metrics.RecordPayment()
	return payment, nil
}
