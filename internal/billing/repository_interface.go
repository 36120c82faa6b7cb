package billing

import (
	"context"
	"time"
)

type Repository interface {
	CreateInvoice(ctx context.Context, memberID int, dueDate *time.Time, notes *string, items []ItemRequest) (*Invoice, error)
	GetInvoice(ctx context.Context, invoiceID int) (*InvoiceDetail, error)
	ListByMember(ctx context.Context, memberID int) ([]Invoice, error)
	AddPayment(ctx context.Context, invoiceID int, amountCents int64, method, reference *string) (*Payment, error)
}
