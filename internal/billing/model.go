package billing

import "time"

const (
	StatusUnpaid  = "UNPAID"
	StatusPartial = "PARTIAL"
	StatusPaid    = "PAID"
)

// Monetary amounts are integer cents throughout. Floats never touch
// invoice arithmetic.
type Invoice struct {
	ID               int       `db:"invoice_id" json:"invoice_id"`
	MemberID         int       `db:"member_id" json:"member_id"`
	IssueDate        time.Time `db:"issue_date" json:"issue_date"`
	DueDate          *time.Time `db:"due_date" json:"due_date,omitempty"`
	TotalAmountCents int64     `db:"total_amount_cents" json:"total_amount_cents"`
	Status           string    `db:"status" json:"status"`
	Notes            *string   `db:"notes" json:"notes,omitempty"`
}

type InvoiceItem struct {
	ID             int     `db:"item_id" json:"item_id"`
	InvoiceID      int     `db:"invoice_id" json:"invoice_id"`
	Description    *string `db:"description" json:"description,omitempty"`
	Quantity       int     `db:"quantity" json:"quantity"`
	UnitPriceCents int64   `db:"unit_price_cents" json:"unit_price_cents"`
}

type Payment struct {
	ID            int       `db:"payment_id" json:"payment_id"`
	InvoiceID     int       `db:"invoice_id" json:"invoice_id"`
	AmountCents   int64     `db:"amount_cents" json:"amount_cents"`
	PaymentMethod *string   `db:"payment_method" json:"payment_method,omitempty"`
	Reference     *string   `db:"reference" json:"reference,omitempty"`
	PaidAt        time.Time `db:"paid_at" json:"paid_at"`
}

// InvoiceDetail bundles an invoice with its items, payments and the sum
// paid so far.
type InvoiceDetail struct {
	Invoice   Invoice       `json:"invoice"`
	Items     []InvoiceItem `json:"items"`
	Payments  []Payment     `json:"payments"`
	PaidCents int64         `json:"paid_cents"`
}

type ItemRequest struct {
	Description    *string `json:"description,omitempty"`
	Quantity       int     `json:"quantity" binding:"required,gt=0"`
	UnitPriceCents int64   `json:"unit_price_cents" binding:"required,gt=0"`
}

type CreateInvoiceRequest struct {
	DueDate *string       `json:"due_date,omitempty"`
	Notes   *string       `json:"notes,omitempty"`
	Items   []ItemRequest `json:"items" binding:"required,min=1,dive"`
}

type PaymentRequest struct {
	AmountCents   int64   `json:"amount_cents" binding:"required,gt=0"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Reference     *string `json:"reference,omitempty"`
}
