package billing

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

const invoiceColumns = `invoice_id, member_id, issue_date, due_date, total_amount_cents, status, notes`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateInvoice inserts the invoice and its items in one transaction.
// The total is the sum of quantity times unit price over the items.
func (r *repository) CreateInvoice(ctx context.Context, memberID int, dueDate *time.Time, notes *string, items []ItemRequest) (*Invoice, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var total int64
	for _, item := range items {
		total += int64(item.Quantity) * item.UnitPriceCents
	}

	var inv Invoice
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO invoices (member_id, due_date, total_amount_cents, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+invoiceColumns+`
	`, memberID, dueDate, total, StatusUnpaid, notes).StructScan(&inv)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO invoice_items (invoice_id, description, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4)
		`, inv.ID, item.Description, item.Quantity, item.UnitPriceCents)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &inv, nil
}

func (r *repository) GetInvoice(ctx context.Context, invoiceID int) (*InvoiceDetail, error) {
	var detail InvoiceDetail

	err := r.db.GetContext(ctx, &detail.Invoice, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE invoice_id = $1
	`, invoiceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	err = r.db.SelectContext(ctx, &detail.Items, `
		SELECT item_id, invoice_id, description, quantity, unit_price_cents
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY item_id
	`, invoiceID)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &detail.Payments, `
		SELECT payment_id, invoice_id, amount_cents, payment_method, reference, paid_at
		FROM payments
		WHERE invoice_id = $1
		ORDER BY paid_at
	`, invoiceID)
	if err != nil {
		return nil, err
	}

	for _, p := range detail.Payments {
		detail.PaidCents += p.AmountCents
	}

	return &detail, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Invoice, error) {
	var invoices []Invoice
	err := r.db.SelectContext(ctx, &invoices, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE member_id = $1
		ORDER BY invoice_id
	`, memberID)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// AddPayment locks the invoice row, rejects a payment that would push the
// paid sum past the total, then records the payment and recomputes the
// invoice status from the new sum.
func (r *repository) AddPayment(ctx context.Context, invoiceID int, amountCents int64, method, reference *string) (*Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var inv struct {
		TotalAmountCents int64 `db:"total_amount_cents"`
	}
	err = tx.GetContext(ctx, &inv, `
		SELECT total_amount_cents
		FROM invoices
		WHERE invoice_id = $1
		FOR UPDATE
	`, invoiceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	var paid int64
	err = tx.GetContext(ctx, &paid, `
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM payments
		WHERE invoice_id = $1
	`, invoiceID)
	if err != nil {
		return nil, err
	}

	if paid+amountCents > inv.TotalAmountCents {
		return nil, ErrOverpayment
	}

	var payment Payment
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO payments (invoice_id, amount_cents, payment_method, reference)
		VALUES ($1, $2, $3, $4)
		RETURNING payment_id, invoice_id, amount_cents, payment_method, reference, paid_at
	`, invoiceID, amountCents, method, reference).StructScan(&payment)
	if err != nil {
		return nil, err
	}

	newPaid := paid + amountCents
	status := StatusPartial
	switch {
	case newPaid == inv.TotalAmountCents:
		status = StatusPaid
	case newPaid == 0:
		status = StatusUnpaid
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE invoices SET status = $2 WHERE invoice_id = $1
	`, invoiceID, status)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &payment, nil
}
