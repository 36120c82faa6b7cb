package billing

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func invoiceRows(id, memberID int, totalCents int64, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"invoice_id", "member_id", "issue_date", "due_date", "total_amount_cents", "status", "notes"}).
		AddRow(id, memberID, time.Now(), nil, totalCents, status, nil)
}

func expectInvoiceLock(mock sqlmock.Sqlmock, invoiceID int, totalCents int64) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT total_amount_cents FROM invoices WHERE invoice_id = $1 FOR UPDATE")).
		WithArgs(invoiceID).
		WillReturnRows(sqlmock.NewRows([]string{"total_amount_cents"}).AddRow(totalCents))
}

func expectPaidSum(mock sqlmock.Sqlmock, invoiceID int, paid int64) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE invoice_id = $1")).
		WithArgs(invoiceID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(paid))
}

func expectPaymentInsert(mock sqlmock.Sqlmock, invoiceID int, amount int64) {
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments (invoice_id, amount_cents, payment_method, reference) VALUES ($1, $2, $3, $4)")).
		WithArgs(invoiceID, amount, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id", "invoice_id", "amount_cents", "payment_method", "reference", "paid_at"}).
			AddRow(1, invoiceID, amount, nil, nil, time.Now()))
}

func expectStatusUpdate(mock sqlmock.Sqlmock, invoiceID int, status string) {
	mock.ExpectExec(regexp.QuoteMeta("UPDATE invoices SET status = $2 WHERE invoice_id = $1")).
		WithArgs(invoiceID, status).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestCreateInvoiceSumsItems(t *testing.T) {
	repo, mock := setupMock(t)

	desc := "PT package"
	items := []ItemRequest{
		{Description: &desc, Quantity: 4, UnitPriceCents: 2000},
		{Quantity: 1, UnitPriceCents: 2000},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO invoices (member_id, due_date, total_amount_cents, status, notes) VALUES ($1, $2, $3, $4, $5)")).
		WithArgs(1, nil, int64(10000), StatusUnpaid, nil).
		WillReturnRows(invoiceRows(1, 1, 10000, StatusUnpaid))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO invoice_items (invoice_id, description, quantity, unit_price_cents) VALUES ($1, $2, $3, $4)")).
		WithArgs(1, &desc, 4, int64(2000)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO invoice_items (invoice_id, description, quantity, unit_price_cents) VALUES ($1, $2, $3, $4)")).
		WithArgs(1, nil, 1, int64(2000)).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	inv, err := repo.CreateInvoice(context.Background(), 1, nil, nil, items)
	require.NoError(t, err)
	require.Equal(t, int64(10000), inv.TotalAmountCents)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Invoice total 100.00: a 60.00 payment leaves it PARTIAL, a further
// 40.00 makes it PAID, and one more cent is rejected with nothing
// written.
func TestPaymentLifecycle(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectBegin()
	expectInvoiceLock(mock, 1, 10000)
	expectPaidSum(mock, 1, 0)
	expectPaymentInsert(mock, 1, 6000)
	expectStatusUpdate(mock, 1, StatusPartial)
	mock.ExpectCommit()

	_, err := repo.AddPayment(context.Background(), 1, 6000, nil, nil)
	require.NoError(t, err)

	mock.ExpectBegin()
	expectInvoiceLock(mock, 1, 10000)
	expectPaidSum(mock, 1, 6000)
	expectPaymentInsert(mock, 1, 4000)
	expectStatusUpdate(mock, 1, StatusPaid)
	mock.ExpectCommit()

	_, err = repo.AddPayment(context.Background(), 1, 4000, nil, nil)
	require.NoError(t, err)

	mock.ExpectBegin()
	expectInvoiceLock(mock, 1, 10000)
	expectPaidSum(mock, 1, 10000)
	mock.ExpectRollback()

	_, err = repo.AddPayment(context.Background(), 1, 1, nil, nil)
	require.Equal(t, ErrOverpayment, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddPaymentUnknownInvoice(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT total_amount_cents FROM invoices WHERE invoice_id = $1 FOR UPDATE")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"total_amount_cents"}))
	mock.ExpectRollback()

	_, err := repo.AddPayment(context.Background(), 99, 100, nil, nil)
	require.Equal(t, ErrInvoiceNotFound, err)
}

func TestGetInvoiceSumsPayments(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM invoices WHERE invoice_id = $1")).
		WithArgs(1).
		WillReturnRows(invoiceRows(1, 1, 10000, StatusPartial))
	mock.ExpectQuery(regexp.QuoteMeta("FROM invoice_items WHERE invoice_id = $1 ORDER BY item_id")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "invoice_id", "description", "quantity", "unit_price_cents"}).
			AddRow(1, 1, nil, 5, 2000))
	mock.ExpectQuery(regexp.QuoteMeta("FROM payments WHERE invoice_id = $1 ORDER BY paid_at")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id", "invoice_id", "amount_cents", "payment_method", "reference", "paid_at"}).
			AddRow(1, 1, 6000, nil, nil, time.Now()))

	detail, err := repo.GetInvoice(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(6000), detail.PaidCents)
	require.Len(t, detail.Items, 1)
}
