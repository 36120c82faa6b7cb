package dashboard

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Overview struct {
	Members          int   `db:"members" json:"members"`
	Trainers         int   `db:"trainers" json:"trainers"`
	Rooms            int   `db:"rooms" json:"rooms"`
	UpcomingClasses  int   `db:"upcoming_classes" json:"upcoming_classes"`
	UpcomingSessions int   `db:"upcoming_sessions" json:"upcoming_sessions"`
	OpenIssues       int   `db:"open_issues" json:"open_issues"`
	UnpaidInvoices   int   `db:"unpaid_invoices" json:"unpaid_invoices"`
	OutstandingCents int64 `db:"outstanding_cents" json:"outstanding_cents"`
}

type SessionStatsByDay struct {
	Bucket            string `db:"bucket" json:"bucket"`
	SessionsScheduled int    `db:"sessions_scheduled" json:"sessions_scheduled"`
	SessionsCancelled int    `db:"sessions_cancelled" json:"sessions_cancelled"`
}

type TrainerLoad struct {
	TrainerID   int    `db:"trainer_id" json:"trainer_id"`
	TrainerName string `db:"trainer_name" json:"trainer_name"`
	Sessions    int    `db:"sessions" json:"sessions"`
	Classes     int    `db:"classes" json:"classes"`
}

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetOverview(ctx context.Context, now time.Time) (*Overview, error) {
	query := `
SELECT
  (SELECT COUNT(*) FROM members)  AS members,
  (SELECT COUNT(*) FROM trainers) AS trainers,
  (SELECT COUNT(*) FROM rooms)    AS rooms,
  (SELECT COUNT(*) FROM group_classes
     WHERE status = 'SCHEDULED' AND class_time > $1)  AS upcoming_classes,
  (SELECT COUNT(*) FROM personal_training_sessions
     WHERE status = 'SCHEDULED' AND start_time > $1)  AS upcoming_sessions,
  (SELECT COUNT(*) FROM maintenance_logs WHERE status = 'OPEN') AS open_issues,
  (SELECT COUNT(*) FROM invoices WHERE status <> 'PAID')        AS unpaid_invoices,
  (SELECT COALESCE(SUM(i.total_amount_cents - COALESCE(p.paid, 0)), 0)
     FROM invoices i
     LEFT JOIN (
       SELECT invoice_id, SUM(amount_cents) AS paid
       FROM payments GROUP BY invoice_id
     ) p ON p.invoice_id = i.invoice_id
     WHERE i.status <> 'PAID') AS outstanding_cents;
`
	var o Overview
	if err := r.db.GetContext(ctx, &o, query, now); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) GetSessionStatsByDay(ctx context.Context, from, to time.Time) ([]SessionStatsByDay, error) {
	query := `
SELECT
  DATE(created_at)::text AS bucket,
  COUNT(*) FILTER (WHERE status = 'SCHEDULED') AS sessions_scheduled,
  COUNT(*) FILTER (WHERE status = 'CANCELLED') AS sessions_cancelled
FROM personal_training_sessions
WHERE created_at BETWEEN $1 AND $2
GROUP BY DATE(created_at)
ORDER BY bucket;
`
	var stats []SessionStatsByDay
	if err := r.db.SelectContext(ctx, &stats, query, from, to); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *Repository) GetTrainerLoad(ctx context.Context, from, to time.Time) ([]TrainerLoad, error) {
	query := `
SELECT
  t.trainer_id,
  CONCAT(t.first_name, ' ', t.last_name) AS trainer_name,
  (SELECT COUNT(*) FROM personal_training_sessions s
     WHERE s.trainer_id = t.trainer_id AND s.status = 'SCHEDULED'
       AND s.start_time BETWEEN $1 AND $2) AS sessions,
  (SELECT COUNT(*) FROM group_classes c
     WHERE c.trainer_id = t.trainer_id AND c.status = 'SCHEDULED'
       AND c.class_time BETWEEN $1 AND $2) AS classes
FROM trainers t
ORDER BY t.trainer_id;
`
	var load []TrainerLoad
	if err := r.db.SelectContext(ctx, &load, query, from, to); err != nil {
		return nil, err
	}
	return load, nil
}
