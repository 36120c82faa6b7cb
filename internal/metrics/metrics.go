package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitnessclub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitnessclub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SessionsBookedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitnessclub_pt_sessions_booked_total",
			Help: "Total number of personal training sessions booked",
		},
	)

	SessionsCancelledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitnessclub_pt_sessions_cancelled_total",
			Help: "Total number of personal training sessions cancelled",
		},
	)

	BookingConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitnessclub_booking_conflicts_total",
			Help: "Total number of bookings rejected by the conflict checks",
		},
		[]string{"reason"},
	)

	ClassRegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitnessclub_class_registrations_total",
			Help: "Total number of class registration attempts",
		},
		[]string{"outcome"},
	)

	PaymentsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitnessclub_payments_recorded_total",
			Help: "Total number of invoice payments recorded",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitnessclub_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitnessclub_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSessionBooked() {
	SessionsBookedTotal.Inc()
}

func RecordSessionCancelled() {
	SessionsCancelledTotal.Inc()
}

func RecordBookingConflict(reason string) {
	BookingConflictsTotal.WithLabelValues(reason).Inc()
}

func RecordClassRegistration(outcome string) {
	ClassRegistrationsTotal.WithLabelValues(outcome).Inc()
}

func RecordPayment() {
	PaymentsRecordedTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
