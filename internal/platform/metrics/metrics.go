package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RegistrationsStarted prometheus.Counter
	UsersCreated         prometheus.Counter
	OTPDeliveryFailures  prometheus.Counter
	OTPVerifyFailures    *prometheus.CounterVec
	PendingSwept         prometheus.Counter
	AssessmentsScored    prometheus.Counter
	Logins               prometheus.Counter
	HTTPDuration         *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RegistrationsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "disha_registrations_started_total",
			Help: "Registration intake requests that passed validation and stored a pending record",
		}),
		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "disha_users_created_total",
			Help: "Users committed to the durable store after OTP verification",
		}),
		OTPDeliveryFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "disha_otp_delivery_failures_total",
			Help: "SMS delivery attempts that failed and rolled back the pending record",
		}),
		OTPVerifyFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "disha_otp_verify_failures_total",
			Help: "OTP verification failures by reason",
		}, []string{"reason"}),
		PendingSwept: promauto.NewCounter(prometheus.CounterOpts{
			Name: "disha_pending_registrations_swept_total",
			Help: "Expired pending registrations removed by the background sweep",
		}),
		AssessmentsScored: promauto.NewCounter(prometheus.CounterOpts{
			Name: "disha_assessments_scored_total",
			Help: "Career assessments scored",
		}),
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "disha_logins_total",
			Help: "Successful logins",
		}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "disha_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status class",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"route", "status"}),
	}
}

// ObserveHTTP records one HTTP request observation. Safe on a nil receiver
// so tests can run without a registry.
func (m *Metrics) ObserveHTTP(route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPDuration.WithLabelValues(route, status).Observe(d.Seconds())
}

// IncOTPVerifyFailure records one failed verification with its reason
// (not_found, expired, too_many_attempts, invalid_code, duplicate).
func (m *Metrics) IncOTPVerifyFailure(reason string) {
	if m == nil {
		return
	}
	m.OTPVerifyFailures.WithLabelValues(reason).Inc()
}
