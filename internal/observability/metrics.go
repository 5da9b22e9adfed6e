// Package observability exposes prometheus instrumentation for the API.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registrationsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitlife",
		Subsystem: "accounts",
		Name:      "registrations_total",
		Help:      "Number of accounts created.",
	})

	loginsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitlife",
		Subsystem: "accounts",
		Name:      "logins_total",
		Help:      "Number of login attempts grouped by outcome.",
	}, []string{"result"})

	enrollmentsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitlife",
		Subsystem: "classes",
		Name:      "enrollments_total",
		Help:      "Number of class enrollments created.",
	})

	messagesCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitlife",
		Subsystem: "messages",
		Name:      "sent_total",
		Help:      "Number of direct messages sent.",
	})

	lastProgressGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitlife",
		Subsystem: "progress",
		Name:      "last_record_timestamp_seconds",
		Help:      "Unix timestamp of the most recent progress record logged.",
	})

	activeSessionsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitlife",
		Subsystem: "sessions",
		Name:      "active",
		Help:      "Number of live server-side sessions.",
	})
)

func init() {
	prometheus.MustRegister(
		registrationsCounter,
		loginsCounter,
		enrollmentsCounter,
		messagesCounter,
		lastProgressGauge,
		activeSessionsGauge,
	)
}

// RecordRegistration counts a successful registration.
func RecordRegistration() {
	registrationsCounter.Inc()
}

// RecordLogin counts a login attempt by outcome.
func RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	loginsCounter.WithLabelValues(result).Inc()
}

// RecordEnrollment counts a created enrollment.
func RecordEnrollment() {
	enrollmentsCounter.Inc()
}

// RecordMessageSent counts a delivered message.
func RecordMessageSent() {
	messagesCounter.Inc()
}

// RecordProgressLogged updates the progress watermark gauge.
func RecordProgressLogged(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastProgressGauge.Set(float64(ts.Unix()))
}

// SetActiveSessions reports the current live session count.
func SetActiveSessions(n int) {
	activeSessionsGauge.Set(float64(n))
}
