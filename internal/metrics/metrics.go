// Package metrics exposes Prometheus collectors for the landing site.
// Labels carry section names, item ids and form states. Visitor input is
// never recorded.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Interactive sessions
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gridguard_active_sessions",
		Help: "Number of open interactive page sessions",
	})

	SessionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridguard_sessions_total",
		Help: "Total number of interactive page sessions opened",
	})

	// Page behaviour
	Reveals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridguard_reveals_total",
		Help: "Total number of elements revealed on scroll",
	}, []string{"section"})

	FAQToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridguard_faq_toggles_total",
		Help: "Total number of FAQ item toggles",
	}, []string{"item", "expanded"})

	SignupTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridguard_signup_transitions_total",
		Help: "Total number of notify form state transitions",
	}, []string{"state"})

	// Content
	ContentReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridguard_content_reloads_total",
		Help: "Total number of content file reloads",
	}, []string{"result"})
)
