// Package metrics exposes Prometheus collectors for the storefront.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "brewandbake"

// Metrics groups the collectors recorded by the services.
type Metrics struct {
	cartMutations     *prometheus.CounterVec
	wizardTransitions *prometheus.CounterVec
	sessionsStarted   prometheus.Counter
	sessionsExpired   prometheus.Counter
	sessionsActive    prometheus.Gauge
	inquiries         *prometheus.CounterVec
	rpcDuration       *prometheus.HistogramVec
}

// New registers the collectors with registerer (the default registerer when nil).
// Registering twice returns the collectors that are already registered.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		cartMutations: registerCounterVec(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_mutations_total",
			Help:      "Cart quantity changes grouped by operation and whether the line existed.",
		}, []string{"op", "result"}),
		wizardTransitions: registerCounterVec(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_transitions_total",
			Help:      "Checkout wizard actions grouped by action and outcome.",
		}, []string{"action", "result"}),
		sessionsStarted: registerCounter(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Order page sessions started.",
		}),
		sessionsExpired: registerCounter(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_expired_total",
			Help:      "Order page sessions removed after going idle.",
		}),
		sessionsActive: registerGauge(registerer, prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Order page sessions currently held in memory.",
		}),
		inquiries: registerCounterVec(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inquiries_total",
			Help:      "Contact messages and newsletter changes grouped by kind.",
		}, []string{"kind"}),
		rpcDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Unary RPC latency grouped by procedure and result code.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"procedure", "code"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing
			}
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing
			}
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordCartMutation counts an increase or decrease.
func (m *Metrics) RecordCartMutation(op string, found bool) {
	if m == nil {
		return
	}
	result := "applied"
	if !found {
		result = "missing"
	}
	m.cartMutations.WithLabelValues(op, result).Inc()
}

// RecordWizardTransition counts a wizard action.
func (m *Metrics) RecordWizardTransition(action string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	m.wizardTransitions.WithLabelValues(action, result).Inc()
}

// RecordSessionStarted counts a new session and bumps the active gauge.
func (m *Metrics) RecordSessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
	m.sessionsActive.Inc()
}

// RecordSessionsExpired counts n expired sessions and lowers the active gauge.
func (m *Metrics) RecordSessionsExpired(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.sessionsExpired.Add(float64(n))
	m.sessionsActive.Sub(float64(n))
}

// RecordInquiry counts a contact message or newsletter change.
func (m *Metrics) RecordInquiry(kind string) {
	if m == nil {
		return
	}
	m.inquiries.WithLabelValues(kind).Inc()
}

// ObserveRPC records the latency of one unary call.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}
