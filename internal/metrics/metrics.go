// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "menucart"

// Metrics holds the collectors for sessions, cart actions and HTTP traffic.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	activeSessions  prometheus.Gauge
	sessionsCreated prometheus.Counter
	sessionsExpired prometheus.Counter
	storeChanges    *prometheus.CounterVec
	wsConnections   prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers all collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of live ordering sessions",
		}),
		sessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Total number of sessions created",
		}),
		sessionsExpired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_expired_total",
			Help:      "Total number of sessions evicted after idling",
		}),
		storeChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_changes_total",
			Help:      "Total number of cart and filter mutations by kind and action",
		}, []string{"kind", "action"}),
		wsConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_connections",
			Help:      "Number of open WebSocket subscriptions",
		}),
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// SessionCreated counts a new session and raises the active gauge
func (m *Metrics) SessionCreated() {
	if m == nil {
		return
	}
	m.sessionsCreated.Inc()
	m.activeSessions.Inc()
}

// SessionEnded lowers the active gauge; expired marks a TTL eviction
func (m *Metrics) SessionEnded(expired bool) {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
	if expired {
		m.sessionsExpired.Inc()
	}
}

// StoreChanged counts one store mutation
func (m *Metrics) StoreChanged(kind, action string) {
	if m == nil {
		return
	}
	m.storeChanges.WithLabelValues(kind, action).Inc()
}

// WebSocketOpened tracks a new snapshot subscriber
func (m *Metrics) WebSocketOpened() {
	if m == nil {
		return
	}
	m.wsConnections.Inc()
}

// WebSocketClosed drops a snapshot subscriber
func (m *Metrics) WebSocketClosed() {
	if m == nil {
		return
	}
	m.wsConnections.Dec()
}

// ObserveRequest records one HTTP request under its route pattern
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
