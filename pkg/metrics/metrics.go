package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Бизнес-метрики движка бронирования
	ReservationsCreated   *prometheus.CounterVec
	ReservationsCancelled prometheus.Counter
	ManagerEscalations    prometheus.Counter
	UnresolvedMenuItems   prometheus.Counter
}

// ReservationCreated учитывает зафиксированную бронь.
// Безопасен на nil-приемнике: при выключенных метриках вызовы - no-op.
func (m *Metrics) ReservationCreated(resType string) {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(resType).Inc()
}

// ReservationCancelled учитывает отмену брони
func (m *Metrics) ReservationCancelled() {
	if m == nil {
		return
	}
	m.ReservationsCancelled.Inc()
}

// ManagerEscalated учитывает эскалацию менеджеру
func (m *Metrics) ManagerEscalated() {
	if m == nil {
		return
	}
	m.ManagerEscalations.Inc()
}

// ItemsUnresolved учитывает нераспознанные позиции меню
func (m *Metrics) ItemsUnresolved(n int) {
	if m == nil || n == 0 {
		return
	}
	m.UnresolvedMenuItems.Add(float64(n))
}

// New создает и регистрирует метрики сервиса в дефолтном registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ReservationsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Total number of committed reservations",
			ConstLabels: constLabels,
		}, []string{"type"}),

		ReservationsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_cancelled_total",
			Help:        "Total number of cancelled reservations",
			ConstLabels: constLabels,
		}),

		ManagerEscalations: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "manager_escalations_total",
			Help:        "Requests routed to a manager because of party size",
			ConstLabels: constLabels,
		}),

		UnresolvedMenuItems: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "unresolved_menu_items_total",
			Help:        "Requested dish names that did not match the catalog",
			ConstLabels: constLabels,
		}),
	}
}
