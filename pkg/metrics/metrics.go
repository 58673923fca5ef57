package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы Prometheus сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsCreated     *prometheus.CounterVec
	bookingFailures     *prometheus.CounterVec
}

// New регистрирует коллекторы в глобальном реестре (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует коллекторы в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duration of HTTP requests",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		bookingsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bookings_created_total",
				Help:        "Bookings created, by resulting status",
				ConstLabels: constLabels,
			},
			[]string{"status"},
		),
		bookingFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "booking_submission_failures_total",
				Help:        "Booking submissions that did not produce a booking",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
	}
}

// ObserveHTTPRequest учитывает завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// IncBookingCreated учитывает созданное бронирование
func (m *Metrics) IncBookingCreated(status string) {
	m.bookingsCreated.WithLabelValues(status).Inc()
}

// IncBookingFailed учитывает неуспешную попытку бронирования
func (m *Metrics) IncBookingFailed(reason string) {
	m.bookingFailures.WithLabelValues(reason).Inc()
}

// Nop заглушка для режима с выключенными метриками
type Nop struct{}

func (Nop) ObserveHTTPRequest(string, string, string, time.Duration) {}
func (Nop) IncBookingCreated(string)                                  {}
func (Nop) IncBookingFailed(string)                                   {}
