package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration    *prometheus.HistogramVec
	dbOpenConnections  *prometheus.GaugeVec
	dbInUseConnections *prometheus.GaugeVec
	dbIdleConnections  *prometheus.GaugeVec

	bookingSubmissions *prometheus.CounterVec
	bookingTotalCents  *prometheus.HistogramVec
	chatReplies        *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном регистре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном регистре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"service", "operation"}),
		dbOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established database connections",
		}, []string{"service"}),
		dbInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of database connections currently in use",
		}, []string{"service"}),
		dbIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle database connections",
		}, []string{"service"}),
		bookingSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_submissions_total",
			Help: "Booking submissions by outcome",
		}, []string{"service", "outcome"}),
		bookingTotalCents: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "booking_total_cents",
			Help:    "Total price of submitted bookings in cents",
			Buckets: []float64{5000, 10000, 20000, 30000, 40000, 60000, 80000},
		}, []string{"service", "vehicle_class"}),
		chatReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_replies_total",
			Help: "Chat assistant replies by source",
		}, []string{"service", "source"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbOpenConnections,
		m.dbInUseConnections,
		m.dbIdleConnections,
		m.bookingSubmissions,
		m.bookingTotalCents,
		m.chatReplies,
	)

	// Инициализируем метрику сервиса, чтобы она появилась в /metrics до первого запроса
	m.bookingSubmissions.WithLabelValues(serviceName, "created")

	return m
}

// ObserveHTTPRequest фиксирует HTTP запрос
func (m *Metrics) ObserveHTTPRequest(service, method, path string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(seconds)
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(service, operation string, seconds float64) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(seconds)
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(service string, open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbOpenConnections.WithLabelValues(service).Set(float64(open))
	m.dbInUseConnections.WithLabelValues(service).Set(float64(inUse))
	m.dbIdleConnections.WithLabelValues(service).Set(float64(idle))
}

// ObserveBookingSubmission фиксирует результат отправки бронирования
// outcome: confirmed, duplicate, invalid, storage_error, notification_failed
func (m *Metrics) ObserveBookingSubmission(service, outcome string) {
	if m == nil {
		return
	}
	m.bookingSubmissions.WithLabelValues(service, outcome).Inc()
}

// ObserveBookingTotal фиксирует итоговую стоимость бронирования
func (m *Metrics) ObserveBookingTotal(service, vehicleClass string, totalCents int64) {
	if m == nil {
		return
	}
	m.bookingTotalCents.WithLabelValues(service, vehicleClass).Observe(float64(totalCents))
}

// ObserveChatReply фиксирует ответ чат-ассистента
// source: model, fallback
func (m *Metrics) ObserveChatReply(service, source string) {
	if m == nil {
		return
	}
	m.chatReplies.WithLabelValues(service, source).Inc()
}
