package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge

	ChatbotMessagesTotal *prometheus.CounterVec
	ChatbotStepsTotal    *prometheus.CounterVec
	ChatbotCommitsTotal  *prometheus.CounterVec
	ActiveConversations  prometheus.Gauge
}

// New создает метрики и регистрирует их в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: labels,
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		ChatbotMessagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "chatbot_messages_total",
			Help:        "Inbound client messages processed by the assistant, by detected intent",
			ConstLabels: labels,
		}, []string{"intent"}),
		ChatbotStepsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "chatbot_steps_total",
			Help:        "Conversation steps handled, by state before the step",
			ConstLabels: labels,
		}, []string{"state"}),
		ChatbotCommitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "chatbot_commits_total",
			Help:        "Appointment commits attempted by the assistant, by result",
			ConstLabels: labels,
		}, []string{"result"}),
		ActiveConversations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "chatbot_active_conversations",
			Help:        "Conversations currently held in memory",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.ChatbotMessagesTotal,
		m.ChatbotStepsTotal,
		m.ChatbotCommitsTotal,
		m.ActiveConversations,
	)

	return m
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.DBOpenConnections.Set(float64(stats.OpenConnections))
	m.DBInUse.Set(float64(stats.InUse))
	m.DBIdle.Set(float64(stats.Idle))
}

// ObserveInboundMessage фиксирует входящее сообщение клиента
func (m *Metrics) ObserveInboundMessage(intent string) {
	if m == nil {
		return
	}
	if intent == "" {
		intent = "none"
	}
	m.ChatbotMessagesTotal.WithLabelValues(intent).Inc()
}

// ObserveStep фиксирует обработанный шаг диалога
func (m *Metrics) ObserveStep(state string) {
	if m == nil {
		return
	}
	m.ChatbotStepsTotal.WithLabelValues(state).Inc()
}

// ObserveCommit фиксирует попытку создания записи
func (m *Metrics) ObserveCommit(result string) {
	if m == nil {
		return
	}
	m.ChatbotCommitsTotal.WithLabelValues(result).Inc()
}

// SetActiveConversations обновляет количество диалогов в памяти
func (m *Metrics) SetActiveConversations(n int) {
	if m == nil {
		return
	}
	m.ActiveConversations.Set(float64(n))
}
