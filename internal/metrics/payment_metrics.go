package metrics

import (
	"github.com/Animesh0711/DailyEase/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics интерфейс для метрик платежей
type PaymentMetrics interface {
	IncOrderCreated(provider string)
	IncOrderDeferred()
	IncPaymentStatus(status string, provider string)
	ObservePaymentAmount(amount float64, provider string)
}

type paymentMetrics struct {
	log            *logger.Logger
	ordersCreated  *prometheus.CounterVec
	ordersDeferred prometheus.Counter
	paymentsStatus *prometheus.CounterVec
	paymentsAmount *prometheus.HistogramVec
}

// NewPaymentMetrics создает новые метрики платежей
func NewPaymentMetrics(registry *prometheus.Registry, log *logger.Logger) PaymentMetrics {
	ordersCreated := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_orders_created_total",
			Help: "The total number of created provider orders",
		},
		[]string{"provider"},
	)

	ordersDeferred := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "payment_orders_deferred_total",
			Help: "The total number of payments deferred because no provider was available",
		},
	)

	paymentsStatus := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_status_total",
			Help: "The total number of payment status transitions",
		},
		[]string{"status", "provider"},
	)

	paymentsAmount := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payments_amount",
			Help:    "Payment amounts distribution",
			Buckets: prometheus.ExponentialBuckets(10, 10, 5), // 10, 100, 1000, 10000, 100000
		},
		[]string{"provider"},
	)

	return &paymentMetrics{
		log:            log,
		ordersCreated:  ordersCreated,
		ordersDeferred: ordersDeferred,
		paymentsStatus: paymentsStatus,
		paymentsAmount: paymentsAmount,
	}
}

func (m *paymentMetrics) IncOrderCreated(provider string) {
	m.ordersCreated.WithLabelValues(provider).Inc()
}

func (m *paymentMetrics) IncOrderDeferred() {
	m.ordersDeferred.Inc()
}

func (m *paymentMetrics) IncPaymentStatus(status string, provider string) {
	m.paymentsStatus.WithLabelValues(status, provider).Inc()
}

func (m *paymentMetrics) ObservePaymentAmount(amount float64, provider string) {
	m.paymentsAmount.WithLabelValues(provider).Observe(amount)
}

// NoOpPaymentMetrics заглушка метрик для тестов
type NoOpPaymentMetrics struct{}

func (NoOpPaymentMetrics) IncOrderCreated(string)               {}
func (NoOpPaymentMetrics) IncOrderDeferred()                    {}
func (NoOpPaymentMetrics) IncPaymentStatus(string, string)      {}
func (NoOpPaymentMetrics) ObservePaymentAmount(float64, string) {}
