package metrics

import (
	"github.com/Animesh0711/DailyEase/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SubscriptionMetrics интерфейс для метрик подписок
type SubscriptionMetrics interface {
	IncSubscriptionCreated(frequency string)
	IncSubscriptionPaused()
	IncSubscriptionResumed()
	IncDeliveryToggled(action string)
}

type subscriptionMetrics struct {
	log                  *logger.Logger
	subscriptionsCreated *prometheus.CounterVec
	subscriptionsPaused  prometheus.Counter
	subscriptionsResumed prometheus.Counter
	deliveriesToggled    *prometheus.CounterVec
}

// NewSubscriptionMetrics создает новые метрики подписок
func NewSubscriptionMetrics(registry *prometheus.Registry, log *logger.Logger) SubscriptionMetrics {
	subscriptionsCreated := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriptions_created_total",
			Help: "The total number of created subscriptions",
		},
		[]string{"frequency"},
	)

	subscriptionsPaused := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "subscriptions_paused_total",
			Help: "The total number of subscription pauses",
		},
	)

	subscriptionsResumed := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "subscriptions_resumed_total",
			Help: "The total number of subscription resumes",
		},
	)

	deliveriesToggled := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "deliveries_toggled_total",
			Help: "The total number of delivery toggles by action",
		},
		[]string{"action"},
	)

	return &subscriptionMetrics{
		log:                  log,
		subscriptionsCreated: subscriptionsCreated,
		subscriptionsPaused:  subscriptionsPaused,
		subscriptionsResumed: subscriptionsResumed,
		deliveriesToggled:    deliveriesToggled,
	}
}

func (m *subscriptionMetrics) IncSubscriptionCreated(frequency string) {
	m.subscriptionsCreated.WithLabelValues(frequency).Inc()
}

func (m *subscriptionMetrics) IncSubscriptionPaused() {
	m.subscriptionsPaused.Inc()
}

func (m *subscriptionMetrics) IncSubscriptionResumed() {
	m.subscriptionsResumed.Inc()
}

func (m *subscriptionMetrics) IncDeliveryToggled(action string) {
	m.deliveriesToggled.WithLabelValues(action).Inc()
}

// NoOpSubscriptionMetrics заглушка метрик для тестов
type NoOpSubscriptionMetrics struct{}

func (NoOpSubscriptionMetrics) IncSubscriptionCreated(string) {}
func (NoOpSubscriptionMetrics) IncSubscriptionPaused()        {}
func (NoOpSubscriptionMetrics) IncSubscriptionResumed()       {}
func (NoOpSubscriptionMetrics) IncDeliveryToggled(string)     {}
