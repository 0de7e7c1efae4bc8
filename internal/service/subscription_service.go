package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/internal/kafka"
	"github.com/Animesh0711/DailyEase/internal/metrics"
	"github.com/Animesh0711/DailyEase/internal/pricing"
	"github.com/Animesh0711/DailyEase/internal/repository"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

const (
	defaultPauseDays    = 7
	defaultDeliveryHour = 8
)

// CreateResult результат создания подписки вместе с платежным заказом
type CreateResult struct {
	Subscription domain.Subscription `json:"subscription"`
	Payment      OrderOutcome        `json:"payment"`
}

// ToggleResult результат переключения доставки на конкретный день
type ToggleResult struct {
	Created    bool   `json:"scheduled"`
	DeliveryID int64  `json:"delivery_id,omitempty"`
	Date       string `json:"date"`
}

// SubscriptionService интерфейс управления жизненным циклом подписок
type SubscriptionService interface {
	Create(ctx context.Context, req domain.SubscriptionRequest) (CreateResult, error)
	GetUserSubscriptions(ctx context.Context, userID int64) ([]domain.Subscription, error)
	Pause(ctx context.Context, id int64, pauseDays int) (time.Time, error)
	Resume(ctx context.Context, id int64) error
	ToggleDelivery(ctx context.Context, subscriptionID int64, date string) (ToggleResult, error)
	DeliveryCalendar(ctx context.Context, userID int64) (map[string][]domain.CalendarEntry, error)
}

type subscriptionService struct {
	subscriptions repository.SubscriptionRepository
	deliveries    repository.DeliveryRepository
	catalog       repository.CatalogRepository
	payments      PaymentService
	producer      kafka.EventProducer
	metrics       metrics.SubscriptionMetrics
	log           *logger.Logger
}

// NewSubscriptionService создает новый сервис подписок
func NewSubscriptionService(
	subscriptions repository.SubscriptionRepository,
	deliveries repository.DeliveryRepository,
	catalog repository.CatalogRepository,
	payments PaymentService,
	producer kafka.EventProducer,
	m metrics.SubscriptionMetrics,
	log *logger.Logger,
) SubscriptionService {
	return &subscriptionService{
		subscriptions: subscriptions,
		deliveries:    deliveries,
		catalog:       catalog,
		payments:      payments,
		producer:      producer,
		metrics:       m,
		log:           log,
	}
}

func (s *subscriptionService) Create(ctx context.Context, req domain.SubscriptionRequest) (CreateResult, error) {
	s.log.Debug("Creating subscription for user %d", req.UserID)

	if len(req.NewspaperIDs) == 0 {
		return CreateResult{}, fmt.Errorf("%w: at least one newspaper is required", domain.ErrValidation)
	}
	if !req.Frequency.IsValid() {
		return CreateResult{}, fmt.Errorf("%w: unknown frequency %q", domain.ErrValidation, req.Frequency)
	}

	newspapers, err := s.catalog.FindActiveNewspapersByIDs(ctx, req.NewspaperIDs)
	if err != nil {
		return CreateResult{}, err
	}
	if len(newspapers) != len(req.NewspaperIDs) {
		return CreateResult{}, fmt.Errorf("%w: one or more newspapers not found", repository.ErrNotFound)
	}

	var milk *domain.MilkPackage
	if req.MilkPackageID != nil {
		pkg, err := s.catalog.FindActiveMilkPackage(ctx, *req.MilkPackageID)
		if err != nil {
			return CreateResult{}, err
		}
		milk = &pkg
	}

	now := time.Now()
	total := pricing.BundleTotal(newspapers, milk, req.Frequency, now)

	subscription, err := s.subscriptions.CreateWithNewspapers(ctx, domain.Subscription{
		UserID:        req.UserID,
		MilkPackageID: req.MilkPackageID,
		StartDate:     now,
		IsActive:      true,
		Frequency:     req.Frequency,
		TotalCost:     total,
	}, req.NewspaperIDs)
	if err != nil {
		return CreateResult{}, err
	}
	subscription.Newspapers = newspapers

	s.metrics.IncSubscriptionCreated(string(req.Frequency))
	s.publishSubscriptionEvent(ctx, kafka.TopicSubscriptionCreated, subscription)
	s.log.Info("Created subscription %d for user %d, total: %.2f", subscription.ID, req.UserID, total)

	// Недоступность провайдеров не откатывает подписку: платеж будет
	// сохранен как отложенный. Ошибка здесь означает сбой персистентности.
	outcome, err := s.payments.CreateOrder(ctx, req.UserID, &subscription.ID, total)
	if err != nil {
		return CreateResult{Subscription: subscription}, err
	}

	return CreateResult{Subscription: subscription, Payment: outcome}, nil
}

func (s *subscriptionService) GetUserSubscriptions(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	s.log.Debug("Getting subscriptions for user %d", userID)
	return s.subscriptions.GetActiveByUserID(ctx, userID)
}

func (s *subscriptionService) Pause(ctx context.Context, id int64, pauseDays int) (time.Time, error) {
	if pauseDays <= 0 {
		pauseDays = defaultPauseDays
	}

	now := time.Now()
	until := now.AddDate(0, 0, pauseDays)

	if err := s.subscriptions.SetPause(ctx, id, now, until); err != nil {
		return time.Time{}, err
	}

	s.metrics.IncSubscriptionPaused()
	s.publishSubscriptionEvent(ctx, kafka.TopicSubscriptionPaused, domain.Subscription{ID: id})
	s.log.Info("Subscription %d paused until %s", id, until.Format("2006-01-02"))

	return until, nil
}

func (s *subscriptionService) Resume(ctx context.Context, id int64) error {
	if err := s.subscriptions.ClearPause(ctx, id); err != nil {
		return err
	}

	s.metrics.IncSubscriptionResumed()
	s.publishSubscriptionEvent(ctx, kafka.TopicSubscriptionResumed, domain.Subscription{ID: id})
	s.log.Info("Subscription %d resumed", id)

	return nil
}

func (s *subscriptionService) ToggleDelivery(ctx context.Context, subscriptionID int64, date string) (ToggleResult, error) {
	subscription, err := s.subscriptions.GetByID(ctx, subscriptionID)
	if err != nil {
		return ToggleResult{}, err
	}

	scheduledAt, err := parseDeliveryDate(date)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, date)
	}

	dayStart := time.Date(scheduledAt.Year(), scheduledAt.Month(), scheduledAt.Day(), 0, 0, 0, 0, scheduledAt.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	existing, err := s.deliveries.FindForDay(ctx, subscriptionID, dayStart, dayEnd)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return ToggleResult{}, err
	}

	if err == nil {
		if err := s.deliveries.Delete(ctx, existing.ID); err != nil {
			return ToggleResult{}, err
		}
		s.metrics.IncDeliveryToggled("cancelled")
		s.log.Info("Cancelled delivery %d for subscription %d on %s", existing.ID, subscriptionID, dayStart.Format("2006-01-02"))
		return ToggleResult{Created: false, Date: dayStart.Format("2006-01-02")}, nil
	}

	delivery, err := s.deliveries.Create(ctx, domain.Delivery{
		UserID:         subscription.UserID,
		SubscriptionID: subscriptionID,
		ScheduledDate:  scheduledAt,
		Status:         domain.DeliveryStatusPending,
	})
	if err != nil {
		return ToggleResult{}, err
	}

	s.metrics.IncDeliveryToggled("scheduled")
	s.log.Info("Scheduled delivery %d for subscription %d on %s", delivery.ID, subscriptionID, dayStart.Format("2006-01-02"))

	return ToggleResult{Created: true, DeliveryID: delivery.ID, Date: dayStart.Format("2006-01-02")}, nil
}

// parseDeliveryDate принимает дату с временем или голую дату, во втором
// случае время доставки по умолчанию 08:00
func parseDeliveryDate(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return ts, nil
	}

	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(defaultDeliveryHour * time.Hour), nil
}

func (s *subscriptionService) DeliveryCalendar(ctx context.Context, userID int64) (map[string][]domain.CalendarEntry, error) {
	s.log.Debug("Building delivery calendar for user %d", userID)

	deliveries, err := s.deliveries.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	calendar := make(map[string][]domain.CalendarEntry)
	for _, d := range deliveries {
		day := d.ScheduledDate.Format("2006-01-02")
		calendar[day] = append(calendar[day], domain.CalendarEntry{
			ID:             d.ID,
			SubscriptionID: d.SubscriptionID,
			Status:         d.Status,
			Time:           d.ScheduledDate.Format("15:04:05"),
		})
	}

	return calendar, nil
}

func (s *subscriptionService) publishSubscriptionEvent(ctx context.Context, topic string, subscription domain.Subscription) {
	event := kafka.SubscriptionEvent{
		SubscriptionID: subscription.ID,
		UserID:         subscription.UserID,
		Frequency:      subscription.Frequency,
		TotalCost:      subscription.TotalCost,
		Timestamp:      time.Now(),
	}

	if err := s.producer.PublishSubscriptionEvent(ctx, topic, event); err != nil {
		s.log.Warnw("Failed to publish subscription event", "error", err, "topic", topic, "subscriptionID", subscription.ID)
	}
}
