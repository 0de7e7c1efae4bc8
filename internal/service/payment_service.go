package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/internal/integration"
	"github.com/Animesh0711/DailyEase/internal/kafka"
	"github.com/Animesh0711/DailyEase/internal/metrics"
	"github.com/Animesh0711/DailyEase/internal/repository"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

const paymentCurrency = "INR"

// OrderOutcome результат создания платежного заказа. Provider равен
// ProviderPending, если ни один провайдер не был доступен: платеж
// сохранен и ожидает подтверждения позже, это не ошибка запроса.
type OrderOutcome struct {
	PaymentID    int64                  `json:"payment_id"`
	Amount       float64                `json:"amount"`
	Provider     domain.PaymentProvider `json:"payment_method"`
	OrderRef     string                 `json:"order_id,omitempty"`
	ClientHandle string                 `json:"client_secret,omitempty"`
	Note         string                 `json:"error,omitempty"`
}

// PaymentService интерфейс оркестратора платежей
type PaymentService interface {
	// CreateOrder создает заказ у основного провайдера, при неудаче у запасного,
	// при неудаче обоих сохраняет отложенный платеж. Ошибка провайдера никогда
	// не поднимается наружу, только ошибка персистентности.
	CreateOrder(ctx context.Context, userID int64, subscriptionID *int64, amount float64) (OrderOutcome, error)

	// ConfirmDirect перезапрашивает статус заказа у исходного провайдера
	// и сводит локальный платеж к completed либо failed
	ConfirmDirect(ctx context.Context, paymentID int64) (domain.Payment, error)

	// VerifyCallback проверяет подпись колбэка провайдера и завершает платеж
	VerifyCallback(ctx context.Context, req domain.VerifyPaymentRequest) (domain.Payment, error)

	// GetHistory возвращает историю платежей пользователя
	GetHistory(ctx context.Context, userID int64) ([]domain.Payment, error)
}

type paymentService struct {
	repo            repository.PaymentRepository
	primary         integration.Gateway
	fallback        integration.Gateway
	signatureSecret string
	producer        kafka.EventProducer
	metrics         metrics.PaymentMetrics
	log             *logger.Logger
}

// NewPaymentService создает новый оркестратор платежей
func NewPaymentService(
	repo repository.PaymentRepository,
	primary integration.Gateway,
	fallback integration.Gateway,
	signatureSecret string,
	producer kafka.EventProducer,
	m metrics.PaymentMetrics,
	log *logger.Logger,
) PaymentService {
	return &paymentService{
		repo:            repo,
		primary:         primary,
		fallback:        fallback,
		signatureSecret: signatureSecret,
		producer:        producer,
		metrics:         m,
		log:             log,
	}
}

func (s *paymentService) CreateOrder(ctx context.Context, userID int64, subscriptionID *int64, amount float64) (OrderOutcome, error) {
	s.log.Debug("Creating payment order for user %d, amount: %.2f", userID, amount)

	amountMinor := int64(math.Round(amount * 100))
	notes := map[string]string{
		"user_id": strconv.FormatInt(userID, 10),
	}
	if subscriptionID != nil {
		notes["subscription_id"] = strconv.FormatInt(*subscriptionID, 10)
	}

	for _, gateway := range []integration.Gateway{s.primary, s.fallback} {
		order, err := gateway.CreateOrder(ctx, amountMinor, paymentCurrency, notes)
		if err != nil {
			s.log.Warn("Provider %s order creation failed: %v", gateway.Name(), err)
			continue
		}

		payment, err := s.repo.Create(ctx, domain.Payment{
			UserID:         userID,
			SubscriptionID: subscriptionID,
			Amount:         amount,
			Status:         domain.PaymentStatusPending,
			ProviderRef:    &order.Ref,
			Provider:       gateway.Name(),
		})
		if err != nil {
			return OrderOutcome{}, fmt.Errorf("failed to persist payment: %w", err)
		}

		s.metrics.IncOrderCreated(string(gateway.Name()))
		s.metrics.ObservePaymentAmount(amount, string(gateway.Name()))
		s.log.Info("Created %s order %s for payment %d", gateway.Name(), order.Ref, payment.ID)

		return OrderOutcome{
			PaymentID:    payment.ID,
			Amount:       amount,
			Provider:     gateway.Name(),
			OrderRef:     order.Ref,
			ClientHandle: order.ClientHandle,
		}, nil
	}

	// Оба провайдера недоступны: платеж откладывается, подтверждение
	// ожидается позже отдельным запросом
	payment, err := s.repo.Create(ctx, domain.Payment{
		UserID:         userID,
		SubscriptionID: subscriptionID,
		Amount:         amount,
		Status:         domain.PaymentStatusPending,
		Provider:       domain.ProviderPending,
	})
	if err != nil {
		return OrderOutcome{}, fmt.Errorf("failed to persist deferred payment: %w", err)
	}

	s.metrics.IncOrderDeferred()
	s.log.Warn("All payment providers unavailable, payment %d deferred", payment.ID)

	return OrderOutcome{
		PaymentID: payment.ID,
		Amount:    amount,
		Provider:  domain.ProviderPending,
		Note:      "Payment processor unavailable",
	}, nil
}

// gatewayFor возвращает шлюз, через который был создан платеж
func (s *paymentService) gatewayFor(provider domain.PaymentProvider) integration.Gateway {
	switch provider {
	case s.primary.Name():
		return s.primary
	case s.fallback.Name():
		return s.fallback
	default:
		return nil
	}
}

func (s *paymentService) ConfirmDirect(ctx context.Context, paymentID int64) (domain.Payment, error) {
	payment, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		return domain.Payment{}, err
	}

	// Платеж уже в терминальном статусе: вторичное подтверждение
	// возвращает текущее состояние без повторной записи
	if payment.Status != domain.PaymentStatusPending {
		s.log.Debug("Payment %d already %s, skipping confirmation", payment.ID, payment.Status)
		return payment, nil
	}

	gateway := s.gatewayFor(payment.Provider)
	if gateway == nil || payment.ProviderRef == nil {
		s.log.Warn("Payment %d has no provider order to confirm", payment.ID)
		return payment, domain.ErrValidation
	}

	status, err := gateway.RetrieveStatus(ctx, *payment.ProviderRef)
	if err != nil {
		return payment, fmt.Errorf("failed to retrieve order status: %w", err)
	}

	if status == integration.OrderStatusSucceeded {
		return s.completePayment(ctx, payment)
	}

	return s.failPayment(ctx, payment)
}

func (s *paymentService) VerifyCallback(ctx context.Context, req domain.VerifyPaymentRequest) (domain.Payment, error) {
	payment, err := s.repo.GetByID(ctx, req.PaymentID)
	if err != nil {
		return domain.Payment{}, err
	}

	if payment.Status != domain.PaymentStatusPending {
		s.log.Debug("Payment %d already %s, skipping verification", payment.ID, payment.Status)
		return payment, nil
	}

	// Без секрета верификация невозможна: отказываем, а не пропускаем
	if s.signatureSecret == "" {
		s.log.Error("Signature secret is not configured, rejecting verification")
		return payment, domain.ErrNotConfigured
	}

	mac := hmac.New(sha256.New, []byte(s.signatureSecret))
	mac.Write([]byte(req.OrderRef + "|" + req.PaymentRef))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(req.Signature)) {
		s.log.Warn("Signature mismatch for payment %d", payment.ID)
		failed, err := s.failPayment(ctx, payment)
		if err != nil && err != domain.ErrPaymentFailed {
			return failed, err
		}
		return failed, domain.ErrSignatureMismatch
	}

	return s.completePayment(ctx, payment)
}

func (s *paymentService) completePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	now := time.Now()
	if err := s.repo.UpdateStatus(ctx, payment.ID, domain.PaymentStatusCompleted, &now); err != nil {
		return payment, err
	}

	payment.Status = domain.PaymentStatusCompleted
	payment.CompletedAt = &now

	s.metrics.IncPaymentStatus(string(domain.PaymentStatusCompleted), string(payment.Provider))
	s.publishPaymentEvent(ctx, kafka.TopicPaymentCompleted, payment)
	s.log.Info("Payment %d completed", payment.ID)

	return payment, nil
}

func (s *paymentService) failPayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	if err := s.repo.UpdateStatus(ctx, payment.ID, domain.PaymentStatusFailed, nil); err != nil {
		return payment, err
	}

	payment.Status = domain.PaymentStatusFailed

	s.metrics.IncPaymentStatus(string(domain.PaymentStatusFailed), string(payment.Provider))
	s.publishPaymentEvent(ctx, kafka.TopicPaymentFailed, payment)
	s.log.Warn("Payment %d failed", payment.ID)

	return payment, domain.ErrPaymentFailed
}

func (s *paymentService) publishPaymentEvent(ctx context.Context, topic string, payment domain.Payment) {
	event := kafka.PaymentEvent{
		PaymentID: payment.ID,
		UserID:    payment.UserID,
		Amount:    payment.Amount,
		Status:    payment.Status,
		Provider:  payment.Provider,
		Timestamp: time.Now(),
	}

	if err := s.producer.PublishPaymentEvent(ctx, topic, event); err != nil {
		// Публикация событий не критична для основного флоу
		s.log.Warnw("Failed to publish payment event", "error", err, "topic", topic, "paymentID", payment.ID)
	}
}

func (s *paymentService) GetHistory(ctx context.Context, userID int64) ([]domain.Payment, error) {
	s.log.Debug("Getting payment history for user %d", userID)
	return s.repo.GetByUserID(ctx, userID)
}
