package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/internal/integration"
	"github.com/Animesh0711/DailyEase/internal/kafka"
	"github.com/Animesh0711/DailyEase/internal/metrics"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

const testSignatureSecret = "test_key_secret"

func newTestPaymentService(repo *mockPaymentRepo, primary, fallback *mockGateway) PaymentService {
	return NewPaymentService(
		repo,
		primary,
		fallback,
		testSignatureSecret,
		kafka.NoOpProducer{},
		metrics.NoOpPaymentMetrics{},
		logger.New(logger.ERROR),
	)
}

func signCallback(secret, orderRef, paymentRef string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderRef + "|" + paymentRef))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateOrder_PrimaryProvider(t *testing.T) {
	repo := newMockPaymentRepo()
	primary := &mockGateway{name: domain.ProviderRazorpay}
	fallback := &mockGateway{name: domain.ProviderStripe}
	svc := newTestPaymentService(repo, primary, fallback)

	subID := int64(10)
	outcome, err := svc.CreateOrder(context.Background(), 1, &subID, 187.2)

	require.NoError(t, err)
	assert.Equal(t, domain.ProviderRazorpay, outcome.Provider)
	assert.Equal(t, "razorpay_order_1", outcome.OrderRef)
	assert.Equal(t, 1, primary.createCalls)
	assert.Equal(t, 0, fallback.createCalls, "fallback should not be called when primary succeeds")

	// Сумма уходит провайдеру в минорных единицах
	assert.Equal(t, int64(18720), primary.lastAmount)
	assert.Equal(t, "10", primary.lastNotes["subscription_id"])

	payment, err := repo.GetByID(context.Background(), outcome.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.Equal(t, domain.ProviderRazorpay, payment.Provider)
	require.NotNil(t, payment.ProviderRef)
	assert.Equal(t, "razorpay_order_1", *payment.ProviderRef)
}

func TestCreateOrder_FallbackWhenPrimaryFails(t *testing.T) {
	repo := newMockPaymentRepo()
	primary := &mockGateway{name: domain.ProviderRazorpay, failCreate: true}
	fallback := &mockGateway{name: domain.ProviderStripe}
	svc := newTestPaymentService(repo, primary, fallback)

	outcome, err := svc.CreateOrder(context.Background(), 1, nil, 68)

	require.NoError(t, err, "provider failure must not surface as an error")
	assert.Equal(t, domain.ProviderStripe, outcome.Provider)
	assert.Equal(t, "stripe_handle_1", outcome.ClientHandle)
	assert.Equal(t, 1, primary.createCalls)
	assert.Equal(t, 1, fallback.createCalls)
}

func TestCreateOrder_DeferredWhenAllProvidersFail(t *testing.T) {
	repo := newMockPaymentRepo()
	primary := &mockGateway{name: domain.ProviderRazorpay, failCreate: true}
	fallback := &mockGateway{name: domain.ProviderStripe, failCreate: true}
	svc := newTestPaymentService(repo, primary, fallback)

	outcome, err := svc.CreateOrder(context.Background(), 1, nil, 34)

	require.NoError(t, err)
	assert.Equal(t, domain.ProviderPending, outcome.Provider)
	assert.Empty(t, outcome.OrderRef)
	assert.NotEmpty(t, outcome.Note)

	payment, err := repo.GetByID(context.Background(), outcome.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.Equal(t, domain.ProviderPending, payment.Provider)
	assert.Nil(t, payment.ProviderRef)
}

func TestConfirmDirect_Succeeded(t *testing.T) {
	repo := newMockPaymentRepo()
	primary := &mockGateway{name: domain.ProviderRazorpay, status: integration.OrderStatusSucceeded}
	fallback := &mockGateway{name: domain.ProviderStripe}
	svc := newTestPaymentService(repo, primary, fallback)

	outcome, err := svc.CreateOrder(context.Background(), 1, nil, 30)
	require.NoError(t, err)

	payment, err := svc.ConfirmDirect(context.Background(), outcome.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	require.NotNil(t, payment.CompletedAt)
	assert.Equal(t, 1, primary.retrieveCalls)
}

func TestConfirmDirect_FailedStatus(t *testing.T) {
	repo := newMockPaymentRepo()
	primary := &mockGateway{name: domain.ProviderRazorpay, status: integration.OrderStatusPending}
	fallback := &mockGateway{name: domain.ProviderStripe}
	svc := newTestPaymentService(repo, primary, fallback)

	outcome, err := svc.CreateOrder(context.Background(), 1, nil, 30)
	require.NoError(t, err)

	payment, err := svc.ConfirmDirect(context.Background(), outcome.PaymentID)
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	assert.Equal(t, domain.PaymentStatusFailed, payment.Status)
}

func TestConfirmDirect_QueriesOriginalProvider(t *testing.T) {
	repo := newMockPaymentRepo()
	primary := &mockGateway{name: domain.ProviderRazorpay, failCreate: true}
	fallback := &mockGateway{name: domain.ProviderStripe, status: integration.OrderStatusSucceeded}
	svc := newTestPaymentService(repo, primary, fallback)

	outcome, err := svc.CreateOrder(context.Background(), 1, nil, 30)
	require.NoError(t, err)
	require.Equal(t, domain.ProviderStripe, outcome.Provider)

	_, err = svc.ConfirmDirect(context.Background(), outcome.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, 0, primary.retrieveCalls)
	assert.Equal(t, 1, fallback.retrieveCalls)
}

func TestConfirmDirect_IdempotentOnTerminalStatus(t *testing.T) {
	repo := newMockPaymentRepo()
	primary := &mockGateway{name: domain.ProviderRazorpay, status: integration.OrderStatusSucceeded}
	fallback := &mockGateway{name: domain.ProviderStripe}
	svc := newTestPaymentService(repo, primary, fallback)

	outcome, err := svc.CreateOrder(context.Background(), 1, nil, 30)
	require.NoError(t, err)

	first, err := svc.ConfirmDirect(context.Background(), outcome.PaymentID)
	require.NoError(t, err)

	// Повторное подтверждение не трогает провайдера и не меняет статус
	second, err := svc.ConfirmDirect(context.Background(), outcome.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, 1, primary.retrieveCalls)
}

func TestConfirmDirect_UnknownPayment(t *testing.T) {
	repo := newMockPaymentRepo()
	svc := newTestPaymentService(repo, &mockGateway{name: domain.ProviderRazorpay}, &mockGateway{name: domain.ProviderStripe})

	_, err := svc.ConfirmDirect(context.Background(), 999)
	assert.Error(t, err)
}

func TestVerifyCallback_ValidSignature(t *testing.T) {
	repo := newMockPaymentRepo()
	primary := &mockGateway{name: domain.ProviderRazorpay}
	svc := newTestPaymentService(repo, primary, &mockGateway{name: domain.ProviderStripe})

	outcome, err := svc.CreateOrder(context.Background(), 1, nil, 30)
	require.NoError(t, err)

	req := domain.VerifyPaymentRequest{
		PaymentID:  outcome.PaymentID,
		OrderRef:   outcome.OrderRef,
		PaymentRef: "pay_123",
		Signature:  signCallback(testSignatureSecret, outcome.OrderRef, "pay_123"),
	}

	payment, err := svc.VerifyCallback(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	require.NotNil(t, payment.CompletedAt)
}

func TestVerifyCallback_TamperedSignature(t *testing.T) {
	repo := newMockPaymentRepo()
	svc := newTestPaymentService(repo, &mockGateway{name: domain.ProviderRazorpay}, &mockGateway{name: domain.ProviderStripe})

	outcome, err := svc.CreateOrder(context.Background(), 1, nil, 30)
	require.NoError(t, err)

	req := domain.VerifyPaymentRequest{
		PaymentID:  outcome.PaymentID,
		OrderRef:   outcome.OrderRef,
		PaymentRef: "pay_123",
		Signature:  signCallback("wrong_secret", outcome.OrderRef, "pay_123"),
	}

	payment, err := svc.VerifyCallback(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrSignatureMismatch)
	assert.Equal(t, domain.PaymentStatusFailed, payment.Status)

	// Платеж с неверной подписью никогда не становится completed
	stored, err := repo.GetByID(context.Background(), outcome.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, stored.Status)
}

func TestVerifyCallback_IdempotentAfterFailure(t *testing.T) {
	repo := newMockPaymentRepo()
	svc := newTestPaymentService(repo, &mockGateway{name: domain.ProviderRazorpay}, &mockGateway{name: domain.ProviderStripe})

	outcome, err := svc.CreateOrder(context.Background(), 1, nil, 30)
	require.NoError(t, err)

	req := domain.VerifyPaymentRequest{
		PaymentID:  outcome.PaymentID,
		OrderRef:   outcome.OrderRef,
		PaymentRef: "pay_123",
		Signature:  signCallback("wrong_secret", outcome.OrderRef, "pay_123"),
	}

	_, err = svc.VerifyCallback(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrSignatureMismatch)

	// Повтор с верной подписью уже ничего не меняет: платеж в терминальном статусе
	req.Signature = signCallback(testSignatureSecret, outcome.OrderRef, "pay_123")
	payment, err := svc.VerifyCallback(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, payment.Status)
}

func TestVerifyCallback_CompletesExactlyOnce(t *testing.T) {
	repo := newMockPaymentRepo()
	svc := newTestPaymentService(repo, &mockGateway{name: domain.ProviderRazorpay}, &mockGateway{name: domain.ProviderStripe})

	outcome, err := svc.CreateOrder(context.Background(), 1, nil, 30)
	require.NoError(t, err)

	req := domain.VerifyPaymentRequest{
		PaymentID:  outcome.PaymentID,
		OrderRef:   outcome.OrderRef,
		PaymentRef: "pay_123",
		Signature:  signCallback(testSignatureSecret, outcome.OrderRef, "pay_123"),
	}

	first, err := svc.VerifyCallback(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, first.CompletedAt)

	second, err := svc.VerifyCallback(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, second.Status)
	assert.Equal(t, first.CompletedAt.Unix(), second.CompletedAt.Unix(), "completion time must not change on repeat")
}

func TestVerifyCallback_MissingSecret(t *testing.T) {
	repo := newMockPaymentRepo()
	svc := NewPaymentService(
		repo,
		&mockGateway{name: domain.ProviderRazorpay},
		&mockGateway{name: domain.ProviderStripe},
		"",
		kafka.NoOpProducer{},
		metrics.NoOpPaymentMetrics{},
		logger.New(logger.ERROR),
	)

	outcome, err := svc.CreateOrder(context.Background(), 1, nil, 30)
	require.NoError(t, err)

	req := domain.VerifyPaymentRequest{
		PaymentID:  outcome.PaymentID,
		OrderRef:   outcome.OrderRef,
		PaymentRef: "pay_123",
		Signature:  signCallback("anything", outcome.OrderRef, "pay_123"),
	}

	payment, err := svc.VerifyCallback(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status, "payment must stay untouched without a secret")
}

func TestGetHistory(t *testing.T) {
	repo := newMockPaymentRepo()
	svc := newTestPaymentService(repo, &mockGateway{name: domain.ProviderRazorpay}, &mockGateway{name: domain.ProviderStripe})

	_, err := svc.CreateOrder(context.Background(), 1, nil, 30)
	require.NoError(t, err)
	_, err = svc.CreateOrder(context.Background(), 1, nil, 68)
	require.NoError(t, err)
	_, err = svc.CreateOrder(context.Background(), 2, nil, 34)
	require.NoError(t, err)

	history, err := svc.GetHistory(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
