package service

import (
	"context"
	"errors"
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/internal/integration"
	"github.com/Animesh0711/DailyEase/internal/repository"
)

var errMockProvider = errors.New("mock provider error")

// mockGateway реализует integration.Gateway для тестов
type mockGateway struct {
	name          domain.PaymentProvider
	failCreate    bool
	status        integration.OrderStatus
	statusErr     error
	createCalls   int
	retrieveCalls int
	lastAmount    int64
	lastNotes     map[string]string
}

func (m *mockGateway) Name() domain.PaymentProvider { return m.name }

func (m *mockGateway) CreateOrder(ctx context.Context, amountMinor int64, currency string, notes map[string]string) (integration.Order, error) {
	m.createCalls++
	m.lastAmount = amountMinor
	m.lastNotes = notes
	if m.failCreate {
		return integration.Order{}, errMockProvider
	}
	return integration.Order{
		Ref:          string(m.name) + "_order_1",
		ClientHandle: string(m.name) + "_handle_1",
	}, nil
}

func (m *mockGateway) RetrieveStatus(ctx context.Context, ref string) (integration.OrderStatus, error) {
	m.retrieveCalls++
	if m.statusErr != nil {
		return "", m.statusErr
	}
	return m.status, nil
}

// mockPaymentRepo хранит платежи в памяти
type mockPaymentRepo struct {
	payments  map[int64]domain.Payment
	nextID    int64
	createErr error
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{payments: make(map[int64]domain.Payment), nextID: 1}
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	if m.createErr != nil {
		return domain.Payment{}, m.createErr
	}
	payment.ID = m.nextID
	payment.CreatedAt = time.Now()
	m.nextID++
	m.payments[payment.ID] = payment
	return payment, nil
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id int64) (domain.Payment, error) {
	payment, ok := m.payments[id]
	if !ok {
		return domain.Payment{}, repository.ErrNotFound
	}
	return payment, nil
}

func (m *mockPaymentRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Payment, error) {
	var result []domain.Payment
	for _, p := range m.payments {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPaymentRepo) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, completedAt *time.Time) error {
	payment, ok := m.payments[id]
	if !ok {
		return repository.ErrNotFound
	}
	payment.Status = status
	payment.CompletedAt = completedAt
	m.payments[id] = payment
	return nil
}

// mockSubscriptionRepo хранит подписки в памяти
type mockSubscriptionRepo struct {
	subscriptions map[int64]domain.Subscription
	associations  map[int64][]int64
	nextID        int64
}

func newMockSubscriptionRepo() *mockSubscriptionRepo {
	return &mockSubscriptionRepo{
		subscriptions: make(map[int64]domain.Subscription),
		associations:  make(map[int64][]int64),
		nextID:        1,
	}
}

func (m *mockSubscriptionRepo) CreateWithNewspapers(ctx context.Context, sub domain.Subscription, newspaperIDs []int64) (domain.Subscription, error) {
	sub.ID = m.nextID
	m.nextID++
	m.subscriptions[sub.ID] = sub
	m.associations[sub.ID] = newspaperIDs
	return sub, nil
}

func (m *mockSubscriptionRepo) GetByID(ctx context.Context, id int64) (domain.Subscription, error) {
	sub, ok := m.subscriptions[id]
	if !ok {
		return domain.Subscription{}, repository.ErrNotFound
	}
	return sub, nil
}

func (m *mockSubscriptionRepo) GetActiveByUserID(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	var result []domain.Subscription
	for _, s := range m.subscriptions {
		if s.UserID == userID && s.IsActive {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *mockSubscriptionRepo) SetPause(ctx context.Context, id int64, from, until time.Time) error {
	sub, ok := m.subscriptions[id]
	if !ok {
		return repository.ErrNotFound
	}
	sub.IsPaused = true
	sub.PausedFrom = &from
	sub.PausedUntil = &until
	m.subscriptions[id] = sub
	return nil
}

func (m *mockSubscriptionRepo) ClearPause(ctx context.Context, id int64) error {
	sub, ok := m.subscriptions[id]
	if !ok {
		return repository.ErrNotFound
	}
	sub.IsPaused = false
	sub.PausedFrom = nil
	sub.PausedUntil = nil
	m.subscriptions[id] = sub
	return nil
}

// mockDeliveryRepo хранит доставки в памяти
type mockDeliveryRepo struct {
	deliveries map[int64]domain.Delivery
	nextID     int64
}

func newMockDeliveryRepo() *mockDeliveryRepo {
	return &mockDeliveryRepo{deliveries: make(map[int64]domain.Delivery), nextID: 1}
}

func (m *mockDeliveryRepo) FindForDay(ctx context.Context, subscriptionID int64, dayStart, dayEnd time.Time) (domain.Delivery, error) {
	for _, d := range m.deliveries {
		if d.SubscriptionID == subscriptionID && !d.ScheduledDate.Before(dayStart) && d.ScheduledDate.Before(dayEnd) {
			return d, nil
		}
	}
	return domain.Delivery{}, repository.ErrNotFound
}

func (m *mockDeliveryRepo) Create(ctx context.Context, delivery domain.Delivery) (domain.Delivery, error) {
	delivery.ID = m.nextID
	delivery.CreatedAt = time.Now()
	m.nextID++
	m.deliveries[delivery.ID] = delivery
	return delivery, nil
}

func (m *mockDeliveryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.deliveries[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.deliveries, id)
	return nil
}

func (m *mockDeliveryRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Delivery, error) {
	var result []domain.Delivery
	for _, d := range m.deliveries {
		if d.UserID == userID {
			result = append(result, d)
		}
	}
	return result, nil
}

// mockCatalogRepo отдает заранее заданные газеты и пакеты молока
type mockCatalogRepo struct {
	newspapers   map[int64]domain.Newspaper
	milkPackages map[int64]domain.MilkPackage
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		newspapers:   make(map[int64]domain.Newspaper),
		milkPackages: make(map[int64]domain.MilkPackage),
	}
}

func (m *mockCatalogRepo) GetActiveNewspapers(ctx context.Context) ([]domain.Newspaper, error) {
	var result []domain.Newspaper
	for _, n := range m.newspapers {
		if n.IsActive {
			result = append(result, n)
		}
	}
	return result, nil
}

func (m *mockCatalogRepo) GetNewspaperByID(ctx context.Context, id int64) (domain.Newspaper, error) {
	n, ok := m.newspapers[id]
	if !ok {
		return domain.Newspaper{}, repository.ErrNotFound
	}
	return n, nil
}

func (m *mockCatalogRepo) FindActiveNewspapersByIDs(ctx context.Context, ids []int64) ([]domain.Newspaper, error) {
	var result []domain.Newspaper
	for _, id := range ids {
		if n, ok := m.newspapers[id]; ok && n.IsActive {
			result = append(result, n)
		}
	}
	return result, nil
}

func (m *mockCatalogRepo) GetNewspapersByLanguage(ctx context.Context, language string) ([]domain.Newspaper, error) {
	var result []domain.Newspaper
	for _, n := range m.newspapers {
		if n.IsActive && n.Language == language {
			result = append(result, n)
		}
	}
	return result, nil
}

func (m *mockCatalogRepo) GetNewspapersByGenre(ctx context.Context, genre string) ([]domain.Newspaper, error) {
	var result []domain.Newspaper
	for _, n := range m.newspapers {
		if n.IsActive && n.Genre == genre {
			result = append(result, n)
		}
	}
	return result, nil
}

func (m *mockCatalogRepo) GetActiveMilkPackages(ctx context.Context) ([]domain.MilkPackage, error) {
	var result []domain.MilkPackage
	for _, p := range m.milkPackages {
		if p.IsActive {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockCatalogRepo) GetMilkPackageByID(ctx context.Context, id int64) (domain.MilkPackage, error) {
	p, ok := m.milkPackages[id]
	if !ok {
		return domain.MilkPackage{}, repository.ErrNotFound
	}
	return p, nil
}

func (m *mockCatalogRepo) FindActiveMilkPackage(ctx context.Context, id int64) (domain.MilkPackage, error) {
	p, ok := m.milkPackages[id]
	if !ok || !p.IsActive {
		return domain.MilkPackage{}, repository.ErrNotFound
	}
	return p, nil
}

func (m *mockCatalogRepo) CreateNewspaper(ctx context.Context, n domain.Newspaper) (domain.Newspaper, error) {
	n.ID = int64(len(m.newspapers) + 1)
	m.newspapers[n.ID] = n
	return n, nil
}

func (m *mockCatalogRepo) UpdateNewspaper(ctx context.Context, n domain.Newspaper) error {
	if _, ok := m.newspapers[n.ID]; !ok {
		return repository.ErrNotFound
	}
	m.newspapers[n.ID] = n
	return nil
}

func (m *mockCatalogRepo) CreateMilkPackage(ctx context.Context, p domain.MilkPackage) (domain.MilkPackage, error) {
	p.ID = int64(len(m.milkPackages) + 1)
	m.milkPackages[p.ID] = p
	return p, nil
}

func (m *mockCatalogRepo) UpdateMilkPackage(ctx context.Context, p domain.MilkPackage) error {
	if _, ok := m.milkPackages[p.ID]; !ok {
		return repository.ErrNotFound
	}
	m.milkPackages[p.ID] = p
	return nil
}

// mockUserRepo хранит пользователей в памяти
type mockUserRepo struct {
	users  map[int64]domain.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]domain.User), nextID: 1}
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return domain.User{}, repository.ErrDuplicate
		}
	}
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.nextID++
	m.users[user.ID] = user
	return user, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return domain.User{}, repository.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrNotFound
}
