package razorpay

import (
	"net/http"
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

// Client представляет клиент для работы с API Razorpay
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	log        *logger.Logger
}

// Config конфигурация для клиента Razorpay
type Config struct {
	KeyID     string
	KeySecret string
}

// NewClient создает новый клиент Razorpay
func NewClient(cfg Config, log *logger.Logger) *Client {
	return &Client{
		baseURL:   "https://api.razorpay.com/v1",
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

// Name возвращает имя провайдера
func (c *Client) Name() domain.PaymentProvider {
	return domain.ProviderRazorpay
}

// KeySecret возвращает секретный ключ Razorpay (используется для верификации подписей)
func (c *Client) KeySecret() string {
	return c.keySecret
}
