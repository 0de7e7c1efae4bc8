package stripe

import (
	"net/http"
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

// Client представляет клиент для работы с API Stripe
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

// Config конфигурация для клиента Stripe
type Config struct {
	APIKey string
}

// NewClient создает новый клиент Stripe
func NewClient(cfg Config, log *logger.Logger) *Client {
	return &Client{
		baseURL: "https://api.stripe.com/v1",
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

// Name возвращает имя провайдера
func (c *Client) Name() domain.PaymentProvider {
	return domain.ProviderStripe
}
