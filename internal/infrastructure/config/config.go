package config

import (
	"errors"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration read from the environment (.env files
// are loaded by godotenv/autoload before this runs).
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	Port      int    `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	ProposalsTable     string `envconfig:"PROPOSALS_TABLE" default:"proposals"`
	PriceTablesTable   string `envconfig:"PRICE_TABLES_TABLE" default:"price_tables"`
	CountersTable      string `envconfig:"COUNTERS_TABLE" default:"counters"`
	SetupPaymentsTable string `envconfig:"SETUP_PAYMENTS_TABLE" default:"setup_payments"`

	RedisURL           string        `envconfig:"REDIS_URL"`
	PriceTableCacheTTL time.Duration `envconfig:"PRICE_TABLE_CACHE_TTL" default:"5m"`

	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	JWTIssuer   string `envconfig:"JWT_ISSUER" default:"cotador"`
	JWTAudience string `envconfig:"JWT_AUDIENCE" default:"cotador-api"`

	// RateLimit uses the ulule/limiter format, e.g. "100-M".
	RateLimit string `envconfig:"RATE_LIMIT" default:"300-M"`

	MercadoPagoAccessToken    string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayerEmail string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	PaymentGatewayMock        bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.PriceTableCacheTTL < 0 {
		return nil, errors.New("price table cache ttl must not be negative")
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// MercadoPagoSandbox reports whether the access token belongs to a test account.
func (c *Config) MercadoPagoSandbox() bool {
	return c != nil && strings.HasPrefix(strings.TrimSpace(c.MercadoPagoAccessToken), "TEST-")
}
