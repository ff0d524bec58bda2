package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting the billing service reads from the environment or .env.
type Config struct {
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	InvoicesTable      string `mapstructure:"INVOICES_TABLE"`
	PaymentsTable      string `mapstructure:"PAYMENTS_TABLE"`
	PoliciesTable      string `mapstructure:"POLICIES_TABLE"`
	ClaimsTable        string `mapstructure:"CLAIMS_TABLE"`
	CountersTable      string `mapstructure:"COUNTERS_TABLE"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	NotificationTransport  string `mapstructure:"NOTIFICATION_TRANSPORT"`
	NotificationServiceURL string `mapstructure:"NOTIFICATION_SERVICE_URL"`
	AMQPURL                string `mapstructure:"AMQP_URL"`
	NotificationQueue      string `mapstructure:"NOTIFICATION_QUEUE"`
	NotificationBuffer     int    `mapstructure:"NOTIFICATION_BUFFER"`

	UserServiceURL    string        `mapstructure:"USER_SERVICE_URL"`
	HTTPClientTimeout time.Duration `mapstructure:"HTTP_CLIENT_TIMEOUT"`

	JWTSecret    string `mapstructure:"JWT_SECRET"`
	AuthDisabled bool   `mapstructure:"AUTH_DISABLED"`

	InvoiceDueDays int `mapstructure:"INVOICE_DUE_DAYS"`

	MercadoPagoAccessToken    string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayerEmail string `mapstructure:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	MercadoPagoTestPayerID    string `mapstructure:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	PaymentGatewayMock        bool   `mapstructure:"PAYMENT_GATEWAY_MOCK"`
}

const (
	NotificationTransportHTTP = "http"
	NotificationTransportAMQP = "amqp"
	NotificationTransportNone = "none"
)

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	"INVOICES_TABLE", "PAYMENTS_TABLE", "POLICIES_TABLE", "CLAIMS_TABLE", "COUNTERS_TABLE",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"NOTIFICATION_TRANSPORT", "NOTIFICATION_SERVICE_URL", "AMQP_URL", "NOTIFICATION_QUEUE", "NOTIFICATION_BUFFER",
	"USER_SERVICE_URL", "HTTP_CLIENT_TIMEOUT",
	"JWT_SECRET", "AUTH_DISABLED",
	"INVOICE_DUE_DAYS",
	"MERCADOPAGO_ACCESS_TOKEN", "MERCADOPAGO_TEST_PAYER_EMAIL", "MERCADOPAGO_TEST_PAYER_USER_ID", "PAYMENT_GATEWAY_MOCK",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AWS_REGION", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("INVOICES_TABLE", "invoices")
	v.SetDefault("PAYMENTS_TABLE", "payments")
	v.SetDefault("POLICIES_TABLE", "insurance_policies")
	v.SetDefault("CLAIMS_TABLE", "insurance_claims")
	v.SetDefault("COUNTERS_TABLE", "billing_counters")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("NOTIFICATION_TRANSPORT", NotificationTransportHTTP)
	v.SetDefault("NOTIFICATION_QUEUE", "notifications")
	v.SetDefault("NOTIFICATION_BUFFER", 256)
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "5s")
	v.SetDefault("AUTH_DISABLED", false)
	v.SetDefault("INVOICE_DUE_DAYS", 30)
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env is optional, but one that exists must parse.
	if err := v.ReadInConfig(); err != nil && !isMissingConfig(err) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.NotificationTransport = strings.ToLower(strings.TrimSpace(cfg.NotificationTransport))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.NotificationTransport {
	case NotificationTransportHTTP, NotificationTransportAMQP, NotificationTransportNone:
	default:
		return fmt.Errorf("NOTIFICATION_TRANSPORT must be http, amqp or none, got %q", c.NotificationTransport)
	}
	if c.NotificationTransport == NotificationTransportAMQP && c.AMQPURL == "" {
		return fmt.Errorf("AMQP_URL is required when NOTIFICATION_TRANSPORT is amqp")
	}
	if !c.AuthDisabled && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required unless AUTH_DISABLED is set")
	}
	if c.InvoiceDueDays < 0 {
		return fmt.Errorf("INVOICE_DUE_DAYS must not be negative")
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}
