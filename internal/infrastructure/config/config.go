package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreBackendMemory   = "memory"
	StoreBackendRedis    = "redis"
	StoreBackendDynamoDB = "dynamodb"
)

// Config is the whole process configuration, read from the environment
// (a .env file is autoloaded by cmd/api).
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Auth     AuthConfig
	Store    StoreConfig
	Redis    RedisConfig
	DynamoDB DynamoDBConfig
	Payments PaymentsConfig
	Recovery RecoveryConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"PORT" default:"4000"`
	ServiceName     string        `envconfig:"SERVICE_NAME" default:"ndaje-backend"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

type AuthConfig struct {
	JWTSecret string        `envconfig:"JWT_SECRET" default:"ndaje-dev-secret"`
	Issuer    string        `envconfig:"JWT_ISSUER" default:"ndaje-backend"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
}

type StoreConfig struct {
	Backend    string `envconfig:"STORE_BACKEND" default:"memory"`
	OrdersKey  string `envconfig:"STORE_ORDERS_KEY" default:"hs_demo_orders"`
	BucketsKey string `envconfig:"STORE_BUCKETS_KEY" default:"hs_demo_buckets"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix    string        `envconfig:"REDIS_KEY_PREFIX" default:"ndaje:"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

// DynamoDBConfig selects the table and connection. Static credentials are
// used only when AccessKeyID is set; otherwise the SDK default chain applies.
// Endpoint points the client at DynamoDB Local or another compatible server.
type DynamoDBConfig struct {
	Table           string `envconfig:"STATE_TABLE" default:"storefront_state"`
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`
}

type PaymentsConfig struct {
	Mock           bool          `envconfig:"PAYMENT_GATEWAY_MOCK" default:"true"`
	AccessToken    string        `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	SimulatedDelay time.Duration `envconfig:"PAYMENT_SIMULATED_DELAY" default:"1500ms"`
	Currency       string        `envconfig:"PAYMENT_CURRENCY" default:"RWF"`
}

type RecoveryConfig struct {
	Interval    time.Duration `envconfig:"DRAFT_RECOVERY_INTERVAL" default:"1m"`
	DraftMaxAge time.Duration `envconfig:"DRAFT_MAX_AGE" default:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case StoreBackendMemory, StoreBackendRedis, StoreBackendDynamoDB:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.Store.Backend)
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.Payments.SimulatedDelay < 0 {
		return fmt.Errorf("PAYMENT_SIMULATED_DELAY must not be negative")
	}
	return nil
}
