package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Order       OrderConfig
	Cart        CartConfig
	Storage     StorageConfig
	RabbitMQ    RabbitMQConfig
	Firebase    FirebaseConfig
	SMTP        SMTPConfig
	Internal    InternalConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"3306"`
	User            string        `envconfig:"DB_USER" default:"root"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" default:"snackstore"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type AuthConfig struct {
	JWTSecret      string        `envconfig:"JWT_SECRET" default:"change-me"`
	JWTExpiration  time.Duration `envconfig:"JWT_EXPIRATION" default:"24h"`
	SessionExpTime time.Duration `envconfig:"SESSION_EXPIRATION" default:"24h"`
}

type OrderConfig struct {
	// StrictTransitions rejects status moves outside constant.OrderStatusTransitions.
	StrictTransitions bool          `envconfig:"ORDER_STRICT_TRANSITIONS" default:"false"`
	ReminderDelay     time.Duration `envconfig:"ORDER_REMINDER_DELAY" default:"30m"`
}

type CartConfig struct {
	DeliveryFee            decimal.Decimal `envconfig:"CART_DELIVERY_FEE" default:"15.00"`
	DefaultWholesaleMode   bool            `envconfig:"CART_DEFAULT_WHOLESALE_MODE" default:"true"`
	ScheduleWindowStartDay int             `envconfig:"SCHEDULE_WINDOW_START_DAY" default:"1"`
	ScheduleWindowEndDay   int             `envconfig:"SCHEDULE_WINDOW_END_DAY" default:"30"`
}

type StorageConfig struct {
	// KeyPrefix namespaces every snapshot key, one storefront per prefix.
	KeyPrefix string `envconfig:"STORAGE_KEY_PREFIX" default:"snackstore:default"`
}

type RabbitMQConfig struct {
	Enabled  bool   `envconfig:"RABBITMQ_ENABLED" default:"false"`
	Host     string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	Port     int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	User     string `envconfig:"RABBITMQ_USER" default:"guest"`
	Password string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
}

type FirebaseConfig struct {
	CredentialsPath string `envconfig:"FIREBASE_CREDENTIALS_PATH"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"SMTP_FROM" default:"pedidos@snackstore.local"`
}

type InternalConfig struct {
	APIKey string `envconfig:"INTERNAL_API_KEY"`
}

// Load reads .env (if present) then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func (s StorageConfig) Key(name string) string {
	return s.KeyPrefix + ":" + name
}

func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}
