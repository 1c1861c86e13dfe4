package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. FULFILLMENT_DB_HOST.
const EnvPrefix = "FULFILLMENT"

type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	DB    DBConfig
	Redis RedisConfig
	Kafka KafkaConfig
	Jobs  JobsConfig
}

type AppConfig struct {
	ServiceName string `split_words:"true" default:"fulfillment"`
	// Timezone decides the calendar day of purchases for reports and the rollup.
	Timezone  string `default:"America/Bogota" validate:"required,timezone"`
	LogLevel  string `split_words:"true" default:"info" validate:"oneof=trace debug info warn error"`
	LogFormat string `split_words:"true" default:"json" validate:"oneof=json console"`
}

type HTTPConfig struct {
	Port            string        `default:"8080" validate:"required,numeric"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
}

type DBConfig struct {
	Driver   string `default:"postgres" validate:"oneof=postgres sqlite"`
	Host     string `validate:"required_if=Driver postgres"`
	Port     string `default:"5432"`
	User     string `validate:"required_if=Driver postgres"`
	Password string
	Name     string `validate:"required_if=Driver postgres"`
	SSLMode  string `envconfig:"SSLMODE" default:"disable"`
	// SQLitePath is a file path or a file: URI; used when Driver is sqlite.
	SQLitePath string `envconfig:"SQLITE_PATH" default:"fulfillment.db"`

	MaxOpenConns    int           `split_words:"true" default:"20" validate:"gte=1"`
	MaxIdleConns    int           `split_words:"true" default:"10" validate:"gte=0"`
	ConnMaxLifetime time.Duration `split_words:"true" default:"1h"`
	AutoMigrate     bool          `split_words:"true" default:"true"`
}

// DSN is the connection string for the postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// RedisConfig configures the revenue rollup. An empty URL disables it and
// revenue queries scan the orders.
type RedisConfig struct {
	URL          string        `validate:"omitempty,url"`
	PoolSize     int           `split_words:"true" default:"10"`
	DialTimeout  time.Duration `split_words:"true" default:"5s"`
	ReadTimeout  time.Duration `split_words:"true" default:"3s"`
	WriteTimeout time.Duration `split_words:"true" default:"3s"`
	RollupTTL    time.Duration `split_words:"true" default:"9600h"`
}

// KafkaConfig configures order event publishing. Empty Brokers disables it.
type KafkaConfig struct {
	Brokers string
	Topic   string `default:"fulfillment.order-events" validate:"required_with=Brokers"`
}

type JobsConfig struct {
	Enabled               bool   `default:"true"`
	ReconcileSchedule     string `split_words:"true" default:"0 */5 * * * *" validate:"required"`
	ReconcileBatchSize    int    `split_words:"true" default:"200" validate:"gte=1"`
	RollupRebuildSchedule string `split_words:"true" default:"0 30 3 * * *" validate:"required"`
}

// LoadConfig reads an optional .env file, then the FULFILLMENT_* environment.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return Config{}, fmt.Errorf("loading env files: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		return fmt.Errorf("invalid config: %w", invalid)
	}
	return err
}

// Location loads the configured time zone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}
