package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageFile  = "file"
	StorageMySQL = "mysql"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Sale     SaleConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
	Operator OperatorConfig
}

type OperatorConfig struct {
	ID       int
	Name     string
	Email    string
	Password string
	Role     string
}

type StorageConfig struct {
	Driver string
	Dir    string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SaleConfig struct {
	DefaultPaymentMethod string
	StrictBasket         bool
}

type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	IdempotencyTTL time.Duration
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// Load reads defaults, then the optional YAML file at path, then the
// environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("checking config file: %w", err)
		}
	}

	connMaxLifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, fmt.Errorf("parsing DB_CONN_MAX_LIFETIME: %w", err)
	}
	tokenTTL, err := time.ParseDuration(v.GetString("AUTH_TOKEN_TTL"))
	if err != nil {
		return nil, fmt.Errorf("parsing AUTH_TOKEN_TTL: %w", err)
	}
	idempotencyTTL, err := time.ParseDuration(v.GetString("REDIS_IDEMPOTENCY_TTL"))
	if err != nil {
		return nil, fmt.Errorf("parsing REDIS_IDEMPOTENCY_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("SERVER_HOST"),
			Port:        v.GetInt("SERVER_PORT"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Auth: AuthConfig{
			Secret:   v.GetString("AUTH_SECRET"),
			TokenTTL: tokenTTL,
			Operator: OperatorConfig{
				ID:       v.GetInt("AUTH_OPERATOR_ID"),
				Name:     v.GetString("AUTH_OPERATOR_NAME"),
				Email:    v.GetString("AUTH_OPERATOR_EMAIL"),
				Password: v.GetString("AUTH_OPERATOR_PASSWORD"),
				Role:     v.GetString("AUTH_OPERATOR_ROLE"),
			},
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
			Dir:    v.GetString("STORAGE_DIR"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Sale: SaleConfig{
			DefaultPaymentMethod: v.GetString("SALE_DEFAULT_PAYMENT_METHOD"),
			StrictBasket:         v.GetBool("SALE_STRICT_BASKET"),
		},
		Redis: RedisConfig{
			Addr:           v.GetString("REDIS_ADDR"),
			Password:       v.GetString("REDIS_PASSWORD"),
			DB:             v.GetInt("REDIS_DB"),
			IdempotencyTTL: idempotencyTTL,
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 3001)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("AUTH_SECRET", "pdv_super_secreto")
	v.SetDefault("AUTH_TOKEN_TTL", "8h")
	v.SetDefault("AUTH_OPERATOR_ID", 1)
	v.SetDefault("AUTH_OPERATOR_NAME", "Administrador")
	v.SetDefault("AUTH_OPERATOR_EMAIL", "admin@pdv.com")
	v.SetDefault("AUTH_OPERATOR_PASSWORD", "123456")
	v.SetDefault("AUTH_OPERATOR_ROLE", "admin")

	v.SetDefault("STORAGE_DRIVER", StorageFile)
	v.SetDefault("STORAGE_DIR", "data")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "pdv")
	v.SetDefault("DB_PASSWORD", "secret")
	v.SetDefault("DB_NAME", "pdv")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")

	v.SetDefault("SALE_DEFAULT_PAYMENT_METHOD", "dinheiro")
	v.SetDefault("SALE_STRICT_BASKET", false)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_IDEMPOTENCY_TTL", "24h")

	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "pdv_events")
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageFile, StorageMySQL:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Auth.Secret == "" {
		return errors.New("AUTH_SECRET must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
