package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
	Migrate  bool   `mapstructure:"migrate"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type RatesAPI struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	RetryWaitMs    int    `mapstructure:"retry_wait_ms"`
}

type Cache struct {
	// Backend selects the rate table cache: memory, ristretto or redis.
	Backend    string `mapstructure:"backend"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
	MaxItems   int64  `mapstructure:"max_items"`
}

func (c *Cache) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type Redis struct {
	URL string `mapstructure:"url"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Currencies struct {
	Supported []string `mapstructure:"supported"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	RatesAPI   RatesAPI   `mapstructure:"rates_api"`
	Cache      Cache      `mapstructure:"cache"`
	Redis      Redis      `mapstructure:"redis"`
	Logging    Logging    `mapstructure:"logging"`
	Currencies Currencies `mapstructure:"currencies"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional: container deployments set real env vars instead.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("db_server.migrate", true)
	viper.SetDefault("rates_api.base_url", "https://api.frankfurter.dev/v1")
	viper.SetDefault("rates_api.timeout_seconds", 10)
	viper.SetDefault("rates_api.retry_wait_ms", 250)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.ttl_seconds", 60)
	viper.SetDefault("cache.max_items", 1024)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("currencies.supported", []string{
		"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "CNY", "SEK", "NZD",
	})

	// http server env vars
	_ = viper.BindEnv("http_server.port", "HTTP_PORT")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")
	_ = viper.BindEnv("db_server.migrate", "DB_MIGRATE")

	// rates api env vars
	_ = viper.BindEnv("rates_api.base_url", "RATES_API_BASE_URL")
	_ = viper.BindEnv("rates_api.timeout_seconds", "RATES_API_TIMEOUT_SECONDS")
	_ = viper.BindEnv("rates_api.retry_wait_ms", "RATES_API_RETRY_WAIT_MS")

	// cache env vars
	_ = viper.BindEnv("cache.backend", "CACHE_BACKEND")
	_ = viper.BindEnv("cache.ttl_seconds", "CACHE_TTL_SECONDS")
	_ = viper.BindEnv("redis.url", "REDIS_URL")

	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
