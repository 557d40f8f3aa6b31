package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Server
	Env                string
	Port               string
	CORSAllowedOrigins []string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret string

	// Exchange rate
	ExchangeRateURL        string
	ExchangeRateTimeout    time.Duration
	ExchangeRateRetries    int
	ExchangeRateRetryDelay time.Duration
	ExchangeRateCacheTTL   time.Duration
	ExchangeRateFallback   float64
}

var appConfig *Config

var defaults = map[string]any{
	"ENV":                       "development",
	"PORT":                      "8080",
	"CORS_ALLOWED_ORIGINS":      "*",
	"DB_HOST":                   "localhost",
	"DB_PORT":                   "5432",
	"DB_USER":                   "budgetplan",
	"DB_PASSWORD":               "budgetplan",
	"DB_NAME":                   "budgetplan",
	"DB_SSLMODE":                "disable",
	"JWT_SECRET":                "fallback-secret-key-for-dev-only",
	"EXCHANGE_RATE_URL":         "https://query1.finance.yahoo.com/v8/finance/chart",
	"EXCHANGE_RATE_TIMEOUT":     "5s",
	"EXCHANGE_RATE_RETRIES":     3,
	"EXCHANGE_RATE_RETRY_DELAY": "500ms",
	"EXCHANGE_RATE_CACHE_TTL":   "15m",
	"EXCHANGE_RATE_FALLBACK":    1000.0,
}

// Load loads configuration from the environment, after reading .env if present
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	config := &Config{
		Env:                v.GetString("ENV"),
		Port:               v.GetString("PORT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),

		JWTSecret: v.GetString("JWT_SECRET"),

		ExchangeRateURL:        v.GetString("EXCHANGE_RATE_URL"),
		ExchangeRateRetries:    v.GetInt("EXCHANGE_RATE_RETRIES"),
		ExchangeRateFallback:   v.GetFloat64("EXCHANGE_RATE_FALLBACK"),
		ExchangeRateTimeout:    duration(v, "EXCHANGE_RATE_TIMEOUT"),
		ExchangeRateRetryDelay: duration(v, "EXCHANGE_RATE_RETRY_DELAY"),
		ExchangeRateCacheTTL:   duration(v, "EXCHANGE_RATE_CACHE_TTL"),
	}

	if config.ExchangeRateRetries < 1 {
		log.Printf("Warning: invalid EXCHANGE_RATE_RETRIES value %d, falling back to 1\n", config.ExchangeRateRetries)
		config.ExchangeRateRetries = 1
	}
	if config.ExchangeRateFallback <= 0 {
		log.Printf("Warning: invalid EXCHANGE_RATE_FALLBACK value %f, falling back to %v\n",
			config.ExchangeRateFallback, defaults["EXCHANGE_RATE_FALLBACK"])
		config.ExchangeRateFallback = defaults["EXCHANGE_RATE_FALLBACK"].(float64)
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// duration parses a duration setting, falling back to its default on bad input.
func duration(v *viper.Viper, key string) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaults[key])
		d, _ = time.ParseDuration(defaults[key].(string))
	}
	return d
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
