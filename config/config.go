package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Booking backend REST API.
	BackendBaseURL string        `mapstructure:"BACKEND_BASE_URL"`
	BackendTimeout time.Duration `mapstructure:"BACKEND_TIMEOUT"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCatalogDB int    `mapstructure:"REDIS_CATALOG_DB"`

	// Cloudinary (payment-proof uploads).
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL"`

	// Fallback bank account shown for bank transfers when the booking
	// response carries no bank details.
	BankFallbackName    string `mapstructure:"BANK_FALLBACK_NAME"`
	BankFallbackAccount string `mapstructure:"BANK_FALLBACK_ACCOUNT"`
	BankFallbackBank    string `mapstructure:"BANK_FALLBACK_BANK"`

	// Client-side routes consumed as workflow exit points.
	LoginRoute    string `mapstructure:"LOGIN_ROUTE"`
	BookingsRoute string `mapstructure:"BOOKINGS_ROUTE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:9000/api/v1")
	viper.SetDefault("BACKEND_TIMEOUT", 15*time.Second)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_CATALOG_DB", 1)
	viper.SetDefault("BANK_FALLBACK_NAME", "Shortlet Stays Ltd")
	viper.SetDefault("BANK_FALLBACK_ACCOUNT", "0123456789")
	viper.SetDefault("BANK_FALLBACK_BANK", "Providus Bank")
	viper.SetDefault("LOGIN_ROUTE", "/login")
	viper.SetDefault("BOOKINGS_ROUTE", "/bookings")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
