package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Listing store. When DATABASE_URL is empty the service runs on the
	// seeded in-memory store and nothing survives a restart.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisDraftDB  int    `mapstructure:"REDIS_DRAFT_DB"`

	// Hosted identity service (sign-in/sign-up are delegated wholesale).
	AuthServiceURL string `mapstructure:"AUTH_SERVICE_URL"`
	AuthAnonKey    string `mapstructure:"AUTH_ANON_KEY"`
	// Signing secret of the identity service, used to validate access
	// tokens locally.
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Catalog tuning.
	PageSize        int `mapstructure:"PAGE_SIZE"`
	SearchCacheTTL  int `mapstructure:"SEARCH_CACHE_TTL_SECONDS"`
	DraftTTLMinutes int `mapstructure:"DRAFT_TTL_MINUTES"`
	MaxImageMB      int `mapstructure:"MAX_IMAGE_MB"`

	// Optional Cloudinary-backed image storage.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
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
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_NAME", "parcelo")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_DRAFT_DB", 2)
	viper.SetDefault("AUTH_SERVICE_URL", "")
	viper.SetDefault("AUTH_ANON_KEY", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("PAGE_SIZE", 9)
	viper.SetDefault("SEARCH_CACHE_TTL_SECONDS", 30)
	viper.SetDefault("DRAFT_TTL_MINUTES", 60)
	viper.SetDefault("MAX_IMAGE_MB", 5)

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

// AuthConfigured reports whether the hosted identity service is usable.
// Absence of either value is surfaced at startup as a diagnostic; auth
// endpoints answer 503 until both are provided.
func AuthConfigured() bool {
	return AppConfig.AuthServiceURL != "" && AppConfig.AuthAnonKey != ""
}
