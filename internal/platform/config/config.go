package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	// Object storage for uploaded logos
	S3Bucket        string `mapstructure:"S3_BUCKET"`
	S3Region        string `mapstructure:"S3_REGION"`
	S3Endpoint      string `mapstructure:"S3_ENDPOINT"`
	S3AccessKey     string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey     string `mapstructure:"S3_SECRET_KEY"`
	S3PublicBaseURL string `mapstructure:"S3_PUBLIC_BASE_URL"`

	// Upload ceilings in bytes. Invoice drafts embed logos by URL only,
	// so their ceiling is tighter than the profile one.
	MaxProfileLogoSizeBytes int64
	MaxInvoiceLogoSizeBytes int64

	// Requests per minute on export and download routes
	ExportRateLimit int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "invoice-craft-app")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_ACCESS_KEY", "")
	viper.SetDefault("S3_SECRET_KEY", "")
	viper.SetDefault("S3_PUBLIC_BASE_URL", "")
	viper.SetDefault("MAX_PROFILE_LOGO_SIZE_BYTES", int64(5*1024*1024))
	viper.SetDefault("MAX_INVOICE_LOGO_SIZE_BYTES", int64(2*1024*1024))
	viper.SetDefault("EXPORT_RATE_LIMIT", int64(30))

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 24
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google OAuth will not function.")
	}

	cfg.S3Bucket = viper.GetString("S3_BUCKET")
	cfg.S3Region = viper.GetString("S3_REGION")
	cfg.S3Endpoint = viper.GetString("S3_ENDPOINT")
	cfg.S3AccessKey = viper.GetString("S3_ACCESS_KEY")
	cfg.S3SecretKey = viper.GetString("S3_SECRET_KEY")
	cfg.S3PublicBaseURL = viper.GetString("S3_PUBLIC_BASE_URL")
	if cfg.S3Bucket == "" {
		log.Println("Warning: S3_BUCKET not set. Logo uploads will fail.")
	}

	cfg.MaxProfileLogoSizeBytes = viper.GetInt64("MAX_PROFILE_LOGO_SIZE_BYTES")
	cfg.MaxInvoiceLogoSizeBytes = viper.GetInt64("MAX_INVOICE_LOGO_SIZE_BYTES")
	cfg.ExportRateLimit = viper.GetInt64("EXPORT_RATE_LIMIT")

	return cfg, nil
}
