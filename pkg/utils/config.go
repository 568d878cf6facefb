package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Google    GoogleConfig
	Mpesa     MpesaConfig
	Storage   StorageConfig
	Email     EmailConfig
	OpenAI    OpenAIConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type GoogleConfig struct {
	ClientID string
}

type MpesaConfig struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackURL    string
}

type StorageConfig struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. gs://kikao-images
	// or file:///var/kikao/images for local development.
	BucketURL string
	PublicURL string
	// MaxUploadBytes caps a single listing image upload.
	MaxUploadBytes int64
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// RateLimitConfig caps requests per client IP over a sliding window.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 168)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MPESA_BASE_URL", "https://sandbox.safaricom.co.ke")
	viper.SetDefault("IMAGE_UPLOAD_SIZE_LIMIT", 5*1024*1024)
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW_MINUTES", 15)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Google: GoogleConfig{
			ClientID: viper.GetString("GOOGLE_CLIENT_ID"),
		},
		Mpesa: MpesaConfig{
			BaseURL:        viper.GetString("MPESA_BASE_URL"),
			ConsumerKey:    viper.GetString("MPESA_CONSUMER_KEY"),
			ConsumerSecret: viper.GetString("MPESA_CONSUMER_SECRET"),
			ShortCode:      viper.GetString("MPESA_SHORT_CODE"),
			Passkey:        viper.GetString("MPESA_PASSKEY"),
			CallbackURL:    viper.GetString("MPESA_CALLBACK_URL"),
		},
		Storage: StorageConfig{
			BucketURL:      viper.GetString("STORAGE_BUCKET_URL"),
			PublicURL:      viper.GetString("STORAGE_PUBLIC_URL"),
			MaxUploadBytes: viper.GetInt64("IMAGE_UPLOAD_SIZE_LIMIT"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  viper.GetString("OPENAI_API_KEY"),
			BaseURL: viper.GetString("OPENAI_BASE_URL"),
			Model:   viper.GetString("OPENAI_MODEL"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_MINUTES")) * time.Minute,
		},
	}

	return config, nil
}
