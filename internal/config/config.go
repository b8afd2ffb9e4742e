package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// Paystack holds the gateway client configuration. It is built once at
// startup and handed to the client constructor; the gateway code never
// reads the environment itself.
type Paystack struct {
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
}

// Mail holds SMTP transport settings for outbound notifications.
type Mail struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// App collects the settings the settlement flow needs beyond its
// collaborators.
type App struct {
	FrontendURL   string
	JWTSecret     string
	RefreshSecret string
}

// LoadApp reads the application configuration from the environment.
func LoadApp() App {
	return App{
		FrontendURL:   GetEnv("FRONTEND_URL", "http://localhost:5173"),
		JWTSecret:     GetEnv("JWT_SECRET", "estatien"),
		RefreshSecret: GetEnv("REFRESH_SECRET", "estatien-refresh"),
	}
}

// LoadPaystack reads the gateway configuration from the environment.
func LoadPaystack() Paystack {
	timeout, err := time.ParseDuration(GetEnv("PAYSTACK_TIMEOUT", "30s"))
	if err != nil {
		timeout = 30 * time.Second
	}
	return Paystack{
		SecretKey: GetEnv("PAYSTACK_SECRET_KEY", ""),
		BaseURL:   GetEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		Timeout:   timeout,
	}
}

// LoadMail reads the SMTP configuration from the environment.
func LoadMail() Mail {
	return Mail{
		Host:     GetEnv("EMAIL_HOST", "smtp.gmail.com"),
		Port:     GetEnv("EMAIL_PORT", "587"),
		Username: GetEnv("EMAIL_USER", ""),
		Password: GetEnv("EMAIL_PASS", ""),
		From:     GetEnv("EMAIL_FROM", "Estatien <no-reply@estatien.co>"),
	}
}
