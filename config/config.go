package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	AppEnv    string // development, production
	ClientURL string
	Origins   string // comma separated allowed origins
	JWTKey    string
	SaltRound int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	PayPalBaseURL  string
	PayPalClientID string
	PayPalSecret   string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	SendgridAPIKey  string
	EmailSender     string
	EmailSenderName string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "5000"),
		AppEnv:    getEnv("APP_ENV", "development"),
		ClientURL: getEnv("CLIENT_URL", "http://localhost:5173"),
		Origins:   getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "lms"),

		PayPalBaseURL:  getEnv("PAYPAL_BASE_URL", "https://api-m.sandbox.paypal.com"),
		PayPalClientID: getEnv("PAYPAL_CLIENT_ID", ""),
		PayPalSecret:   getEnv("PAYPAL_SECRET_ID", ""),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),

		SendgridAPIKey:  getEnv("SENDGRID_API_KEY", ""),
		EmailSender:     getEnv("EMAIL_SENDER", "no-reply@localhost"),
		EmailSenderName: getEnv("EMAIL_SENDER_NAME", "LMS"),
	}

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}

	// In production mode a missing credential is a fatal startup condition.
	if AppConfig.AppEnv == "production" {
		requireProductionConfig()
	}
}

func requireProductionConfig() {
	required := [][2]string{
		{"JWT_SECRET_KEY", AppConfig.JWTKey},
		{"DB_PASSWORD", AppConfig.DBPassword},
		{"PAYPAL_CLIENT_ID", AppConfig.PayPalClientID},
		{"PAYPAL_SECRET_ID", AppConfig.PayPalSecret},
		{"CLOUDINARY_CLOUD_NAME", AppConfig.CloudinaryCloudName},
		{"CLOUDINARY_API_KEY", AppConfig.CloudinaryAPIKey},
		{"CLOUDINARY_API_SECRET", AppConfig.CloudinaryAPISecret},
	}

	var missing []string
	for _, pair := range required {
		if pair[1] == "" || pair[1] == "defaultSecret" {
			missing = append(missing, pair[0])
		}
	}

	if len(missing) > 0 {
		log.Fatalf("Missing required production configuration: %s", strings.Join(missing, ", "))
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
