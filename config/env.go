package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	SessionSecret string
	SessionTTL    time.Duration
	DeliveryFee   float64
	ServiceFee    float64
	OrderTimeout  time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	deliveryFee, err := strconv.ParseFloat(os.Getenv("DELIVERY_FEE"), 64)
	if err != nil || deliveryFee < 0 {
		deliveryFee = 2.99
	}

	serviceFee, err := strconv.ParseFloat(os.Getenv("SERVICE_FEE"), 64)
	if err != nil || serviceFee < 0 {
		serviceFee = 1.50
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "72h"))
	if err != nil {
		sessionTTL = 72 * time.Hour
	}

	orderTimeout, err := time.ParseDuration(getEnv("ORDER_TIMEOUT", "10s"))
	if err != nil {
		orderTimeout = 10 * time.Second
	}

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "plateraa"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		SessionSecret: getEnv("SESSION_SECRET", "secret"),
		SessionTTL:    sessionTTL,
		DeliveryFee:   deliveryFee,
		ServiceFee:    serviceFee,
		OrderTimeout:  orderTimeout,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
