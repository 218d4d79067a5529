package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT string

	DB_DRIVER       string
	DB_HOST         string
	DB_USER         string
	DB_PASSWORD     string
	DB_NAME         string
	DB_PORT         int
	DB_POOL_SIZE    int
	DB_AUTO_MIGRATE bool

	CORS_ORIGIN string
	LOG_LEVEL   string

	// frontend
	WEB_PORT        string
	PUBLIC_API_HOST string
)

func LoadEnv() {
	// .env.local wins over .env; godotenv never overrides variables already set
	for _, file := range []string{".env.local", ".env"} {
		if err := godotenv.Load(file); err != nil {
			log.Printf("No %s file found. Using system environment variables.", file)
		}
	}

	PORT = getEnv("PORT", "3002")

	DB_DRIVER = strings.ToLower(getEnv("DB_DRIVER", "mysql"))
	DB_HOST = getEnv("DB_HOST", "localhost")
	DB_USER = getEnv("DB_USER", "root")
	DB_PASSWORD = getEnv("DB_PASSWORD", "")
	DB_NAME = getEnv("DB_NAME", "last_dit312")
	DB_PORT = getEnvInt("DB_PORT", 3306)
	DB_POOL_SIZE = getEnvInt("DB_POOL_SIZE", 10)
	DB_AUTO_MIGRATE = getEnvBool("DB_AUTO_MIGRATE", true)

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
	LOG_LEVEL = getEnv("LOG_LEVEL", "info")

	WEB_PORT = getEnv("WEB_PORT", "3000")
	PUBLIC_API_HOST = strings.TrimRight(getEnv("PUBLIC_API_HOST", "http://localhost:3002"), "/")
}

// DSN builds the connection string for DB_DRIVER.
func DSN() string {
	switch DB_DRIVER {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)
	case "sqlite":
		return DB_NAME
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			DB_USER, DB_PASSWORD, DB_HOST, DB_PORT, DB_NAME)
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Fatalf("Invalid integer for environment variable %s: %q", key, v)
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		log.Fatalf("Invalid boolean for environment variable %s: %q", key, v)
	}
	return b
}
