package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	// Демо-учетка администратора (единственная проходящая как admin)
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		Port:          getenvOrDefault("PORT", "8080"),
		RedisAddr:     getenvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getenvOrDefault("JWT_SECRET", "globetrek-demo-secret"),
		AdminEmail:    getenvOrDefault("ADMIN_EMAIL", "admin@admin.com"),
		AdminPassword: getenvOrDefault("ADMIN_PASSWORD", "admin123"),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
