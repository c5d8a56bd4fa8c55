package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string

	// Redis backs the reset-code registry when set; otherwise an
	// in-memory store is used.
	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret string

	// SES is used for reset codes and testimonial alerts when
	// SESFromEmail is set; otherwise notifications go to the log.
	AWSRegion        string
	SESFromEmail     string
	SESFromName      string
	AdminNotifyEmail string

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		MySQLDSN:         getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/portfolio?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		AWSRegion:        getEnv("AWS_REGION", "eu-west-1"),
		SESFromEmail:     os.Getenv("SES_FROM_EMAIL"),
		SESFromName:      os.Getenv("SES_FROM_NAME"),
		AdminNotifyEmail: os.Getenv("ADMIN_NOTIFY_EMAIL"),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
