package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	RazorpayKeyID     string
	RazorpayKeySecret string

	JWTSecret string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPass      string
	OperatorEmail string

	RedisAddr string
}

func LoadEnv() Env {
	// .env is optional; deployments may set variables directly.
	_ = godotenv.Load()

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "tourism_app"),

		RazorpayKeyID:     strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID")),
		RazorpayKeySecret: strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET")),

		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),

		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getenv("SMTP_PORT", "587"),
		SMTPUser:      strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass:      strings.TrimSpace(os.Getenv("SMTP_PASS")),
		OperatorEmail: getenv("OPERATOR_EMAIL", "orbitrushtourism@gmail.com"),

		RedisAddr: strings.TrimSpace(os.Getenv("REDIS_ADDR")),
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
