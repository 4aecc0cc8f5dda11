package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type SMTPSettings struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool
	RequireTLS bool
}

type RedisSettings struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitSettings struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	KeyStrategy    string
	Prefix         string
}

type Config struct {
	Port        string
	PostgresURL string
	AutoMigrate bool

	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins []string

	AppName    string
	AppBaseURL string
	SMTP       SMTPSettings

	Redis     RedisSettings
	RateLimit RateLimitSettings

	RabbitMQURL string
	EventQueue  string
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		PostgresURL: mustEnv("POSTGRES_URL"),
		AutoMigrate: getEnvBool("AUTO_MIGRATE", true),

		JWTSecret: mustEnv("JWT_SECRET"),
		JWTTTL:    time.Duration(getEnvInt("JWT_TTL_MINUTES", 60)) * time.Minute,

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		AppName:    getEnv("APP_NAME", "GymFit"),
		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:3000"),
		SMTP: SMTPSettings{
			Host:       getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:       getEnvInt("SMTP_PORT", 587), // 465 with SMTP_USE_SSL=true
			Username:   getEnv("SMTP_USERNAME", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			From:       getEnv("SMTP_FROM", "no-reply@gymfit.local"),
			FromName:   getEnv("SMTP_FROM_NAME", "GymFit"),
			UseSSL:     getEnvBool("SMTP_USE_SSL", false),
			RequireTLS: getEnvBool("SMTP_REQUIRE_TLS", true),
		},

		Redis: RedisSettings{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitSettings{
			Enabled:        getEnvBool("RATE_LIMIT_ENABLED", true),
			Capacity:       getEnvInt("RATE_LIMIT_CAPACITY", 30),
			RefillTokens:   getEnvInt("RATE_LIMIT_REFILL_TOKENS", 1),
			RefillInterval: getEnvDuration("RATE_LIMIT_REFILL_INTERVAL", 2*time.Second),
			TTL:            getEnvDuration("RATE_LIMIT_TTL", 10*time.Minute),
			KeyStrategy:    getEnv("RATE_LIMIT_KEY_STRATEGY", "ip_user_route"),
			Prefix:         getEnv("RATE_LIMIT_PREFIX", "gymfit:rl"),
		},

		RabbitMQURL: getEnv("RABBITMQ_URL", ""),
		EventQueue:  getEnv("EVENT_QUEUE", "gymfit.events"),
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
