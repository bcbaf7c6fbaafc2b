package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures everything the server needs from the environment so main
// stays lean.
type Config struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
	TokenTTL      time.Duration

	// Registration flow.
	OTPTTL           time.Duration
	OTPMaxAttempts   int
	SweepInterval    time.Duration
	MaxScorePerQuest int

	PostgresDSN string
	Redis       RedisConfig
	Kafka       KafkaConfig
	SMS         SMSConfig
}

// RedisConfig holds connection settings for the optional Redis-backed
// pending-registration store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds settings for the audit event pipeline. An empty broker
// list disables the Kafka sink.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// SMSConfig holds settings for the SMS delivery provider. An empty API key
// selects the log-only sender.
type SMSConfig struct {
	APIURL  string
	APIKey  string
	Sender  string
	Timeout time.Duration
}

// FromEnv builds a Config from environment variables, loading a .env file
// first when one is present.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		Addr:          getEnv("DISHA_ADDR", ":8080"),
		JWTSigningKey: getEnv("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:     getEnv("JWT_ISSUER", "disha"),
		JWTAudience:   getEnv("JWT_AUDIENCE", "students"),
		TokenTTL:      getDuration("TOKEN_TTL", 24*time.Hour),

		OTPTTL:           getDuration("OTP_TTL", 5*time.Minute),
		OTPMaxAttempts:   getInt("OTP_MAX_ATTEMPTS", 3),
		SweepInterval:    getDuration("PENDING_SWEEP_INTERVAL", time.Minute),
		MaxScorePerQuest: getInt("ASSESSMENT_MAX_SCORE_PER_QUESTION", 4),

		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    splitNonEmpty(os.Getenv("KAFKA_BROKERS")),
			AuditTopic: getEnv("KAFKA_AUDIT_TOPIC", "disha.audit"),
		},
		SMS: SMSConfig{
			APIURL:  os.Getenv("SMS_API_URL"),
			APIKey:  os.Getenv("SMS_API_KEY"),
			Sender:  os.Getenv("SMS_SENDER_ID"),
			Timeout: getDuration("SMS_TIMEOUT", 10*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
