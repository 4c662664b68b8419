package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"Event_Showcase/internal/pkg"
)

// Config 全部走环境变量，带默认值，方便托管平台直接注入
type Config struct {
	ListenAddr string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimit  int
	RateWindow time.Duration

	KafkaBrokers []string // 空表示不发事件
	KafkaTopic   string

	SMTP     pkg.SMTPConfig
	NotifyTo string // 收新投稿通知的邮箱，空表示不发

	OrganizerSecret string
}

func Load() *Config {
	cfg := &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		RedisAddr:       getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RateLimit:       getEnvInt("VOTE_RATE_LIMIT", 10),
		RateWindow:      getEnvDuration("VOTE_RATE_WINDOW", time.Minute),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "showcase-events"),
		NotifyTo:        getEnv("NOTIFY_TO", ""),
		OrganizerSecret: getEnv("ORGANIZER_SECRET", "organizer-secret"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	cfg.SMTP = pkg.SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     getEnvInt("SMTP_PORT", 587),
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "Showcase <no-reply@example.com>"),
	}

	return cfg
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
