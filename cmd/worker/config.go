package main

import (
	"log"
	"os"
)

// Config holds the worker's own configuration
type Config struct {
	RedisAddr string
	SMTPHost  string
	SMTPPort  string
	SMTPFrom  string
}

func loadConfig() *Config {
	cfg := &Config{
		RedisAddr: envOr("REDIS_HOST", "localhost:6379"),
		SMTPHost:  envOr("SMTP_HOST", "localhost"),
		SMTPPort:  envOr("SMTP_PORT", "1025"),
		SMTPFrom:  envOr("SMTP_FROM", "no-reply@eats.local"),
	}

	log.Printf("[Config] Redis: %s, SMTP: %s:%s", cfg.RedisAddr, cfg.SMTPHost, cfg.SMTPPort)

	return cfg
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
