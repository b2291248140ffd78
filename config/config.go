// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port              string
	AWSRegion         string
	RedisAddr         string
	LogLevel          string
	LogFormat         string
	RecommendCacheTTL time.Duration
}

// Load reads configuration from the environment. A missing .env file is not
// an error; deployed environments set variables directly.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RECOMMEND_CACHE_TTL", "60s")

	return &Config{
		Port:              v.GetString("PORT"),
		AWSRegion:         v.GetString("AWS_REGION"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
		RecommendCacheTTL: v.GetDuration("RECOMMEND_CACHE_TTL"),
	}
}
