package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Quest struct {
		BankID      string `yaml:"bankId"`
		Length      int    `yaml:"length"`
		RevealDelay string `yaml:"revealDelay"`
		BankTTL     string `yaml:"bankTtl"`
	} `yaml:"quest"`
}

// overrides are environment variables layered on top of the YAML file, for
// container deployments where editing the file is awkward.
type overrides struct {
	Port        string `env:"PORT"`
	RedisAddr   string `env:"REDIS_ADDR"`
	RedisPass   string `env:"REDIS_PASSWORD"`
	PostgresURL string `env:"POSTGRES_URL"`
	BankID      string `env:"QUEST_BANK_ID"`
	RevealDelay string `env:"QUEST_REVEAL_DELAY"`
}

// Load reads YAML config from path and applies environment overrides. A
// missing .env file is fine; in production variables are injected directly.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err == nil {
		logrus.Info("loaded environment variables from .env file")
	}

	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	ov := overrides{}
	if err := env.Parse(&ov); err != nil {
		return cfg, fmt.Errorf("parse env overrides: %w", err)
	}
	if ov.Port != "" {
		cfg.Server.Port = ov.Port
	}
	if ov.RedisAddr != "" {
		cfg.Redis.Addr = ov.RedisAddr
	}
	if ov.RedisPass != "" {
		cfg.Redis.Password = ov.RedisPass
	}
	if ov.PostgresURL != "" {
		cfg.Postgres.URL = ov.PostgresURL
	}
	if ov.BankID != "" {
		cfg.Quest.BankID = ov.BankID
	}
	if ov.RevealDelay != "" {
		cfg.Quest.RevealDelay = ov.RevealDelay
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
