package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"` // "sqlite" (default) or "postgres"
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Play struct {
		SampleSize int    `yaml:"sampleSize"`
		SessionTTL string `yaml:"sessionTtl"`
	} `yaml:"play"`
	Quiz struct {
		TTL string `yaml:"ttl"`
	} `yaml:"quiz"`
	Seed struct {
		Disabled bool `yaml:"disabled"`
	} `yaml:"seed"`
}

// Load reads YAML config from path. A missing file yields the defaults, so
// the binary runs out of the box against a local sqlite file.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return withDefaults(cfg), nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return withDefaults(cfg), nil
}

func withDefaults(cfg Config) Config {
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "quizapp.db"
	}
	if cfg.Play.SampleSize <= 0 {
		cfg.Play.SampleSize = 5
	}
	return cfg
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
