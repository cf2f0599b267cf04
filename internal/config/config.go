package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	DBUrl      string `env:"DATABASE_URL,required"`
	JWTSecret  string `env:"JWT_SECRET,required"`

	Auth AuthConfig `envPrefix:"AUTH_"`
	S3   S3Config   `envPrefix:"AWS_"`
}

// AuthConfig : service d'authentification hébergé (Supabase)
type AuthConfig struct {
	BaseURL string `env:"BASE_URL,required"`
	AnonKey string `env:"ANON_KEY,required"`
}

type S3Config struct {
	Bucket          string `env:"BUCKET_NAME,required"`
	Region          string `env:"REGION,required"`
	AccessKeyID     string `env:"ACCESS_KEY_ID,required"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY,required"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("lecture configuration: %w", err)
	}
	return cfg, nil
}
