package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string `mapstructure:"PORT"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	TokenExpiryHours int    `mapstructure:"TOKEN_EXPIRY_HOURS"`
	AllowedOrigins   string `mapstructure:"ALLOWED_ORIGINS"`
}

var Cfg Config

func Load() error {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("TOKEN_EXPIRY_HOURS", 168)

	for _, key := range []string{"PORT", "DATABASE_URL", "JWT_SECRET", "TOKEN_EXPIRY_HOURS", "ALLOWED_ORIGINS"} {
		if err := viper.BindEnv(key); err != nil {
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	if Cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	if Cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return nil
}
