package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

type Config struct {
	Environment string

	DatabaseURL string

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	AccessTokenSecret  string
	AccessTokenTTL     time.Duration
	RefreshTokenSecret string
	RefreshTokenTTL    time.Duration
	ResetTokenTTL      time.Duration

	PasswordPepper string

	HTTPAddress      string
	CookieDomain     string
	AllowedOrigins   []string
	AllowCredentials bool
	FrontendOrigin   string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	MailTimeout  time.Duration
}

// IsDev gates the fixed verification/reset secrets; everything else treats
// the environment name as opaque.
func (c *Config) IsDev() bool { return c.Environment == EnvDev }

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	for _, key := range []string{
		"ENVIRONMENT",
		"DATABASE_URL",
		"REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB",
		"ACCESS_TOKEN_SECRET", "ACCESS_TOKEN_TTL",
		"REFRESH_TOKEN_SECRET", "REFRESH_TOKEN_TTL",
		"RESET_TOKEN_TTL",
		"PASSWORD_PEPPER",
		"HTTP_ADDRESS", "COOKIE_DOMAIN",
		"ALLOWED_ORIGINS", "ALLOW_CREDENTIALS", "FRONTEND_ORIGIN",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASSWORD", "SMTP_FROM",
		"MAIL_TIMEOUT",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("ENVIRONMENT", EnvProd)
	viper.SetDefault("HTTP_ADDRESS", ":8080")
	viper.SetDefault("RESET_TOKEN_TTL", "15m")
	viper.SetDefault("MAIL_TIMEOUT", "10s")
	viper.SetDefault("SMTP_PORT", 587)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Environment:        viper.GetString("ENVIRONMENT"),
		DatabaseURL:        viper.GetString("DATABASE_URL"),
		RedisAddress:       viper.GetString("REDIS_ADDRESS"),
		RedisPassword:      viper.GetString("REDIS_PASSWORD"),
		RedisDB:            viper.GetInt("REDIS_DB"),
		AccessTokenSecret:  viper.GetString("ACCESS_TOKEN_SECRET"),
		AccessTokenTTL:     viper.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenSecret: viper.GetString("REFRESH_TOKEN_SECRET"),
		RefreshTokenTTL:    viper.GetDuration("REFRESH_TOKEN_TTL"),
		ResetTokenTTL:      viper.GetDuration("RESET_TOKEN_TTL"),
		PasswordPepper:     viper.GetString("PASSWORD_PEPPER"),
		HTTPAddress:        viper.GetString("HTTP_ADDRESS"),
		CookieDomain:       viper.GetString("COOKIE_DOMAIN"),
		AllowedOrigins:     viper.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials:   viper.GetBool("ALLOW_CREDENTIALS"),
		FrontendOrigin:     viper.GetString("FRONTEND_ORIGIN"),
		SMTPHost:           viper.GetString("SMTP_HOST"),
		SMTPPort:           viper.GetInt("SMTP_PORT"),
		SMTPUser:           viper.GetString("SMTP_USER"),
		SMTPPassword:       viper.GetString("SMTP_PASSWORD"),
		SMTPFrom:           viper.GetString("SMTP_FROM"),
		MailTimeout:        viper.GetDuration("MAIL_TIMEOUT"),
	}

	required := map[string]string{
		"DATABASE_URL":         cfg.DatabaseURL,
		"REDIS_ADDRESS":        cfg.RedisAddress,
		"ACCESS_TOKEN_SECRET":  cfg.AccessTokenSecret,
		"REFRESH_TOKEN_SECRET": cfg.RefreshTokenSecret,
	}
	for key, val := range required {
		if val == "" {
			return nil, fmt.Errorf("%s is not set", key)
		}
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}
	if cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("REFRESH_TOKEN_TTL must be positive")
	}
	if cfg.Environment != EnvDev && cfg.Environment != EnvProd {
		return nil, fmt.Errorf("ENVIRONMENT must be %q or %q", EnvDev, EnvProd)
	}

	return cfg, nil
}
