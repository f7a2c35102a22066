package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the environment-sourced configuration surface of the service. A
// .env file in the working directory is honored when present.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"baran"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"1h"`

	OTPCodeLength       int `env:"OTP_CODE_LENGTH" envDefault:"6"`
	OTPExpiresInMinutes int `env:"OTP_EXPIRES_IN_MINUTES" envDefault:"5"`

	DefaultRole string `env:"DEFAULT_ROLE" envDefault:"user"`

	TwilioSID   string `env:"TWILIO_ACCOUNT_SID"`
	TwilioToken string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFrom  string `env:"TWILIO_FROM_NUMBER"`
}

// OTPTTL returns the OTP validity window as a duration.
func (c *Config) OTPTTL() time.Duration {
	return time.Duration(c.OTPExpiresInMinutes) * time.Minute
}

func Load() (*Config, error) {
	// Missing .env is fine, the environment itself is authoritative.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}

	if cfg.OTPCodeLength < 4 {
		return nil, fmt.Errorf("OTP_CODE_LENGTH must be at least 4, got %d", cfg.OTPCodeLength)
	}
	if cfg.OTPExpiresInMinutes <= 0 {
		return nil, fmt.Errorf("OTP_EXPIRES_IN_MINUTES must be positive, got %d", cfg.OTPExpiresInMinutes)
	}

	return cfg, nil
}
