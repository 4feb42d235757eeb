package auth

import "time"

// JWTConfig holds token signing settings.
type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Issuer          string
}

// Config holds authentication settings.
type Config struct {
	JWT JWTConfig
}

// DefaultConfig returns the baseline auth configuration.
func DefaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			Issuer:          "job-portal-website",
		},
	}
}
