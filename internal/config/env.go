package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

func applyEnv(c *Config) error {
	if mode, ok := os.LookupEnv("MINES_MODE"); ok {
		c.Mode = mode
	}
	if addr, ok := os.LookupEnv("MINES_ADDR"); ok {
		c.Addr = addr
	}
	if origins, ok := os.LookupEnv("MINES_ALLOWED_ORIGINS"); ok {
		c.AllowedOrigins = strings.Split(origins, ",")
	}
	if file, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		c.Log.File = file
	}
	if ttlStr, ok := os.LookupEnv("MINES_SESSION_TTL"); ok {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return fmt.Errorf("unable to parse MINES_SESSION_TTL: %w", err)
		}
		c.Session.TTL = Duration{ttl}
	}
	secret, err := loadSecret()
	if err != nil {
		return err
	}
	if secret != "" {
		c.Session.Secret = secret
	}
	return nil
}

func loadSecret() (string, error) {
	secret, ok := os.LookupEnv("MINES_SESSION_SECRET")
	if ok {
		return secret, nil
	}

	secretFile, ok := os.LookupEnv("MINES_SESSION_SECRET_FILE")
	if !ok {
		return "", nil
	}

	data, err := os.ReadFile(secretFile)
	if err != nil {
		return "", fmt.Errorf("unable to read session secret file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}
