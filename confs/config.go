package confs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present
// and validates essential settings.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// JWTSecret returns the token signing key.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// TokenTTL returns the access token validity duration, default 24h.
func TokenTTL() time.Duration {
	raw := os.Getenv("TOKEN_TTL")
	if raw == "" {
		return 24 * time.Hour
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("warning: invalid TOKEN_TTL %q, using 24h", raw)
		return 24 * time.Hour
	}
	return ttl
}

// APIPort returns the HTTP listen port, default 8080.
func APIPort() string {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
