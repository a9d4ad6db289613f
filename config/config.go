// Package config loads application settings from the environment.
package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all settings. It is read once at startup and treated as
// immutable afterwards. The defaults are for development only and are not
// suitable for production use.
type Config struct {
	// MongoDB
	MongoURI string
	MongoDB  string

	// Session
	SessionSecret string
	SessionTTL    time.Duration

	// Server
	Port string

	// CORS
	CORSAllowedOrigins []string
}

// Load reads the configuration from environment variables, applying
// development defaults for anything unset.
func Load() *Config {
	return &Config{
		MongoURI:           getEnvString("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:            getEnvString("MONGODB_DB", "chirp"),
		SessionSecret:      getEnvString("SESSION_SECRET", "development key"),
		SessionTTL:         getEnvDuration("SESSION_TTL", 24*time.Hour),
		Port:               getEnvString("PORT", "8080"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:8080", "http://127.0.0.1:8080"}),
	}
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func getEnvList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
