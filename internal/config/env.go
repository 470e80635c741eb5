package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultHost          = "0.0.0.0"
	DefaultPort          = "5000"
	DefaultEnvironment   = "development"
	DefaultJSONBodyLimit = 100 * 1024
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")
	environment := os.Getenv("ENVIRONMENT")
	logLevel := os.Getenv("LOG_LEVEL")
	bodyLimit := os.Getenv("JSON_BODY_LIMIT")
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")

	if host == "" {
		host = DefaultHost
	}

	if port == "" {
		port = DefaultPort
	}

	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", port)
	}

	if environment == "" {
		environment = DefaultEnvironment
	}

	limit := int64(DefaultJSONBodyLimit)

	if bodyLimit != "" {
		n, err := strconv.ParseInt(bodyLimit, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("JSON_BODY_LIMIT must be a positive number of bytes, got %q", bodyLimit)
		}

		limit = n
	}

	origins, err := parseOrigins(corsOrigins)
	if err != nil {
		return nil, err
	}

	return &Config{
		Host:               host,
		Port:               port,
		Environment:        environment,
		LogLevel:           logLevel,
		JSONBodyLimit:      limit,
		CORSAllowedOrigins: origins,
	}, nil
}

// returns the host:port pair the server binds to
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// splits a comma-separated origin list; each entry must be "*" or an http(s) origin
func parseOrigins(raw string) ([]string, error) {
	var origins []string

	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)

		if origin == "" {
			continue
		}

		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must start with http:// or https://", origin)
		}

		origins = append(origins, strings.TrimSuffix(origin, "/"))
	}

	return origins, nil
}
