package config

import (
	"flag"
	"os"
	"time"
)

const (
	DefaultProbeURL     = "http://127.0.0.1:5000/health"
	DefaultProbeTimeout = 3 * time.Second
)

// parses CLI flags for the healthcheck command, falling back to HEALTHCHECK_URL
func ParseProbeFlags(args []string) ProbeFlags {
	defaultURL := os.Getenv("HEALTHCHECK_URL")
	if defaultURL == "" {
		defaultURL = DefaultProbeURL
	}

	fs := flag.NewFlagSet("healthcheck", flag.ExitOnError)
	url := fs.String("url", defaultURL, "health endpoint to probe")
	timeout := fs.Duration("timeout", DefaultProbeTimeout, "request timeout")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return ProbeFlags{URL: *url, Timeout: *timeout}
}
