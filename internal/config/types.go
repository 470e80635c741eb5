package config

import "time"

type Config struct {
	Host               string
	Port               string
	Environment        string
	LogLevel           string
	JSONBodyLimit      int64
	CORSAllowedOrigins []string
}

// flags for the healthcheck probe command
type ProbeFlags struct {
	URL     string
	Timeout time.Duration
}
