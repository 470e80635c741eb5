package main

import (
	"context"
	"net/http"
	"os"

	"codeberg.org/awibi/medtech-api/internal/config"
	"codeberg.org/awibi/medtech-api/internal/logger"
	"codeberg.org/awibi/medtech-api/internal/probe"
)

// probes the health endpoint and exits non-zero when the server is unhealthy
func main() {
	flags := config.ParseProbeFlags(os.Args[1:])

	ctx, cancel := context.WithTimeout(context.Background(), flags.Timeout)
	defer cancel()

	if err := probe.Check(ctx, &http.Client{Timeout: flags.Timeout}, flags.URL); err != nil {
		cancel()
		logger.FatalErr(err, "health check failed", "url", flags.URL)
	}

	logger.Debug("health check passed", "url", flags.URL)
}
