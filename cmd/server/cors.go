package main

import (
	"net/http"
	"slices"
	"time"

	"codeberg.org/awibi/medtech-api/internal/requestid"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// allows browser clients from the given origins; "*" allows any origin
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", requestid.Header},
		ExposeHeaders: []string{requestid.Header},
		MaxAge:        12 * time.Hour,
	}

	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
