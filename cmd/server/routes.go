package main

import (
	"codeberg.org/awibi/medtech-api/api/rest/health"
	"codeberg.org/awibi/medtech-api/api/rest/root"
	"codeberg.org/awibi/medtech-api/internal/bodyparser"
	apierrors "codeberg.org/awibi/medtech-api/internal/errors"
	"codeberg.org/awibi/medtech-api/internal/logger"
	"codeberg.org/awibi/medtech-api/internal/requestid"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	// engine-level middleware also runs for unmatched routes
	router.Use(apierrors.Recovery(), requestid.Middleware(), logger.Middleware())

	if len(server.config.CORSAllowedOrigins) > 0 {
		router.Use(CORSMiddleware(server.config.CORSAllowedOrigins))
	}

	router.Use(bodyparser.JSON(server.config.JSONBodyLimit))

	router.GET("/", root.Handler)
	router.GET("/health", health.Handler)
}
