package main

import (
	"net/http"

	"codeberg.org/awibi/medtech-api/internal/config"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
}
