package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// greets API clients
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Message: Greeting,
	})
}
