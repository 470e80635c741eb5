package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// returns the server health status
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status: StatusOK,
	})
}
