package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/foliopulse/internal/domain/dto"
)

// ErrorHandler converts errors attached to the Gin context via
// c.Error() into a standardized JSON response, when no handler wrote a
// response of its own.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last()
	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.JSON(status, dto.NewErrorResponse("request failed", last.Err))
}
