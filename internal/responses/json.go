package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// JSON writes data as the whole response body.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail writes {"error": ...}. The underlying error text wins over message so
// store failures reach the client verbatim.
func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Error = err.Error()
		resp.Message = message
	}
	c.AbortWithStatusJSON(statusCode, resp)
}
