package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// HandleError writes an AppError as the JSON response body. The body always
// carries a top-level "message" field.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		slog.Error("server error", "error", err.Error(), "path", c.Request.URL.Path)
	}
	c.JSON(err.HTTPCode, err)
}
