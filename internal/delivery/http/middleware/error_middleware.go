package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillup-ia/skillup-api/pkg/apperror"
	"github.com/skillup-ia/skillup-api/pkg/logger"
)

// ErrorHandler maps errors pushed via c.Error into the wire shape
// {"error": "<message>"}. Internal details never reach the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"path", c.Request.URL.Path,
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}

		logger.Log.Error("unexpected error", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno no servidor"})
	}
}
