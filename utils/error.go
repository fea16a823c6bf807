package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses. Only the message is
// exposed to the caller; full detail stays in the server log.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler is a middleware that catches panics and returns a generic
// structured error without leaking internals.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Unable to process appointment request.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
