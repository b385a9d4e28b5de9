package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses. The Response field
// always carries a user-displayable sentence so the chat UI can render it
// directly regardless of status code.
type ErrorResponse struct {
	Error    string `json:"error"`
	Details  string `json:"details,omitempty"`
	Response string `json:"response"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Error:    "Internal Server Error",
					Details:  "An unexpected error occurred. Please try again later.",
					Response: "I apologize, but something went wrong on my end. Please try again in a moment.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, errMsg string, response string) {
	Logger := GetLogger()
	Logger.Warn(errMsg, zap.Int("status", status))
	c.JSON(status, ErrorResponse{Error: errMsg, Response: response})
}
