package response

import "github.com/gin-gonic/gin"

// Error writes the shared error envelope. Success bodies are written
// directly by handlers since their shapes are part of the public API.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// AbortError writes the error envelope and stops the handler chain; used
// by middleware.
func AbortError(c *gin.Context, statusCode int, code string, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
