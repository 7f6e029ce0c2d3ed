package response

import "github.com/gin-gonic/gin"

// Error writes the API's uniform error body.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}
