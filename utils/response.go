// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError sends a uniform JSON error payload
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
