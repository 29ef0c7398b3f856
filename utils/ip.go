package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetClientIP extracts the caller's address, trusting the usual proxy
// headers first. Returns "unknown" when nothing is available.
func GetClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if real := c.GetHeader("X-Real-Ip"); real != "" {
		return real
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
