package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Event_Showcase/internal/pkg"
)

// OrganizerAuth 主办方接口的 Bearer 校验。
// token 由 cmd/organizer-token 线下签发，没有登录态要维护，校验通过即放行。
func OrganizerAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format"})
			c.Abort()
			return
		}

		if _, err := pkg.ParseOrganizer(parts[1], secret); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
