package middleware

import (
	"strings"

	"KMate/models"
	"KMate/pkg/context"
	"KMate/pkg/jwt"
	"KMate/pkg/log"
	"KMate/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 校验 Bearer access token，写入 user_id / email / role
func Auth(issuer *jwt.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, response.Unauthorized("Unauthorized"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Abort(c, response.Unauthorized("Unauthorized"))
			return
		}

		claims, err := issuer.ParseAccess(parts[1])
		if err != nil {
			log.L.Debug("access token rejected", zap.Error(err))
			response.Abort(c, response.Unauthorized("Unauthorized"))
			return
		}
		uid, err := claims.UserID()
		if err != nil {
			response.Abort(c, response.Unauthorized("Unauthorized"))
			return
		}

		role := claims.Role
		if role == "" {
			role = models.RoleUser
		}
		c.Set(context.CtxUserID, uid)
		c.Set(context.CtxEmail, claims.Email)
		c.Set(context.CtxRole, role)

		c.Next()
	}
}

// RequireRole 必须在 Auth 之后使用
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := context.GetRole(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		response.Abort(c, response.Forbidden("Forbidden resource"))
	}
}
