package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/class-coins-api/internal/service"
	appErrors "github.com/noah-isme/class-coins-api/pkg/errors"
	"github.com/noah-isme/class-coins-api/pkg/response"
)

const bearerPrefix = "Bearer "

// Admin guards privileged routes. The Authorization header must carry
// the literal case-sensitive "Bearer " prefix followed by a token the
// codec accepts; anything else aborts before the handler runs, so a
// rejected request performs no part of the guarded operation.
func Admin(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if !auth.Authorize(header[len(bearerPrefix):]) {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token"))
			c.Abort()
			return
		}

		c.Next()
	}
}
