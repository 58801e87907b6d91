package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatrarides/booking-api/pkg/helpers"
	"github.com/yatrarides/booking-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// SessionAuth is the gate in front of every booking route. A missing
// cookie yields 401, a present but unparseable one yields 403.
func SessionAuth(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing session token", nil)
			c.Abort()
			return
		}
		claims, err := tokens.ParseSessionToken(token)
		if err != nil {
			response.Error[any](c, http.StatusForbidden, "invalid or expired session", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}
