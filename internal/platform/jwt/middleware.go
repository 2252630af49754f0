package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"salon_backend/internal/api"
)

// Context keys under which the middleware stores the verified identity.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// AuthRequired returns a Gin middleware that restricts access to requests
// carrying a valid Bearer token. The three failure modes get distinct error
// codes, all mapped to 401:
//   - no Authorization header        -> NO_AUTH_HEADER
//   - header not "Bearer <token>"    -> INVALID_AUTH_FORMAT
//   - verification failure           -> INVALID_TOKEN
func AuthRequired(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewErrorResponse(api.CodeNoAuthHeader, "Authorization header missing"))
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewErrorResponse(api.CodeInvalidAuthFormat, "Invalid authorization format"))
			return
		}

		claims, err := v.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewErrorResponse(api.CodeInvalidToken, "Invalid token"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
