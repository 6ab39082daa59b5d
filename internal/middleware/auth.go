package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"medapp-server/internal/auth"
	"medapp-server/internal/metrics"
	"medapp-server/internal/models"
	"medapp-server/internal/utils"
)

const contextUserKey = "currentUser"

// AuthMiddleware resolves the bearer token of every request to a user. All
// failures produce the same 401 response.
func AuthMiddleware(resolver *auth.Resolver, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			reject(c, m, errors.New("missing bearer token"))
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			reject(c, m, err)
			return
		}

		// Set user information in context for downstream handlers
		c.Set(contextUserKey, user)
		c.Next()
	}
}

func reject(c *gin.Context, m *metrics.Metrics, cause error) {
	log.Debug().
		Err(cause).
		Str("request_id", c.GetString(ContextRequestID)).
		Str("path", c.Request.URL.Path).
		Msg("Authentication rejected")
	if m != nil {
		m.AuthFailures.Inc()
	}
	c.Header("WWW-Authenticate", "Bearer")
	utils.Unauthorized(c, "Invalid authentication credentials")
	c.Abort()
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// CurrentUser returns the user set by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
