package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"medapp-server/internal/auth"
	"medapp-server/internal/middleware"
	"medapp-server/internal/store"
	"medapp-server/internal/utils"
)

// parseID reads a positive numeric path parameter. On failure it writes a 400
// and returns false.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, strconv.IntSize)
	if err != nil || id == 0 {
		utils.ValidationFailed(c, map[string]string{param: "must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// respondError translates store and auth errors into HTTP responses.
func respondError(c *gin.Context, err error) {
	var notFound *store.NotFoundError
	switch {
	case errors.As(err, &notFound):
		utils.NotFound(c, capitalize(notFound.Error()))
	case errors.Is(err, store.ErrEmailTaken):
		utils.BadRequest(c, "Email already registered")
	case errors.Is(err, auth.ErrInvalidCredentials):
		utils.Unauthorized(c, "Invalid email or password")
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.ContextRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Request failed")
		utils.InternalServerError(c, "Internal server error")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
