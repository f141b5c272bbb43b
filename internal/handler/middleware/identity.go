package middleware

import (
	"net/http"
	"strconv"

	"shareit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// SharerHeader carries the opaque caller identity. It is trusted as-is;
// there is no authentication layer in front of it.
const SharerHeader = "X-Sharer-User-Id"

const ctxSharerIDKey = "sharer_user_id"

// RequireIdentity rejects requests without a positive integer identity
// header before they reach any handler.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "Missing "+SharerHeader+" header", nil)
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errMalformedIdentity, "Malformed "+SharerHeader+" header", nil)
			return
		}

		c.Set(ctxSharerIDKey, id)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxSharerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

var (
	errMissingIdentity   = &identityError{"identity header missing"}
	errMalformedIdentity = &identityError{"identity header malformed"}
)

type identityError struct{ msg string }

func (e *identityError) Error() string { return e.msg }
