package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dothis/internal/model"
	"dothis/pkg/log"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderRequestID = "X-Request-ID"

	scopeKey = "scope"
)

// RequestID reuses the caller's X-Request-ID or generates one, echoes it back
// and attaches it to the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Scope resolves the acting user from X-User-ID. There is no authentication:
// requests without the header act as model.DefaultUserID.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.NewScope(c.GetHeader(HeaderUserID))
		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(log.WithUserID(c.Request.Context(), sc.UserID))
		c.Next()
	}
}

// GetScope returns the scope stored by Scope, or the default scope.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.NewScope("")
}
