package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hirebridge/backoffice/internal/domain"
	"github.com/hirebridge/backoffice/internal/upstream"
)

const sessionContextKey = "session"

// SessionResolver turns a console token into a live session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// SessionGate returns the route guard for protected screens. It accepts a
// bearer console token, resolves the session behind it, and attaches the
// session plus the upstream bearer token to the request context. The gate
// only checks that the session exists; a stale upstream token is discovered
// when a later upstream call fails.
func SessionGate(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abortUnauthorized(c, "authentication required")
			return
		}

		sess, err := resolver.Resolve(c.Request.Context(), raw)
		if err != nil {
			abortUnauthorized(c, "invalid or expired session")
			return
		}

		c.Set(sessionContextKey, sess)
		ctx := upstream.WithToken(c.Request.Context(), sess.UpstreamToken)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentSession extracts the session placed by SessionGate.
// Returns nil when the request did not pass the gate.
func CurrentSession(c *gin.Context) *domain.Session {
	if v, exists := c.Get(sessionContextKey); exists {
		if s, ok := v.(*domain.Session); ok {
			return s
		}
	}
	return nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Abort()
	c.JSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": message,
		"data":    nil,
	})
}
