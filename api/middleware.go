package api

import (
	"context"
	"log"
	"time"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	sessionHeader   = "X-Session-ID"
	sessionKey      = "session"
)

// RequestLogger tags every request with an id and logs method, path, status and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		c.Next()

		log.Printf(
			"request id=%s method=%s path=%s status=%d duration=%s",
			id,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}

type SessionLoader interface {
	Session(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Sessions resolves the session cookie (or X-Session-ID header) and stores the session on the context.
// Requests without a valid session continue anonymously.
func Sessions(loader SessionLoader, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			id = c.GetHeader(sessionHeader)
		}
		if id != "" {
			if sess, err := loader.Session(c.Request.Context(), id); err == nil {
				c.Set(sessionKey, sess)
			}
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) *domain.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*domain.Session)
	return sess
}

// RequireGuest rejects requests that carry no hotel API token.
func RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).Authenticated() {
			writeError(c, domain.ErrUnauthenticated)
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		if sess == nil {
			writeError(c, domain.ErrUnauthenticated)
			return
		}
		if !sess.IsAdmin() {
			writeError(c, domain.ErrForbidden)
			return
		}
		c.Next()
	}
}
