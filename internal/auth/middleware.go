package auth

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session ID.
const SessionCookieName = "session_id"

const contextKeySession = "session"

// SessionGetter looks up a session by ID; *Store implements it.
type SessionGetter interface {
	Get(ctx context.Context, id string) (Session, bool, error)
}

// FromContext returns the session set by RequireSession.
func FromContext(c *gin.Context) (Session, bool) {
	v, ok := c.Get(contextKeySession)
	if !ok {
		return Session{}, false
	}
	sess, ok := v.(Session)
	return sess, ok
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"message": msg, "status": status}})
}

// RequireSession returns a middleware that checks for a valid session cookie
// and stores the session in context. If missing or invalid, responds with 401.
func RequireSession(sessions SessionGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			abort(c, http.StatusUnauthorized, "authorization required")
			return
		}
		sess, ok, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			log.Printf("session lookup: %v", err)
			abort(c, http.StatusInternalServerError, "session lookup failed")
			return
		}
		if !ok {
			abort(c, http.StatusUnauthorized, "authorization required")
			return
		}
		c.Set(contextKeySession, sess)
		c.Next()
	}
}

// RequireAdmin must run after RequireSession. Non-admins get 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := FromContext(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "authorization required")
			return
		}
		if !sess.IsAdmin {
			abort(c, http.StatusForbidden, "You must be an admin to access this resource.")
			return
		}
		c.Next()
	}
}

// RequireAdminOrSelf must run after RequireSession. It allows admins and
// the user named by the path parameter param.
func RequireAdminOrSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := FromContext(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "authorization required")
			return
		}
		if !sess.IsAdmin && sess.Username != c.Param(param) {
			abort(c, http.StatusForbidden, "You must be an admin to act as a different user.")
			return
		}
		c.Next()
	}
}
