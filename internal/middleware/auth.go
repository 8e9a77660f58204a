package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"hr-portal/internal/access"
	"hr-portal/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionUserKey is the cookie session key holding the signed-in user id.
const SessionUserKey = "user_id"

// Resolver turns a session user id into an identity.
type Resolver interface {
	ResolveIdentity(ctx context.Context, userID uint) (session.Identity, error)
}

// InjectIdentity resolves the cookie session into a session.Identity and
// stores it in the request context. Sessions pointing at
// a missing or disabled user are cleared.
func InjectIdentity(resolver Resolver, invalid error) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := session.Guest()
		sess := sessions.Default(c)

		if uid, ok := sess.Get(SessionUserKey).(uint); ok && uid > 0 {
			resolved, err := resolver.ResolveIdentity(c.Request.Context(), uid)
			switch {
			case err == nil:
				id = resolved
			case errors.Is(err, invalid):
				sess.Clear()
				_ = sess.Save()
			default:
				log.Printf("failed to load session user %d: %v", uid, err)
			}
		}

		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), id))
		c.Next()
	}
}

// CurrentIdentity returns the identity set by InjectIdentity, or a guest.
func CurrentIdentity(c *gin.Context) session.Identity {
	return session.FromContext(c.Request.Context())
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c).IsGuest() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePage admits the request only if the current role is on the
// allow-list of page.
func RequirePage(page access.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch access.Decide(CurrentIdentity(c).Role(), page) {
		case access.Allow:
			c.Next()
		case access.Login:
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		default:
			c.Redirect(http.StatusFound, "/unauthorized")
			c.Abort()
		}
	}
}
