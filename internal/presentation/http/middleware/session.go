package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// SessionKey is the gin context key holding the request's cookie session
const SessionKey = "session"

// NewCookieStore creates the signed cookie store backing flash messages
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SessionMiddleware loads the named session for every request.
// A cookie that fails verification yields a fresh empty session.
func SessionMiddleware(store sessions.Store, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := store.Get(c.Request, name)
		c.Set(SessionKey, sess)
		c.Next()
	}
}
