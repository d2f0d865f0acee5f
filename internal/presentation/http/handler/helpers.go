package handler

import (
	"github.com/branchdesk/customer-intake/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// GetSession returns the cookie session loaded by SessionMiddleware
func GetSession(c *gin.Context) *sessions.Session {
	sessVal, exists := c.Get(middleware.SessionKey)
	if !exists {
		return nil
	}
	sess, ok := sessVal.(*sessions.Session)
	if !ok {
		return nil
	}
	return sess
}

// AddFlash queues a message for the next rendered page.
// It must run before anything is written to the response.
func AddFlash(c *gin.Context, message string) {
	sess := GetSession(c)
	if sess == nil {
		return
	}
	sess.AddFlash(message)
	if err := sess.Save(c.Request, c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// PopFlashes returns and clears the pending flash messages
func PopFlashes(c *gin.Context) []string {
	sess := GetSession(c)
	if sess == nil {
		return nil
	}

	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(c.Request, c.Writer); err != nil {
		_ = c.Error(err)
	}

	messages := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

// GetRequestID returns the request ID assigned by LoggerMiddleware
func GetRequestID(c *gin.Context) string {
	return c.GetString(middleware.RequestIDKey)
}
