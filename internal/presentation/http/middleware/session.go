package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	// RegisterSessionHeader identifies which register terminal is making the request
	RegisterSessionHeader = "X-Register-Session"
	// DefaultRegisterSession is used when no session header is sent, so a single-register
	// deployment works without any client-side setup
	DefaultRegisterSession = "default"
	// RegisterSessionKey is the gin context key holding the resolved session
	RegisterSessionKey = "register_session"
)

// RegisterSession resolves the register session for the request and stores it in
// the gin context. Carts and idempotency keys are scoped by this value.
func RegisterSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := c.GetHeader(RegisterSessionHeader)
		if session == "" {
			session = DefaultRegisterSession
		}
		c.Set(RegisterSessionKey, session)
		c.Next()
	}
}

// GetRegisterSession returns the register session stored by the RegisterSession
// middleware, falling back to the default when the middleware did not run.
func GetRegisterSession(c *gin.Context) string {
	if v, ok := c.Get(RegisterSessionKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return DefaultRegisterSession
}
