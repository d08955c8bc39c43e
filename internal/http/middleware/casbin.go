package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// CasbinMiddleware defines the interface for Casbin authorization middleware
type CasbinMiddleware interface {
	Enforce() gin.HandlerFunc
}

// RoleMW enforces the role policy set ({user, owner}) against the
// matched route and method.
type RoleMW struct {
	enforcer *casbin.Enforcer
}

// NewRoleMW creates a new role-enforcing middleware
func NewRoleMW(enforcer *casbin.Enforcer) *RoleMW {
	return &RoleMW{enforcer: enforcer}
}

// Enforce returns the authorization handler. It expects the JWT
// middleware to have put user_id and user_role on the context.
func (mw *RoleMW) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userExists := c.Get("user_id")
		userRole, roleExists := c.Get("user_role")
		if !userExists || !roleExists {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "not authorized, login again"})
			c.Abort()
			return
		}

		// The parameterized path keeps policies stable across ids.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		allowed, err := mw.enforcer.Enforce("role_"+userRole.(string), path, c.Request.Method)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "authorization check failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}

var _ CasbinMiddleware = (*RoleMW)(nil)
