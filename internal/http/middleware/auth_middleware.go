package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// AuthMW validates bearer tokens and the Redis session they reference.
type AuthMW struct {
	tokenSvc    domain.TokenService
	sessionRepo domain.SessionRepository
}

// NewAuthMW creates the JWT authentication middleware
func NewAuthMW(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc, sessionRepo: sessionRepo}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
	c.Abort()
}

// WithJWT returns the authentication handler
func (m *AuthMW) WithJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "not authorized, login again")
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization header")
			return
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenParts[1])
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				abortUnauthorized(c, "token expired, login again")
			default:
				abortUnauthorized(c, "not authorized, login again")
			}
			return
		}

		// The session must still exist: logout revokes tokens early.
		if claims.SessionID != "" {
			session, err := m.sessionRepo.FindByID(c.Request.Context(), claims.SessionID)
			if err != nil || session == nil {
				abortUnauthorized(c, "session expired, login again")
				return
			}
			if session.UserID != claims.UserID {
				abortUnauthorized(c, "session mismatch")
				return
			}
		}

		// String user id keeps Casbin subject handling uniform.
		c.Set("user_id", fmt.Sprintf("%d", claims.UserID))
		c.Set("user_role", claims.Role)
		if claims.SessionID != "" {
			c.Set("session_id", claims.SessionID)
		}

		c.Next()
	}
}
