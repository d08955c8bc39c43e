package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// AuthHandlers handles registration, login and account HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResetPasswordRequest represents an OTP-gated password reset
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// RefreshRequest represents token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "name, email and a password of at least 8 characters are required")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondDomainError(c, err, "registration failed")
		return
	}

	respondOK(c, gin.H{
		"message": "registered, please verify your email",
		"userId":  user.ID,
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "email and password are required")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(c, err, "login failed")
		return
	}

	respondOK(c, gin.H{
		"token":        result.AccessToken,
		"refreshToken": result.RefreshToken,
		"expiresIn":    result.ExpiresIn,
		"user": gin.H{
			"id":    result.User.ID,
			"name":  result.User.Name,
			"email": result.User.Email,
			"role":  result.User.Role,
			"image": result.User.Image,
		},
	})
}

// ResetPassword handles OTP-gated password resets
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "email, code and a new password of at least 8 characters are required")
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		respondDomainError(c, err, "password reset failed")
		return
	}

	respondMessage(c, "password updated")
}

// Refresh handles token refresh
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "refresh token is required")
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondDomainError(c, err, "token refresh failed")
		return
	}

	respondOK(c, gin.H{
		"token":     result.AccessToken,
		"expiresIn": result.ExpiresIn,
	})
}

// Me returns the authenticated user's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, "failed to load profile")
		return
	}

	respondOK(c, gin.H{
		"user": gin.H{
			"id":            user.ID,
			"name":          user.Name,
			"email":         user.Email,
			"phone":         user.Phone,
			"role":          user.Role,
			"image":         user.Image,
			"emailVerified": user.EmailVerified,
			"createdAt":     user.CreatedAt,
		},
	})
}

// Logout revokes the caller's session
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		respondError(c, "no active session")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		respondError(c, "logout failed")
		return
	}

	respondMessage(c, "logged out")
}

// ChangeRole upgrades the caller to the owner role so they can list cars
func (h *AuthHandlers) ChangeRole(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	if err := h.authSvc.PromoteToOwner(c.Request.Context(), userID); err != nil {
		respondDomainError(c, err, "failed to change role")
		return
	}

	respondMessage(c, "now you can list cars")
}
