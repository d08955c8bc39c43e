package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// Every endpoint answers HTTP 200 with a {success, ...} envelope; the
// envelope, not the status code, carries failure.

func respondOK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

// respondDomainError translates service errors into envelope messages.
// Unexpected errors are masked with a generic message so internals do
// not leak to clients.
func respondDomainError(c *gin.Context, err error, fallback string) {
	if rl, ok := domain.IsRateLimit(err); ok {
		c.JSON(http.StatusOK, gin.H{
			"success":    false,
			"message":    rl.Error(),
			"retryAfter": rl.RetryAfter,
		})
		return
	}

	switch err {
	case domain.ErrUserNotFound, domain.ErrCarNotFound, domain.ErrBookingNotFound,
		domain.ErrReviewNotFound, domain.ErrNotificationNotFound, domain.ErrOTPNotFound,
		domain.ErrInvalidCredentials, domain.ErrUserAlreadyExists, domain.ErrEmailNotVerified,
		domain.ErrOTPInvalid, domain.ErrOTPExpired, domain.ErrOTPMaxAttempts,
		domain.ErrUnauthorized, domain.ErrNotOwner,
		domain.ErrCarUnavailable, domain.ErrDatesUnavailable, domain.ErrInvalidDateRange,
		domain.ErrInvalidStatus, domain.ErrIllegalTransition, domain.ErrUserCancelOnly,
		domain.ErrBookingNotCancelable,
		domain.ErrReviewExists, domain.ErrReplyExists, domain.ErrBookingNotCompleted,
		domain.ErrInvalidRating, domain.ErrInvalidCommentLen, domain.ErrInvalidReplyLen,
		domain.ErrSessionNotFound, domain.ErrSessionExpired,
		domain.ErrTokenInvalid, domain.ErrTokenExpired:
		respondError(c, err.Error())
	default:
		respondError(c, fallback)
	}
}

// currentUserID reads the authenticated user from the context set by
// the JWT middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func currentUserRole(c *gin.Context) string {
	if v, exists := c.Get("user_role"); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
