package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// NotificationHandlers handles in-app notification HTTP requests
type NotificationHandlers struct {
	notifySvc domain.NotificationService
}

// NewNotificationHandlers creates new notification handlers
func NewNotificationHandlers(notifySvc domain.NotificationService) *NotificationHandlers {
	return &NotificationHandlers{notifySvc: notifySvc}
}

// List returns the caller's notifications, newest first
func (h *NotificationHandlers) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	notifications, err := h.notifySvc.List(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, "failed to load notifications")
		return
	}

	respondOK(c, gin.H{"notifications": notificationListPayload(notifications)})
}

// UnreadCount returns the caller's unread badge count
func (h *NotificationHandlers) UnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	count, err := h.notifySvc.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, "failed to count notifications")
		return
	}

	respondOK(c, gin.H{"count": count})
}

// MarkRead marks one of the caller's notifications as read
func (h *NotificationHandlers) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, "invalid notification id")
		return
	}

	if err := h.notifySvc.MarkRead(c.Request.Context(), userID, uint(notificationID)); err != nil {
		respondDomainError(c, err, "failed to mark notification read")
		return
	}

	respondMessage(c, "notification marked read")
}

// MarkAllRead marks all the caller's notifications as read
func (h *NotificationHandlers) MarkAllRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	if err := h.notifySvc.MarkAllRead(c.Request.Context(), userID); err != nil {
		respondDomainError(c, err, "failed to mark notifications read")
		return
	}

	respondMessage(c, "all notifications marked read")
}
