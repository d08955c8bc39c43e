package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// ReviewHandlers handles review HTTP requests
type ReviewHandlers struct {
	reviewSvc domain.ReviewService
}

// NewReviewHandlers creates new review handlers
func NewReviewHandlers(reviewSvc domain.ReviewService) *ReviewHandlers {
	return &ReviewHandlers{reviewSvc: reviewSvc}
}

// CreateReviewRequest rates a completed booking
type CreateReviewRequest struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

// ReplyRequest is an owner's single reply to a review
type ReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

// Create rates one of the caller's completed bookings
func (h *ReviewHandlers) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "bookingId, rating and comment are required")
		return
	}

	review, err := h.reviewSvc.Create(c.Request.Context(), userID, req.BookingID, req.Rating, req.Comment)
	if err != nil {
		respondDomainError(c, err, "failed to create review")
		return
	}

	respondOK(c, gin.H{
		"message": "review submitted",
		"review":  reviewPayload(review),
	})
}

// Reply attaches the owner's single reply to a review of their car
func (h *ReviewHandlers) Reply(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, "invalid review id")
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "reply is required")
		return
	}

	review, err := h.reviewSvc.Reply(c.Request.Context(), ownerID, uint(reviewID), req.Reply)
	if err != nil {
		respondDomainError(c, err, "failed to reply")
		return
	}

	respondOK(c, gin.H{
		"message": "reply posted",
		"review":  reviewPayload(review),
	})
}

// ListForCar returns a car's reviews with the average rating, rounded
// to one decimal place.
func (h *ReviewHandlers) ListForCar(c *gin.Context) {
	carID, err := strconv.ParseUint(c.Param("carId"), 10, 32)
	if err != nil {
		respondError(c, "invalid car id")
		return
	}

	reviews, avg, err := h.reviewSvc.ListForCar(c.Request.Context(), uint(carID))
	if err != nil {
		respondDomainError(c, err, "failed to load reviews")
		return
	}

	respondOK(c, gin.H{
		"reviews":       reviewListPayload(reviews),
		"averageRating": avg,
		"totalReviews":  len(reviews),
	})
}

// ListMine returns the caller's own reviews
func (h *ReviewHandlers) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	reviews, err := h.reviewSvc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, "failed to load reviews")
		return
	}

	respondOK(c, gin.H{"reviews": reviewListPayload(reviews)})
}

// ListForOwner returns reviews across the caller's fleet
func (h *ReviewHandlers) ListForOwner(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	reviews, err := h.reviewSvc.ListForOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondDomainError(c, err, "failed to load reviews")
		return
	}

	respondOK(c, gin.H{"reviews": reviewListPayload(reviews)})
}
