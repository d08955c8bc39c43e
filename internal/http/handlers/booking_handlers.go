package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

const dateLayout = "2006-01-02"

// BookingHandlers handles the booking lifecycle HTTP requests
type BookingHandlers struct {
	bookingSvc domain.BookingService
}

// NewBookingHandlers creates new booking handlers
func NewBookingHandlers(bookingSvc domain.BookingService) *BookingHandlers {
	return &BookingHandlers{bookingSvc: bookingSvc}
}

// AvailabilityRequest asks whether a car is free over a date range
type AvailabilityRequest struct {
	CarID      uint   `json:"carId" binding:"required"`
	PickupDate string `json:"pickupDate" binding:"required"`
	ReturnDate string `json:"returnDate" binding:"required"`
}

// CreateBookingRequest represents a booking request
type CreateBookingRequest struct {
	CarID      uint   `json:"carId" binding:"required"`
	PickupDate string `json:"pickupDate" binding:"required"`
	ReturnDate string `json:"returnDate" binding:"required"`
}

// ChangeStatusRequest moves a booking through its lifecycle. Reason is
// only meaningful for cancellations.
type ChangeStatusRequest struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Status    string `json:"status" binding:"required"`
	Reason    string `json:"reason,omitempty"`
}

func parseDateRange(pickup, ret string) (time.Time, time.Time, error) {
	p, err := time.Parse(dateLayout, pickup)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	r, err := time.Parse(dateLayout, ret)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return p, r, nil
}

// CheckAvailability reports whether a car is free over a range
func (h *BookingHandlers) CheckAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "carId, pickupDate and returnDate are required")
		return
	}

	pickup, ret, err := parseDateRange(req.PickupDate, req.ReturnDate)
	if err != nil {
		respondError(c, "dates must use the YYYY-MM-DD format")
		return
	}

	available, err := h.bookingSvc.CheckAvailability(c.Request.Context(), req.CarID, pickup, ret)
	if err != nil {
		respondDomainError(c, err, "availability check failed")
		return
	}

	respondOK(c, gin.H{"available": available})
}

// Create places a new booking in the pending state
func (h *BookingHandlers) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "carId, pickupDate and returnDate are required")
		return
	}

	pickup, ret, err := parseDateRange(req.PickupDate, req.ReturnDate)
	if err != nil {
		respondError(c, "dates must use the YYYY-MM-DD format")
		return
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), userID, req.CarID, pickup, ret)
	if err != nil {
		respondDomainError(c, err, "booking failed")
		return
	}

	respondOK(c, gin.H{
		"message": "booking created",
		"booking": bookingPayload(booking),
	})
}

// ListMine returns the caller's bookings, newest first
func (h *BookingHandlers) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	bookings, err := h.bookingSvc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err, "failed to load bookings")
		return
	}

	respondOK(c, gin.H{"bookings": bookingListPayload(bookings)})
}

// ListForOwner returns bookings across the caller's fleet
func (h *BookingHandlers) ListForOwner(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	bookings, err := h.bookingSvc.ListForOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondDomainError(c, err, "failed to load bookings")
		return
	}

	respondOK(c, gin.H{"bookings": bookingListPayload(bookings)})
}

// BookedDates returns the calendar-blocking ranges for one car
func (h *BookingHandlers) BookedDates(c *gin.Context) {
	carID, err := strconv.ParseUint(c.Param("carId"), 10, 32)
	if err != nil {
		respondError(c, "invalid car id")
		return
	}

	ranges, err := h.bookingSvc.BookedDates(c.Request.Context(), uint(carID))
	if err != nil {
		respondDomainError(c, err, "failed to load booked dates")
		return
	}

	respondOK(c, gin.H{"bookedDates": ranges})
}

// ChangeStatus moves a booking through its lifecycle. Users may only
// cancel their own early-stage bookings; owners follow the full machine.
func (h *BookingHandlers) ChangeStatus(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "bookingId and status are required")
		return
	}

	booking, err := h.bookingSvc.ChangeStatus(c.Request.Context(), actorID, currentUserRole(c),
		req.BookingID, domain.BookingStatus(req.Status), req.Reason)
	if err != nil {
		respondDomainError(c, err, "status change failed")
		return
	}

	respondOK(c, gin.H{
		"message": "booking " + string(booking.Status),
		"booking": bookingPayload(booking),
	})
}
