package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// CarHandlers handles car listing HTTP requests
type CarHandlers struct {
	carSvc domain.CarService
}

// NewCarHandlers creates new car handlers
func NewCarHandlers(carSvc domain.CarService) *CarHandlers {
	return &CarHandlers{carSvc: carSvc}
}

// CarData is the JSON part of the multipart add/update payload
type CarData struct {
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	Year            int     `json:"year"`
	Category        string  `json:"category"`
	SeatingCapacity int     `json:"seating_capacity"`
	FuelType        string  `json:"fuel_type"`
	Transmission    string  `json:"transmission"`
	PricePerDay     float64 `json:"pricePerDay"`
	Location        string  `json:"location"`
	Description     string  `json:"description"`
}

func (d *CarData) validate() string {
	switch {
	case d.Brand == "" || d.Model == "":
		return "brand and model are required"
	case d.Year <= 0:
		return "a valid year is required"
	case d.PricePerDay <= 0:
		return "pricePerDay must be positive"
	case d.Location == "":
		return "location is required"
	}
	return ""
}

// AddCar creates a listing from a multipart form: a "carData" JSON
// field plus an "image" file.
func (h *CarHandlers) AddCar(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	var data CarData
	if err := json.Unmarshal([]byte(c.PostForm("carData")), &data); err != nil {
		respondError(c, "carData must be a JSON object")
		return
	}
	if msg := data.validate(); msg != "" {
		respondError(c, msg)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, "an image file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, "failed to read image")
		return
	}
	defer file.Close()

	car := &domain.Car{
		Brand:           data.Brand,
		Model:           data.Model,
		Year:            data.Year,
		Category:        data.Category,
		SeatingCapacity: data.SeatingCapacity,
		FuelType:        data.FuelType,
		Transmission:    data.Transmission,
		PricePerDay:     data.PricePerDay,
		Location:        data.Location,
		Description:     data.Description,
	}

	created, err := h.carSvc.AddCar(c.Request.Context(), ownerID, car, file, fileHeader.Filename)
	if err != nil {
		respondDomainError(c, err, "failed to add car")
		return
	}

	respondOK(c, gin.H{
		"message": "car added",
		"car":     carPayload(created),
	})
}

// UpdateCarRequest edits a listing's details
type UpdateCarRequest struct {
	CarID uint    `json:"carId" binding:"required"`
	Car   CarData `json:"carData" binding:"required"`
}

// UpdateCar edits one of the caller's listings
func (h *CarHandlers) UpdateCar(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	var req UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "carId and carData are required")
		return
	}
	if msg := req.Car.validate(); msg != "" {
		respondError(c, msg)
		return
	}

	car := &domain.Car{
		ID:              req.CarID,
		Brand:           req.Car.Brand,
		Model:           req.Car.Model,
		Year:            req.Car.Year,
		Category:        req.Car.Category,
		SeatingCapacity: req.Car.SeatingCapacity,
		FuelType:        req.Car.FuelType,
		Transmission:    req.Car.Transmission,
		PricePerDay:     req.Car.PricePerDay,
		Location:        req.Car.Location,
		Description:     req.Car.Description,
	}

	updated, err := h.carSvc.UpdateCar(c.Request.Context(), ownerID, car)
	if err != nil {
		respondDomainError(c, err, "failed to update car")
		return
	}

	respondOK(c, gin.H{
		"message": "car updated",
		"car":     carPayload(updated),
	})
}

// CarIDRequest targets one listing by id
type CarIDRequest struct {
	CarID uint `json:"carId" binding:"required"`
}

// DeleteCar removes a listing. Past bookings keep the car record; only
// the owner reference is cleared.
func (h *CarHandlers) DeleteCar(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	var req CarIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "carId is required")
		return
	}

	if err := h.carSvc.DeleteCar(c.Request.Context(), ownerID, req.CarID); err != nil {
		respondDomainError(c, err, "failed to delete car")
		return
	}

	respondMessage(c, "car removed")
}

// ToggleAvailability flips a listing in and out of the public catalog
func (h *CarHandlers) ToggleAvailability(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	var req CarIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "carId is required")
		return
	}

	car, err := h.carSvc.ToggleAvailability(c.Request.Context(), ownerID, req.CarID)
	if err != nil {
		respondDomainError(c, err, "failed to toggle availability")
		return
	}

	respondOK(c, gin.H{
		"message": "availability toggled",
		"car":     carPayload(car),
	})
}

// ListMine returns the caller's fleet
func (h *CarHandlers) ListMine(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	cars, err := h.carSvc.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondDomainError(c, err, "failed to load cars")
		return
	}

	respondOK(c, gin.H{"cars": carListPayload(cars)})
}

// ListAvailable returns the public catalog, optionally filtered by
// location via a query parameter.
func (h *CarHandlers) ListAvailable(c *gin.Context) {
	cars, err := h.carSvc.ListAvailable(c.Request.Context(), c.Query("location"))
	if err != nil {
		respondDomainError(c, err, "failed to load cars")
		return
	}

	respondOK(c, gin.H{"cars": carListPayload(cars)})
}

// GetCar returns one listing by id
func (h *CarHandlers) GetCar(c *gin.Context) {
	carID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, "invalid car id")
		return
	}

	car, err := h.carSvc.GetCar(c.Request.Context(), uint(carID))
	if err != nil {
		respondDomainError(c, err, "failed to load car")
		return
	}

	respondOK(c, gin.H{"car": carPayload(car)})
}

// Dashboard summarizes the caller's fleet activity
func (h *CarHandlers) Dashboard(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		respondError(c, "not authorized, login again")
		return
	}

	data, err := h.carSvc.Dashboard(c.Request.Context(), ownerID)
	if err != nil {
		respondDomainError(c, err, "failed to load dashboard")
		return
	}

	respondOK(c, gin.H{"dashboard": data})
}
