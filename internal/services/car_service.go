package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// CarServiceImpl implements domain.CarService
type CarServiceImpl struct {
	cars     domain.CarRepository
	bookings domain.BookingRepository
	storage  domain.ImageStorage
}

// NewCarService creates a new car service
func NewCarService(cars domain.CarRepository, bookings domain.BookingRepository, storage domain.ImageStorage) domain.CarService {
	return &CarServiceImpl{
		cars:     cars,
		bookings: bookings,
		storage:  storage,
	}
}

// AddCar implements domain.CarService. The image, when provided, is
// uploaded before the row is written; the stored URL (or local path,
// for the fallback store) lands on the listing.
func (s *CarServiceImpl) AddCar(ctx context.Context, ownerID uint, car *domain.Car, image io.Reader, filename string) (*domain.Car, error) {
	if car.Brand == "" || car.Model == "" {
		return nil, fmt.Errorf("brand and model are required")
	}
	if car.PricePerDay <= 0 {
		return nil, fmt.Errorf("price per day must be positive")
	}

	if image != nil {
		ext := filepath.Ext(filename)
		name := uuid.NewString() + ext
		contentType := mime.TypeByExtension(ext)
		url, err := s.storage.Upload(ctx, name, image, contentType)
		if err != nil {
			return nil, fmt.Errorf("failed to upload car image: %w", err)
		}
		car.Image = url
	}

	car.OwnerID = &ownerID
	car.IsAvailable = true
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}
	return car, nil
}

// UpdateCar implements domain.CarService
func (s *CarServiceImpl) UpdateCar(ctx context.Context, ownerID uint, car *domain.Car) (*domain.Car, error) {
	existing, err := s.ownedCar(ctx, ownerID, car.ID)
	if err != nil {
		return nil, err
	}

	existing.Brand = car.Brand
	existing.Model = car.Model
	existing.Year = car.Year
	existing.Category = car.Category
	existing.SeatingCapacity = car.SeatingCapacity
	existing.FuelType = car.FuelType
	existing.Transmission = car.Transmission
	existing.PricePerDay = car.PricePerDay
	existing.Location = car.Location
	existing.Description = car.Description

	if err := s.cars.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update car: %w", err)
	}
	return existing, nil
}

// DeleteCar implements domain.CarService: the listing is soft-deleted
// and its owner reference cleared, leaving historical bookings intact.
func (s *CarServiceImpl) DeleteCar(ctx context.Context, ownerID, carID uint) error {
	if _, err := s.ownedCar(ctx, ownerID, carID); err != nil {
		return err
	}
	return s.cars.Delete(ctx, carID)
}

// ToggleAvailability implements domain.CarService
func (s *CarServiceImpl) ToggleAvailability(ctx context.Context, ownerID, carID uint) (*domain.Car, error) {
	car, err := s.ownedCar(ctx, ownerID, carID)
	if err != nil {
		return nil, err
	}

	car.IsAvailable = !car.IsAvailable
	if err := s.cars.Update(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to toggle car availability: %w", err)
	}
	return car, nil
}

// ListByOwner implements domain.CarService
func (s *CarServiceImpl) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Car, error) {
	return s.cars.FindByOwner(ctx, ownerID)
}

// ListAvailable implements domain.CarService
func (s *CarServiceImpl) ListAvailable(ctx context.Context, location string) ([]domain.Car, error) {
	return s.cars.FindAvailable(ctx, location)
}

// GetCar implements domain.CarService
func (s *CarServiceImpl) GetCar(ctx context.Context, carID uint) (*domain.Car, error) {
	return s.cars.FindByID(ctx, carID)
}

// Dashboard implements domain.CarService
func (s *CarServiceImpl) Dashboard(ctx context.Context, ownerID uint) (*domain.DashboardData, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	data, err := s.bookings.OwnerStats(ctx, ownerID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner stats: %w", err)
	}

	data.TotalCars, err = s.cars.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count cars: %w", err)
	}

	return data, nil
}

// ownedCar loads a car and verifies the caller owns it.
func (s *CarServiceImpl) ownedCar(ctx context.Context, ownerID, carID uint) (*domain.Car, error) {
	car, err := s.cars.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car.OwnerID == nil || *car.OwnerID != ownerID {
		return nil, domain.ErrNotOwner
	}
	return car, nil
}
