package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// CarRepositoryImpl implements domain.CarRepository using GORM
type CarRepositoryImpl struct {
	db *gorm.DB
}

// DBCar represents the database model for Car (with GORM tags).
// OwnerID is nullable: deleting a listing clears the reference instead
// of cascading so historical bookings keep resolving.
type DBCar struct {
	ID              uint  `gorm:"primaryKey"`
	OwnerID         *uint `gorm:"index"`
	Brand           string
	Model           string
	Year            int
	Category        string `gorm:"size:64"`
	SeatingCapacity int
	FuelType        string `gorm:"size:32"`
	Transmission    string `gorm:"size:32"`
	PricePerDay     float64
	Location        string `gorm:"index;size:128"`
	Description     string `gorm:"type:text"`
	Image           string `gorm:"size:512"`
	IsAvailable     bool   `gorm:"index;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBCar) TableName() string {
	return "cars"
}

// NewCarRepository creates a new car repository
func NewCarRepository(db *gorm.DB) domain.CarRepository {
	return &CarRepositoryImpl{db: db}
}

// Create implements domain.CarRepository
func (r *CarRepositoryImpl) Create(ctx context.Context, car *domain.Car) error {
	dbCar := carToDB(car)
	if err := r.db.WithContext(ctx).Create(dbCar).Error; err != nil {
		return err
	}
	car.ID = dbCar.ID
	return nil
}

// FindByID implements domain.CarRepository
func (r *CarRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Car, error) {
	var dbCar DBCar
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCar).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCarNotFound
		}
		return nil, err
	}
	return carToDomain(&dbCar), nil
}

// FindByOwner implements domain.CarRepository
func (r *CarRepositoryImpl) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Car, error) {
	var dbCars []DBCar
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&dbCars).Error
	if err != nil {
		return nil, err
	}
	return carsToDomain(dbCars), nil
}

// FindAvailable implements domain.CarRepository; location is an
// optional filter.
func (r *CarRepositoryImpl) FindAvailable(ctx context.Context, location string) ([]domain.Car, error) {
	q := r.db.WithContext(ctx).Where("is_available = ?", true)
	if location != "" {
		q = q.Where("location = ?", location)
	}

	var dbCars []DBCar
	if err := q.Order("created_at DESC").Find(&dbCars).Error; err != nil {
		return nil, err
	}
	return carsToDomain(dbCars), nil
}

// Update implements domain.CarRepository
func (r *CarRepositoryImpl) Update(ctx context.Context, car *domain.Car) error {
	return r.db.WithContext(ctx).Save(carToDB(car)).Error
}

// Delete implements domain.CarRepository: the owner reference is nulled
// and the row soft-deleted in one transaction.
func (r *CarRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&DBCar{}).Where("id = ?", id).Update("owner_id", nil)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrCarNotFound
		}
		return tx.Delete(&DBCar{}, id).Error
	})
}

// CountByOwner implements domain.CarRepository
func (r *CarRepositoryImpl) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBCar{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func carToDB(car *domain.Car) *DBCar {
	return &DBCar{
		ID:              car.ID,
		OwnerID:         car.OwnerID,
		Brand:           car.Brand,
		Model:           car.Model,
		Year:            car.Year,
		Category:        car.Category,
		SeatingCapacity: car.SeatingCapacity,
		FuelType:        car.FuelType,
		Transmission:    car.Transmission,
		PricePerDay:     car.PricePerDay,
		Location:        car.Location,
		Description:     car.Description,
		Image:           car.Image,
		IsAvailable:     car.IsAvailable,
		CreatedAt:       car.CreatedAt,
	}
}

func carToDomain(dbCar *DBCar) *domain.Car {
	return &domain.Car{
		ID:              dbCar.ID,
		OwnerID:         dbCar.OwnerID,
		Brand:           dbCar.Brand,
		Model:           dbCar.Model,
		Year:            dbCar.Year,
		Category:        dbCar.Category,
		SeatingCapacity: dbCar.SeatingCapacity,
		FuelType:        dbCar.FuelType,
		Transmission:    dbCar.Transmission,
		PricePerDay:     dbCar.PricePerDay,
		Location:        dbCar.Location,
		Description:     dbCar.Description,
		Image:           dbCar.Image,
		IsAvailable:     dbCar.IsAvailable,
		CreatedAt:       dbCar.CreatedAt,
		UpdatedAt:       dbCar.UpdatedAt,
	}
}

func carsToDomain(dbCars []DBCar) []domain.Car {
	cars := make([]domain.Car, 0, len(dbCars))
	for i := range dbCars {
		cars = append(cars, *carToDomain(&dbCars[i]))
	}
	return cars
}
