package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// BookingRepositoryImpl implements domain.BookingRepository using GORM
type BookingRepositoryImpl struct {
	db *gorm.DB
}

// DBBooking represents the database model for Booking (with GORM tags)
type DBBooking struct {
	ID           uint `gorm:"primaryKey"`
	CarID        uint `gorm:"index"`
	UserID       uint `gorm:"index"`
	OwnerID      uint `gorm:"index"`
	PickupDate   time.Time
	ReturnDate   time.Time
	Status       string `gorm:"index;size:32;default:pending"`
	Price        float64
	CancelReason string `gorm:"size:512"`
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Car  *DBCar  `gorm:"foreignKey:CarID"`
	User *DBUser `gorm:"foreignKey:UserID"`
}

// TableName returns the table name for GORM
func (DBBooking) TableName() string {
	return "bookings"
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domain.BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

// withRefs preloads car and user rows, including soft-deleted cars so
// history stays readable after a listing is removed.
func (r *BookingRepositoryImpl) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Car", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("User")
}

// Create implements domain.BookingRepository
func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *domain.Booking) error {
	dbBooking := bookingToDB(booking)
	if err := r.db.WithContext(ctx).Create(dbBooking).Error; err != nil {
		return err
	}
	booking.ID = dbBooking.ID
	booking.CreatedAt = dbBooking.CreatedAt
	return nil
}

// FindByID implements domain.BookingRepository
func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Booking, error) {
	var dbBooking DBBooking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbBooking).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return bookingToDomain(&dbBooking), nil
}

// FindByIDWithRefs implements domain.BookingRepository
func (r *BookingRepositoryImpl) FindByIDWithRefs(ctx context.Context, id uint) (*domain.Booking, error) {
	var dbBooking DBBooking
	err := r.withRefs(ctx).Where("id = ?", id).First(&dbBooking).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return bookingToDomain(&dbBooking), nil
}

// FindByUser implements domain.BookingRepository, newest first.
func (r *BookingRepositoryImpl) FindByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	var dbBookings []DBBooking
	err := r.withRefs(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dbBookings).Error
	if err != nil {
		return nil, err
	}
	return bookingsToDomain(dbBookings), nil
}

// FindByOwner implements domain.BookingRepository, newest first.
func (r *BookingRepositoryImpl) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Booking, error) {
	var dbBookings []DBBooking
	err := r.withRefs(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&dbBookings).Error
	if err != nil {
		return nil, err
	}
	return bookingsToDomain(dbBookings), nil
}

// CountOverlapping implements domain.BookingRepository. Bounds are
// inclusive: an existing booking overlaps when its pickup is not after
// the new return and its return is not before the new pickup.
func (r *BookingRepositoryImpl) CountOverlapping(ctx context.Context, carID uint, pickup, ret time.Time, statuses []domain.BookingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBBooking{}).
		Where("car_id = ?", carID).
		Where("status IN ?", statusStrings(statuses)).
		Where("pickup_date <= ? AND return_date >= ?", ret, pickup).
		Count(&count).Error
	return count, err
}

// BookedDates implements domain.BookingRepository: the calendar feed
// covers only pending and booked reservations.
func (r *BookingRepositoryImpl) BookedDates(ctx context.Context, carID uint) ([]domain.BookedRange, error) {
	var dbBookings []DBBooking
	err := r.db.WithContext(ctx).
		Select("pickup_date", "return_date", "status").
		Where("car_id = ?", carID).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingBooked)}).
		Order("pickup_date ASC").
		Find(&dbBookings).Error
	if err != nil {
		return nil, err
	}

	ranges := make([]domain.BookedRange, 0, len(dbBookings))
	for _, b := range dbBookings {
		ranges = append(ranges, domain.BookedRange{
			PickupDate: b.PickupDate,
			ReturnDate: b.ReturnDate,
			Status:     domain.BookingStatus(b.Status),
		})
	}
	return ranges, nil
}

// Update implements domain.BookingRepository
func (r *BookingRepositoryImpl) Update(ctx context.Context, booking *domain.Booking) error {
	return r.db.WithContext(ctx).Save(bookingToDB(booking)).Error
}

// OwnerStats implements domain.BookingRepository for the dashboard view.
func (r *BookingRepositoryImpl) OwnerStats(ctx context.Context, ownerID uint, monthStart time.Time) (*domain.DashboardData, error) {
	data := &domain.DashboardData{}
	db := r.db.WithContext(ctx).Model(&DBBooking{}).Where("owner_id = ?", ownerID)

	if err := db.Session(&gorm.Session{}).Count(&data.TotalBookings).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("status = ?", string(domain.BookingPending)).
		Count(&data.PendingBookings).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("status = ?", string(domain.BookingCompleted)).
		Count(&data.CompletedBookings).Error; err != nil {
		return nil, err
	}

	var revenue *float64
	err := r.db.WithContext(ctx).Model(&DBBooking{}).
		Select("SUM(price)").
		Where("owner_id = ?", ownerID).
		Where("status = ?", string(domain.BookingCompleted)).
		Where("created_at >= ?", monthStart).
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	if revenue != nil {
		data.MonthlyRevenue = *revenue
	}

	var recent []DBBooking
	err = r.withRefs(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(3).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}
	data.RecentBookings = bookingsToDomain(recent)

	return data, nil
}

func bookingToDB(b *domain.Booking) *DBBooking {
	return &DBBooking{
		ID:           b.ID,
		CarID:        b.CarID,
		UserID:       b.UserID,
		OwnerID:      b.OwnerID,
		PickupDate:   b.PickupDate,
		ReturnDate:   b.ReturnDate,
		Status:       string(b.Status),
		Price:        b.Price,
		CancelReason: b.CancelReason,
		CompletedAt:  b.CompletedAt,
		// Save writes every column, so the original created_at must
		// ride along or updates reset it.
		CreatedAt: b.CreatedAt,
	}
}

func bookingToDomain(dbBooking *DBBooking) *domain.Booking {
	booking := &domain.Booking{
		ID:           dbBooking.ID,
		CarID:        dbBooking.CarID,
		UserID:       dbBooking.UserID,
		OwnerID:      dbBooking.OwnerID,
		PickupDate:   dbBooking.PickupDate,
		ReturnDate:   dbBooking.ReturnDate,
		Status:       domain.BookingStatus(dbBooking.Status),
		Price:        dbBooking.Price,
		CancelReason: dbBooking.CancelReason,
		CompletedAt:  dbBooking.CompletedAt,
		CreatedAt:    dbBooking.CreatedAt,
		UpdatedAt:    dbBooking.UpdatedAt,
	}
	if dbBooking.Car != nil {
		booking.Car = carToDomain(dbBooking.Car)
	}
	if dbBooking.User != nil {
		booking.User = userToDomain(dbBooking.User)
	}
	return booking
}

func bookingsToDomain(dbBookings []DBBooking) []domain.Booking {
	bookings := make([]domain.Booking, 0, len(dbBookings))
	for i := range dbBookings {
		bookings = append(bookings, *bookingToDomain(&dbBookings[i]))
	}
	return bookings
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
