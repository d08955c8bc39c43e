package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// ReviewRepositoryImpl implements domain.ReviewRepository using GORM
type ReviewRepositoryImpl struct {
	db *gorm.DB
}

// DBReview represents the database model for Review (with GORM tags).
// BookingID carries a unique index: one review per booking.
type DBReview struct {
	ID         uint   `gorm:"primaryKey"`
	BookingID  uint   `gorm:"uniqueIndex"`
	CarID      uint   `gorm:"index"`
	UserID     uint   `gorm:"index"`
	Rating     int    `gorm:"check:rating >= 1 AND rating <= 5"`
	Comment    string `gorm:"size:500"`
	OwnerReply string `gorm:"size:400"`
	RepliedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Car  *DBCar  `gorm:"foreignKey:CarID"`
	User *DBUser `gorm:"foreignKey:UserID"`
}

// TableName returns the table name for GORM
func (DBReview) TableName() string {
	return "reviews"
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Car", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("User")
}

// Create implements domain.ReviewRepository
func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *domain.Review) error {
	dbReview := reviewToDB(review)
	if err := r.db.WithContext(ctx).Create(dbReview).Error; err != nil {
		return err
	}
	review.ID = dbReview.ID
	review.CreatedAt = dbReview.CreatedAt
	return nil
}

// FindByID implements domain.ReviewRepository
func (r *ReviewRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Review, error) {
	var dbReview DBReview
	err := r.withRefs(ctx).Where("id = ?", id).First(&dbReview).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return reviewToDomain(&dbReview), nil
}

// FindByBooking implements domain.ReviewRepository
func (r *ReviewRepositoryImpl) FindByBooking(ctx context.Context, bookingID uint) (*domain.Review, error) {
	var dbReview DBReview
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&dbReview).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return reviewToDomain(&dbReview), nil
}

// FindByCar implements domain.ReviewRepository, newest first.
func (r *ReviewRepositoryImpl) FindByCar(ctx context.Context, carID uint) ([]domain.Review, error) {
	var dbReviews []DBReview
	err := r.withRefs(ctx).
		Where("car_id = ?", carID).
		Order("created_at DESC").
		Find(&dbReviews).Error
	if err != nil {
		return nil, err
	}
	return reviewsToDomain(dbReviews), nil
}

// FindByUser implements domain.ReviewRepository, newest first.
func (r *ReviewRepositoryImpl) FindByUser(ctx context.Context, userID uint) ([]domain.Review, error) {
	var dbReviews []DBReview
	err := r.withRefs(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dbReviews).Error
	if err != nil {
		return nil, err
	}
	return reviewsToDomain(dbReviews), nil
}

// FindByOwner implements domain.ReviewRepository: reviews on any car the
// owner currently lists.
func (r *ReviewRepositoryImpl) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Review, error) {
	var dbReviews []DBReview
	err := r.withRefs(ctx).
		Joins("JOIN cars ON cars.id = reviews.car_id").
		Where("cars.owner_id = ?", ownerID).
		Order("reviews.created_at DESC").
		Find(&dbReviews).Error
	if err != nil {
		return nil, err
	}
	return reviewsToDomain(dbReviews), nil
}

// Update implements domain.ReviewRepository
func (r *ReviewRepositoryImpl) Update(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Save(reviewToDB(review)).Error
}

func reviewToDB(review *domain.Review) *DBReview {
	return &DBReview{
		ID:         review.ID,
		BookingID:  review.BookingID,
		CarID:      review.CarID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		OwnerReply: review.OwnerReply,
		RepliedAt:  review.RepliedAt,
		CreatedAt:  review.CreatedAt,
	}
}

func reviewToDomain(dbReview *DBReview) *domain.Review {
	review := &domain.Review{
		ID:         dbReview.ID,
		BookingID:  dbReview.BookingID,
		CarID:      dbReview.CarID,
		UserID:     dbReview.UserID,
		Rating:     dbReview.Rating,
		Comment:    dbReview.Comment,
		OwnerReply: dbReview.OwnerReply,
		RepliedAt:  dbReview.RepliedAt,
		CreatedAt:  dbReview.CreatedAt,
		UpdatedAt:  dbReview.UpdatedAt,
	}
	if dbReview.Car != nil {
		review.Car = carToDomain(dbReview.Car)
	}
	if dbReview.User != nil {
		review.User = userToDomain(dbReview.User)
	}
	return review
}

func reviewsToDomain(dbReviews []DBReview) []domain.Review {
	reviews := make([]domain.Review, 0, len(dbReviews))
	for i := range dbReviews {
		reviews = append(reviews, *reviewToDomain(&dbReviews[i]))
	}
	return reviews
}
