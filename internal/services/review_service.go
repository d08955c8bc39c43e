package services

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// ReviewServiceImpl implements domain.ReviewService
type ReviewServiceImpl struct {
	reviews  domain.ReviewRepository
	bookings domain.BookingRepository
	cars     domain.CarRepository
	notifier domain.NotificationService
}

// NewReviewService creates a new review service
func NewReviewService(
	reviews domain.ReviewRepository,
	bookings domain.BookingRepository,
	cars domain.CarRepository,
	notifier domain.NotificationService,
) domain.ReviewService {
	return &ReviewServiceImpl{
		reviews:  reviews,
		bookings: bookings,
		cars:     cars,
		notifier: notifier,
	}
}

// Create implements domain.ReviewService. Only the renter of a
// completed booking may review it, once.
func (s *ReviewServiceImpl) Create(ctx context.Context, userID, bookingID uint, rating int, comment string) (*domain.Review, error) {
	if rating < domain.RatingMin || rating > domain.RatingMax {
		return nil, domain.ErrInvalidRating
	}
	if n := utf8.RuneCountInString(comment); n < domain.CommentMinLen || n > domain.CommentMaxLen {
		return nil, domain.ErrInvalidCommentLen
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	if booking.Status != domain.BookingCompleted {
		return nil, domain.ErrBookingNotCompleted
	}

	if _, err := s.reviews.FindByBooking(ctx, bookingID); err == nil {
		return nil, domain.ErrReviewExists
	} else if err != domain.ErrReviewNotFound {
		return nil, err
	}

	review := &domain.Review{
		BookingID: bookingID,
		CarID:     booking.CarID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.notifier.Notify(ctx, booking.OwnerID, domain.NotifyReviewReceived,
		"New review",
		fmt.Sprintf("Your car received a %d-star review.", rating),
		&booking.ID, &review.ID)

	return review, nil
}

// Reply implements domain.ReviewService. The owner of the reviewed car
// may reply exactly once.
func (s *ReviewServiceImpl) Reply(ctx context.Context, ownerID, reviewID uint, reply string) (*domain.Review, error) {
	if n := utf8.RuneCountInString(reply); n < domain.OwnerReplyMinLen || n > domain.OwnerReplyMaxLen {
		return nil, domain.ErrInvalidReplyLen
	}

	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	car, err := s.cars.FindByID(ctx, review.CarID)
	if err != nil {
		return nil, err
	}
	if car.OwnerID == nil || *car.OwnerID != ownerID {
		return nil, domain.ErrNotOwner
	}

	if review.OwnerReply != "" {
		return nil, domain.ErrReplyExists
	}

	now := time.Now()
	review.OwnerReply = reply
	review.RepliedAt = &now
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to save reply: %w", err)
	}

	s.notifier.Notify(ctx, review.UserID, domain.NotifyReviewReply,
		"Owner replied to your review",
		fmt.Sprintf("The owner of %s %s replied to your review.", car.Brand, car.Model),
		nil, &review.ID)

	return review, nil
}

// ListForCar implements domain.ReviewService; the second return is the
// average rating rounded to one decimal, zero when there are no reviews.
func (s *ReviewServiceImpl) ListForCar(ctx context.Context, carID uint) ([]domain.Review, float64, error) {
	reviews, err := s.reviews.FindByCar(ctx, carID)
	if err != nil {
		return nil, 0, err
	}
	return reviews, AverageRating(reviews), nil
}

// ListForUser implements domain.ReviewService
func (s *ReviewServiceImpl) ListForUser(ctx context.Context, userID uint) ([]domain.Review, error) {
	return s.reviews.FindByUser(ctx, userID)
}

// ListForOwner implements domain.ReviewService
func (s *ReviewServiceImpl) ListForOwner(ctx context.Context, ownerID uint) ([]domain.Review, error) {
	return s.reviews.FindByOwner(ctx, ownerID)
}

// AverageRating returns the mean rating rounded to one decimal place,
// or 0 for an empty slice.
func AverageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}
