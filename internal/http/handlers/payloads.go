package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// JSON shapes returned to clients. Associations are included only when
// the repository loaded them.

func carPayload(car *domain.Car) gin.H {
	if car == nil {
		return nil
	}
	return gin.H{
		"id":              car.ID,
		"ownerId":         car.OwnerID,
		"brand":           car.Brand,
		"model":           car.Model,
		"year":            car.Year,
		"category":        car.Category,
		"seatingCapacity": car.SeatingCapacity,
		"fuelType":        car.FuelType,
		"transmission":    car.Transmission,
		"pricePerDay":     car.PricePerDay,
		"location":        car.Location,
		"description":     car.Description,
		"image":           car.Image,
		"isAvailable":     car.IsAvailable,
		"createdAt":       car.CreatedAt,
	}
}

func carListPayload(cars []domain.Car) []gin.H {
	out := make([]gin.H, 0, len(cars))
	for i := range cars {
		out = append(out, carPayload(&cars[i]))
	}
	return out
}

func userPayload(user *domain.User) gin.H {
	if user == nil {
		return nil
	}
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"image": user.Image,
	}
}

func bookingPayload(b *domain.Booking) gin.H {
	if b == nil {
		return nil
	}
	body := gin.H{
		"id":         b.ID,
		"carId":      b.CarID,
		"userId":     b.UserID,
		"ownerId":    b.OwnerID,
		"pickupDate": b.PickupDate,
		"returnDate": b.ReturnDate,
		"status":     b.Status,
		"price":      b.Price,
		"createdAt":  b.CreatedAt,
	}
	if b.CancelReason != "" {
		body["cancelReason"] = b.CancelReason
	}
	if b.CompletedAt != nil {
		body["completedAt"] = b.CompletedAt
	}
	if b.Car != nil {
		body["car"] = carPayload(b.Car)
	}
	if b.User != nil {
		body["user"] = userPayload(b.User)
	}
	return body
}

func bookingListPayload(bookings []domain.Booking) []gin.H {
	out := make([]gin.H, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookingPayload(&bookings[i]))
	}
	return out
}

func reviewPayload(r *domain.Review) gin.H {
	if r == nil {
		return nil
	}
	body := gin.H{
		"id":        r.ID,
		"bookingId": r.BookingID,
		"carId":     r.CarID,
		"userId":    r.UserID,
		"rating":    r.Rating,
		"comment":   r.Comment,
		"createdAt": r.CreatedAt,
	}
	if r.OwnerReply != "" {
		body["ownerReply"] = r.OwnerReply
		body["repliedAt"] = r.RepliedAt
	}
	if r.Car != nil {
		body["car"] = carPayload(r.Car)
	}
	if r.User != nil {
		body["user"] = userPayload(r.User)
	}
	return body
}

func reviewListPayload(reviews []domain.Review) []gin.H {
	out := make([]gin.H, 0, len(reviews))
	for i := range reviews {
		out = append(out, reviewPayload(&reviews[i]))
	}
	return out
}

func notificationPayload(n *domain.Notification) gin.H {
	if n == nil {
		return nil
	}
	body := gin.H{
		"id":        n.ID,
		"type":      n.Type,
		"title":     n.Title,
		"message":   n.Message,
		"isRead":    n.IsRead,
		"createdAt": n.CreatedAt,
	}
	if n.BookingID != nil {
		body["bookingId"] = n.BookingID
	}
	if n.ReviewID != nil {
		body["reviewId"] = n.ReviewID
	}
	if n.Booking != nil {
		body["booking"] = bookingPayload(n.Booking)
	}
	if n.Review != nil {
		body["review"] = reviewPayload(n.Review)
	}
	return body
}

func notificationListPayload(ns []domain.Notification) []gin.H {
	out := make([]gin.H, 0, len(ns))
	for i := range ns {
		out = append(out, notificationPayload(&ns[i]))
	}
	return out
}
