package http

import (
	"github.com/bookingms/booking-management-backend/internal/booking"
)

type CreateBookingRequest struct {
	Date   string  `json:"bookingdate" binding:"required"`
	Status *string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

type UpdateBookingRequest struct {
	Date   *string `json:"bookingdate"`
	Status *string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	Active *bool   `json:"active"`
}

// BookingResponse is the public projection of a booking. Internal
// identifiers are never exposed.
type BookingResponse struct {
	BookingID string `json:"bookingid"`
	LoginID   string `json:"userloginid"`
	Date      string `json:"bookingdate"`
	Status    string `json:"status"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		BookingID: b.BookingID,
		LoginID:   b.LoginID,
		Date:      b.Date,
		Status:    string(b.Status),
	}
}
