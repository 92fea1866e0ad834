package slot

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookingms/booking-management-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "SLOT_NOT_FOUND", "slot not found")
	ErrAlreadyExists = apperror.New(http.StatusBadRequest, "SLOT_ALREADY_EXISTS", "a slot already exists for this date")
	ErrInvalidDate   = apperror.New(http.StatusBadRequest, "INVALID_SLOT_DATE", "slot date must be a YYYY-MM-DD string")
	ErrBookingExists = apperror.New(http.StatusNotFound, "BOOKING_EXISTS", "unable to delete, booking exists on this slot")
)

// IDPrefix is the three-letter prefix of slot identifiers (SLT0001, ...).
const IDPrefix = "SLT"

// DateLength is the exact length of the canonical date string.
const DateLength = len("2006-01-02")

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
)

// Slot is a bookable time window with finite capacity. At most one slot
// exists per calendar date; bookings reference it by that date.
type Slot struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	SlotID    string             `bson:"slotid"`
	Date      string             `bson:"slotdate"`
	Status    Status             `bson:"slotstatus"`
	Count     int                `bson:"slotcount"`
	Active    bool               `bson:"active"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
