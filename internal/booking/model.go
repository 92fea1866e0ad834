package booking

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookingms/booking-management-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "BOOKING_NOT_FOUND", "booking not found")
	ErrAlreadyExists = apperror.New(http.StatusBadRequest, "BOOKING_ALREADY_EXISTS", "a booking already exists for this user and date")
)

// IDPrefix is the three-letter prefix of booking identifiers (BKG0001, ...).
const IDPrefix = "BKG"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking is a user's reservation consuming one unit of a slot's capacity.
// The slot is referenced by date equality, not by stored identifier.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	BookingID string             `bson:"bookingid"`
	UserRef   primitive.ObjectID `bson:"userid"`
	LoginID   string             `bson:"userloginid"`
	Date      string             `bson:"bookingdate"`
	Status    Status             `bson:"status"`
	Active    bool               `bson:"active"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
