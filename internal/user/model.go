package user

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookingms/booking-management-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusBadRequest, "USER_NOT_FOUND", "user not found")

// Role classifies a user's privilege level.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// User is an identity record. Users are provisioned out-of-band (see
// cmd/userctl); the API only reads them for credential and existence
// checks.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	LoginID     string             `bson:"userid"`
	DisplayName string             `bson:"username,omitempty"`
	PasskeyHash string             `bson:"passkey,omitempty"`
	Email       string             `bson:"email,omitempty"`
	Role        Role               `bson:"usertype"`
	Active      bool               `bson:"active"`
}
