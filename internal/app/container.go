package app

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/bookingms/booking-management-backend/internal/api"
	"github.com/bookingms/booking-management-backend/internal/auth"
	"github.com/bookingms/booking-management-backend/internal/booking"
	"github.com/bookingms/booking-management-backend/internal/db"
	"github.com/bookingms/booking-management-backend/internal/slot"
	"github.com/bookingms/booking-management-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Database     *mongo.Database
	Logger       *zap.Logger
	BcryptCost   int
	StorePinger  api.Pinger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router   *gin.Engine
	Verifier *auth.CredentialVerifier
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	hasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)

	// User Module (read-only for the API)
	userRepo := user.NewMongoRepository(cfg.Database.Collection(db.UsersCollection))
	userService := user.NewService(userRepo)

	// Credential gate
	verifier := auth.NewCredentialVerifier(userService, hasher)

	// Slot Module: the booking repository doubles as the deletion guard's
	// booking checker, and the slot repository feeds the capacity ledger.
	slotRepo := slot.NewMongoRepository(cfg.Database.Collection(db.SlotsCollection))
	bookingRepo := booking.NewMongoRepository(cfg.Database.Collection(db.BookingsCollection))
	slotService := slot.NewService(slotRepo, bookingRepo)
	ledger := slot.NewLedger(slotRepo)

	// Booking Module
	bookingService := booking.NewService(bookingRepo, userService, slotRepo, ledger)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         cfg.Logger,
		Verifier:       verifier,
		SlotService:    slotService,
		BookingService: bookingService,
		StorePinger:    cfg.StorePinger,
	})

	return &Container{
		Router:   router,
		Verifier: verifier,
	}
}
