package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bookingms/booking-management-backend/internal/auth"
	"github.com/bookingms/booking-management-backend/internal/booking"
	bookingHttp "github.com/bookingms/booking-management-backend/internal/booking/http"
	"github.com/bookingms/booking-management-backend/internal/slot"
	slotHttp "github.com/bookingms/booking-management-backend/internal/slot/http"
)

// Pinger is the health-check view of the store client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config carries everything the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	Logger         *zap.Logger
	Verifier       *auth.CredentialVerifier
	SlotService    slot.Service
	BookingService booking.Service
	StorePinger    Pinger
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, logging, credential
// gates) and registering routes for the booking and slot modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", auth.HeaderLoginID, auth.HeaderPasskey}
	r.Use(cors.New(corsConfig))

	// credMiddleware: resolves the loginid/passkey headers to a user.
	credMiddleware := auth.CredentialRequired(cfg.Verifier)
	// adminMiddleware: further requires the admin role on slot management.
	adminMiddleware := auth.AdminRequired()

	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.Logger)
	slotHandler := slotHttp.NewHandler(cfg.SlotService, cfg.Logger)

	// Register API routes under /api
	api := r.Group("/api")
	{
		bookingHttp.RegisterRoutes(api, bookingHandler, credMiddleware)
		slotHttp.RegisterRoutes(api, slotHandler, credMiddleware, adminMiddleware)
	}

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if cfg.StorePinger != nil {
			if err := cfg.StorePinger.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
