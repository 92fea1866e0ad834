// Command userctl provisions users out-of-band. The booking API itself
// never creates users; this tool is the supported channel.
//
//	userctl -login alice -name "Alice" -email alice@example.com -passkey secret -role user
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/bookingms/booking-management-backend/internal/auth"
	"github.com/bookingms/booking-management-backend/internal/config"
	"github.com/bookingms/booking-management-backend/internal/db"
	"github.com/bookingms/booking-management-backend/internal/user"
)

func main() {
	var (
		login   = flag.String("login", "", "login identifier (required)")
		name    = flag.String("name", "", "display name")
		email   = flag.String("email", "", "email address")
		passkey = flag.String("passkey", "", "plaintext passkey to hash (required)")
		role    = flag.String("role", string(user.RoleUser), "role: admin, user or guest")
	)
	flag.Parse()

	cleanLogin := strings.TrimSpace(*login)
	if cleanLogin == "" || *passkey == "" {
		flag.Usage()
		os.Exit(2)
	}

	switch user.Role(*role) {
	case user.RoleAdmin, user.RoleUser, user.RoleGuest:
	default:
		log.Fatalf("invalid role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := user.NewMongoRepository(client.Database(cfg.MongoDB).Collection(db.UsersCollection))

	// Refuse to clobber an existing login.
	if _, err := repo.GetByLogin(ctx, cleanLogin); err == nil {
		log.Fatalf("user %q already exists", cleanLogin)
	}

	hasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	hash, err := hasher.Hash(*passkey)
	if err != nil {
		log.Fatalf("failed to hash passkey: %v", err)
	}

	u := &user.User{
		LoginID:     cleanLogin,
		DisplayName: strings.TrimSpace(*name),
		PasskeyHash: hash,
		Email:       strings.TrimSpace(*email),
		Role:        user.Role(*role),
		Active:      true,
	}
	if err := repo.Insert(ctx, u); err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	fmt.Printf("created user %s (%s)\n", u.LoginID, u.Role)
}
