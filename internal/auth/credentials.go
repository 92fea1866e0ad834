package auth

import (
	"context"
	"errors"

	"github.com/bookingms/booking-management-backend/internal/user"
)

// CredentialVerifier resolves presented header credentials to a user and
// answers allow/deny. It is the only authentication surface of the API:
// every request carries a login identifier and passkey.
type CredentialVerifier struct {
	users  user.Service
	hasher PasswordHasher
}

// NewCredentialVerifier creates a verifier over the given user service.
func NewCredentialVerifier(users user.Service, hasher PasswordHasher) *CredentialVerifier {
	return &CredentialVerifier{users: users, hasher: hasher}
}

// Verify returns the user matching the credentials, or nil when the
// credentials do not resolve to an active user. Storage failures are
// returned as errors and must not be treated as a deny.
func (v *CredentialVerifier) Verify(ctx context.Context, loginID, passkey string) (*user.User, error) {
	if loginID == "" || passkey == "" {
		return nil, nil
	}

	u, err := v.users.GetByLogin(ctx, loginID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !u.Active {
		return nil, nil
	}
	if err := v.hasher.Compare(u.PasskeyHash, passkey); err != nil {
		return nil, nil
	}

	return u, nil
}
