package user

import (
	"context"
	"strings"
)

// Service defines read access to users. The booking API never creates or
// mutates users; provisioning happens out-of-band.
type Service interface {
	GetByLogin(ctx context.Context, loginID string) (*User, error)
}

type service struct {
	repo Repository
}

// NewService creates a new user Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByLogin(ctx context.Context, loginID string) (*User, error) {
	return s.repo.GetByLogin(ctx, strings.TrimSpace(loginID))
}
