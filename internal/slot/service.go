package slot

import (
	"context"
	"errors"
	"time"

	"github.com/bookingms/booking-management-backend/internal/pkg/sequence"
)

// BookingChecker reports whether any booking references the given date.
// Implemented by the booking repository; declared here so the slot package
// does not depend on the booking package.
type BookingChecker interface {
	ExistsForDate(ctx context.Context, date string) (bool, error)
}

type CreateRequest struct {
	Date   string
	Count  int
	Status *string
}

type UpdateRequest struct {
	Date   *string
	Count  *int
	Status *string
	Active *bool
}

// Service implements the slot lifecycle: validation, duplicate-date
// prevention, identifier allocation and the deletion guard.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Slot, error)
	GetByID(ctx context.Context, slotID string) (*Slot, error)
	List(ctx context.Context) ([]*Slot, error)
	Update(ctx context.Context, slotID string, req UpdateRequest) (bool, error)
	Delete(ctx context.Context, slotID string) error
}

type service struct {
	repo      Repository
	bookings  BookingChecker
	allocator *sequence.Allocator
}

// NewService creates a new slot Service.
func NewService(repo Repository, bookings BookingChecker) Service {
	return &service{
		repo:      repo,
		bookings:  bookings,
		allocator: sequence.NewAllocator(IDPrefix, repo.LatestID),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Slot, error) {
	if len(req.Date) != DateLength {
		return nil, ErrInvalidDate
	}

	// At most one slot may exist per calendar date, regardless of the
	// existing slot's status.
	_, err := s.repo.GetByDate(ctx, req.Date)
	if err == nil {
		return nil, ErrAlreadyExists
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	slotID, err := s.allocator.Next(ctx)
	if err != nil {
		return nil, err
	}

	status := StatusAvailable
	if req.Status != nil {
		status = Status(*req.Status)
	}

	now := time.Now().UTC()
	sl := &Slot{
		SlotID:    slotID,
		Date:      req.Date,
		Status:    status,
		Count:     req.Count,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *service) GetByID(ctx context.Context, slotID string) (*Slot, error) {
	return s.repo.GetByID(ctx, slotID)
}

func (s *service) List(ctx context.Context) ([]*Slot, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, slotID string, req UpdateRequest) (bool, error) {
	if _, err := s.repo.GetByID(ctx, slotID); err != nil {
		return false, err
	}

	fields := map[string]any{}
	if req.Date != nil {
		fields["slotdate"] = *req.Date
	}
	if req.Count != nil {
		fields["slotcount"] = *req.Count
	}
	if req.Status != nil {
		fields["slotstatus"] = *req.Status
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if len(fields) == 0 {
		return false, nil
	}

	return s.repo.UpdateFields(ctx, slotID, fields)
}

func (s *service) Delete(ctx context.Context, slotID string) error {
	sl, err := s.repo.GetByID(ctx, slotID)
	if err != nil {
		return err
	}

	// Refuse deletion while any booking still references the slot's date.
	exists, err := s.bookings.ExistsForDate(ctx, sl.Date)
	if err != nil {
		return err
	}
	if exists {
		return ErrBookingExists
	}

	return s.repo.Delete(ctx, slotID)
}
