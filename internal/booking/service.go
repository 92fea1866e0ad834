package booking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bookingms/booking-management-backend/internal/pkg/sequence"
	"github.com/bookingms/booking-management-backend/internal/slot"
	"github.com/bookingms/booking-management-backend/internal/user"
)

// SlotFinder resolves the slot for a calendar date. Satisfied by the slot
// repository.
type SlotFinder interface {
	GetByDate(ctx context.Context, date string) (*slot.Slot, error)
}

// CapacityLedger adjusts a slot's remaining-capacity counter. Satisfied by
// *slot.Ledger.
type CapacityLedger interface {
	Reserve(ctx context.Context, date string) error
	Release(ctx context.Context, date string) error
}

type CreateRequest struct {
	Date   string
	Status *string
}

type UpdateRequest struct {
	Date   *string
	Status *string
	Active *bool
}

// Service implements the booking lifecycle: user validation, duplicate
// prevention, slot existence checks, identifier allocation and capacity
// accounting. Every operation is scoped to the calling user's login.
type Service interface {
	Create(ctx context.Context, loginID string, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, loginID, bookingID string) (*Booking, error)
	List(ctx context.Context, loginID string) ([]*Booking, error)
	Update(ctx context.Context, loginID, bookingID string, req UpdateRequest) (bool, error)
	Patch(ctx context.Context, loginID, bookingID string, req UpdateRequest) (bool, error)
	Delete(ctx context.Context, loginID, bookingID string) error
}

type service struct {
	repo      Repository
	users     user.Service
	slots     SlotFinder
	ledger    CapacityLedger
	allocator *sequence.Allocator
}

// NewService creates a new booking Service.
func NewService(repo Repository, users user.Service, slots SlotFinder, ledger CapacityLedger) Service {
	return &service{
		repo:      repo,
		users:     users,
		slots:     slots,
		ledger:    ledger,
		allocator: sequence.NewAllocator(IDPrefix, repo.LatestID),
	}
}

func (s *service) Create(ctx context.Context, loginID string, req CreateRequest) (*Booking, error) {
	u, err := s.users.GetByLogin(ctx, loginID)
	if err != nil {
		return nil, err
	}

	// At most one booking per (login, date) pair.
	_, err = s.repo.GetByLoginAndDate(ctx, loginID, req.Date)
	if err == nil {
		return nil, ErrAlreadyExists
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	// The booking's date must reference an existing slot. On creation this
	// rejection surfaces as a client error, not a lookup miss.
	if _, err := s.slots.GetByDate(ctx, req.Date); err != nil {
		if errors.Is(err, slot.ErrNotFound) {
			return nil, slot.ErrNotFound.WithStatus(http.StatusBadRequest)
		}
		return nil, err
	}

	bookingID, err := s.allocator.Next(ctx)
	if err != nil {
		return nil, err
	}

	status := StatusConfirmed
	if req.Status != nil {
		status = Status(*req.Status)
	}

	now := time.Now().UTC()
	b := &Booking{
		BookingID: bookingID,
		UserRef:   u.ID,
		LoginID:   u.LoginID,
		Date:      req.Date,
		Status:    status,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, err
	}

	if err := s.ledger.Reserve(ctx, req.Date); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, loginID, bookingID string) (*Booking, error) {
	// Scoping by login means a cross-user lookup reads as not-found.
	return s.repo.GetByIDAndLogin(ctx, bookingID, loginID)
}

func (s *service) List(ctx context.Context, loginID string) ([]*Booking, error) {
	return s.repo.ListByLogin(ctx, loginID)
}

func (s *service) Update(ctx context.Context, loginID, bookingID string, req UpdateRequest) (bool, error) {
	return s.apply(ctx, loginID, bookingID, req)
}

// Patch shares Update's contract; both scope the write by identifier and
// owning login.
func (s *service) Patch(ctx context.Context, loginID, bookingID string, req UpdateRequest) (bool, error) {
	return s.apply(ctx, loginID, bookingID, req)
}

func (s *service) apply(ctx context.Context, loginID, bookingID string, req UpdateRequest) (bool, error) {
	if _, err := s.repo.GetByIDAndLogin(ctx, bookingID, loginID); err != nil {
		return false, err
	}

	// A date change must still point at an existing slot. Capacity is not
	// re-adjusted on date changes: the old slot is never released and the
	// new one never reserved.
	if req.Date != nil && *req.Date != "" {
		if _, err := s.slots.GetByDate(ctx, *req.Date); err != nil {
			return false, err
		}
	}

	fields := map[string]any{}
	if req.Date != nil && *req.Date != "" {
		fields["bookingdate"] = *req.Date
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if len(fields) == 0 {
		return false, nil
	}

	return s.repo.UpdateFields(ctx, bookingID, loginID, fields)
}

func (s *service) Delete(ctx context.Context, loginID, bookingID string) error {
	b, err := s.repo.GetByIDAndLogin(ctx, bookingID, loginID)
	if err != nil {
		return err
	}

	// The slot may already be gone; capacity is returned only when it is
	// still present.
	_, slotErr := s.slots.GetByDate(ctx, b.Date)
	if slotErr != nil && !errors.Is(slotErr, slot.ErrNotFound) {
		return slotErr
	}

	if err := s.repo.Delete(ctx, bookingID); err != nil {
		return err
	}

	if slotErr == nil {
		if err := s.ledger.Release(ctx, b.Date); err != nil {
			return err
		}
	}
	return nil
}
