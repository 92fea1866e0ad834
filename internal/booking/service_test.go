package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookingms/booking-management-backend/internal/slot"
	"github.com/bookingms/booking-management-backend/internal/user"
)

// memRepo is an in-memory booking Repository.
type memRepo struct {
	bookings []*Booking
}

func (r *memRepo) GetByIDAndLogin(_ context.Context, bookingID, loginID string) (*Booking, error) {
	for _, b := range r.bookings {
		if b.BookingID == bookingID && b.LoginID == loginID {
			clone := *b
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) GetByLoginAndDate(_ context.Context, loginID, date string) (*Booking, error) {
	for _, b := range r.bookings {
		if b.LoginID == loginID && b.Date == date {
			clone := *b
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) ListByLogin(_ context.Context, loginID string) ([]*Booking, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if b.LoginID == loginID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memRepo) Insert(_ context.Context, b *Booking) error {
	clone := *b
	r.bookings = append(r.bookings, &clone)
	return nil
}

func (r *memRepo) UpdateFields(_ context.Context, bookingID, loginID string, fields map[string]any) (bool, error) {
	for _, b := range r.bookings {
		if b.BookingID != bookingID || b.LoginID != loginID {
			continue
		}
		changed := false
		if v, ok := fields["bookingdate"]; ok && b.Date != v.(string) {
			b.Date = v.(string)
			changed = true
		}
		if v, ok := fields["status"]; ok && b.Status != Status(v.(string)) {
			b.Status = Status(v.(string))
			changed = true
		}
		if v, ok := fields["active"]; ok && b.Active != v.(bool) {
			b.Active = v.(bool)
			changed = true
		}
		return changed, nil
	}
	return false, nil
}

func (r *memRepo) Delete(_ context.Context, bookingID string) error {
	for i, b := range r.bookings {
		if b.BookingID == bookingID {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memRepo) ExistsForDate(_ context.Context, date string) (bool, error) {
	for _, b := range r.bookings {
		if b.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) LatestID(_ context.Context) (string, error) {
	if len(r.bookings) == 0 {
		return "", nil
	}
	return r.bookings[len(r.bookings)-1].BookingID, nil
}

// memSlotRepo implements slot.Repository so the real capacity ledger runs
// against it.
type memSlotRepo struct {
	slots map[string]*slot.Slot // keyed by date
}

func (r *memSlotRepo) GetByID(_ context.Context, slotID string) (*slot.Slot, error) {
	for _, s := range r.slots {
		if s.SlotID == slotID {
			clone := *s
			return &clone, nil
		}
	}
	return nil, slot.ErrNotFound
}

func (r *memSlotRepo) GetByDate(_ context.Context, date string) (*slot.Slot, error) {
	if s, ok := r.slots[date]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, slot.ErrNotFound
}

func (r *memSlotRepo) List(_ context.Context) ([]*slot.Slot, error) { return nil, nil }

func (r *memSlotRepo) Insert(_ context.Context, s *slot.Slot) error {
	clone := *s
	r.slots[s.Date] = &clone
	return nil
}

func (r *memSlotRepo) UpdateFields(_ context.Context, _ string, _ map[string]any) (bool, error) {
	return false, nil
}

func (r *memSlotRepo) ReplaceByDate(_ context.Context, date string, s *slot.Slot) error {
	if _, ok := r.slots[date]; ok {
		clone := *s
		r.slots[date] = &clone
	}
	return nil
}

func (r *memSlotRepo) Delete(_ context.Context, slotID string) error {
	for date, s := range r.slots {
		if s.SlotID == slotID {
			delete(r.slots, date)
			return nil
		}
	}
	return slot.ErrNotFound
}

func (r *memSlotRepo) LatestID(_ context.Context) (string, error) { return "", nil }

// stubUserService resolves a fixed set of logins.
type stubUserService struct {
	users map[string]*user.User
}

func (s *stubUserService) GetByLogin(_ context.Context, loginID string) (*user.User, error) {
	if u, ok := s.users[loginID]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

type fixture struct {
	svc      Service
	repo     *memRepo
	slotRepo *memSlotRepo
}

func newFixture() *fixture {
	repo := &memRepo{}
	slotRepo := &memSlotRepo{slots: map[string]*slot.Slot{}}
	users := &stubUserService{users: map[string]*user.User{
		"alice": {ID: primitive.NewObjectID(), LoginID: "alice", Role: user.RoleUser, Active: true},
		"bob":   {ID: primitive.NewObjectID(), LoginID: "bob", Role: user.RoleUser, Active: true},
	}}
	svc := NewService(repo, users, slotRepo, slot.NewLedger(slotRepo))
	return &fixture{svc: svc, repo: repo, slotRepo: slotRepo}
}

func (f *fixture) seedSlot(date string, count int) {
	f.slotRepo.slots[date] = &slot.Slot{
		SlotID:    "SLT0001",
		Date:      date,
		Status:    slot.StatusAvailable,
		Count:     count,
		Active:    true,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func (f *fixture) slotCount(t *testing.T, date string) int {
	t.Helper()
	s, ok := f.slotRepo.slots[date]
	require.True(t, ok, "slot for %s missing", date)
	return s.Count
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)

	b, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)
	assert.Equal(t, "BKG0001", b.BookingID)
	assert.Equal(t, "alice", b.LoginID)
	assert.Equal(t, StatusConfirmed, b.Status)

	// Creating a booking consumes exactly one unit of the slot's capacity.
	assert.Equal(t, 4, f.slotCount(t, "2025-05-23"))
}

func TestCreateBookingUnknownUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)

	_, err := f.svc.Create(ctx, "mallory", CreateRequest{Date: "2025-05-23"})
	assert.ErrorIs(t, err, user.ErrNotFound)
	assert.Equal(t, 5, f.slotCount(t, "2025-05-23"))
}

func TestCreateBookingDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)

	_, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, 4, f.slotCount(t, "2025-05-23"), "capacity must not move on a rejected create")
}

func TestCreateBookingSameDateDifferentUsers(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)

	_, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)

	b, err := f.svc.Create(ctx, "bob", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)
	assert.Equal(t, "BKG0002", b.BookingID)
	assert.Equal(t, 3, f.slotCount(t, "2025-05-23"))
}

func TestCreateBookingNoSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-06-01"})
	assert.ErrorIs(t, err, slot.ErrNotFound)
}

func TestGetBookingScopedByLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)

	b, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)

	got, err := f.svc.GetByID(ctx, "alice", b.BookingID)
	require.NoError(t, err)
	assert.Equal(t, b.BookingID, got.BookingID)

	// Another user's lookup of the same identifier reads as not-found.
	_, err = f.svc.GetByID(ctx, "bob", b.BookingID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListBookingsScopedByLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)
	f.seedSlot("2025-05-24", 5)

	_, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-24"})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, "bob", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)

	aliceBookings, err := f.svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, aliceBookings, 2)

	bobBookings, err := f.svc.List(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, bobBookings, 1)
}

func TestUpdateBookingDateChange(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)
	f.seedSlot("2025-05-24", 3)

	b, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)

	newDate := "2025-05-24"
	changed, err := f.svc.Update(ctx, "alice", b.BookingID, UpdateRequest{Date: &newDate})
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := f.svc.GetByID(ctx, "alice", b.BookingID)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-24", got.Date)

	// Capacity is deliberately not re-adjusted on a date change: the old
	// slot keeps its reservation and the new one is never reserved.
	assert.Equal(t, 4, f.slotCount(t, "2025-05-23"))
	assert.Equal(t, 3, f.slotCount(t, "2025-05-24"))
}

func TestUpdateBookingDateWithoutSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)

	b, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)

	newDate := "2025-07-01"
	_, err = f.svc.Update(ctx, "alice", b.BookingID, UpdateRequest{Date: &newDate})
	assert.ErrorIs(t, err, slot.ErrNotFound)
}

func TestUpdateBookingNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	status := string(StatusCancelled)
	_, err := f.svc.Update(ctx, "alice", "BKG0001", UpdateRequest{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBookingNoChange(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)

	b, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)

	changed, err := f.svc.Update(ctx, "alice", b.BookingID, UpdateRequest{})
	require.NoError(t, err)
	assert.False(t, changed)

	status := string(StatusConfirmed)
	changed, err = f.svc.Update(ctx, "alice", b.BookingID, UpdateRequest{Status: &status})
	require.NoError(t, err)
	assert.False(t, changed, "writing the stored status back is not a change")
}

func TestPatchBookingScopedByLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)

	b, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)

	// A patch attempt by a different user must not touch alice's booking.
	status := string(StatusCancelled)
	_, err = f.svc.Patch(ctx, "bob", b.BookingID, UpdateRequest{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := f.svc.GetByID(ctx, "alice", b.BookingID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got.Status)
}

func TestDeleteBookingRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)

	b, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)
	require.Equal(t, 4, f.slotCount(t, "2025-05-23"))

	require.NoError(t, f.svc.Delete(ctx, "alice", b.BookingID))

	// Deleting the booking returns the reserved unit.
	assert.Equal(t, 5, f.slotCount(t, "2025-05-23"))

	_, err = f.svc.GetByID(ctx, "alice", b.BookingID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBookingSlotGone(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)

	b, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)

	// Slot removed in the interim: deletion still succeeds, no release.
	delete(f.slotRepo.slots, "2025-05-23")

	require.NoError(t, f.svc.Delete(ctx, "alice", b.BookingID))
	_, err = f.svc.GetByID(ctx, "alice", b.BookingID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBookingScopedByLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)

	b, err := f.svc.Create(ctx, "alice", CreateRequest{Date: "2025-05-23"})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, "bob", b.BookingID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.GetByID(ctx, "alice", b.BookingID)
	assert.NoError(t, err, "booking must survive a cross-user delete attempt")
}

func TestBookingIdentifierSequence(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedSlot("2025-05-23", 5)
	f.seedSlot("2025-05-24", 5)
	f.seedSlot("2025-05-25", 5)

	var ids []string
	for _, date := range []string{"2025-05-23", "2025-05-24", "2025-05-25"} {
		b, err := f.svc.Create(ctx, "alice", CreateRequest{Date: date})
		require.NoError(t, err)
		ids = append(ids, b.BookingID)
	}
	assert.Equal(t, []string{"BKG0001", "BKG0002", "BKG0003"}, ids)
}
