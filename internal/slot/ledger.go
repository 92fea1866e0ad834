package slot

import (
	"context"
	"errors"
	"time"
)

// Ledger keeps a slot's remaining-capacity counter consistent with the set
// of bookings against its date. It performs a full read-modify-write of the
// slot document rather than an atomic increment, so concurrent
// reserve/release on the same date can race.
type Ledger struct {
	repo Repository
}

// NewLedger creates a Ledger over the given slot repository.
func NewLedger(repo Repository) *Ledger {
	return &Ledger{repo: repo}
}

// Reserve consumes one unit of the slot for the given date. Returns
// ErrNotFound when no slot exists for the date. The counter is not floored
// at zero: decrementing below zero is permitted.
func (l *Ledger) Reserve(ctx context.Context, date string) error {
	s, err := l.repo.GetByDate(ctx, date)
	if err != nil {
		return err
	}
	s.Count--
	s.UpdatedAt = time.Now().UTC()
	return l.repo.ReplaceByDate(ctx, date, s)
}

// Release returns one unit of capacity to the slot for the given date.
// When the slot has been deleted in the interim this is a silent no-op.
func (l *Ledger) Release(ctx context.Context, date string) error {
	s, err := l.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	s.Count++
	s.UpdatedAt = time.Now().UTC()
	return l.repo.ReplaceByDate(ctx, date, s)
}
