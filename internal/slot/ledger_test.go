package slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSlot(repo *memRepo, date string, count int) {
	repo.slots = append(repo.slots, &Slot{
		SlotID:    "SLT0001",
		Date:      date,
		Status:    StatusAvailable,
		Count:     count,
		Active:    true,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
}

func TestLedgerReserve(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	seedSlot(repo, "2025-05-23", 5)
	ledger := NewLedger(repo)

	require.NoError(t, ledger.Reserve(ctx, "2025-05-23"))

	s, err := repo.GetByDate(ctx, "2025-05-23")
	require.NoError(t, err)
	assert.Equal(t, 4, s.Count)
}

func TestLedgerReserveUnknownDate(t *testing.T) {
	ledger := NewLedger(&memRepo{})
	err := ledger.Reserve(context.Background(), "2025-05-23")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLedgerReserveBelowZero(t *testing.T) {
	// No capacity floor: the counter may go negative.
	ctx := context.Background()
	repo := &memRepo{}
	seedSlot(repo, "2025-05-23", 0)
	ledger := NewLedger(repo)

	require.NoError(t, ledger.Reserve(ctx, "2025-05-23"))

	s, err := repo.GetByDate(ctx, "2025-05-23")
	require.NoError(t, err)
	assert.Equal(t, -1, s.Count)
}

func TestLedgerRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	seedSlot(repo, "2025-05-23", 5)
	ledger := NewLedger(repo)

	require.NoError(t, ledger.Reserve(ctx, "2025-05-23"))
	require.NoError(t, ledger.Release(ctx, "2025-05-23"))

	s, err := repo.GetByDate(ctx, "2025-05-23")
	require.NoError(t, err)
	assert.Equal(t, 5, s.Count)
}

func TestLedgerReleaseAfterSlotGone(t *testing.T) {
	// Releasing a deleted slot's date is a silent no-op.
	ledger := NewLedger(&memRepo{})
	assert.NoError(t, ledger.Release(context.Background(), "2025-05-23"))
}
