package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// LatestIDFunc returns the identifier of the most recently created record
// of an entity type, or an empty string when no record exists yet.
type LatestIDFunc func(ctx context.Context) (string, error)

// Allocator derives the next sequential human-readable identifier for one
// entity type, e.g. BKG0001 -> BKG0002. Allocation is read-only: the caller
// persists the identifier together with the new record.
//
// Allocation reads the latest record without locking, so concurrent
// creations can race to the same identifier. That matches the storage
// model, which offers no cross-document transactions.
type Allocator struct {
	prefix string
	latest LatestIDFunc
}

// NewAllocator creates an Allocator for the given three-letter prefix.
func NewAllocator(prefix string, latest LatestIDFunc) *Allocator {
	return &Allocator{prefix: prefix, latest: latest}
}

// Next returns the next identifier in the sequence. When no record exists,
// or the latest identifier does not carry the expected prefix or a numeric
// suffix, the sequence restarts at <prefix>0001.
func (a *Allocator) Next(ctx context.Context) (string, error) {
	latest, err := a.latest(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch latest %s identifier: %w", a.prefix, err)
	}
	return NextAfter(a.prefix, latest), nil
}

// NextAfter computes the identifier following latest for the given prefix.
// The numeric suffix is left-padded to four digits; beyond 9999 the width
// simply grows.
func NextAfter(prefix, latest string) string {
	if !strings.HasPrefix(latest, prefix) {
		return prefix + "0001"
	}
	n, err := strconv.Atoi(latest[len(prefix):])
	if err != nil {
		return prefix + "0001"
	}
	return fmt.Sprintf("%s%04d", prefix, n+1)
}
