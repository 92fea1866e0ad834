package sequence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextAfter(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		latest string
		want   string
	}{
		{"empty collection starts sequence", "BKG", "", "BKG0001"},
		{"increments numeric suffix", "BKG", "BKG0001", "BKG0002"},
		{"pads with leading zeros", "SLT", "SLT0009", "SLT0010"},
		{"carries across hundreds", "SLT", "SLT0099", "SLT0100"},
		{"foreign prefix restarts", "BKG", "SLT0042", "BKG0001"},
		{"unparsable suffix restarts", "BKG", "BKGabcd", "BKG0001"},
		{"width grows past 9999", "BKG", "BKG9999", "BKG10000"},
		{"keeps growing width", "BKG", "BKG10000", "BKG10001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextAfter(tt.prefix, tt.latest))
		})
	}
}

func TestAllocatorNext(t *testing.T) {
	latest := ""
	alloc := NewAllocator("BKG", func(ctx context.Context) (string, error) {
		return latest, nil
	})

	id, err := alloc.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BKG0001", id)

	latest = id
	id, err = alloc.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BKG0002", id)
}

func TestAllocatorNextPropagatesStoreError(t *testing.T) {
	storeErr := errors.New("store down")
	alloc := NewAllocator("SLT", func(ctx context.Context) (string, error) {
		return "", storeErr
	})

	_, err := alloc.Next(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
