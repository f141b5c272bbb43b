//go:build unit

package paging_test

import (
	"testing"

	"shareit/internal/pkg/paging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name    string
		from    int
		size    int
		wantErr bool
	}{
		{name: "defaults", from: 0, size: 10},
		{name: "mid block", from: 7, size: 3},
		{name: "negative from", from: -1, size: 10, wantErr: true},
		{name: "zero size", from: 0, size: 0, wantErr: true},
		{name: "negative size", from: 0, size: -5, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := paging.New(tc.from, tc.size)
			if tc.wantErr {
				assert.ErrorIs(t, err, paging.ErrInvalidPage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBlockAlignment(t *testing.T) {
	// Offsets inside the same block resolve to that block's first element.
	t.Run("offsets 2 and 3 share a block at size 2", func(t *testing.T) {
		a, err := paging.New(2, 2)
		require.NoError(t, err)
		b, err := paging.New(3, 2)
		require.NoError(t, err)

		assert.Equal(t, 1, a.Index())
		assert.Equal(t, 1, b.Index())
		assert.Equal(t, a.Offset(), b.Offset())
		assert.Equal(t, 2, a.Offset())
	})

	t.Run("from zero is the first block", func(t *testing.T) {
		p, err := paging.New(0, 10)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Index())
		assert.Equal(t, 0, p.Offset())
		assert.Equal(t, 10, p.Limit())
	})

	t.Run("exact block boundary", func(t *testing.T) {
		p, err := paging.New(20, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, p.Index())
		assert.Equal(t, 20, p.Offset())
	})
}
