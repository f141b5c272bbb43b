//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b, err := booking.NewBooking(10, 20, baseTime, baseTime.Add(24*time.Hour))
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.Equal(t, booking.StatusWaiting, b.Status())
		assert.Equal(t, int64(10), b.ItemID())
		assert.Equal(t, int64(20), b.BookerID())
	})

	t.Run("period validation", func(t *testing.T) {
		cases := []struct {
			name  string
			start time.Time
			end   time.Time
			errIs error
		}{
			{
				name:  "start after end",
				start: baseTime.Add(time.Hour),
				end:   baseTime,
				errIs: booking.ErrInvalidPeriod,
			},
			{
				name:  "start equals end",
				start: baseTime,
				end:   baseTime,
				errIs: booking.ErrInvalidPeriod,
			},
			{
				name:  "one second apart",
				start: baseTime,
				end:   baseTime.Add(time.Second),
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.NewBooking(10, 20, tc.start, tc.end)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestBookingDecide(t *testing.T) {
	newWaiting := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := booking.NewBooking(10, 20, baseTime, baseTime.Add(time.Hour))
		require.NoError(t, err)
		return b
	}

	t.Run("approve moves to APPROVED", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject moves to REJECTED", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("approved is terminal", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(true))

		assert.ErrorIs(t, b.Decide(true), booking.ErrAlreadyDecided)
		assert.ErrorIs(t, b.Decide(false), booking.ErrAlreadyDecided)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(false))

		assert.ErrorIs(t, b.Decide(true), booking.ErrAlreadyDecided)
		assert.Equal(t, booking.StatusRejected, b.Status())
	})
}

func TestParseStateFilter(t *testing.T) {
	valid := []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			state, err := booking.ParseStateFilter(s)
			require.NoError(t, err)
			assert.Equal(t, booking.StateFilter(s), state)
		})
	}

	invalid := []string{"", "all", "Current", "APPROVED", "UNKNOWN"}
	for _, s := range invalid {
		t.Run("rejects "+s, func(t *testing.T) {
			_, err := booking.ParseStateFilter(s)
			assert.ErrorIs(t, err, booking.ErrUnknownState)
		})
	}
}
