//go:build e2e

package booking_test

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra/repository"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/paging"
	"shareit/internal/usecase"
	"shareit/tests/common/dbtest"

	"github.com/stretchr/testify/require"
)

// cores builds the booking and item usecases directly on the test pool with
// a controllable clock, bypassing the HTTP layer.
func (s *BookingSuite) cores(clk clock.Clock, cfg config.BookingConfig) (usecase.BookingUsecase, usecase.ItemUsecase) {
	bookings := repository.NewBookingRepository(s.DB)
	items := repository.NewItemRepository(s.DB)
	users := repository.NewUserRepository(s.DB)
	comments := repository.NewCommentRepository(s.DB)

	bookingUC := usecase.NewBookingUsecase(bookings, items, users, s.DB, clk, cfg)
	itemUC := usecase.NewItemUsecase(items, users, bookings, comments, clk)
	return bookingUC, itemUC
}

// =============================================================================
// TestBookingLifecycle - book, approve, wait out the period, comment
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: comment unlocks only after the approved period ends", func() {
		t := s.T()
		ctx := context.Background()

		fixedNow := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		clk := clock.NewMockClock(fixedNow)
		bookingUC, itemUC := s.cores(clk, config.BookingConfig{})

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		created, err := bookingUC.Create(ctx, bookerID, usecase.CreateBookingParams{
			ItemID: itemID,
			Start:  fixedNow.Add(time.Hour),
			End:    fixedNow.Add(25 * time.Hour),
		})
		require.NoError(t, err)
		require.Equal(t, booking.StatusWaiting, created.Status)

		// Commenting on a WAITING booking is refused.
		_, err = itemUC.CreateComment(ctx, bookerID, itemID, "great drill")
		require.ErrorIs(t, err, usecase.ErrCommentNotAllowed)

		approved, err := bookingUC.Approve(ctx, ownerID, created.ID, true)
		require.NoError(t, err)
		require.Equal(t, booking.StatusApproved, approved.Status)

		// Approved but not yet ended is still not enough.
		_, err = itemUC.CreateComment(ctx, bookerID, itemID, "great drill")
		require.ErrorIs(t, err, usecase.ErrCommentNotAllowed)

		// The terminal state refuses a second decision.
		_, err = bookingUC.Approve(ctx, ownerID, created.ID, false)
		require.ErrorIs(t, err, usecase.ErrAlreadyDecided)

		clk.Add(26 * time.Hour)

		comm, err := itemUC.CreateComment(ctx, bookerID, itemID, "great drill")
		require.NoError(t, err)
		require.Equal(t, "booker", comm.AuthorName)
		require.Equal(t, itemID, comm.ItemID)
	})

	s.Run("Normal case: overlap rejection is a config decision", func() {
		t := s.T()
		ctx := context.Background()

		fixedNow := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		clk := clock.NewMockClock(fixedNow)
		lenientUC, _ := s.cores(clk, config.BookingConfig{})
		strictUC, _ := s.cores(clk, config.BookingConfig{RejectOverlap: true})

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		rivalID := dbtest.CreateTestUser(t, s.DB, "rival", "rival@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Tent", true)

		params := usecase.CreateBookingParams{
			ItemID: itemID,
			Start:  fixedNow.Add(time.Hour),
			End:    fixedNow.Add(25 * time.Hour),
		}
		_, err := lenientUC.Create(ctx, bookerID, params)
		require.NoError(t, err)

		// Default policy lets overlapping requests coexist in WAITING.
		_, err = lenientUC.Create(ctx, rivalID, params)
		require.NoError(t, err)

		_, err = strictUC.Create(ctx, rivalID, params)
		require.ErrorIs(t, err, usecase.ErrBookingOverlap)
	})
}

// =============================================================================
// TestTemporalBucketsAtFixedInstant - classification against a pinned clock
// =============================================================================

func (s *BookingSuite) TestTemporalBucketsAtFixedInstant() {
	s.Run("Normal case: date filters partition and boundaries are exclusive", func() {
		t := s.T()
		ctx := context.Background()

		fixedNow := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		clk := clock.NewMockClock(fixedNow)
		bookingUC, _ := s.cores(clk, config.BookingConfig{})

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Kayak", true)

		pastID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "APPROVED",
			fixedNow.Add(-48*time.Hour), fixedNow.Add(-24*time.Hour))
		currentID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "APPROVED",
			fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour))
		futureID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "WAITING",
			fixedNow.Add(24*time.Hour), fixedNow.Add(48*time.Hour))
		// Ends exactly at the query instant.
		edgeID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "APPROVED",
			fixedNow.Add(-time.Hour), fixedNow)

		page, err := paging.New(0, 50)
		require.NoError(t, err)

		list := func(state booking.StateFilter) []int64 {
			views, err := bookingUC.ListForBooker(ctx, bookerID, state, page)
			require.NoError(t, err)
			ids := make([]int64, len(views))
			for i, v := range views {
				ids[i] = v.ID
			}
			return ids
		}

		all := list(booking.StateAll)
		require.ElementsMatch(t, []int64{pastID, currentID, futureID, edgeID}, all)

		current := list(booking.StateCurrent)
		past := list(booking.StatePast)
		future := list(booking.StateFuture)

		require.Equal(t, []int64{currentID}, current)
		require.Equal(t, []int64{pastID}, past)
		require.Equal(t, []int64{futureID}, future)

		// Both boundaries of CURRENT are exclusive, so a booking ending at
		// the instant itself is in no date bucket while ALL still lists it.
		var dated []int64
		dated = append(dated, current...)
		dated = append(dated, past...)
		dated = append(dated, future...)
		require.NotContains(t, dated, edgeID)
		require.Contains(t, all, edgeID)

		// The three date buckets are disjoint and cover every booking whose
		// period does not touch the instant.
		require.ElementsMatch(t, []int64{pastID, currentID, futureID}, dated)

		// Owner-side listing classifies identically.
		ownerCurrent, err := bookingUC.ListForOwner(ctx, ownerID, booking.StateCurrent, page)
		require.NoError(t, err)
		require.Len(t, ownerCurrent, 1)
		require.Equal(t, currentID, ownerCurrent[0].ID)
	})

	s.Run("Normal case: listings come back start-descending", func() {
		t := s.T()
		ctx := context.Background()

		fixedNow := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		clk := clock.NewMockClock(fixedNow)
		bookingUC, _ := s.cores(clk, config.BookingConfig{})

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Kayak", true)

		for i := range 4 {
			dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "WAITING",
				fixedNow.Add(time.Duration(i+1)*24*time.Hour),
				fixedNow.Add(time.Duration(i+1)*24*time.Hour+time.Hour))
		}

		page, err := paging.New(0, 50)
		require.NoError(t, err)
		views, err := bookingUC.ListForBooker(ctx, bookerID, booking.StateAll, page)
		require.NoError(t, err)
		require.Len(t, views, 4)
		for i := 1; i < len(views); i++ {
			require.True(t, views[i-1].Start.After(views[i].Start),
				"bookings must be ordered by start descending")
		}
	})
}
