//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL      = "/bookings"
	ownerBookingsURL = "/bookings/owner"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// =============================================================================
// TestCreateAndApprove - booking lifecycle over the wire
// =============================================================================

func (s *BookingSuite) TestCreateAndApprove() {
	s.Run("Normal case: booking is created WAITING and approved by the owner", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
		end := start.Add(24 * time.Hour)

		reqBody := request.CreateBookingRequest{ItemID: itemID, Start: start, End: end}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bookerID)

		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotZero(t, created.ID)

		expected := &response.BookingResponse{
			ID:     created.ID,
			Status: "WAITING",
			Item:   response.ItemRefResponse{ID: itemID, Name: "Drill"},
			Booker: response.UserRefResponse{ID: bookerID, Name: "booker"},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "Start", "End"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("booking response mismatch (-want +got):\n%s", diff)
		}
		require.True(t, created.Start.Equal(start))
		require.True(t, created.End.Equal(end))

		// Owner approves.
		approveURL := fmt.Sprintf("%s/%d?approved=true", bookingsURL, created.ID)
		aw := httptest.PerformRequest(t, s.Router, http.MethodPatch, approveURL, nil, ownerID)

		var approved response.BookingResponse
		httptest.AssertSuccessResponse(t, aw, http.StatusOK, &approved)
		require.Equal(t, "APPROVED", approved.Status)

		// A decided booking refuses any further decision.
		rw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%d?approved=false", bookingsURL, created.ID), nil, ownerID)
		httptest.AssertErrorResponse(t, rw, http.StatusBadRequest, "already been decided")
	})

	s.Run("Error case: non-owner cannot see the booking to decide it", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner2@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker2@example.com")
		strangerID := dbtest.CreateTestUser(t, s.DB, "stranger", "stranger2@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Saw", true)

		now := time.Now()
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "WAITING",
			now.Add(time.Hour), now.Add(25*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%d?approved=true", bookingsURL, bookingID), nil, strangerID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})

	s.Run("Error case: owner booking own item reads as not found", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner3@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Ladder", true)

		start := time.Now().Add(time.Hour)
		reqBody := request.CreateBookingRequest{ItemID: itemID, Start: start, End: start.Add(time.Hour)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, ownerID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

// =============================================================================
// TestListBookings - temporal buckets and paging over the wire
// =============================================================================

// seedBuckets inserts one booking per temporal bucket for the booker and
// returns their ids keyed by bucket name.
func (s *BookingSuite) seedBuckets(t *testing.T, itemID, bookerID int64) map[string]int64 {
	t.Helper()
	now := time.Now()
	return map[string]int64{
		"past": dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "APPROVED",
			now.Add(-48*time.Hour), now.Add(-24*time.Hour)),
		"current": dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "APPROVED",
			now.Add(-time.Hour), now.Add(time.Hour)),
		"future": dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "WAITING",
			now.Add(24*time.Hour), now.Add(48*time.Hour)),
		"rejected": dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "REJECTED",
			now.Add(72*time.Hour), now.Add(96*time.Hour)),
	}
}

func (s *BookingSuite) listIDs(t *testing.T, url string, sharerID int64) []int64 {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, sharerID)
	var items []response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &items)
	ids := make([]int64, len(items))
	for i, b := range items {
		ids[i] = b.ID
	}
	return ids
}

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: every filter selects its bucket and ALL contains each", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Tent", true)
		ids := s.seedBuckets(t, itemID, bookerID)

		all := s.listIDs(t, bookingsURL+"?state=ALL&size=50", bookerID)
		require.Len(t, all, 4)

		cases := map[string][]int64{
			"CURRENT":  {ids["current"]},
			"PAST":     {ids["past"]},
			"WAITING":  {ids["future"]},
			"REJECTED": {ids["rejected"]},
			"FUTURE":   {ids["rejected"], ids["future"]}, // start DESC
		}
		for state, want := range cases {
			got := s.listIDs(t, bookingsURL+"?state="+state+"&size=50", bookerID)
			require.Equal(t, want, got, "state %s", state)
			require.Subset(t, all, got, "ALL must contain the %s bucket", state)
		}

		// CURRENT, PAST and FUTURE partition the seeded set.
		var dated []int64
		for _, state := range []string{"CURRENT", "PAST", "FUTURE"} {
			dated = append(dated, s.listIDs(t, bookingsURL+"?state="+state+"&size=50", bookerID)...)
		}
		require.ElementsMatch(t, all, dated)
	})

	s.Run("Normal case: owner sees the same bookings through the owner listing", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Tent", true)
		ids := s.seedBuckets(t, itemID, bookerID)

		got := s.listIDs(t, ownerBookingsURL+"?state=WAITING&size=50", ownerID)
		require.Equal(t, []int64{ids["future"]}, got)

		// The booker owns no items, so the owner listing is empty for them.
		require.Empty(t, s.listIDs(t, ownerBookingsURL+"?state=ALL&size=50", bookerID))
	})

	s.Run("Normal case: offsets inside one block address the same page", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Tent", true)

		now := time.Now()
		for i := range 6 {
			dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "WAITING",
				now.Add(time.Duration(i+1)*24*time.Hour),
				now.Add(time.Duration(i+1)*24*time.Hour+time.Hour))
		}

		page2 := s.listIDs(t, bookingsURL+"?from=2&size=2", bookerID)
		page3 := s.listIDs(t, bookingsURL+"?from=3&size=2", bookerID)
		require.Len(t, page2, 2)
		require.Equal(t, page2, page3, "from=2 and from=3 fall in the same block at size=2")

		firstPage := s.listIDs(t, bookingsURL+"?from=0&size=2", bookerID)
		require.Len(t, firstPage, 2)
		require.NotEqual(t, firstPage, page2)
	})

	s.Run("Error case: unknown caller cannot list", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, 999)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User not found")
	})
}
