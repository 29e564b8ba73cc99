//go:build e2e

package booking_test

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"testing"
	"time"

	"consult-booking/internal/handler/dto/response"
	"consult-booking/internal/handler/httperr"
	"consult-booking/tests/common/builder"
	"consult-booking/tests/common/dbtest"
	"consult-booking/tests/common/httptest"
	"consult-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

// The seeded roster has three bookable staff (two consultants, one brand
// strategist); the operations member does not count toward capacity.
const seededCapacity = 3

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// futureSlot returns a bookable slot instant several days out, at the given
// hour in the business timezone.
func (s *BookingSuite) futureSlot(daysAhead, hour int) time.Time {
	loc, err := time.LoadLocation(s.Config.Booking.TimeZone)
	require.NoError(s.T(), err)

	day := time.Now().In(loc).AddDate(0, 0, daysAhead)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc)
}

type bookingAttempt struct {
	status int
	body   response.CreateBookingResponse
	code   string
}

func (s *BookingSuite) attemptBooking(email string, slot time.Time) bookingAttempt {
	t := s.T()

	reqBody := builder.NewBookingBuilder().
		WithEmail(email).
		WithBookingDatetime(slot).
		BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)

	var raw struct {
		Success   bool   `json:"success"`
		BookingID string `json:"booking_id"`
		Message   string `json:"message"`
		Error     string `json:"error"`
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &raw))

	return bookingAttempt{
		status: w.Code,
		body:   response.CreateBookingResponse{Success: raw.Success, Message: raw.Message},
		code:   raw.ErrorCode,
	}
}

// =============================================================================
// TestCreateBooking - Reservation API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking succeeds and is readable afterwards", func() {
		t := s.T()
		slot := s.futureSlot(7, 10)

		reqBody := builder.NewBookingBuilder().
			WithEmail("ayesha@example.com").
			WithBookingDatetime(slot).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
		require.Equal(t, http.StatusOK, w.Code, "Should create booking successfully")

		var created response.CreateBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.True(t, created.Success)
		require.NotEmpty(t, created.BookingID)
		require.NotEmpty(t, created.Message)

		detailURL := bookingsURL + "/" + created.BookingID.String()
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil)
		require.Equal(t, http.StatusOK, dw.Code)

		var actual response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &actual))

		expected := &response.BookingResponse{
			FullName:         "Ayesha Khan",
			Email:            "ayesha@example.com",
			WhatsappNumber:   "+923001234567",
			Categories:       []string{"perfume", "skincare"},
			BusinessTimeline: "3-6 months",
			InvestmentReady:  true,
			SeenElyscents:    true,
			Status:           "confirmed",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "BookingDatetime", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
		require.True(t, slot.Equal(actual.BookingDatetime), "stored slot instant should match the request")
	})

	s.Run("Error case: past slot is rejected without writing anything", func() {
		t := s.T()
		loc, err := time.LoadLocation(s.Config.Booking.TimeZone)
		require.NoError(t, err)
		pastSlot := time.Now().In(loc).Add(-24 * time.Hour)

		attempt := s.attemptBooking("late@example.com", pastSlot)
		require.Equal(t, http.StatusBadRequest, attempt.status)
		require.Equal(t, httperr.CodeValidationError, attempt.code)

		var count int
		err = s.DB.QueryRow(s.T().Context(), "SELECT COUNT(*) FROM bookings").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	s.Run("Error case: holiday slot is rejected", func() {
		t := s.T()
		slot := s.futureSlot(7, 11)
		dbtest.CreateTestHoliday(t, s.DB, slot, "studio closed")

		attempt := s.attemptBooking("holiday@example.com", slot)
		require.Equal(t, http.StatusBadRequest, attempt.status)
		require.Equal(t, httperr.CodeValidationError, attempt.code)
	})

	s.Run("Error case: duplicate booking for the same contact and slot", func() {
		t := s.T()
		slot := s.futureSlot(7, 12)

		first := s.attemptBooking("repeat@example.com", slot)
		require.Equal(t, http.StatusOK, first.status)

		second := s.attemptBooking("repeat@example.com", slot)
		require.Equal(t, http.StatusBadRequest, second.status)
		require.Equal(t, httperr.CodeDuplicateBooking, second.code)

		// Case-insensitive: a recased email is still the same contact.
		third := s.attemptBooking("Repeat@Example.COM", slot)
		require.Equal(t, http.StatusBadRequest, third.status)
		require.Equal(t, httperr.CodeDuplicateBooking, third.code)

		var count int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM bookings WHERE booking_datetime = $1", slot).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("Error case: slot at capacity rejects further bookings", func() {
		t := s.T()
		slot := s.futureSlot(7, 14)

		for i := range seededCapacity {
			attempt := s.attemptBooking(fmt.Sprintf("filler%d@example.com", i), slot)
			require.Equal(t, http.StatusOK, attempt.status)
		}

		overflow := s.attemptBooking("overflow@example.com", slot)
		require.Equal(t, http.StatusBadRequest, overflow.status)
		require.Equal(t, httperr.CodeCapacityExceeded, overflow.code)
		require.False(t, overflow.body.Success)
	})
}

// =============================================================================
// TestConcurrentReservation - atomicity under concurrent load
// =============================================================================

func (s *BookingSuite) TestConcurrentReservation() {
	s.Run("Concurrency: capacity+k parallel requests yield exactly capacity confirmations", func() {
		t := s.T()
		slot := s.futureSlot(8, 10)

		// 3 starting positions with 2 extra contenders
		total := seededCapacity + 2
		results := make([]bookingAttempt, total)

		var wg sync.WaitGroup
		for i := range total {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = s.attemptBooking(fmt.Sprintf("racer%d@example.com", i), slot)
			}(i)
		}
		wg.Wait()

		var confirmed, capacityRejected int
		for _, r := range results {
			switch {
			case r.status == http.StatusOK:
				confirmed++
			case r.code == httperr.CodeCapacityExceeded:
				capacityRejected++
			default:
				t.Errorf("unexpected outcome: status=%d code=%s", r.status, r.code)
			}
		}
		require.Equal(t, seededCapacity, confirmed, "exactly capacity requests must win")
		require.Equal(t, total-seededCapacity, capacityRejected)

		var stored int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM bookings WHERE booking_datetime = $1 AND status = 'confirmed'", slot).Scan(&stored)
		require.NoError(t, err)
		require.Equal(t, seededCapacity, stored, "storage must never exceed capacity")
	})

	s.Run("Concurrency: randomized contention never oversells", func() {
		t := s.T()
		slot := s.futureSlot(8, 15)

		extra := rand.Intn(4) + 1
		total := seededCapacity + extra
		results := make([]bookingAttempt, total)

		var wg sync.WaitGroup
		for i := range total {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = s.attemptBooking(fmt.Sprintf("crowd%d@example.com", i), slot)
			}(i)
		}
		wg.Wait()

		var confirmed int
		for _, r := range results {
			if r.status == http.StatusOK {
				confirmed++
			}
		}
		require.Equal(t, seededCapacity, confirmed,
			"with %d contenders exactly %d must succeed", total, seededCapacity)
	})

	s.Run("Concurrency: same contact racing itself gets exactly one booking", func() {
		t := s.T()
		slot := s.futureSlot(8, 16)

		const attempts = 4
		results := make([]bookingAttempt, attempts)

		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = s.attemptBooking("doubletap@example.com", slot)
			}(i)
		}
		wg.Wait()

		var confirmed, duplicateRejected int
		for _, r := range results {
			switch {
			case r.status == http.StatusOK:
				confirmed++
			case r.code == httperr.CodeDuplicateBooking:
				duplicateRejected++
			default:
				t.Errorf("unexpected outcome: status=%d code=%s", r.status, r.code)
			}
		}
		require.Equal(t, 1, confirmed)
		require.Equal(t, attempts-1, duplicateRejected)
	})
}
