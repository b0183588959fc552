// README: Ride-state resolver tests for both passenger and driver variants.
package ride

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GroupB-499/RidePSUBackend/internal/modules/booking"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/schedule"
	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

type fakeBookings struct {
	bookings []booking.Booking
}

func (f *fakeBookings) ListByUserFromDate(_ context.Context, userID types.ID, from string) ([]booking.Booking, error) {
	var out []booking.Booking
	for _, b := range f.bookings {
		if b.UserID == userID && b.Date >= from {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeSchedules struct {
	schedules []schedule.Schedule
}

func (f *fakeSchedules) Get(_ context.Context, id types.ID) (*schedule.Schedule, error) {
	for i := range f.schedules {
		if f.schedules[i].ID == id {
			return &f.schedules[i], nil
		}
	}
	return nil, schedule.ErrNotFound
}

func (f *fakeSchedules) ListByDriver(_ context.Context, driverID types.ID) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	for _, s := range f.schedules {
		if s.DriverID == driverID {
			out = append(out, s)
		}
	}
	return out, nil
}

var riyadh = time.FixedZone("AST", 3*60*60)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, riyadh)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func newTestResolver(bookings []booking.Booking, schedules []schedule.Schedule) *Resolver {
	return NewResolver(&fakeBookings{bookings: bookings}, &fakeSchedules{schedules: schedules}, riyadh, 10*time.Minute)
}

func TestPassengerCurrentRide(t *testing.T) {
	r := newTestResolver(
		[]booking.Booking{{BookingID: "B1", Date: "2024-05-01", UserID: "U1", ScheduleID: "S1"}},
		[]schedule.Schedule{{ID: "S1", Time: "09:00", TransportType: schedule.TransportShuttleBus}},
	)

	// five minutes into the grace window
	got, err := r.NextForPassenger(context.Background(), "U1", at(t, "2024-05-01 09:05"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Status != StatusCurrent || got.BookingID != "B1" {
		t.Errorf("got %+v, want current B1", got)
	}
}

func TestPassengerGraceWindowBounds(t *testing.T) {
	r := newTestResolver(
		[]booking.Booking{{BookingID: "B1", Date: "2024-05-01", UserID: "U1", ScheduleID: "S1"}},
		[]schedule.Schedule{{ID: "S1", Time: "09:00"}},
	)
	ctx := context.Background()

	cases := []struct {
		now        string
		wantStatus string
		wantErr    error
	}{
		{"2024-05-01 09:00", StatusCurrent, nil},  // inclusive start
		{"2024-05-01 09:09", StatusCurrent, nil},  // last minute inside
		{"2024-05-01 09:10", "", ErrNoRide},       // exclusive end
		{"2024-05-01 08:00", StatusUpcoming, nil}, // an hour early
		{"2024-05-01 10:00", "", ErrNoRide},       // an hour late, nothing ahead
	}
	for _, tc := range cases {
		got, err := r.NextForPassenger(ctx, "U1", at(t, tc.now))
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("now=%s: got err %v, want %v", tc.now, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("now=%s: %v", tc.now, err)
			continue
		}
		if got.Status != tc.wantStatus {
			t.Errorf("now=%s: status %s, want %s", tc.now, got.Status, tc.wantStatus)
		}
	}
}

func TestPassengerSoonestFutureWins(t *testing.T) {
	r := newTestResolver(
		[]booking.Booking{
			{BookingID: "B-late", Date: "2024-05-02", UserID: "U1", ScheduleID: "S2"},
			{BookingID: "B-soon", Date: "2024-05-01", UserID: "U1", ScheduleID: "S3"},
			{BookingID: "B-mid", Date: "2024-05-01", UserID: "U1", ScheduleID: "S4"},
		},
		[]schedule.Schedule{
			{ID: "S2", Time: "09:00"},
			{ID: "S3", Time: "14:00"},
			{ID: "S4", Time: "16:00"},
		},
	)

	got, err := r.NextForPassenger(context.Background(), "U1", at(t, "2024-05-01 12:00"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.BookingID != "B-soon" || got.Status != StatusUpcoming {
		t.Errorf("got %+v, want upcoming B-soon", got)
	}
}

func TestPassengerCurrentBeatsFuture(t *testing.T) {
	r := newTestResolver(
		[]booking.Booking{
			{BookingID: "B-now", Date: "2024-05-01", UserID: "U1", ScheduleID: "S1"},
			{BookingID: "B-later", Date: "2024-05-01", UserID: "U1", ScheduleID: "S2"},
		},
		[]schedule.Schedule{
			{ID: "S1", Time: "09:00"},
			{ID: "S2", Time: "09:30"},
		},
	)

	got, err := r.NextForPassenger(context.Background(), "U1", at(t, "2024-05-01 09:03"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.BookingID != "B-now" {
		t.Errorf("got %s, want B-now", got.BookingID)
	}
}

func TestPassengerSkipsDanglingSchedule(t *testing.T) {
	r := newTestResolver(
		[]booking.Booking{
			{BookingID: "B-gone", Date: "2024-05-01", UserID: "U1", ScheduleID: "deleted"},
			{BookingID: "B-ok", Date: "2024-05-01", UserID: "U1", ScheduleID: "S1"},
		},
		[]schedule.Schedule{{ID: "S1", Time: "15:00"}},
	)

	got, err := r.NextForPassenger(context.Background(), "U1", at(t, "2024-05-01 12:00"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.BookingID != "B-ok" {
		t.Errorf("got %s, want B-ok", got.BookingID)
	}
}

func TestDriverCurrentRun(t *testing.T) {
	r := newTestResolver(nil, []schedule.Schedule{
		{ID: "S1", Time: "09:00", DriverID: "D1"},
		{ID: "S2", Time: "11:00", DriverID: "D1"},
	})

	got, err := r.NextForDriver(context.Background(), "D1", at(t, "2024-05-01 09:04"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ScheduleID != "S1" || got.Status != StatusCurrent {
		t.Errorf("got %+v, want current S1", got)
	}
}

func TestDriverFallsBackToMostRecentPast(t *testing.T) {
	// The driver variant intentionally picks the most recent past run, not
	// the soonest future one.
	r := newTestResolver(nil, []schedule.Schedule{
		{ID: "S1", Time: "08:00", DriverID: "D1"},
		{ID: "S2", Time: "09:00", DriverID: "D1"},
		{ID: "S3", Time: "15:00", DriverID: "D1"},
	})

	got, err := r.NextForDriver(context.Background(), "D1", at(t, "2024-05-01 12:00"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ScheduleID != "S2" || got.Status != StatusRecent {
		t.Errorf("got %+v, want recent S2", got)
	}
}

func TestDriverNoPastNoCurrent(t *testing.T) {
	r := newTestResolver(nil, []schedule.Schedule{
		{ID: "S1", Time: "15:00", DriverID: "D1"},
	})

	if _, err := r.NextForDriver(context.Background(), "D1", at(t, "2024-05-01 08:00")); !errors.Is(err, ErrNoRide) {
		t.Fatalf("got %v, want ErrNoRide", err)
	}
	if _, err := r.NextForDriver(context.Background(), "D2", at(t, "2024-05-01 12:00")); !errors.Is(err, ErrNoRide) {
		t.Fatalf("unknown driver: got %v, want ErrNoRide", err)
	}
}
