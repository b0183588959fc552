// README: Ride-state resolver; finds the active-or-next ride for a user or driver.
package ride

import (
	"context"
	"errors"
	"time"

	"github.com/GroupB-499/RidePSUBackend/internal/modules/booking"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/schedule"
	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

var ErrNoRide = errors.New("no current or upcoming ride")

const (
	StatusCurrent  = "current"
	StatusUpcoming = "upcoming"
	StatusRecent   = "recent" // driver fallback: most recent past run
)

// Ride is the resolved answer: exactly one booking/schedule pair with a state.
type Ride struct {
	Status     string            `json:"status"`
	BookingID  types.ID          `json:"bookingId,omitempty"`
	ScheduleID types.ID          `json:"scheduleId"`
	Date       string            `json:"date,omitempty"`
	Time       string            `json:"time"`
	Schedule   schedule.Schedule `json:"schedule"`
	StartsAt   time.Time         `json:"startsAt,omitempty"`
}

// BookingSource is the slice of the booking store the resolver reads.
type BookingSource interface {
	ListByUserFromDate(ctx context.Context, userID types.ID, from string) ([]booking.Booking, error)
}

// ScheduleSource is the slice of the schedule store the resolver reads.
type ScheduleSource interface {
	Get(ctx context.Context, id types.ID) (*schedule.Schedule, error)
	ListByDriver(ctx context.Context, driverID types.ID) ([]schedule.Schedule, error)
}

type Resolver struct {
	bookings  BookingSource
	schedules ScheduleSource
	loc       *time.Location
	grace     time.Duration
}

func NewResolver(bookings BookingSource, schedules ScheduleSource, loc *time.Location, grace time.Duration) *Resolver {
	return &Resolver{bookings: bookings, schedules: schedules, loc: loc, grace: grace}
}

// NextForPassenger returns the passenger's ride in progress, else the soonest
// future booking, else ErrNoRide. A booking is in progress while now lies in
// [start, start+grace). Bookings whose schedule was deleted are skipped.
func (r *Resolver) NextForPassenger(ctx context.Context, userID types.ID, now time.Time) (*Ride, error) {
	now = now.In(r.loc)
	today := now.Format("2006-01-02")

	bookings, err := r.bookings.ListByUserFromDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	var next *Ride
	for _, b := range bookings {
		sch, err := r.schedules.Get(ctx, b.ScheduleID)
		if errors.Is(err, schedule.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		start, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+sch.Time, r.loc)
		if err != nil {
			continue
		}
		if !now.Before(start) && now.Before(start.Add(r.grace)) {
			return &Ride{
				Status:     StatusCurrent,
				BookingID:  b.BookingID,
				ScheduleID: sch.ID,
				Date:       b.Date,
				Time:       sch.Time,
				Schedule:   *sch,
				StartsAt:   start,
			}, nil
		}
		if start.After(now) && (next == nil || start.Before(next.StartsAt)) {
			next = &Ride{
				Status:     StatusUpcoming,
				BookingID:  b.BookingID,
				ScheduleID: sch.ID,
				Date:       b.Date,
				Time:       sch.Time,
				Schedule:   *sch,
				StartsAt:   start,
			}
		}
	}
	if next == nil {
		return nil, ErrNoRide
	}
	return next, nil
}

// NextForDriver resolves over the driver's schedules using time-of-day only.
// If no run is currently inside its grace window, the most recent past run
// today is returned, not the soonest future one. The asymmetry with the
// passenger variant is deliberate: a driver coming back to the app mid-shift
// is shown the run they just finished.
func (r *Resolver) NextForDriver(ctx context.Context, driverID types.ID, now time.Time) (*Ride, error) {
	schedules, err := r.schedules.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	nowMin := minutesOfDay(now.In(r.loc))
	graceMin := int(r.grace / time.Minute)

	var recent *schedule.Schedule
	recentMin := -1
	for i := range schedules {
		sch := &schedules[i]
		h, m, ok := schedule.ParseHM(sch.Time)
		if !ok {
			continue
		}
		startMin := h*60 + m
		if nowMin >= startMin && nowMin < startMin+graceMin {
			return &Ride{
				Status:     StatusCurrent,
				ScheduleID: sch.ID,
				Time:       sch.Time,
				Schedule:   *sch,
			}, nil
		}
		if startMin <= nowMin && startMin > recentMin {
			recentMin = startMin
			recent = sch
		}
	}
	if recent == nil {
		return nil, ErrNoRide
	}
	return &Ride{
		Status:     StatusRecent,
		ScheduleID: recent.ID,
		Time:       recent.Time,
		Schedule:   *recent,
	}, nil
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
