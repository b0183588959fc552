// README: Booking resolver; matches requests to schedules and manages bookings.
package booking

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/GroupB-499/RidePSUBackend/internal/modules/schedule"
	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrNoMatchingSchedule = errors.New("no matching schedule")
	ErrNoBookings         = errors.New("no bookings found for this user")
)

// ScheduleSource is the slice of the schedule store the resolver needs.
type ScheduleSource interface {
	Get(ctx context.Context, id types.ID) (*schedule.Schedule, error)
	ListByTime(ctx context.Context, hm string) ([]schedule.Schedule, error)
}

type Service struct {
	store     Store
	schedules ScheduleSource
}

func NewService(store Store, schedules ScheduleSource) *Service {
	return &Service{store: store, schedules: schedules}
}

type CreateCommand struct {
	Pickup        string
	Dropoff       string
	TransportType string
	Date          string
	Time          string
	UserID        types.ID
}

// Create resolves the request to a schedule matching time, transport type and
// pickup point, then records a booking against it. When several schedules
// match, the lowest schedule id wins so resolution is deterministic.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Booking, error) {
	if cmd.Pickup == "" || cmd.Dropoff == "" || cmd.TransportType == "" || cmd.Date == "" || cmd.Time == "" || cmd.UserID == "" {
		return nil, ErrMissingFields
	}
	sch, err := s.resolveSchedule(ctx, cmd.Time, cmd.TransportType, cmd.Pickup)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		BookingID:  types.ID(uuid.NewString()),
		Date:       cmd.Date,
		UserID:     cmd.UserID,
		ScheduleID: sch.ID,
		Pickup:     cmd.Pickup,
		Dropoff:    cmd.Dropoff,
	}
	if err := s.store.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Count returns how many bookings exist for the schedule resolved from
// (pickup, time, transportType) on the given date. Used for capacity display;
// nothing enforces a cap.
func (s *Service) Count(ctx context.Context, pickup, hm, transportType, date string) (int, error) {
	if pickup == "" || hm == "" || transportType == "" || date == "" {
		return 0, ErrMissingFields
	}
	sch, err := s.resolveSchedule(ctx, hm, transportType, pickup)
	if err != nil {
		return 0, err
	}
	return s.store.CountByScheduleAndDate(ctx, sch.ID, date)
}

// ListForUser joins each booking to its schedule and returns the flattened
// view. Bookings whose schedule has since been deleted are skipped rather
// than failing the whole listing.
func (s *Service) ListForUser(ctx context.Context, userID types.ID) ([]View, error) {
	bookings, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrNoBookings
	}
	var views []View
	for _, b := range bookings {
		sch, err := s.schedules.Get(ctx, b.ScheduleID)
		if errors.Is(err, schedule.ErrNotFound) {
			continue // dangling weak reference
		}
		if err != nil {
			return nil, err
		}
		views = append(views, View{
			BookingID:     b.BookingID,
			ScheduleID:    b.ScheduleID,
			Date:          b.Date,
			Time:          sch.Time,
			Pickup:        b.Pickup,
			Dropoff:       b.Dropoff,
			TransportType: sch.TransportType,
			DelayTime:     b.DelayTime,
		})
	}
	if len(views) == 0 {
		return nil, ErrNoBookings
	}
	return views, nil
}

// Delete removes a booking by id. Deleting an absent booking succeeds.
func (s *Service) Delete(ctx context.Context, id types.ID) error {
	if id == "" {
		return ErrMissingFields
	}
	return s.store.Delete(ctx, id)
}

// Delay bulk-sets delayTime on every booking referencing scheduleID. Zero
// matched bookings is still a success.
func (s *Service) Delay(ctx context.Context, scheduleID types.ID, minutes int) (int, error) {
	if scheduleID == "" || minutes == 0 {
		return 0, ErrMissingFields
	}
	return s.store.SetDelay(ctx, scheduleID, minutes)
}

func (s *Service) resolveSchedule(ctx context.Context, hm, transportType, pickup string) (*schedule.Schedule, error) {
	candidates, err := s.schedules.ListByTime(ctx, hm)
	if err != nil {
		return nil, err
	}
	transportType = strings.ToLower(transportType)
	var matched []schedule.Schedule
	for _, c := range candidates {
		if c.TransportType == transportType && c.HasPickup(pickup) {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		return nil, ErrNoMatchingSchedule
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return &matched[0], nil
}
