// README: Notification fan-out; token registry, broadcast push, per-user records.
package notify

import (
	"context"
	"errors"
	"sort"

	"github.com/GroupB-499/RidePSUBackend/internal/modules/booking"
	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

var ErrMissingFields = errors.New("missing required fields")

// Ride-event payloads sent over the live channel.
const (
	EventRideStarted = "ride_started"
	EventRideEnded   = "ride_ended"
	EventRideDelayed = "ride_delayed"
)

var eventMessages = map[string][2]string{
	EventRideStarted: {"Ride Started", "Your ride has begun."},
	EventRideEnded:   {"Ride Ended", "Your ride has been completed."},
	EventRideDelayed: {"Ride Delayed", "Your ride has been delayed."},
}

// BookingSource resolves the users booked on a schedule.
type BookingSource interface {
	ListBySchedule(ctx context.Context, scheduleID types.ID) ([]booking.Booking, error)
}

type Service struct {
	store    Store
	push     Pusher
	bookings BookingSource
}

func NewService(store Store, push Pusher, bookings BookingSource) *Service {
	return &Service{store: store, push: push, bookings: bookings}
}

// RegisterToken merges a device token into the user's registration set.
func (s *Service) RegisterToken(ctx context.Context, userID types.ID, role, token string) error {
	if userID == "" || token == "" {
		return ErrMissingFields
	}
	return s.store.RegisterTokens(ctx, userID, role, []string{token})
}

// Broadcast pushes one payload to every registered token in the system. This
// is a deliberately global capability; callers wanting a scoped send must use
// NotifyUser/NotifySchedule for the record-keeping side.
func (s *Service) Broadcast(ctx context.Context, title, body string) error {
	tokens, err := s.store.AllTokens(ctx)
	if err != nil {
		return err
	}
	return s.push.SendMulticast(ctx, title, body, tokens)
}

// NotifyUser records a notification document for one user.
func (s *Service) NotifyUser(ctx context.Context, userID types.ID, title, body string) error {
	if userID == "" {
		return ErrMissingFields
	}
	return s.store.AddNotification(ctx, &Notification{UserID: userID, Title: title, Body: body})
}

// NotifySchedule records one notification per distinct user booked on the
// schedule (one per user, not one per booking).
func (s *Service) NotifySchedule(ctx context.Context, scheduleID types.ID, title, body string) error {
	if scheduleID == "" {
		return ErrMissingFields
	}
	bookings, err := s.bookings.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	for _, userID := range distinctUsers(bookings) {
		if err := s.store.AddNotification(ctx, &Notification{UserID: userID, Title: title, Body: body}); err != nil {
			return err
		}
	}
	return nil
}

// RideEvent handles a ride lifecycle message from the live channel: broadcast
// the push to all registered tokens, then record notifications for the
// resolved recipients. Either target may be empty; both may be set.
func (s *Service) RideEvent(ctx context.Context, event string, userID, scheduleID types.ID) error {
	msg, ok := eventMessages[event]
	if !ok {
		return ErrMissingFields
	}
	title, body := msg[0], msg[1]
	if err := s.Broadcast(ctx, title, body); err != nil {
		return err
	}
	if scheduleID != "" {
		if err := s.NotifySchedule(ctx, scheduleID, title, body); err != nil {
			return err
		}
	}
	if userID != "" {
		if err := s.NotifyUser(ctx, userID, title, body); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) ListForUser(ctx context.Context, userID types.ID) ([]Notification, error) {
	return s.store.ListNotificationsForUser(ctx, userID)
}

func distinctUsers(bookings []booking.Booking) []types.ID {
	seen := map[types.ID]bool{}
	var out []types.ID
	for _, b := range bookings {
		if b.UserID != "" && !seen[b.UserID] {
			seen[b.UserID] = true
			out = append(out, b.UserID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
