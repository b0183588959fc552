// README: Reminder scheduler; per-minute tick with lookahead match and retention sweep.
package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/GroupB-499/RidePSUBackend/internal/config"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/booking"
	"github.com/GroupB-499/RidePSUBackend/internal/modules/schedule"
	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

const (
	reminderTitle = "Upcoming Booking Reminder"
	reminderBody  = "Your ride is scheduled in 10 minutes."
)

// UpcomingScheduleSource matches schedules by exact start time.
type UpcomingScheduleSource interface {
	ListByTime(ctx context.Context, hm string) ([]schedule.Schedule, error)
}

// DailyBookingSource lists bookings by calendar date.
type DailyBookingSource interface {
	ListByDate(ctx context.Context, date string) ([]booking.Booking, error)
}

type Scheduler struct {
	schedules UpcomingScheduleSource
	bookings  DailyBookingSource
	store     Store
	push      Pusher
	loc       *time.Location
	cfg       config.ReminderConfig

	mu sync.Mutex // single-flight guard across ticks
}

func NewScheduler(schedules UpcomingScheduleSource, bookings DailyBookingSource, store Store, push Pusher, loc *time.Location, cfg config.ReminderConfig) *Scheduler {
	return &Scheduler{
		schedules: schedules,
		bookings:  bookings,
		store:     store,
		push:      push,
		loc:       loc,
		cfg:       cfg,
	}
}

// Run ticks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx, time.Now())
		}
	}
}

// Tick runs one scheduler pass. A tick arriving while the previous one is
// still running is skipped rather than overlapped, so a slow pass cannot
// double-send reminders.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	if !s.mu.TryLock() {
		log.Printf("reminder: previous tick still running, skipping")
		return
	}
	defer s.mu.Unlock()

	if err := s.remind(ctx, now); err != nil {
		log.Printf("reminder: %v", err)
	}
	// The retention sweep runs every tick, recipients or not.
	deleted, err := s.store.DeleteNotificationsOlderThan(ctx, now.Add(-s.cfg.Retention))
	if err != nil {
		log.Printf("reminder sweep: %v", err)
	} else if deleted > 0 {
		log.Printf("reminder sweep: deleted %d stale notifications", deleted)
	}
}

func (s *Scheduler) remind(ctx context.Context, now time.Time) error {
	local := now.In(s.loc)
	target := local.Add(s.cfg.Lookahead).Format("15:04")

	matched, err := s.schedules.ListByTime(ctx, target)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return nil
	}
	scheduleIDs := map[types.ID]bool{}
	for _, m := range matched {
		scheduleIDs[m.ID] = true
	}

	today := local.Format("2006-01-02")
	bookings, err := s.bookings.ListByDate(ctx, today)
	if err != nil {
		return err
	}
	userIDs := map[types.ID]bool{}
	var users []types.ID
	for _, b := range bookings {
		if scheduleIDs[b.ScheduleID] && !userIDs[b.UserID] {
			userIDs[b.UserID] = true
			users = append(users, b.UserID)
		}
	}
	if len(users) == 0 {
		return nil
	}

	// Merge every recipient's tokens into one deduplicated batch.
	seen := map[string]bool{}
	var tokens []string
	for _, u := range users {
		userTokens, err := s.store.TokensForUser(ctx, u)
		if err != nil {
			return err
		}
		for _, t := range userTokens {
			if !seen[t] {
				seen[t] = true
				tokens = append(tokens, t)
			}
		}
	}
	if len(tokens) == 0 {
		return nil
	}

	if err := s.push.SendMulticast(ctx, reminderTitle, reminderBody, tokens); err != nil {
		return err
	}
	for _, u := range users {
		if err := s.store.AddNotification(ctx, &Notification{UserID: u, Title: reminderTitle, Body: reminderBody}); err != nil {
			return err
		}
	}
	log.Printf("reminder: notified %d user(s) for %d schedule(s) at %s", len(users), len(matched), target)
	return nil
}
