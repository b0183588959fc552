// README: Booking store contract plus the Firestore-backed implementation.
package booking

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

// Store is the persistence contract for bookings.
type Store interface {
	Create(ctx context.Context, b *Booking) error
	// Delete is best-effort by id; deleting an absent booking is not an error.
	Delete(ctx context.Context, id types.ID) error
	ListByUser(ctx context.Context, userID types.ID) ([]Booking, error)
	// ListByUserFromDate returns the user's bookings with date >= from,
	// ordered by date ascending.
	ListByUserFromDate(ctx context.Context, userID types.ID, from string) ([]Booking, error)
	ListByDate(ctx context.Context, date string) ([]Booking, error)
	ListBySchedule(ctx context.Context, scheduleID types.ID) ([]Booking, error)
	CountByScheduleAndDate(ctx context.Context, scheduleID types.ID, date string) (int, error)
	// SetDelay bulk-sets delayTime on every booking referencing scheduleID in
	// one batch commit.
	SetDelay(ctx context.Context, scheduleID types.ID, minutes int) (int, error)
}

const collection = "bookings"

type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Create(ctx context.Context, b *Booking) error {
	ref := s.client.Collection(collection).Doc(string(b.BookingID))
	if _, err := ref.Set(ctx, b); err != nil {
		return fmt.Errorf("creating booking: %w", err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, id types.ID) error {
	if _, err := s.client.Collection(collection).Doc(string(id)).Delete(ctx); err != nil {
		return fmt.Errorf("deleting booking %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) ListByUser(ctx context.Context, userID types.ID) ([]Booking, error) {
	q := s.client.Collection(collection).Where("userId", "==", string(userID))
	return s.collect(q.Documents(ctx))
}

func (s *FirestoreStore) ListByUserFromDate(ctx context.Context, userID types.ID, from string) ([]Booking, error) {
	q := s.client.Collection(collection).
		Where("userId", "==", string(userID)).
		Where("date", ">=", from).
		OrderBy("date", firestore.Asc)
	return s.collect(q.Documents(ctx))
}

func (s *FirestoreStore) ListByDate(ctx context.Context, date string) ([]Booking, error) {
	q := s.client.Collection(collection).Where("date", "==", date)
	return s.collect(q.Documents(ctx))
}

func (s *FirestoreStore) ListBySchedule(ctx context.Context, scheduleID types.ID) ([]Booking, error) {
	q := s.client.Collection(collection).Where("scheduleId", "==", string(scheduleID))
	return s.collect(q.Documents(ctx))
}

func (s *FirestoreStore) CountByScheduleAndDate(ctx context.Context, scheduleID types.ID, date string) (int, error) {
	q := s.client.Collection(collection).
		Where("scheduleId", "==", string(scheduleID)).
		Where("date", "==", date)
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("counting bookings: %w", err)
	}
	return len(docs), nil
}

func (s *FirestoreStore) SetDelay(ctx context.Context, scheduleID types.ID, minutes int) (int, error) {
	docs, err := s.client.Collection(collection).
		Where("scheduleId", "==", string(scheduleID)).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("querying bookings for delay: %w", err)
	}
	if len(docs) == 0 {
		return 0, nil
	}
	batch := s.client.Batch()
	for _, d := range docs {
		batch.Update(d.Ref, []firestore.Update{{Path: "delayTime", Value: minutes}})
	}
	if _, err := batch.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing delay batch: %w", err)
	}
	return len(docs), nil
}

func (s *FirestoreStore) collect(it *firestore.DocumentIterator) ([]Booking, error) {
	defer it.Stop()
	var out []Booking
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating bookings: %w", err)
		}
		var b Booking
		if err := snap.DataTo(&b); err != nil {
			return nil, fmt.Errorf("decoding booking %s: %w", snap.Ref.ID, err)
		}
		if b.BookingID == "" {
			b.BookingID = types.ID(snap.Ref.ID)
		}
		out = append(out, b)
	}
	return out, nil
}
