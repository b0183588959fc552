// README: Schedule store contract plus the Firestore-backed implementation.
package schedule

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

// Patch carries a partial update; nil pointers leave the stored field untouched.
type Patch struct {
	Time             *string
	EndTime          *string
	PickupLocations  []string
	DropoffLocations []string
	TransportType    *string
}

// Store is the persistence contract for schedules.
type Store interface {
	Create(ctx context.Context, s *Schedule) (types.ID, error)
	Get(ctx context.Context, id types.ID) (*Schedule, error)
	List(ctx context.Context) ([]Schedule, error)
	ListByType(ctx context.Context, transportType string) ([]Schedule, error)
	ListByDriver(ctx context.Context, driverID types.ID) ([]Schedule, error)
	ListByTime(ctx context.Context, hm string) ([]Schedule, error)
	ListByTimeRange(ctx context.Context, from, to, transportType string) ([]Schedule, error)
	Update(ctx context.Context, id types.ID, p Patch) error
	Delete(ctx context.Context, id types.ID) error
	// AssignDriver sets driverId on every given schedule in one batch commit.
	AssignDriver(ctx context.Context, ids []types.ID, driverID types.ID) error
}

const collection = "schedules"

// FirestoreStore persists schedules in the "schedules" collection.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Create(ctx context.Context, sch *Schedule) (types.ID, error) {
	ref := s.client.Collection(collection).NewDoc()
	if _, err := ref.Set(ctx, sch); err != nil {
		return "", fmt.Errorf("creating schedule: %w", err)
	}
	sch.ID = types.ID(ref.ID)
	return sch.ID, nil
}

func (s *FirestoreStore) Get(ctx context.Context, id types.ID) (*Schedule, error) {
	snap, err := s.client.Collection(collection).Doc(string(id)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting schedule %s: %w", id, err)
	}
	return docToSchedule(snap)
}

func (s *FirestoreStore) List(ctx context.Context) ([]Schedule, error) {
	return s.collect(s.client.Collection(collection).Documents(ctx))
}

func (s *FirestoreStore) ListByType(ctx context.Context, transportType string) ([]Schedule, error) {
	q := s.client.Collection(collection).Where("transportType", "==", transportType)
	return s.collect(q.Documents(ctx))
}

func (s *FirestoreStore) ListByDriver(ctx context.Context, driverID types.ID) ([]Schedule, error) {
	q := s.client.Collection(collection).Where("driverId", "==", string(driverID))
	return s.collect(q.Documents(ctx))
}

func (s *FirestoreStore) ListByTime(ctx context.Context, hm string) ([]Schedule, error) {
	q := s.client.Collection(collection).Where("time", "==", hm)
	return s.collect(q.Documents(ctx))
}

func (s *FirestoreStore) ListByTimeRange(ctx context.Context, from, to, transportType string) ([]Schedule, error) {
	q := s.client.Collection(collection).
		Where("time", ">=", from).
		Where("time", "<=", to).
		Where("transportType", "==", transportType)
	return s.collect(q.Documents(ctx))
}

func (s *FirestoreStore) Update(ctx context.Context, id types.ID, p Patch) error {
	var updates []firestore.Update
	if p.Time != nil {
		updates = append(updates, firestore.Update{Path: "time", Value: *p.Time})
	}
	if p.EndTime != nil {
		updates = append(updates, firestore.Update{Path: "endTime", Value: *p.EndTime})
	}
	if p.PickupLocations != nil {
		updates = append(updates, firestore.Update{Path: "pickupLocations", Value: p.PickupLocations})
	}
	if p.DropoffLocations != nil {
		updates = append(updates, firestore.Update{Path: "dropoffLocations", Value: p.DropoffLocations})
	}
	if p.TransportType != nil {
		updates = append(updates, firestore.Update{Path: "transportType", Value: *p.TransportType})
	}
	if len(updates) == 0 {
		return nil
	}
	_, err := s.client.Collection(collection).Doc(string(id)).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating schedule %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, id types.ID) error {
	if _, err := s.client.Collection(collection).Doc(string(id)).Delete(ctx); err != nil {
		return fmt.Errorf("deleting schedule %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) AssignDriver(ctx context.Context, ids []types.ID, driverID types.ID) error {
	batch := s.client.Batch()
	for _, id := range ids {
		ref := s.client.Collection(collection).Doc(string(id))
		batch.Update(ref, []firestore.Update{{Path: "driverId", Value: string(driverID)}})
	}
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("assigning driver %s: %w", driverID, err)
	}
	return nil
}

func (s *FirestoreStore) collect(it *firestore.DocumentIterator) ([]Schedule, error) {
	defer it.Stop()
	var out []Schedule
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating schedules: %w", err)
		}
		sch, err := docToSchedule(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, *sch)
	}
	return out, nil
}

func docToSchedule(snap *firestore.DocumentSnapshot) (*Schedule, error) {
	var sch Schedule
	if err := snap.DataTo(&sch); err != nil {
		return nil, fmt.Errorf("decoding schedule %s: %w", snap.Ref.ID, err)
	}
	sch.ID = types.ID(snap.Ref.ID)
	return &sch, nil
}
