// README: Rating store contract plus the Firestore implementation.
package rating

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

type Store interface {
	Create(ctx context.Context, r *Rating) error
	// List returns all ratings, newest first.
	List(ctx context.Context) ([]Rating, error)
	ListByUser(ctx context.Context, userID types.ID) ([]Rating, error)
}

const collection = "ratings"

type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Create(ctx context.Context, r *Rating) error {
	ref := s.client.Collection(collection).NewDoc()
	if _, err := ref.Set(ctx, r); err != nil {
		return fmt.Errorf("creating rating: %w", err)
	}
	r.ID = types.ID(ref.ID)
	return nil
}

func (s *FirestoreStore) List(ctx context.Context) ([]Rating, error) {
	q := s.client.Collection(collection).OrderBy("timestamp", firestore.Desc)
	return s.collect(q.Documents(ctx))
}

func (s *FirestoreStore) ListByUser(ctx context.Context, userID types.ID) ([]Rating, error) {
	q := s.client.Collection(collection).Where("userId", "==", string(userID))
	return s.collect(q.Documents(ctx))
}

func (s *FirestoreStore) collect(it *firestore.DocumentIterator) ([]Rating, error) {
	defer it.Stop()
	var out []Rating
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating ratings: %w", err)
		}
		var r Rating
		if err := snap.DataTo(&r); err != nil {
			return nil, fmt.Errorf("decoding rating %s: %w", snap.Ref.ID, err)
		}
		r.ID = types.ID(snap.Ref.ID)
		out = append(out, r)
	}
	return out, nil
}
