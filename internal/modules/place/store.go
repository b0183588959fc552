// README: Place store contract plus the Firestore implementation.
package place

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

type Store interface {
	Create(ctx context.Context, p *Place) (types.ID, error)
	List(ctx context.Context) ([]Place, error)
}

const collection = "locations"

type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Create(ctx context.Context, p *Place) (types.ID, error) {
	ref := s.client.Collection(collection).NewDoc()
	if _, err := ref.Set(ctx, p); err != nil {
		return "", fmt.Errorf("creating place: %w", err)
	}
	p.ID = types.ID(ref.ID)
	return p.ID, nil
}

func (s *FirestoreStore) List(ctx context.Context) ([]Place, error) {
	it := s.client.Collection(collection).Documents(ctx)
	defer it.Stop()
	var out []Place
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating places: %w", err)
		}
		var p Place
		if err := snap.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decoding place %s: %w", snap.Ref.ID, err)
		}
		p.ID = types.ID(snap.Ref.ID)
		out = append(out, p)
	}
	return out, nil
}
