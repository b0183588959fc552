// README: Token/notification store contract plus the Firestore implementation.
package notify

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

// Store is the persistence contract for push registrations and notification
// records.
type Store interface {
	// RegisterTokens merges tokens into the user's registration by set-union.
	RegisterTokens(ctx context.Context, userID types.ID, role string, tokens []string) error
	// TokensForUser returns the union of tokens across every registration
	// entry referencing the user.
	TokensForUser(ctx context.Context, userID types.ID) ([]string, error)
	// AllTokens returns the deduplicated union of every registered token.
	AllTokens(ctx context.Context) ([]string, error)

	AddNotification(ctx context.Context, n *Notification) error
	ListNotificationsForUser(ctx context.Context, userID types.ID) ([]Notification, error)
	// DeleteNotificationsOlderThan removes every notification with a
	// timestamp before cutoff and reports how many were removed.
	DeleteNotificationsOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

const (
	tokensCollection        = "fcmTokens"
	notificationsCollection = "notifications"
)

type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) RegisterTokens(ctx context.Context, userID types.ID, role string, tokens []string) error {
	vals := make([]interface{}, len(tokens))
	for i, t := range tokens {
		vals[i] = t
	}
	_, err := s.client.Collection(tokensCollection).Doc(string(userID)).Set(ctx, map[string]interface{}{
		"userId": string(userID),
		"role":   role,
		"tokens": firestore.ArrayUnion(vals...),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("registering tokens for %s: %w", userID, err)
	}
	return nil
}

func (s *FirestoreStore) TokensForUser(ctx context.Context, userID types.ID) ([]string, error) {
	it := s.client.Collection(tokensCollection).Where("userId", "==", string(userID)).Documents(ctx)
	return s.unionTokens(it)
}

func (s *FirestoreStore) AllTokens(ctx context.Context) ([]string, error) {
	return s.unionTokens(s.client.Collection(tokensCollection).Documents(ctx))
}

func (s *FirestoreStore) unionTokens(it *firestore.DocumentIterator) ([]string, error) {
	defer it.Stop()
	seen := map[string]bool{}
	var out []string
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating token registrations: %w", err)
		}
		var reg Registration
		if err := snap.DataTo(&reg); err != nil {
			return nil, fmt.Errorf("decoding registration %s: %w", snap.Ref.ID, err)
		}
		for _, t := range reg.Tokens {
			if t != "" && !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func (s *FirestoreStore) AddNotification(ctx context.Context, n *Notification) error {
	ref := s.client.Collection(notificationsCollection).NewDoc()
	if _, err := ref.Set(ctx, n); err != nil {
		return fmt.Errorf("adding notification for %s: %w", n.UserID, err)
	}
	n.ID = types.ID(ref.ID)
	return nil
}

func (s *FirestoreStore) ListNotificationsForUser(ctx context.Context, userID types.ID) ([]Notification, error) {
	it := s.client.Collection(notificationsCollection).
		Where("userId", "==", string(userID)).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer it.Stop()
	var out []Notification
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating notifications: %w", err)
		}
		var n Notification
		if err := snap.DataTo(&n); err != nil {
			return nil, fmt.Errorf("decoding notification %s: %w", snap.Ref.ID, err)
		}
		n.ID = types.ID(snap.Ref.ID)
		out = append(out, n)
	}
	return out, nil
}

func (s *FirestoreStore) DeleteNotificationsOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	docs, err := s.client.Collection(notificationsCollection).
		Where("timestamp", "<", cutoff).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("querying stale notifications: %w", err)
	}
	if len(docs) == 0 {
		return 0, nil
	}
	batch := s.client.Batch()
	for _, d := range docs {
		batch.Delete(d.Ref)
	}
	if _, err := batch.Commit(ctx); err != nil {
		return 0, fmt.Errorf("deleting stale notifications: %w", err)
	}
	return len(docs), nil
}
