package rating

import (
	"context"
	"errors"

	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

var (
	ErrMissingFields = errors.New("user ID, username and rating are required")
	ErrNoRatings     = errors.New("no ratings found")
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type SubmitCommand struct {
	UserID   types.ID
	Username string
	Rating   int
	Feedback string
}

func (s *Service) Submit(ctx context.Context, cmd SubmitCommand) error {
	if cmd.UserID == "" || cmd.Username == "" || cmd.Rating == 0 {
		return ErrMissingFields
	}
	return s.store.Create(ctx, &Rating{
		UserID:   cmd.UserID,
		Username: cmd.Username,
		Rating:   cmd.Rating,
		Feedback: cmd.Feedback,
	})
}

func (s *Service) List(ctx context.Context) ([]Rating, error) {
	ratings, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return nil, ErrNoRatings
	}
	return ratings, nil
}

func (s *Service) ListByUser(ctx context.Context, userID types.ID) ([]Rating, error) {
	if userID == "" {
		return nil, ErrMissingFields
	}
	ratings, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return nil, ErrNoRatings
	}
	return ratings, nil
}
