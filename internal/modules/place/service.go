package place

import (
	"context"
	"errors"
)

var ErrMissingFields = errors.New("placeName, latitude, and longitude are required")

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Add(ctx context.Context, name string, lat, lng float64) (*Place, error) {
	if name == "" || lat == 0 || lng == 0 {
		return nil, ErrMissingFields
	}
	p := &Place{PlaceName: name, Latitude: lat, Longitude: lng}
	if _, err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Place, error) {
	return s.store.List(ctx)
}
