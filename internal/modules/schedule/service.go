// README: Schedule allocator; slot conflict detection and driver assignment.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

var (
	ErrNotFound             = errors.New("schedule not found")
	ErrMissingFields        = errors.New("all fields are required")
	ErrInvalidTime          = errors.New("schedule timings must be between 08:00 and 18:00")
	ErrInvalidTransportType = errors.New("invalid transport type: must be 'golf car' or 'shuttle bus'")
	ErrTimeSlotTaken        = errors.New("time slot already booked for this transport type")
)

// DriverConflict describes one schedule that blocked a driver assignment.
type DriverConflict struct {
	ScheduleID types.ID `json:"scheduleId"`
	Time       string   `json:"time"`
	DriverID   types.ID `json:"driverId"`
}

// AssignConflictError carries the complete conflict set so the caller can
// resolve assignments without re-querying.
type AssignConflictError struct {
	Conflicts []DriverConflict
}

func (e *AssignConflictError) Error() string {
	return fmt.Sprintf("driver assignment blocked by %d already-assigned schedule(s)", len(e.Conflicts))
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type AddCommand struct {
	Time             string
	PickupLocations  []string
	DropoffLocations []string
	TransportType    string
}

type UpdateCommand struct {
	Time             *string
	EndTime          *string
	PickupLocations  []string
	DropoffLocations []string
	TransportType    *string
}

type AssignCommand struct {
	DriverID      types.ID
	StartTimeFrom string
	StartTimeTo   string
	TransportType string
}

// Add validates the command and persists a new schedule. Two schedules
// conflict iff their time strings are equal and their transport types match;
// the check is exact-match, not interval-overlap.
func (s *Service) Add(ctx context.Context, cmd AddCommand) (*Schedule, error) {
	if cmd.Time == "" || len(cmd.PickupLocations) == 0 || len(cmd.DropoffLocations) == 0 || cmd.TransportType == "" {
		return nil, ErrMissingFields
	}
	if !ValidTime(cmd.Time) {
		return nil, ErrInvalidTime
	}
	transportType := strings.ToLower(cmd.TransportType)
	if !ValidTransportType(transportType) {
		return nil, ErrInvalidTransportType
	}

	existing, err := s.store.ListByType(ctx, transportType)
	if err != nil {
		return nil, err
	}
	for _, e := range existing {
		if e.Time == cmd.Time {
			return nil, ErrTimeSlotTaken
		}
	}

	sch := &Schedule{
		Time:             cmd.Time,
		PickupLocations:  cmd.PickupLocations,
		DropoffLocations: cmd.DropoffLocations,
		TransportType:    transportType,
	}
	if _, err := s.store.Create(ctx, sch); err != nil {
		return nil, err
	}
	return sch, nil
}

// Update replaces only the supplied fields; unspecified fields are left
// untouched.
func (s *Service) Update(ctx context.Context, id types.ID, cmd UpdateCommand) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	if cmd.Time != nil && !ValidTime(*cmd.Time) {
		return ErrInvalidTime
	}
	if cmd.EndTime != nil && !ValidTime(*cmd.EndTime) {
		return ErrInvalidTime
	}
	// A supplied-but-empty list would strip every pickup or dropoff point.
	if cmd.PickupLocations != nil && len(cmd.PickupLocations) == 0 {
		return ErrMissingFields
	}
	if cmd.DropoffLocations != nil && len(cmd.DropoffLocations) == 0 {
		return ErrMissingFields
	}
	p := Patch{
		Time:             cmd.Time,
		EndTime:          cmd.EndTime,
		PickupLocations:  cmd.PickupLocations,
		DropoffLocations: cmd.DropoffLocations,
	}
	if cmd.TransportType != nil {
		transportType := strings.ToLower(*cmd.TransportType)
		if !ValidTransportType(transportType) {
			return ErrInvalidTransportType
		}
		p.TransportType = &transportType
	}
	return s.store.Update(ctx, id, p)
}

// Delete removes a schedule. Bookings that reference it are left in place;
// their scheduleId becomes a dangling weak reference.
func (s *Service) Delete(ctx context.Context, id types.ID) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Schedule, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Schedule, error) {
	return s.store.List(ctx)
}

func (s *Service) ListByDriver(ctx context.Context, driverID types.ID) ([]Schedule, error) {
	return s.store.ListByDriver(ctx, driverID)
}

// AssignDriver selects every schedule of the given type whose time lies in
// [StartTimeFrom, StartTimeTo] and assigns the driver to all of them.
// The operation is all-or-nothing: if any selected schedule already carries a
// driver, no schedule is mutated and the full conflict set is returned.
func (s *Service) AssignDriver(ctx context.Context, cmd AssignCommand) ([]types.ID, error) {
	if cmd.DriverID == "" || cmd.StartTimeFrom == "" || cmd.StartTimeTo == "" || cmd.TransportType == "" {
		return nil, ErrMissingFields
	}
	transportType := strings.ToLower(cmd.TransportType)
	if !ValidTransportType(transportType) {
		return nil, ErrInvalidTransportType
	}

	selected, err := s.store.ListByTimeRange(ctx, cmd.StartTimeFrom, cmd.StartTimeTo, transportType)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, ErrNotFound
	}

	var conflicts []DriverConflict
	var staged []types.ID
	for _, sch := range selected {
		if sch.DriverID != "" {
			conflicts = append(conflicts, DriverConflict{
				ScheduleID: sch.ID,
				Time:       sch.Time,
				DriverID:   sch.DriverID,
			})
			continue
		}
		staged = append(staged, sch.ID)
	}
	if len(conflicts) > 0 {
		return nil, &AssignConflictError{Conflicts: conflicts}
	}
	if err := s.store.AssignDriver(ctx, staged, cmd.DriverID); err != nil {
		return nil, err
	}
	return staged, nil
}
