// README: Allocator tests (validation, slot conflicts, driver assignment).
package schedule

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

// memStore is an in-memory Store used by the service tests.
type memStore struct {
	seq  int
	docs map[types.ID]*Schedule
}

func newMemStore() *memStore {
	return &memStore{docs: map[types.ID]*Schedule{}}
}

func (m *memStore) Create(_ context.Context, s *Schedule) (types.ID, error) {
	m.seq++
	id := types.ID(fmt.Sprintf("sched-%03d", m.seq))
	cp := *s
	cp.ID = id
	m.docs[id] = &cp
	s.ID = id
	return id, nil
}

func (m *memStore) Get(_ context.Context, id types.ID) (*Schedule, error) {
	s, ok := m.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memStore) List(_ context.Context) ([]Schedule, error) {
	var out []Schedule
	for _, s := range m.docs {
		out = append(out, *s)
	}
	return out, nil
}

func (m *memStore) ListByType(_ context.Context, transportType string) ([]Schedule, error) {
	var out []Schedule
	for _, s := range m.docs {
		if s.TransportType == transportType {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStore) ListByDriver(_ context.Context, driverID types.ID) ([]Schedule, error) {
	var out []Schedule
	for _, s := range m.docs {
		if s.DriverID == driverID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStore) ListByTime(_ context.Context, hm string) ([]Schedule, error) {
	var out []Schedule
	for _, s := range m.docs {
		if s.Time == hm {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStore) ListByTimeRange(_ context.Context, from, to, transportType string) ([]Schedule, error) {
	var out []Schedule
	for _, s := range m.docs {
		if s.TransportType == transportType && s.Time >= from && s.Time <= to {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStore) Update(_ context.Context, id types.ID, p Patch) error {
	s, ok := m.docs[id]
	if !ok {
		return ErrNotFound
	}
	if p.Time != nil {
		s.Time = *p.Time
	}
	if p.EndTime != nil {
		s.EndTime = *p.EndTime
	}
	if p.PickupLocations != nil {
		s.PickupLocations = p.PickupLocations
	}
	if p.DropoffLocations != nil {
		s.DropoffLocations = p.DropoffLocations
	}
	if p.TransportType != nil {
		s.TransportType = *p.TransportType
	}
	return nil
}

func (m *memStore) Delete(_ context.Context, id types.ID) error {
	delete(m.docs, id)
	return nil
}

func (m *memStore) AssignDriver(_ context.Context, ids []types.ID, driverID types.ID) error {
	for _, id := range ids {
		s, ok := m.docs[id]
		if !ok {
			return ErrNotFound
		}
		s.DriverID = driverID
	}
	return nil
}

func strPtr(s string) *string { return &s }

func mustAdd(t *testing.T, svc *Service, hm, transportType string) *Schedule {
	t.Helper()
	sch, err := svc.Add(context.Background(), AddCommand{
		Time:             hm,
		PickupLocations:  []string{"Gate A"},
		DropoffLocations: []string{"Library"},
		TransportType:    transportType,
	})
	if err != nil {
		t.Fatalf("add %s %s: %v", hm, transportType, err)
	}
	return sch
}

func TestValidTime(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"08:00", true},
		{"17:59", true},
		{"09:30", true},
		{"18:00", false}, // closing bound is exclusive
		{"07:59", false},
		{"8:00", false}, // not zero-padded
		{"0800", false},
		{"ab:cd", false},
		{"08:61", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidTime(tc.in); got != tc.want {
			t.Errorf("ValidTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	cases := []struct {
		name string
		cmd  AddCommand
		want error
	}{
		{"missing time", AddCommand{PickupLocations: []string{"a"}, DropoffLocations: []string{"b"}, TransportType: TransportGolfCar}, ErrMissingFields},
		{"empty pickups", AddCommand{Time: "09:00", DropoffLocations: []string{"b"}, TransportType: TransportGolfCar}, ErrMissingFields},
		{"empty dropoffs", AddCommand{Time: "09:00", PickupLocations: []string{"a"}, TransportType: TransportGolfCar}, ErrMissingFields},
		{"before window", AddCommand{Time: "07:00", PickupLocations: []string{"a"}, DropoffLocations: []string{"b"}, TransportType: TransportGolfCar}, ErrInvalidTime},
		{"at closing", AddCommand{Time: "18:00", PickupLocations: []string{"a"}, DropoffLocations: []string{"b"}, TransportType: TransportGolfCar}, ErrInvalidTime},
		{"bad type", AddCommand{Time: "09:00", PickupLocations: []string{"a"}, DropoffLocations: []string{"b"}, TransportType: "tram"}, ErrInvalidTransportType},
	}
	for _, tc := range cases {
		if _, err := svc.Add(ctx, tc.cmd); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestAddDetectsSlotConflict(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	mustAdd(t, svc, "09:00", TransportShuttleBus)

	// same time, same type: conflict
	_, err := svc.Add(ctx, AddCommand{
		Time:             "09:00",
		PickupLocations:  []string{"Gate B"},
		DropoffLocations: []string{"Dorms"},
		TransportType:    "Shuttle Bus", // case-insensitive on input
	})
	if !errors.Is(err, ErrTimeSlotTaken) {
		t.Fatalf("expected ErrTimeSlotTaken, got %v", err)
	}

	// same time, other type: fine
	if _, err := svc.Add(ctx, AddCommand{
		Time:             "09:00",
		PickupLocations:  []string{"Gate B"},
		DropoffLocations: []string{"Dorms"},
		TransportType:    TransportGolfCar,
	}); err != nil {
		t.Fatalf("cross-type add: %v", err)
	}

	// other time, same type: fine
	if _, err := svc.Add(ctx, AddCommand{
		Time:             "09:05",
		PickupLocations:  []string{"Gate B"},
		DropoffLocations: []string{"Dorms"},
		TransportType:    TransportShuttleBus,
	}); err != nil {
		t.Fatalf("other-time add: %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	sch := mustAdd(t, svc, "09:00", TransportGolfCar)

	if err := svc.Update(ctx, sch.ID, UpdateCommand{Time: strPtr("10:30")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.Get(ctx, sch.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Time != "10:30" {
		t.Errorf("time = %q, want 10:30", got.Time)
	}
	if got.TransportType != TransportGolfCar || len(got.PickupLocations) != 1 {
		t.Errorf("unspecified fields changed: %+v", got)
	}

	if err := svc.Update(ctx, sch.ID, UpdateCommand{Time: strPtr("19:00")}); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("out-of-window update: got %v, want ErrInvalidTime", err)
	}
	if err := svc.Update(ctx, sch.ID, UpdateCommand{TransportType: strPtr("bike")}); !errors.Is(err, ErrInvalidTransportType) {
		t.Errorf("bad type update: got %v, want ErrInvalidTransportType", err)
	}
	if err := svc.Update(ctx, "nope", UpdateCommand{Time: strPtr("10:00")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("absent id update: got %v, want ErrNotFound", err)
	}
}

func TestUpdateRejectsEmptyLocationList(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	sch := mustAdd(t, svc, "09:00", TransportGolfCar)

	if err := svc.Update(ctx, sch.ID, UpdateCommand{PickupLocations: []string{}}); !errors.Is(err, ErrMissingFields) {
		t.Errorf("empty pickup list: got %v, want ErrMissingFields", err)
	}
	if err := svc.Update(ctx, sch.ID, UpdateCommand{DropoffLocations: []string{}}); !errors.Is(err, ErrMissingFields) {
		t.Errorf("empty dropoff list: got %v, want ErrMissingFields", err)
	}
	got, err := svc.Get(ctx, sch.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.PickupLocations) != 1 || len(got.DropoffLocations) != 1 {
		t.Errorf("stored locations changed: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	sch := mustAdd(t, svc, "09:00", TransportGolfCar)
	if err := svc.Delete(ctx, sch.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, sch.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestAssignDriverAllOrNothing(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	a := mustAdd(t, svc, "09:00", TransportShuttleBus)
	b := mustAdd(t, svc, "10:00", TransportShuttleBus)
	c := mustAdd(t, svc, "11:00", TransportShuttleBus)
	store.docs[b.ID].DriverID = "driver-1"

	_, err := svc.AssignDriver(ctx, AssignCommand{
		DriverID:      "driver-2",
		StartTimeFrom: "08:00",
		StartTimeTo:   "12:00",
		TransportType: TransportShuttleBus,
	})
	var conflictErr *AssignConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected AssignConflictError, got %v", err)
	}
	if len(conflictErr.Conflicts) != 1 || conflictErr.Conflicts[0].ScheduleID != b.ID || conflictErr.Conflicts[0].DriverID != "driver-1" {
		t.Fatalf("conflict set = %+v", conflictErr.Conflicts)
	}

	// nothing was mutated
	for _, id := range []types.ID{a.ID, c.ID} {
		if store.docs[id].DriverID != "" {
			t.Errorf("schedule %s mutated despite conflict", id)
		}
	}
}

func TestAssignDriverCommitsWhenClean(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	a := mustAdd(t, svc, "09:00", TransportShuttleBus)
	b := mustAdd(t, svc, "10:00", TransportShuttleBus)
	outside := mustAdd(t, svc, "15:00", TransportShuttleBus)
	otherType := mustAdd(t, svc, "09:30", TransportGolfCar)

	assigned, err := svc.AssignDriver(ctx, AssignCommand{
		DriverID:      "driver-7",
		StartTimeFrom: "09:00",
		StartTimeTo:   "12:00",
		TransportType: TransportShuttleBus,
	})
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if len(assigned) != 2 {
		t.Fatalf("assigned %d schedules, want 2", len(assigned))
	}
	if store.docs[a.ID].DriverID != "driver-7" || store.docs[b.ID].DriverID != "driver-7" {
		t.Error("selected schedules not assigned")
	}
	if store.docs[outside.ID].DriverID != "" || store.docs[otherType.ID].DriverID != "" {
		t.Error("out-of-range or cross-type schedule was assigned")
	}
}

func TestAssignDriverEmptySelection(t *testing.T) {
	svc := NewService(newMemStore())
	_, err := svc.AssignDriver(context.Background(), AssignCommand{
		DriverID:      "driver-1",
		StartTimeFrom: "09:00",
		StartTimeTo:   "10:00",
		TransportType: TransportGolfCar,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
