// README: Booking record and the flattened per-user view.
package booking

import (
	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

// Booking is a passenger reservation against one schedule occurrence on one
// date. ScheduleID is a weak reference: the schedule may be edited or deleted
// later without this record being cleaned up.
type Booking struct {
	BookingID  types.ID `firestore:"bookingId" json:"bookingId"`
	Date       string   `firestore:"date" json:"date"` // YYYY-MM-DD
	UserID     types.ID `firestore:"userId" json:"userId"`
	ScheduleID types.ID `firestore:"scheduleId" json:"scheduleId"`
	Pickup     string   `firestore:"departure" json:"departure"`
	Dropoff    string   `firestore:"destination" json:"destination"`
	DelayTime  int      `firestore:"delayTime,omitempty" json:"delayTime,omitempty"` // minutes
}

// View joins a booking with its schedule for listing.
type View struct {
	BookingID     types.ID `json:"bookingId"`
	ScheduleID    types.ID `json:"scheduleId"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Pickup        string   `json:"departure"`
	Dropoff       string   `json:"destination"`
	TransportType string   `json:"transportType"`
	DelayTime     int      `json:"delayTime,omitempty"`
}
