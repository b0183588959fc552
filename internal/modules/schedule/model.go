// README: Schedule aggregate and transport-type/time validation.
package schedule

import (
	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

const (
	TransportGolfCar    = "golf car"
	TransportShuttleBus = "shuttle bus"
)

// Operating window for schedule start times, inclusive lower bound,
// exclusive upper bound.
const (
	OpeningHour = 8
	ClosingHour = 18
)

// Schedule is a recurring transport run. Time values are "HH:MM" strings in
// the site-local timezone; the fixed-width zero-padded format makes
// lexicographic comparison equivalent to chronological comparison.
type Schedule struct {
	ID               types.ID `firestore:"-" json:"id"`
	Time             string   `firestore:"time" json:"time"`
	EndTime          string   `firestore:"endTime,omitempty" json:"endTime,omitempty"`
	PickupLocations  []string `firestore:"pickupLocations" json:"pickupLocations"`
	DropoffLocations []string `firestore:"dropoffLocations" json:"dropoffLocations"`
	TransportType    string   `firestore:"transportType" json:"transportType"`
	DriverID         types.ID `firestore:"driverId,omitempty" json:"driverId,omitempty"`
}

// HasPickup reports whether place is one of the schedule's pickup points.
func (s *Schedule) HasPickup(place string) bool {
	for _, p := range s.PickupLocations {
		if p == place {
			return true
		}
	}
	return false
}

// ValidTransportType reports whether t is one of the recognized transport
// types. Input is expected in canonical lowercase form.
func ValidTransportType(t string) bool {
	return t == TransportGolfCar || t == TransportShuttleBus
}

// ValidTime reports whether t is a well-formed zero-padded "HH:MM" string
// inside the operating window.
func ValidTime(t string) bool {
	h, m, ok := ParseHM(t)
	if !ok {
		return false
	}
	return h >= OpeningHour && h < ClosingHour && m >= 0 && m < 60
}

// ParseHM parses a fixed-width "HH:MM" string.
func ParseHM(t string) (hour, minute int, ok bool) {
	if len(t) != 5 || t[2] != ':' {
		return 0, 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return 0, 0, false
		}
	}
	hour = int(t[0]-'0')*10 + int(t[1]-'0')
	minute = int(t[3]-'0')*10 + int(t[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
